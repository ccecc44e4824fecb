package state

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/litescript/ls-blackbody/internal/report"
	"github.com/litescript/ls-blackbody/internal/slider"
	"github.com/litescript/ls-blackbody/internal/theme"
)

func TestNewManager(t *testing.T) {
	m := NewManager(DefaultConfig())

	snap := m.Snapshot()
	if snap.Preset != "Sun" || snap.TempK != 5800 {
		t.Errorf("initial state = %q %v K, want Sun 5800 K", snap.Preset, snap.TempK)
	}
	if math.Abs(snap.SliderValue-slider.TempToSlider(5800)) > 1e-9 {
		t.Errorf("SliderValue = %v", snap.SliderValue)
	}
	if snap.Result.Name != "Sun" || !snap.Result.Preset {
		t.Errorf("Result = %q preset=%v", snap.Result.Name, snap.Result.Preset)
	}
	if _, err := uuid.Parse(snap.Session.ID); err != nil {
		t.Errorf("session id %q is not a uuid: %v", snap.Session.ID, err)
	}
	if snap.Session.Started.IsZero() {
		t.Error("session start should be set")
	}
	if len(snap.Events) != 0 {
		t.Errorf("initial events = %d, want 0", len(snap.Events))
	}
	if len(snap.History) != 1 {
		t.Errorf("initial history = %d, want 1", len(snap.History))
	}
}

func TestNewManager_InitialBody(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InitialBody = "Sirius A"
	cfg.Theme = theme.Dark
	m := NewManager(cfg)

	snap := m.Snapshot()
	if snap.Preset != "Sirius A" || snap.Theme != theme.Dark {
		t.Errorf("state = %q %s", snap.Preset, snap.Theme)
	}

	cfg.InitialBody = "Vega"
	if got := NewManager(cfg).Snapshot().Preset; got != "Sun" {
		t.Errorf("unknown initial body should fall back to Sun, got %q", got)
	}
}

func TestManager_SelectPreset(t *testing.T) {
	m := NewManager(DefaultConfig())

	if err := m.SelectPreset("Earth"); err != nil {
		t.Fatalf("SelectPreset(Earth): %v", err)
	}
	snap := m.Snapshot()
	if snap.TempK != 250 || snap.Preset != "Earth" || snap.IsCustom() {
		t.Errorf("state = %v K %q", snap.TempK, snap.Preset)
	}
	if math.Abs(snap.SliderValue) > 1e-9 {
		t.Errorf("SliderValue = %v, want 0", snap.SliderValue)
	}
	if snap.Result.Name != "Earth" {
		t.Errorf("Result.Name = %q", snap.Result.Name)
	}

	events := m.RecentEvents(10)
	if len(events) != 1 || events[0].Type != EventPresetSelected || events[0].Body != "Earth" {
		t.Errorf("events = %+v", events)
	}
}

func TestManager_SelectPreset_Unknown(t *testing.T) {
	m := NewManager(DefaultConfig())

	err := m.SelectPreset("earth")
	if !errors.Is(err, report.ErrUnknownBody) {
		t.Errorf("SelectPreset(earth) error = %v, want ErrUnknownBody", err)
	}
	if m.Snapshot().Preset != "Sun" {
		t.Error("failed lookup should leave state unchanged")
	}
}

func TestManager_SetSlider(t *testing.T) {
	m := NewManager(DefaultConfig())

	m.SetSlider(1000)
	snap := m.Snapshot()
	if math.Abs(snap.TempK-12000) > 1e-6 {
		t.Errorf("TempK = %v, want 12000", snap.TempK)
	}
	if !snap.IsCustom() || snap.Result.Name != "Blue Giant Star" {
		t.Errorf("slider should produce a custom body, got %q (%q)", snap.Preset, snap.Result.Name)
	}

	m.SetSlider(5000)
	if v := m.Snapshot().SliderValue; v != 1000 {
		t.Errorf("SliderValue = %v, want clamp to 1000", v)
	}
	m.SetSlider(-3)
	if got := m.Snapshot().TempK; math.Abs(got-250) > 1e-9 {
		t.Errorf("TempK = %v, want 250", got)
	}
}

func TestManager_SetSlider_AtPresetTempStaysCustom(t *testing.T) {
	m := NewManager(DefaultConfig())

	m.SetSlider(0)
	snap := m.Snapshot()
	if !snap.IsCustom() {
		t.Error("slider at Earth's temperature should still be custom")
	}
	if snap.Result.Name != "Cold Object" {
		t.Errorf("Result.Name = %q, want Cold Object", snap.Result.Name)
	}
}

func TestManager_NudgeSlider(t *testing.T) {
	m := NewManager(DefaultConfig())
	start := m.Snapshot().SliderValue

	m.NudgeSlider(10)
	if got := m.Snapshot().SliderValue; math.Abs(got-(start+10)) > 1e-9 {
		t.Errorf("SliderValue = %v, want %v", got, start+10)
	}
	m.NudgeSlider(5000)
	if got := m.Snapshot().SliderValue; got != 1000 {
		t.Errorf("SliderValue = %v, want 1000", got)
	}
}

func TestManager_SetTemperature(t *testing.T) {
	m := NewManager(DefaultConfig())

	if err := m.SetTemperature(3000); err != nil {
		t.Fatalf("SetTemperature(3000): %v", err)
	}
	snap := m.Snapshot()
	if snap.TempK != 3000 || !snap.IsCustom() {
		t.Errorf("state = %v K preset %q", snap.TempK, snap.Preset)
	}
	if math.Abs(snap.SliderValue-slider.TempToSlider(3000)) > 1e-9 {
		t.Errorf("SliderValue = %v not synced", snap.SliderValue)
	}

	if err := m.SetTemperature(50000); err != nil {
		t.Fatalf("SetTemperature(50000): %v", err)
	}
	if got := m.Snapshot().TempK; got != 12000 {
		t.Errorf("TempK = %v, want clamp to 12000", got)
	}

	for _, bad := range []float64{0, -10, math.NaN(), math.Inf(1)} {
		if err := m.SetTemperature(bad); !errors.Is(err, report.ErrInvalidTemperature) {
			t.Errorf("SetTemperature(%v) error = %v", bad, err)
		}
	}
	if got := m.Snapshot().TempK; got != 12000 {
		t.Errorf("rejected input changed TempK to %v", got)
	}
}

func TestManager_Theme(t *testing.T) {
	m := NewManager(DefaultConfig())

	if got := m.ToggleTheme(); got != theme.Dark {
		t.Errorf("ToggleTheme() = %s, want dark", got)
	}
	if m.Theme() != theme.Dark {
		t.Errorf("Theme() = %s", m.Theme())
	}

	m.SetTheme(theme.Dark)
	m.SetTheme(theme.Light)

	events := m.RecentEvents(10)
	if len(events) != 2 {
		t.Fatalf("got %d theme events, want 2 (no-op set is not logged)", len(events))
	}
	if events[0].Theme != "dark" || events[1].Theme != "light" {
		t.Errorf("theme events = %q, %q", events[0].Theme, events[1].Theme)
	}
}

func TestManager_EventRingBuffer(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxEvents = 3
	m := NewManager(cfg)

	for _, v := range []float64{100, 200, 300, 400, 500} {
		m.SetSlider(v)
	}

	events := m.Snapshot().Events
	if len(events) != 3 {
		t.Fatalf("len(Events) = %d, want 3", len(events))
	}
	want := []float64{300, 400, 500}
	for i, e := range events {
		if got := slider.TempToSlider(e.TempK); math.Abs(got-want[i]) > 1e-6 {
			t.Errorf("event %d at slider %v, want %v", i, got, want[i])
		}
	}
	for i := 1; i < len(events); i++ {
		if events[i].Timestamp.Before(events[i-1].Timestamp) {
			t.Error("events should be in chronological order")
		}
	}

	recent := m.RecentEvents(2)
	if len(recent) != 2 || recent[1].TempK != events[2].TempK {
		t.Errorf("RecentEvents(2) = %+v", recent)
	}
	if m.RecentEvents(0) != nil {
		t.Error("RecentEvents(0) should be nil")
	}
}

func TestManager_HistoryBounded(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxHistoryLen = 4
	m := NewManager(cfg)

	for i := 0; i < 10; i++ {
		m.SetSlider(float64(i * 50))
	}

	hist := m.Snapshot().History
	if len(hist) != 4 {
		t.Fatalf("len(History) = %d, want 4", len(hist))
	}
	if last := hist[len(hist)-1].Value; math.Abs(last-slider.SliderToTemp(450)) > 1e-9 {
		t.Errorf("last history value = %v", last)
	}
}

func TestSnapshot_IsCopy(t *testing.T) {
	m := NewManager(DefaultConfig())
	m.SetSlider(10)

	snap := m.Snapshot()
	snap.History[0].Value = -1
	snap.Events[0].Body = "mutated"

	again := m.Snapshot()
	if again.History[0].Value == -1 || again.Events[0].Body == "mutated" {
		t.Error("snapshot slices should not alias manager state")
	}
}

func TestEvent_String(t *testing.T) {
	tests := []struct {
		e    Event
		want string
	}{
		{Event{Type: EventPresetSelected, Body: "Sun", TempK: 5800}, "selected preset Sun (5800 K)"},
		{Event{Type: EventSliderMoved, Body: "Orange Giant", TempK: 3210.4}, "slider → 3210 K (Orange Giant)"},
		{Event{Type: EventTempSet, Body: "Red Dwarf Star", TempK: 1500}, "temperature set to 1500 K (Red Dwarf Star)"},
		{Event{Type: EventThemeChanged, Theme: "dark"}, "theme → dark"},
	}
	for _, tt := range tests {
		if got := tt.e.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestManager_ConcurrentAccess(t *testing.T) {
	m := NewManager(DefaultConfig())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			m.SetSlider(float64(i * 100))
			m.ToggleTheme()
		}(i)
		go func() {
			defer wg.Done()
			_ = m.Snapshot()
			_ = m.RecentEvents(5)
		}()
	}
	wg.Wait()

	if n := len(m.Snapshot().Events); n != 16 {
		t.Errorf("len(Events) = %d, want 16", n)
	}
}
