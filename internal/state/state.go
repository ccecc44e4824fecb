// Package state provides thread-safe state management for the application.
package state

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/litescript/ls-blackbody/internal/catalog"
	"github.com/litescript/ls-blackbody/internal/report"
	"github.com/litescript/ls-blackbody/internal/slider"
	"github.com/litescript/ls-blackbody/internal/theme"
)

// EventType represents the type of state change event.
type EventType string

const (
	EventPresetSelected EventType = "PRESET"
	EventSliderMoved    EventType = "SLIDER"
	EventTempSet        EventType = "TEMP"
	EventThemeChanged   EventType = "THEME"
)

// Event records one user interaction.
type Event struct {
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Body      string    `json:"body"`
	TempK     float64   `json:"temperature_k"`
	Theme     string    `json:"theme,omitempty"`
}

// String renders the event for the event log.
func (e Event) String() string {
	switch e.Type {
	case EventPresetSelected:
		return fmt.Sprintf("selected preset %s (%.0f K)", e.Body, e.TempK)
	case EventSliderMoved:
		return fmt.Sprintf("slider → %.0f K (%s)", e.TempK, e.Body)
	case EventTempSet:
		return fmt.Sprintf("temperature set to %.0f K (%s)", e.TempK, e.Body)
	case EventThemeChanged:
		return "theme → " + e.Theme
	default:
		return string(e.Type)
	}
}

// TimeSeries is a single data point with timestamp.
type TimeSeries struct {
	Timestamp time.Time
	Value     float64
}

// Session identifies one run of the explorer.
type Session struct {
	ID      string
	Started time.Time
}

// Manager owns the current temperature, active preset, slider position and
// theme, and keeps the derived result in step with them.
type Manager struct {
	mu sync.RWMutex

	session Session
	scale   slider.Scale

	// Current state
	tempK  float64
	preset string // empty for a custom body
	value  float64
	theme  theme.Theme
	result report.Result

	// Temperature history
	history       []TimeSeries
	maxHistoryLen int

	// Event log (ring buffer)
	events       []Event
	maxEvents    int
	eventWriteAt int

	now func() time.Time
}

// Config holds configuration for the state manager.
type Config struct {
	MaxHistoryLen int
	MaxEvents     int
	Theme         theme.Theme
	InitialBody   string
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		MaxHistoryLen: 120,
		MaxEvents:     50,
		Theme:         theme.Light,
		InitialBody:   catalog.DefaultBody,
	}
}

// NewManager creates a new state manager showing cfg.InitialBody.
// An unknown initial body falls back to the default preset.
func NewManager(cfg Config) *Manager {
	maxEvents := cfg.MaxEvents
	if maxEvents <= 0 {
		maxEvents = 50
	}
	maxHist := cfg.MaxHistoryLen
	if maxHist <= 0 {
		maxHist = 120
	}

	m := &Manager{
		session:       Session{ID: uuid.NewString(), Started: time.Now()},
		scale:         slider.Default,
		theme:         cfg.Theme,
		maxHistoryLen: maxHist,
		maxEvents:     maxEvents,
		events:        make([]Event, 0, maxEvents),
		history:       make([]TimeSeries, 0, maxHist),
		now:           time.Now,
	}

	body, ok := catalog.Lookup(cfg.InitialBody)
	if !ok {
		body, _ = catalog.Lookup(catalog.DefaultBody)
	}
	m.applyPreset(body)
	return m
}

// SelectPreset snaps the state to a catalog body.
func (m *Manager) SelectPreset(name string) error {
	body, ok := catalog.Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %q", report.ErrUnknownBody, name)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.applyPreset(body)
	m.addEvent(Event{Type: EventPresetSelected, Body: body.Name, TempK: body.TempK})
	return nil
}

// SetSlider moves the slider, clamped to its range, and switches to a custom body.
func (m *Manager) SetSlider(v float64) {
	if math.IsNaN(v) {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.moveSlider(v)
}

// NudgeSlider moves the slider by delta from its current position.
func (m *Manager) NudgeSlider(delta float64) {
	if math.IsNaN(delta) {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.moveSlider(m.value + delta)
}

func (m *Manager) moveSlider(v float64) {
	m.value = m.scale.ClampValue(v)
	m.applyCustom(m.scale.ToTemp(m.value))
	m.addEvent(Event{Type: EventSliderMoved, Body: m.result.Name, TempK: m.tempK})
}

// SetTemperature sets a custom temperature, clamped to the slider range,
// and moves the slider to match.
func (m *Manager) SetTemperature(tempK float64) error {
	if math.IsNaN(tempK) || math.IsInf(tempK, 0) || tempK <= 0 {
		return fmt.Errorf("%w: %v", report.ErrInvalidTemperature, tempK)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	t := m.scale.ClampTemp(tempK)
	m.value = m.scale.ToValue(t)
	m.applyCustom(t)
	m.addEvent(Event{Type: EventTempSet, Body: m.result.Name, TempK: m.tempK})
	return nil
}

// SetTheme switches the theme. Setting the current theme is a no-op.
func (m *Manager) SetTheme(t theme.Theme) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setTheme(t)
}

// ToggleTheme flips between light and dark and returns the new theme.
func (m *Manager) ToggleTheme() theme.Theme {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setTheme(m.theme.Toggle())
	return m.theme
}

func (m *Manager) setTheme(t theme.Theme) {
	if t == m.theme {
		return
	}
	m.theme = t
	m.addEvent(Event{Type: EventThemeChanged, Body: m.result.Name, TempK: m.tempK, Theme: t.String()})
}

// moveSlider, applyPreset and applyCustom require mu held.
func (m *Manager) applyPreset(body catalog.Body) {
	m.preset = body.Name
	m.tempK = body.TempK
	m.value = m.scale.ToValue(body.TempK)
	m.result, _ = report.ForBody(body.Name)
	m.recordHistory()
}

func (m *Manager) applyCustom(tempK float64) {
	m.preset = ""
	m.tempK = tempK
	m.result = report.ForTemperature(tempK)
	m.recordHistory()
}

func (m *Manager) recordHistory() {
	m.history = append(m.history, TimeSeries{Timestamp: m.now(), Value: m.tempK})
	if len(m.history) > m.maxHistoryLen {
		m.history = m.history[1:]
	}
}

// addEvent adds an event to the ring buffer.
func (m *Manager) addEvent(e Event) {
	e.Timestamp = m.now()
	if len(m.events) < m.maxEvents {
		m.events = append(m.events, e)
	} else {
		m.events[m.eventWriteAt] = e
		m.eventWriteAt = (m.eventWriteAt + 1) % m.maxEvents
	}
}

// Snapshot represents an immutable snapshot of current state.
type Snapshot struct {
	Session     Session
	TempK       float64
	Preset      string
	SliderValue float64
	Theme       theme.Theme
	Result      report.Result
	History     []TimeSeries
	Events      []Event
}

// IsCustom reports whether the snapshot shows a synthesised body.
func (s Snapshot) IsCustom() bool {
	return s.Preset == ""
}

// Snapshot returns a consistent snapshot of current state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	hist := make([]TimeSeries, len(m.history))
	copy(hist, m.history)

	return Snapshot{
		Session:     m.session,
		TempK:       m.tempK,
		Preset:      m.preset,
		SliderValue: m.value,
		Theme:       m.theme,
		Result:      m.result,
		History:     hist,
		Events:      m.getEventsOrdered(),
	}
}

// getEventsOrdered returns events in chronological order.
func (m *Manager) getEventsOrdered() []Event {
	if len(m.events) == 0 {
		return nil
	}

	// If buffer isn't full yet, just copy
	if len(m.events) < m.maxEvents {
		result := make([]Event, len(m.events))
		copy(result, m.events)
		return result
	}

	// Ring buffer is full, reorder from oldest to newest
	result := make([]Event, m.maxEvents)
	for i := 0; i < m.maxEvents; i++ {
		idx := (m.eventWriteAt + i) % m.maxEvents
		result[i] = m.events[idx]
	}
	return result
}

// RecentEvents returns the last n events.
func (m *Manager) RecentEvents(n int) []Event {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := m.getEventsOrdered()
	if n <= 0 {
		return nil
	}
	if len(all) <= n {
		return all
	}
	return all[len(all)-n:]
}

// Session returns the session identity.
func (m *Manager) Session() Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session
}

// Theme returns the current theme.
func (m *Manager) Theme() theme.Theme {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.theme
}
