package slider

import (
	"math"
	"testing"
)

func TestSliderToTemp_Endpoints(t *testing.T) {
	if got := SliderToTemp(0); math.Abs(got-250) > 1e-9 {
		t.Errorf("SliderToTemp(0) = %v, want 250", got)
	}
	if got := SliderToTemp(1000); math.Abs(got-12000) > 1e-6 {
		t.Errorf("SliderToTemp(1000) = %v, want 12000", got)
	}
}

func TestSliderToTemp_Monotonic(t *testing.T) {
	prev := SliderToTemp(0)
	for v := 1; v <= 1000; v++ {
		cur := SliderToTemp(float64(v))
		if cur <= prev {
			t.Fatalf("SliderToTemp(%d) = %v, not > %v", v, cur, prev)
		}
		prev = cur
	}
}

func TestSliderToTemp_EqualRatios(t *testing.T) {
	// Equal slider motion should give equal relative temperature change.
	r1 := SliderToTemp(200) / SliderToTemp(100)
	r2 := SliderToTemp(900) / SliderToTemp(800)
	if math.Abs(r1-r2) > 1e-9 {
		t.Errorf("ratios differ: %v vs %v", r1, r2)
	}
}

func TestRoundTrip_SliderValues(t *testing.T) {
	for v := 0; v <= 1000; v++ {
		back := TempToSlider(SliderToTemp(float64(v)))
		if math.Round(back) != float64(v) {
			t.Fatalf("round(TempToSlider(SliderToTemp(%d))) = %v", v, math.Round(back))
		}
		if v > 0 && math.Abs(back-float64(v))/float64(v) > 1e-6 {
			t.Errorf("TempToSlider(SliderToTemp(%d)) = %v, relative error too large", v, back)
		}
	}
}

func TestRoundTrip_Temperatures(t *testing.T) {
	for temp := 250.0; temp <= 12000; temp += 97.3 {
		back := SliderToTemp(TempToSlider(temp))
		if math.Abs(back-temp)/temp > 1e-9 {
			t.Errorf("SliderToTemp(TempToSlider(%v)) = %v", temp, back)
		}
	}
}

func TestPresetPositions(t *testing.T) {
	tests := []struct {
		name string
		temp float64
		want float64
	}{
		{"Earth", 250, 0},
		{"Light Bulb", 3000, 641.90},
		{"Sun", 5800, 812.19},
		{"Sirius A", 9850, 949.0},
	}

	for _, tt := range tests {
		got := TempToSlider(tt.temp)
		if math.Abs(got-tt.want) > 0.1 {
			t.Errorf("%s: TempToSlider(%v) = %.2f, want ~%.1f", tt.name, tt.temp, got, tt.want)
		}
	}
}

func TestExtrapolatesOutsideRange(t *testing.T) {
	if got := SliderToTemp(-100); got >= 250 {
		t.Errorf("SliderToTemp(-100) = %v, want < 250", got)
	}
	if got := TempToSlider(20000); got <= 1000 {
		t.Errorf("TempToSlider(20000) = %v, want > 1000", got)
	}
}

func TestClamp(t *testing.T) {
	s := Default

	valueTests := []struct{ in, want float64 }{
		{-5, 0}, {0, 0}, {512, 512}, {1000, 1000}, {1200, 1000},
	}
	for _, tt := range valueTests {
		if got := s.ClampValue(tt.in); got != tt.want {
			t.Errorf("ClampValue(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}

	tempTests := []struct{ in, want float64 }{
		{10, 250}, {250, 250}, {5800, 5800}, {12000, 12000}, {1e6, 12000},
	}
	for _, tt := range tempTests {
		if got := s.ClampTemp(tt.in); got != tt.want {
			t.Errorf("ClampTemp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
