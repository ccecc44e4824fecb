// Package slider maps a linear UI control onto a logarithmic temperature range.
package slider

import "math"

// Default control and temperature bounds.
const (
	MinTemp  = 250.0
	MaxTemp  = 12000.0
	MinValue = 0.0
	MaxValue = 1000.0
)

// Scale is a log-scale transform between [MinValue, MaxValue] and [MinTemp, MaxTemp].
// Equal slider steps correspond to equal temperature ratios.
type Scale struct {
	MinValue float64
	MaxValue float64
	MinTemp  float64
	MaxTemp  float64
}

// Default is the explorer's 0-1000 slider over 250-12000 K.
var Default = Scale{
	MinValue: MinValue,
	MaxValue: MaxValue,
	MinTemp:  MinTemp,
	MaxTemp:  MaxTemp,
}

// logStep is the change in ln(T) per slider unit.
func (s Scale) logStep() float64 {
	return (math.Log(s.MaxTemp) - math.Log(s.MinTemp)) / (s.MaxValue - s.MinValue)
}

// ToTemp converts a slider value to kelvin. Values outside the control range
// extrapolate; callers clamp first if they need the UI range.
func (s Scale) ToTemp(v float64) float64 {
	return math.Exp(math.Log(s.MinTemp) + (v-s.MinValue)*s.logStep())
}

// ToValue converts kelvin to a (fractional) slider value. T must be positive.
func (s Scale) ToValue(tempK float64) float64 {
	return s.MinValue + (math.Log(tempK)-math.Log(s.MinTemp))/s.logStep()
}

// ClampValue limits v to the control range.
func (s Scale) ClampValue(v float64) float64 {
	return math.Min(s.MaxValue, math.Max(s.MinValue, v))
}

// ClampTemp limits T to the temperature range.
func (s Scale) ClampTemp(tempK float64) float64 {
	return math.Min(s.MaxTemp, math.Max(s.MinTemp, tempK))
}

// SliderToTemp converts a value on the default scale to kelvin.
func SliderToTemp(v float64) float64 {
	return Default.ToTemp(v)
}

// TempToSlider converts kelvin to a value on the default scale.
func TempToSlider(tempK float64) float64 {
	return Default.ToValue(tempK)
}
