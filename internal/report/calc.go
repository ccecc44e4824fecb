package report

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/litescript/ls-blackbody/internal/format"
	"github.com/litescript/ls-blackbody/internal/physics"
)

// ErrInvalidTemperature is returned for non-numeric or out-of-domain temperatures.
var ErrInvalidTemperature = errors.New("invalid temperature")

// InvalidText is what the calculators show in place of a result.
const InvalidText = "Invalid Temp"

// ParseTemperature parses a kelvin value from free text.
// Surrounding whitespace and a trailing "K" are accepted; anything else non-numeric is rejected.
func ParseTemperature(input string) (float64, error) {
	s := strings.TrimSpace(input)
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSuffix(s, "K"), "k"))
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidTemperature)
	}
	// ParseFloat also takes Go literals such as hex floats and digit separators.
	if strings.ContainsAny(s, "xXpP_") {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTemperature, input)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTemperature, input)
	}
	return v, nil
}

// WienResult is the Wien's-law calculator output.
type WienResult struct {
	TempK       float64
	PeakUm      float64
	Region      format.Region
	Text        string // "λ_max ≈ 0.50 μm"
	Description string // "This is in the Visible spectrum."
}

// Wien evaluates Wien's law for free-text input. T must be positive.
func Wien(input string) (WienResult, error) {
	temp, err := ParseTemperature(input)
	if err != nil {
		return WienResult{}, err
	}
	return WienFor(temp)
}

// WienFor evaluates Wien's law for a numeric temperature. T must be positive.
func WienFor(tempK float64) (WienResult, error) {
	if math.IsNaN(tempK) || math.IsInf(tempK, 0) || tempK <= 0 {
		return WienResult{}, fmt.Errorf("%w: %v K must be positive", ErrInvalidTemperature, tempK)
	}

	peak := physics.PeakWavelength(tempK)
	region := format.SpectralRegion(peak)
	return WienResult{
		TempK:       tempK,
		PeakUm:      peak,
		Region:      region,
		Text:        "λ_max ≈ " + format.Wavelength(peak),
		Description: fmt.Sprintf("This is in the %s spectrum.", region),
	}, nil
}

// StefanResult is the Stefan–Boltzmann calculator output.
type StefanResult struct {
	TempK       float64
	PowerWm2    float64
	Text        string // "P/A ≈ 64.16 MW/m²"
	Description string
}

// Stefan evaluates the Stefan–Boltzmann law for free-text input. T may be zero.
func Stefan(input string) (StefanResult, error) {
	temp, err := ParseTemperature(input)
	if err != nil {
		return StefanResult{}, err
	}
	return StefanFor(temp)
}

// StefanFor evaluates the Stefan–Boltzmann law for a numeric temperature. T may be zero.
func StefanFor(tempK float64) (StefanResult, error) {
	if math.IsNaN(tempK) || math.IsInf(tempK, 0) || tempK < 0 {
		return StefanResult{}, fmt.Errorf("%w: %v K must not be negative", ErrInvalidTemperature, tempK)
	}

	power := physics.TotalPower(tempK)
	return StefanResult{
		TempK:       tempK,
		PowerWm2:    power,
		Text:        "P/A ≈ " + format.Intensity(power),
		Description: format.PowerDescription(power),
	}, nil
}
