// Package report assembles display-ready results from the physics core.
package report

import (
	"errors"
	"fmt"

	"github.com/litescript/ls-blackbody/internal/catalog"
	"github.com/litescript/ls-blackbody/internal/format"
	"github.com/litescript/ls-blackbody/internal/physics"
	"github.com/litescript/ls-blackbody/internal/theme"
)

// ErrUnknownBody is returned when a preset name is not in the catalog.
var ErrUnknownBody = errors.New("unknown body")

// Result is everything the presentation layer needs for one temperature.
type Result struct {
	Name        string
	Icon        string
	Observation string
	Preset      bool // true when the body came from the catalog

	TempK       float64
	PeakUm      float64
	Region      format.Region
	PowerWm2    float64
	PowerText   string
	Description string

	Spectrum physics.Spectrum
}

// ForTemperature builds a result for a custom body. T must be positive.
func ForTemperature(tempK float64) Result {
	profile := catalog.ProfileForTemperature(tempK)
	r := compute(tempK)
	r.Name = profile.Name
	r.Icon = profile.Icon
	r.Observation = catalog.CustomObservation
	return r
}

// ForBody builds a result for a preset body.
func ForBody(name string) (Result, error) {
	body, ok := catalog.Lookup(name)
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownBody, name)
	}

	r := compute(body.TempK)
	r.Name = body.Name
	r.Observation = body.Observation
	r.Preset = true
	if d, ok := theme.Decoration(body.Name); ok {
		r.Icon = d.Icon
	}
	return r, nil
}

func compute(tempK float64) Result {
	peak := physics.PeakWavelength(tempK)
	power := physics.TotalPower(tempK)

	return Result{
		TempK:       tempK,
		PeakUm:      peak,
		Region:      format.SpectralRegion(peak),
		PowerWm2:    power,
		PowerText:   format.Intensity(power),
		Description: format.PowerDescription(power),
		Spectrum:    physics.BuildSpectrum(tempK),
	}
}

// Color returns the curve colour for this result under a theme.
func (r Result) Color(t theme.Theme) string {
	return theme.ColorForTemperature(r.TempK, t)
}

// Title returns "icon name", or just the name when there is no icon.
func (r Result) Title() string {
	if r.Icon == "" {
		return r.Name
	}
	return r.Icon + " " + r.Name
}
