// Package format turns physics results into display strings and category labels.
package format

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Region is a named band of the electromagnetic spectrum.
type Region string

const (
	Ultraviolet  Region = "Ultraviolet"
	Visible      Region = "Visible"
	NearInfrared Region = "Near Infrared"
	Infrared     Region = "Infrared"
)

// Visible band edges in micrometers.
const (
	VisibleMinUm = 0.4
	VisibleMaxUm = 0.75
	nearIRMaxUm  = 2.5
)

// SpectralRegion classifies a wavelength in micrometers.
// Each bucket includes its upper edge: 0.4 and 0.75 are Visible, 2.5 is Near Infrared.
func SpectralRegion(wavelengthUm float64) Region {
	switch {
	case wavelengthUm < VisibleMinUm:
		return Ultraviolet
	case wavelengthUm <= VisibleMaxUm:
		return Visible
	case wavelengthUm <= nearIRMaxUm:
		return NearInfrared
	default:
		return Infrared
	}
}

var intensityUnits = []string{"W/m²", "kW/m²", "MW/m²", "GW/m²", "TW/m²"}

// Intensity formats a power per area with an SI-multiple unit and two decimals.
// Values below 1 always use W/m². Values of 1000 TW/m² and above stay in TW/m².
func Intensity(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "N/A"
	}
	if value < 1 {
		return fmt.Sprintf("%.2f %s", value, intensityUnits[0])
	}

	// floor(log10(v)/3) by repeated division; Log10 rounds 1000 down to 2.999…
	idx := 0
	scaled := value
	for scaled >= 1000 && idx < len(intensityUnits)-1 {
		scaled /= 1000
		idx++
	}
	return fmt.Sprintf("%.2f %s", scaled, intensityUnits[idx])
}

// Power description tiers (W/m²).
const (
	tierDim     = 1e3
	tierGlow    = 1e6
	tierBright  = 5e7
	tierSunlike = 1e8
)

// PowerDescription returns a qualitative sentence for a radiated power per area.
func PowerDescription(power float64) string {
	switch {
	case power < tierDim:
		return "Radiates very little energy, invisible to the naked eye."
	case power < tierGlow:
		return "Begins to glow dimly, like a hot stove element."
	case power < tierBright:
		return "Shines brightly, similar to an incandescent light bulb."
	case power < tierSunlike:
		return "Extremely luminous, like the surface of our Sun."
	default:
		return "Intensely powerful, far exceeding the Sun's radiance."
	}
}

var printer = message.NewPrinter(language.English)

// Temperature formats kelvin rounded to the nearest degree with digit grouping ("5,800 K").
func Temperature(tempK float64) string {
	if math.IsNaN(tempK) || math.IsInf(tempK, 0) {
		return "N/A"
	}
	return printer.Sprintf("%d K", int64(math.Round(tempK)))
}

// Wavelength formats micrometers with two decimals ("0.50 μm").
func Wavelength(um float64) string {
	return fmt.Sprintf("%.2f μm", um)
}
