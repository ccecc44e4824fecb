// Package physics implements the blackbody radiation laws.
package physics

import "math"

// Physical constants, rounded the way the explorer has always displayed them.
const (
	WienConstant    = 2898.0    // Wien displacement constant (μm·K)
	StefanBoltzmann = 5.67e-8   // Stefan–Boltzmann constant (W·m⁻²·K⁻⁴)
	Planck          = 6.626e-34 // Planck constant (J·s)
	SpeedOfLight    = 3.0e8     // m/s
	Boltzmann       = 1.38e-23  // Boltzmann constant (J/K)
)

// PeakWavelength returns the wavelength of peak emission in micrometers (Wien's law).
// T must be positive; T = 0 yields +Inf.
func PeakWavelength(tempK float64) float64 {
	return WienConstant / tempK
}

// TotalPower returns the power radiated per unit area in W/m² (Stefan–Boltzmann law).
func TotalPower(tempK float64) float64 {
	return StefanBoltzmann * math.Pow(tempK, 4)
}

// SpectralRadiance evaluates Planck's law in wavelength form.
// The wavelength is given in micrometers; the result is in native SI units
// (W·m⁻² per meter of wavelength) before any display scaling.
//
// Non-positive wavelength or temperature returns 0, which is the limit of the law in
// both directions. When hc/λkT is large enough to overflow the exponential the
// radiance underflows to 0 as well. At the other extreme a quotient too large
// for a float64 is clamped to math.MaxFloat64.
func SpectralRadiance(wavelengthUm, tempK float64) float64 {
	if wavelengthUm <= 0 || tempK <= 0 {
		return 0
	}

	wavM := wavelengthUm * 1e-6

	a := (2 * math.Pi * Planck * SpeedOfLight * SpeedOfLight) / math.Pow(wavM, 5)
	b := Planck * SpeedOfLight / (wavM * Boltzmann * tempK)

	denom := math.Expm1(b)
	if math.IsInf(denom, 1) || denom <= 0 {
		return 0
	}
	if v := a / denom; !math.IsInf(v, 1) {
		return v
	}
	return math.MaxFloat64
}
