package physics

import "math"

const (
	// SpectrumSamples is the fixed number of points in every spectrum.
	SpectrumSamples = 200

	// Wavelength window bounds in micrometers.
	MinWindow = 1.5
	MaxWindow = 30.0

	// windowPeakMultiple places the window edge at this multiple of the peak.
	windowPeakMultiple = 5.0

	// DisplayScale converts native radiance to chart units.
	DisplayScale = 1e-6

	// axisHeadroom leaves space above the tallest sample.
	axisHeadroom = 1.1
)

// SpectralSample is one point on a spectrum curve.
type SpectralSample struct {
	WavelengthUm float64 `json:"wavelength_um" yaml:"wavelength_um"`
	Radiance     float64 `json:"radiance" yaml:"radiance"` // display units (native × 1e-6)
}

// Spectrum is a sampled Planck curve for a single temperature.
type Spectrum struct {
	TempK    float64
	PeakUm   float64
	WindowUm float64 // upper bound of the sampled window (x_max)
	Samples  []SpectralSample
}

// SpectrumWindow returns the upper wavelength bound for a temperature: five times
// the peak wavelength, clamped to [MinWindow, MaxWindow].
func SpectrumWindow(tempK float64) float64 {
	return math.Min(MaxWindow, math.Max(MinWindow, PeakWavelength(tempK)*windowPeakMultiple))
}

// BuildSpectrum samples SpectrumSamples equally spaced wavelengths over (0, x_max].
// T must be positive.
func BuildSpectrum(tempK float64) Spectrum {
	window := SpectrumWindow(tempK)

	samples := make([]SpectralSample, SpectrumSamples)
	for i := range samples {
		wav := float64(i+1) / SpectrumSamples * window
		samples[i] = SpectralSample{
			WavelengthUm: wav,
			Radiance:     SpectralRadiance(wav, tempK) * DisplayScale,
		}
	}

	return Spectrum{
		TempK:    tempK,
		PeakUm:   PeakWavelength(tempK),
		WindowUm: window,
		Samples:  samples,
	}
}

// MaxRadiance returns the tallest sample value, or 0 for an empty spectrum.
func (s Spectrum) MaxRadiance() float64 {
	maxVal := 0.0
	for _, p := range s.Samples {
		if p.Radiance > maxVal {
			maxVal = p.Radiance
		}
	}
	return maxVal
}

// AxisMax returns the y-axis ceiling for charts: 10% above the tallest sample,
// or 1 when the curve is flat.
func (s Spectrum) AxisMax() float64 {
	m := s.MaxRadiance() * axisHeadroom
	if m <= 0 || math.IsNaN(m) || math.IsInf(m, 0) {
		return 1
	}
	return m
}

// RadianceAt linearly interpolates the spectrum at an arbitrary wavelength.
// Wavelengths outside the sampled range clamp to the nearest end; below the first
// sample the curve is interpolated toward zero at λ = 0.
func (s Spectrum) RadianceAt(wavelengthUm float64) float64 {
	n := len(s.Samples)
	if n == 0 || wavelengthUm <= 0 {
		return 0
	}
	first := s.Samples[0]
	if wavelengthUm <= first.WavelengthUm {
		return first.Radiance * wavelengthUm / first.WavelengthUm
	}
	last := s.Samples[n-1]
	if wavelengthUm >= last.WavelengthUm {
		return last.Radiance
	}

	// Samples are equally spaced, so the bracketing index is direct.
	step := first.WavelengthUm
	idx := int(wavelengthUm/step) - 1
	if idx < 0 {
		idx = 0
	}
	if idx > n-2 {
		idx = n - 2
	}
	lo, hi := s.Samples[idx], s.Samples[idx+1]
	t := (wavelengthUm - lo.WavelengthUm) / (hi.WavelengthUm - lo.WavelengthUm)
	return lo.Radiance + t*(hi.Radiance-lo.Radiance)
}
