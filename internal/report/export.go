package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/litescript/ls-blackbody/internal/catalog"
	"github.com/litescript/ls-blackbody/internal/format"
	"github.com/litescript/ls-blackbody/internal/physics"
)

// Export is the serializable form of a Result.
type Export struct {
	Session     string                   `json:"session,omitempty" yaml:"session,omitempty"`
	GeneratedAt time.Time                `json:"generated_at" yaml:"generated_at"`
	Body        string                   `json:"body" yaml:"body"`
	Preset      bool                     `json:"preset" yaml:"preset"`
	Observation string                   `json:"observation" yaml:"observation"`
	TempK       float64                  `json:"temperature_k" yaml:"temperature_k"`
	PeakUm      float64                  `json:"peak_um" yaml:"peak_um"`
	Region      string                   `json:"region" yaml:"region"`
	PowerWm2    float64                  `json:"power_w_m2" yaml:"power_w_m2"`
	PowerText   string                   `json:"power_text" yaml:"power_text"`
	Description string                   `json:"description" yaml:"description"`
	WindowUm    float64                  `json:"window_um" yaml:"window_um"`
	Samples     []physics.SpectralSample `json:"samples,omitempty" yaml:"samples,omitempty"`
}

// NewExport converts a Result to its exportable form.
// Spectrum samples are included only when withSamples is set.
func NewExport(r Result, sessionID string, generatedAt time.Time, withSamples bool) *Export {
	e := &Export{
		Session:     sessionID,
		GeneratedAt: generatedAt,
		Body:        r.Name,
		Preset:      r.Preset,
		Observation: r.Observation,
		TempK:       r.TempK,
		PeakUm:      r.PeakUm,
		Region:      string(r.Region),
		PowerWm2:    r.PowerWm2,
		PowerText:   r.PowerText,
		Description: r.Description,
		WindowUm:    r.Spectrum.WindowUm,
	}
	if withSamples {
		e.Samples = make([]physics.SpectralSample, len(r.Spectrum.Samples))
		copy(e.Samples, r.Spectrum.Samples)
	}
	return e
}

// WriteJSON writes the export as indented JSON.
func (e *Export) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}

// WriteYAML writes the export as YAML.
func (e *Export) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(e); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

// WriteCSV writes spectrum samples as wavelength,radiance rows with a header.
func WriteCSV(w io.Writer, spec physics.Spectrum) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"wavelength_um", "radiance_mw_m2_sr_um"}); err != nil {
		return err
	}
	for _, s := range spec.Samples {
		row := []string{
			strconv.FormatFloat(s.WavelengthUm, 'f', 6, 64),
			strconv.FormatFloat(s.Radiance, 'g', 8, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteSummary writes a text card for one result.
func WriteSummary(w io.Writer, r Result) {
	fmt.Fprintln(w, r.Title())
	fmt.Fprintln(w, strings.Repeat("─", 48))
	fmt.Fprintf(w, "%-14s %s\n", "Temperature", format.Temperature(r.TempK))
	fmt.Fprintf(w, "%-14s %s\n", "Peak λ", format.Wavelength(r.PeakUm))
	fmt.Fprintf(w, "%-14s %s\n", "Peak Region", r.Region)
	fmt.Fprintf(w, "%-14s %s\n", "Total Power", r.PowerText)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s\n", r.Description)
	fmt.Fprintf(w, "“%s”\n", r.Observation)
}

// WriteBodies writes the preset catalog as a table.
func WriteBodies(w io.Writer) {
	fmt.Fprintf(w, "%-12s %10s %10s %-14s %s\n", "Body", "Temp", "Peak", "Region", "Power")
	fmt.Fprintln(w, strings.Repeat("─", 64))

	for _, b := range catalog.Presets() {
		r, err := ForBody(b.Name)
		if err != nil {
			continue
		}
		fmt.Fprintf(w, "%-12s %10s %10s %-14s %s\n",
			b.Name,
			format.Temperature(r.TempK),
			format.Wavelength(r.PeakUm),
			r.Region,
			r.PowerText,
		)
	}
}
