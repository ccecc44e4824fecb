// Package plot renders spectra as terminal area charts and PNG images.
package plot

import (
	"math"
	"strings"

	"github.com/litescript/ls-blackbody/internal/format"
	"github.com/litescript/ls-blackbody/internal/physics"
)

// fillBlocks are the eighth-height block characters (0 = empty, 8 = full).
var fillBlocks = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// AreaChart is a spectrum resampled onto a character grid.
type AreaChart struct {
	Width    int
	Height   int
	WindowUm float64
	AxisMax  float64
	PeakUm   float64

	// Columns holds the filled height of each column in cells, in [0, Height].
	Columns []float64

	// PeakCol is the column under the peak wavelength, or -1 when off-chart.
	PeakCol int

	// VisibleFrom/VisibleTo is the half-open column span of the visible band.
	VisibleFrom int
	VisibleTo   int
}

// NewAreaChart resamples spec to width columns and height rows.
func NewAreaChart(spec physics.Spectrum, width, height int) AreaChart {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	c := AreaChart{
		Width:    width,
		Height:   height,
		WindowUm: spec.WindowUm,
		AxisMax:  spec.AxisMax(),
		PeakUm:   spec.PeakUm,
		Columns:  make([]float64, width),
		PeakCol:  -1,
	}
	if spec.WindowUm <= 0 {
		return c
	}

	for i := range c.Columns {
		center := (float64(i) + 0.5) / float64(width) * spec.WindowUm
		h := spec.RadianceAt(center) / c.AxisMax * float64(height)
		c.Columns[i] = math.Min(float64(height), math.Max(0, h))
	}

	if spec.PeakUm > 0 && spec.PeakUm <= spec.WindowUm {
		c.PeakCol = c.ColumnFor(spec.PeakUm)
	}

	c.VisibleFrom, c.VisibleTo = c.span(format.VisibleMinUm, format.VisibleMaxUm)
	return c
}

// ColumnFor maps a wavelength to its column, clamped to the chart.
func (c AreaChart) ColumnFor(wavelengthUm float64) int {
	if c.WindowUm <= 0 {
		return 0
	}
	col := int(wavelengthUm/c.WindowUm*float64(c.Width) + 1e-9)
	if col < 0 {
		return 0
	}
	if col >= c.Width {
		return c.Width - 1
	}
	return col
}

// span returns the half-open column range covering [lo, hi] μm.
func (c AreaChart) span(lo, hi float64) (int, int) {
	if c.WindowUm <= 0 || lo >= c.WindowUm {
		return 0, 0
	}
	from := int(math.Floor(lo / c.WindowUm * float64(c.Width)))
	to := int(math.Ceil(hi / c.WindowUm * float64(c.Width)))
	if to > c.Width {
		to = c.Width
	}
	if from < 0 {
		from = 0
	}
	return from, to
}

// Cell returns the block character at row (0 = top) and column.
func (c AreaChart) Cell(row, col int) rune {
	if row < 0 || row >= c.Height || col < 0 || col >= c.Width {
		return ' '
	}
	level := float64(c.Height - 1 - row)
	fill := c.Columns[col] - level
	switch {
	case fill >= 1:
		return fillBlocks[8]
	case fill <= 0:
		return fillBlocks[0]
	default:
		return fillBlocks[int(fill*8)]
	}
}

// Rows returns the chart as plain text rows, top to bottom.
func (c AreaChart) Rows() []string {
	rows := make([]string, c.Height)
	var b strings.Builder
	for r := 0; r < c.Height; r++ {
		b.Reset()
		for col := 0; col < c.Width; col++ {
			b.WriteRune(c.Cell(r, col))
		}
		rows[r] = b.String()
	}
	return rows
}

// InVisibleBand reports whether a column lies inside the visible band.
func (c AreaChart) InVisibleBand(col int) bool {
	return col >= c.VisibleFrom && col < c.VisibleTo
}

// TallestColumn returns the index of the highest column.
func (c AreaChart) TallestColumn() int {
	best := 0
	for i, h := range c.Columns {
		if h > c.Columns[best] {
			best = i
		}
	}
	return best
}
