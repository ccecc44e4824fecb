package plot

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/litescript/ls-blackbody/internal/physics"
)

func TestNewAreaChart_Sun(t *testing.T) {
	spec := physics.BuildSpectrum(5800)
	c := NewAreaChart(spec, 100, 10)

	if len(c.Columns) != 100 {
		t.Fatalf("len(Columns) = %d, want 100", len(c.Columns))
	}
	if c.PeakCol < 19 || c.PeakCol > 20 {
		t.Errorf("PeakCol = %d, want 19 or 20", c.PeakCol)
	}
	if c.VisibleFrom != 16 || c.VisibleTo != 31 {
		t.Errorf("visible span = [%d, %d), want [16, 31)", c.VisibleFrom, c.VisibleTo)
	}

	tallest := c.TallestColumn()
	if d := tallest - c.PeakCol; d < -1 || d > 1 {
		t.Errorf("TallestColumn() = %d, not next to PeakCol %d", tallest, c.PeakCol)
	}
	for i, h := range c.Columns {
		if h < 0 || h > 10 {
			t.Errorf("Columns[%d] = %v, out of [0, 10]", i, h)
		}
	}
}

func TestNewAreaChart_EarthNarrowVisibleBand(t *testing.T) {
	spec := physics.BuildSpectrum(250)
	c := NewAreaChart(spec, 60, 8)

	if c.WindowUm != physics.MaxWindow {
		t.Fatalf("WindowUm = %v, want %v", c.WindowUm, physics.MaxWindow)
	}
	if c.VisibleTo-c.VisibleFrom > 2 {
		t.Errorf("visible span too wide for a 30 μm window: [%d, %d)", c.VisibleFrom, c.VisibleTo)
	}
	if c.PeakCol < 0 {
		t.Error("peak should be on the chart")
	}
}

func TestNewAreaChart_ClampsSize(t *testing.T) {
	c := NewAreaChart(physics.BuildSpectrum(3000), 0, -5)
	if c.Width != 1 || c.Height != 1 {
		t.Errorf("size = %dx%d, want 1x1", c.Width, c.Height)
	}
}

func TestNewAreaChart_EmptySpectrum(t *testing.T) {
	c := NewAreaChart(physics.Spectrum{}, 20, 4)
	if c.PeakCol != -1 {
		t.Errorf("PeakCol = %d, want -1", c.PeakCol)
	}
	for _, row := range c.Rows() {
		if strings.TrimSpace(row) != "" {
			t.Errorf("empty spectrum should render blank rows, got %q", row)
		}
	}
}

func TestAreaChart_ColumnFor(t *testing.T) {
	c := AreaChart{Width: 10, WindowUm: 2}

	tests := []struct {
		wav  float64
		want int
	}{
		{0, 0},
		{0.2, 1},
		{1.0, 5},
		{1.99, 9},
		{2.0, 9},
		{5.0, 9},
		{-1, 0},
	}
	for _, tt := range tests {
		if got := c.ColumnFor(tt.wav); got != tt.want {
			t.Errorf("ColumnFor(%v) = %d, want %d", tt.wav, got, tt.want)
		}
	}
}

func TestAreaChart_Cell(t *testing.T) {
	c := AreaChart{Width: 3, Height: 2, Columns: []float64{0, 1.5, 2}}

	tests := []struct {
		row, col int
		want     rune
	}{
		{1, 0, ' '},
		{1, 1, '█'},
		{0, 1, '▄'},
		{0, 2, '█'},
		{5, 0, ' '},
		{0, -1, ' '},
	}
	for _, tt := range tests {
		if got := c.Cell(tt.row, tt.col); got != tt.want {
			t.Errorf("Cell(%d, %d) = %q, want %q", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestAreaChart_Rows(t *testing.T) {
	c := NewAreaChart(physics.BuildSpectrum(5800), 40, 6)
	rows := c.Rows()

	if len(rows) != 6 {
		t.Fatalf("len(Rows()) = %d, want 6", len(rows))
	}
	for i, r := range rows {
		if n := utf8.RuneCountInString(r); n != 40 {
			t.Errorf("row %d has %d cells, want 40", i, n)
		}
	}
	if !strings.ContainsRune(rows[len(rows)-1], '█') {
		t.Error("bottom row should contain full blocks")
	}
}

func TestAreaChart_InVisibleBand(t *testing.T) {
	c := AreaChart{VisibleFrom: 3, VisibleTo: 6}
	for col, want := range map[int]bool{2: false, 3: true, 5: true, 6: false} {
		if got := c.InVisibleBand(col); got != want {
			t.Errorf("InVisibleBand(%d) = %v, want %v", col, got, want)
		}
	}
}
