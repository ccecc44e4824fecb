package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-blackbody/internal/catalog"
	"github.com/litescript/ls-blackbody/internal/format"
	"github.com/litescript/ls-blackbody/internal/plot"
	"github.com/litescript/ls-blackbody/internal/slider"
	"github.com/litescript/ls-blackbody/internal/state"
	"github.com/litescript/ls-blackbody/internal/theme"
)

// Slider steps in control units (the control spans 0..1000).
const (
	fineStep   = 5
	coarseStep = 50
)

// Chart size bounds in cells.
const (
	minChartWidth  = 30
	minChartHeight = 6
	maxChartHeight = 18
	yAxisWidth     = 9
	infoPanelWidth = 40
)

// ExplorerModel renders presets, the temperature slider, the info panel and the chart.
type ExplorerModel struct {
	width    int
	height   int
	snapshot state.Snapshot
}

// NewExplorerModel creates a new explorer view.
func NewExplorerModel() ExplorerModel {
	return ExplorerModel{}
}

// SetSize updates the viewport size.
func (m ExplorerModel) SetSize(width, height int) ExplorerModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates the model with a new snapshot.
func (m ExplorerModel) UpdateData(snapshot state.Snapshot) ExplorerModel {
	m.snapshot = snapshot
	return m
}

// chartSize returns the chart plot area (excluding the y axis) for the current viewport.
func (m ExplorerModel) chartSize() (int, int) {
	w := m.width - yAxisWidth - 4
	if m.width >= 110 {
		w -= infoPanelWidth + 2
	}
	if w < minChartWidth {
		w = minChartWidth
	}

	h := m.height - 10
	if m.width < 110 {
		h -= 9
	}
	if h < minChartHeight {
		h = minChartHeight
	}
	if h > maxChartHeight {
		h = maxChartHeight
	}
	return w, h
}

// View renders the explorer.
func (m ExplorerModel) View(st Styles) string {
	var b strings.Builder

	b.WriteString(m.renderPresets(st))
	b.WriteString("\n\n")
	b.WriteString(m.renderSlider(st))
	b.WriteString("\n\n")

	info := st.Panel.Width(infoPanelWidth).Render(m.renderInfo(st))
	chart := m.renderChart(st)

	if m.width >= 110 {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, info, "  ", chart))
	} else {
		b.WriteString(info)
		b.WriteString("\n")
		b.WriteString(chart)
	}
	return b.String()
}

func (m ExplorerModel) renderPresets(st Styles) string {
	var parts []string
	for i, body := range catalog.Presets() {
		icon := ""
		if d, ok := theme.Decoration(body.Name); ok {
			icon = d.Icon + " "
		}
		label := fmt.Sprintf("[%d] %s%s", i+1, icon, body.Name)
		active := m.snapshot.Preset == body.Name
		parts = append(parts, st.PresetButton(body.Name, active).Render(label))
	}
	return strings.Join(parts, " ")
}

// sliderTrackWidth is the number of cells in the slider bar.
const sliderTrackWidth = 40

func (m ExplorerModel) renderSlider(st Styles) string {
	return st.Label.Render("Temperature ") +
		st.Muted.Render(format.Temperature(slider.MinTemp)+" ") +
		renderSliderTrack(m.snapshot.SliderValue, sliderTrackWidth, st.Curve(m.snapshot.TempK), st.Muted) +
		st.Muted.Render(" "+format.Temperature(slider.MaxTemp)) +
		"  " + st.Value.Render(format.Temperature(m.snapshot.TempK))
}

// sliderKnob returns the knob cell for a control value on a track of width cells.
func sliderKnob(value float64, width int) int {
	if width < 1 {
		return 0
	}
	t := (value - slider.MinValue) / (slider.MaxValue - slider.MinValue)
	t = math.Min(1, math.Max(0, t))
	return int(math.Round(t * float64(width-1)))
}

func renderSliderTrack(value float64, width int, filled, empty lipgloss.Style) string {
	knob := sliderKnob(value, width)
	return filled.Render(strings.Repeat("━", knob)) +
		filled.Bold(true).Render("●") +
		empty.Render(strings.Repeat("─", width-knob-1))
}

func (m ExplorerModel) renderInfo(st Styles) string {
	r := m.snapshot.Result

	row := func(label, value string) string {
		return st.Label.Render(fmt.Sprintf("%-13s", label)) + st.Value.Render(value)
	}

	lines := []string{
		st.Title.Render(r.Title()),
		"",
		row("Temperature", format.Temperature(r.TempK)),
		row("Peak λ", format.Wavelength(r.PeakUm)),
		row("Peak Region", string(r.Region)),
		row("Total Power", r.PowerText),
		"",
		st.Muted.Render(r.Description),
		"",
		st.Quote.Render("“" + r.Observation + "”"),
	}
	return strings.Join(lines, "\n")
}

func (m ExplorerModel) renderChart(st Styles) string {
	w, h := m.chartSize()
	return renderAreaChart(plot.NewAreaChart(m.snapshot.Result.Spectrum, w, h), m.snapshot.TempK, st)
}

// renderAreaChart draws the chart with a y axis, peak marker, visible band and x axis.
func renderAreaChart(c plot.AreaChart, tempK float64, st Styles) string {
	curve := st.Curve(tempK)
	var b strings.Builder

	// Peak label above the chart, aligned to the marker when it fits.
	b.WriteString(strings.Repeat(" ", yAxisWidth+1))
	if c.PeakCol >= 0 {
		label := "λmax " + format.Wavelength(c.PeakUm)
		pad := c.PeakCol - len([]rune(label))/2
		if pad+len([]rune(label)) > c.Width {
			pad = c.Width - len([]rune(label))
		}
		if pad < 0 {
			pad = 0
		}
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString(st.Marker.Render(label))
	}
	b.WriteString("\n")

	for row := 0; row < c.Height; row++ {
		b.WriteString(st.Muted.Render(yAxisLabel(c, row)))
		b.WriteString(st.Muted.Render("┤"))

		var run strings.Builder
		runStyle := -1
		flush := func() {
			if run.Len() == 0 {
				return
			}
			switch runStyle {
			case 1:
				b.WriteString(curve.Render(run.String()))
			case 2:
				b.WriteString(st.Marker.Render(run.String()))
			default:
				b.WriteString(run.String())
			}
			run.Reset()
		}

		for col := 0; col < c.Width; col++ {
			r := c.Cell(row, col)
			style := 0
			switch {
			case r != ' ':
				style = 1
			case col == c.PeakCol:
				r = '┊'
				style = 2
			}
			if style != runStyle {
				flush()
				runStyle = style
			}
			run.WriteRune(r)
		}
		flush()
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat(" ", yAxisWidth))
	b.WriteString(st.Muted.Render("└"))
	b.WriteString(renderVisibleStrip(c, st))
	b.WriteString("\n")
	b.WriteString(renderXAxis(c, st))
	return b.String()
}

// yAxisLabel labels the top, middle and bottom rows in MW/m²/sr/μm.
func yAxisLabel(c plot.AreaChart, row int) string {
	var v float64
	switch row {
	case 0:
		v = c.AxisMax
	case c.Height / 2:
		v = c.AxisMax * float64(c.Height-row) / float64(c.Height)
	case c.Height - 1:
		v = 0
	default:
		return strings.Repeat(" ", yAxisWidth)
	}
	return fmt.Sprintf("%*s", yAxisWidth, formatAxisValue(v))
}

func formatAxisValue(v float64) string {
	switch {
	case v == 0:
		return "0"
	case v >= 1000 || v < 0.01:
		return fmt.Sprintf("%.1e", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}

// renderVisibleStrip colours the visible-band columns with their hue.
func renderVisibleStrip(c plot.AreaChart, st Styles) string {
	var b strings.Builder
	for col := 0; col < c.Width; col++ {
		if !c.InVisibleBand(col) {
			b.WriteString(st.Muted.Render("─"))
			continue
		}
		wav := (float64(col) + 0.5) / float64(c.Width) * c.WindowUm
		hue := plot.SpectrumColor(wav).Hex()
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(hue)).Render("▀"))
	}
	return b.String()
}

// renderXAxis writes wavelength tick labels under the chart.
func renderXAxis(c plot.AreaChart, st Styles) string {
	line := []rune(strings.Repeat(" ", c.Width+1))
	if c.WindowUm > 0 {
		step := plot.TickStep(c.WindowUm)
		for wav := 0.0; wav < c.WindowUm+1e-9; wav += step {
			label := []rune(plot.TickLabel(wav))
			pos := 1 + int(math.Round(wav/c.WindowUm*float64(c.Width))) - len(label)/2
			if pos < 0 {
				pos = 0
			}
			if pos+len(label) > len(line) {
				continue
			}
			// Keep a gap so neighbouring labels never touch.
			free := pos == 0 || line[pos-1] == ' '
			for i := range label {
				if line[pos+i] != ' ' {
					free = false
				}
			}
			if free {
				copy(line[pos:], label)
			}
		}
	}
	return strings.Repeat(" ", yAxisWidth) + st.Muted.Render(string(line)) + "\n" +
		strings.Repeat(" ", yAxisWidth) + st.Muted.Render("Wavelength (μm)")
}
