package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-blackbody/internal/slider"
	"github.com/litescript/ls-blackbody/internal/state"
	"github.com/litescript/ls-blackbody/internal/theme"
)

// SparklineWidth is the fixed width of the temperature history sparkline.
const SparklineWidth = 48

// sparklineBlocks are the Unicode block characters for sparkline (0 = lowest, 7 = highest).
var sparklineBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// EventLogModel lists recent interactions and the temperature history.
type EventLogModel struct {
	width    int
	height   int
	snapshot state.Snapshot
}

// NewEventLogModel creates a new event log view.
func NewEventLogModel() EventLogModel {
	return EventLogModel{}
}

// SetSize updates the viewport size.
func (m EventLogModel) SetSize(width, height int) EventLogModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates the model with a new snapshot.
func (m EventLogModel) UpdateData(snapshot state.Snapshot) EventLogModel {
	m.snapshot = snapshot
	return m
}

// View renders the event log, newest first.
func (m EventLogModel) View(st Styles) string {
	var b strings.Builder

	b.WriteString(st.Title.Render("Temperature history"))
	b.WriteString("\n")
	b.WriteString(renderHistorySparkline(m.snapshot.History, st.Theme))
	b.WriteString("\n\n")

	b.WriteString(st.Title.Render("Recent events"))
	b.WriteString("\n")

	events := m.snapshot.Events
	if len(events) == 0 {
		b.WriteString(st.Muted.Render("No interactions yet. Pick a preset or move the slider."))
		return b.String()
	}

	rows := m.height - 6
	if rows < 5 {
		rows = 5
	}
	shown := 0
	for i := len(events) - 1; i >= 0 && shown < rows; i-- {
		e := events[i]
		b.WriteString(st.Muted.Render(e.Timestamp.Format("15:04:05")))
		b.WriteString("  ")
		b.WriteString(st.Label.Render(fmt.Sprintf("%-7s", e.Type)))
		b.WriteString(" ")
		b.WriteString(e.String())
		b.WriteString("\n")
		shown++
	}
	return b.String()
}

// renderHistorySparkline plots temperatures on the slider's log scale, coloured by
// the curve colour of each temperature.
func renderHistorySparkline(history []state.TimeSeries, th theme.Theme) string {
	samples := resampleHistory(history, SparklineWidth)
	if len(samples) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, tempK := range samples {
		t := slider.TempToSlider(slider.Default.ClampTemp(tempK)) / slider.MaxValue
		blockIdx := int(math.Round(t * 7.0))
		if blockIdx > 7 {
			blockIdx = 7
		}
		if blockIdx < 0 {
			blockIdx = 0
		}
		color := theme.ColorForTemperature(tempK, th)
		sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(string(sparklineBlocks[blockIdx])))
	}
	return sb.String()
}

// resampleHistory resamples history to at most width buckets by averaging.
// Short histories are returned as-is.
func resampleHistory(history []state.TimeSeries, width int) []float64 {
	if len(history) == 0 || width <= 0 {
		return nil
	}
	if len(history) <= width {
		out := make([]float64, len(history))
		for i, p := range history {
			out[i] = p.Value
		}
		return out
	}

	result := make([]float64, width)
	perBucket := float64(len(history)) / float64(width)
	for i := 0; i < width; i++ {
		start := int(float64(i) * perBucket)
		end := int(math.Min(float64(len(history)), float64(i+1)*perBucket))
		if start >= end {
			start = end - 1
		}

		sum := 0.0
		for j := start; j < end; j++ {
			sum += history[j].Value
		}
		result[i] = sum / float64(end-start)
	}
	return result
}
