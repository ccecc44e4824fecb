package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-blackbody/internal/theme"
)

// Styles holds every lipgloss style for one theme.
type Styles struct {
	Theme   theme.Theme
	Palette theme.Palette

	Title     lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	Muted     lipgloss.Style
	Error     lipgloss.Style
	Panel     lipgloss.Style
	Quote     lipgloss.Style
	Button    lipgloss.Style
	ActiveTab lipgloss.Style
	Tab       lipgloss.Style
	Marker    lipgloss.Style
}

// NewStyles builds the style set for a theme.
func NewStyles(t theme.Theme) Styles {
	p := theme.PaletteFor(t)
	fg := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}

	return Styles{
		Theme:   t,
		Palette: p,

		Title: fg(p.Text).Bold(true),
		Label: fg(p.TextSecondary),
		Value: fg(p.Accent).Bold(true),
		Muted: fg(p.TextSecondary),
		Error: fg("#E84A27").Bold(true),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.Border)).
			Padding(0, 1),
		Quote: fg(p.TextSecondary).Italic(true),
		Button: fg(p.Text).
			Padding(0, 1),
		ActiveTab: fg(p.Active).Bold(true),
		Tab:       fg(p.TextSecondary),
		Marker:    fg(p.TextSecondary),
	}
}

// Curve returns the style for the spectrum curve at a temperature.
func (s Styles) Curve(tempK float64) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorForTemperature(tempK, s.Theme)))
}

// PresetButton styles a preset button, tinted with the body's backdrop when active.
func (s Styles) PresetButton(name string, active bool) lipgloss.Style {
	if !active {
		return s.Button
	}
	bg := s.Palette.Active
	if d, ok := theme.Decoration(name); ok && d.Backdrop != "" {
		bg = d.Backdrop
	}
	return s.Button.
		Foreground(lipgloss.Color("#ffffff")).
		Background(lipgloss.Color(bg)).
		Bold(true)
}
