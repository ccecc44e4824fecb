// Package theme owns presentation-only colour choices: the light/dark flag,
// temperature colours, chart palettes, and preset decorations.
package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme is the light/dark presentation flag.
type Theme int

const (
	Light Theme = iota
	Dark
)

func (t Theme) String() string {
	if t == Dark {
		return "dark"
	}
	return "light"
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Parse reads "light" or "dark" (case-insensitive).
func Parse(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return Light, nil
	case "dark":
		return Dark, nil
	default:
		return Light, fmt.Errorf("unknown theme %q (want light or dark)", s)
	}
}

// Detect picks a theme from the terminal background colour.
func Detect() Theme {
	if lipgloss.HasDarkBackground() {
		return Dark
	}
	return Light
}

// Resolve maps a configured theme ("auto", "light", "dark") to a Theme.
// "auto" and the empty string fall back to Detect.
func Resolve(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return Detect(), nil
	default:
		return Parse(s)
	}
}

// tempColor holds the light/dark pair for one temperature bucket.
type tempColor struct {
	light string
	dark  string
}

var (
	colorRed    = tempColor{light: "#d32f2f", dark: "#ff8a80"}
	colorOrange = tempColor{light: "#f57c00", dark: "#ffb74d"}
	colorWhite  = tempColor{light: "#424242", dark: "#f5f5f5"}
	colorBlue   = tempColor{light: "#1976d2", dark: "#82b1ff"}
)

// ColorForTemperature returns the curve colour (hex) for a temperature.
func ColorForTemperature(tempK float64, t Theme) string {
	var c tempColor
	switch {
	case tempK < 2500:
		c = colorRed
	case tempK < 5000:
		c = colorOrange
	case tempK < 8000:
		c = colorWhite
	default:
		c = colorBlue
	}
	if t == Dark {
		return c.dark
	}
	return c.light
}

// fillAlpha is the area-fill opacity under the curve (0x1A of 0xFF).
const fillAlpha = 0x1A / 255.0

// FillColor returns the curve colour at fill opacity, flattened onto the theme background.
func FillColor(tempK float64, t Theme) string {
	return blendHex(PaletteFor(t).Background, ColorForTemperature(tempK, t), fillAlpha)
}

// blendHex mixes b into a by frac in RGB space. Unparseable input returns a unchanged.
func blendHex(a, b string, frac float64) string {
	ca, err := colorful.Hex(a)
	if err != nil {
		return a
	}
	cb, err := colorful.Hex(b)
	if err != nil {
		return a
	}
	return ca.BlendRgb(cb, frac).Clamped().Hex()
}
