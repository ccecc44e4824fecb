package theme

// Palette is the set of chart and panel colours for one theme.
type Palette struct {
	Background    string
	Surface       string
	Text          string
	TextSecondary string // axis ticks and titles
	Accent        string // stat values
	Grid          string
	Border        string
	Active        string // selected preset
}

var (
	lightPalette = Palette{
		Background:    "#f8f9fa",
		Surface:       "#ffffff",
		Text:          "#212529",
		TextSecondary: "#6c757d",
		Accent:        "#0d6efd",
		Border:        "#dee2e6",
		Active:        "#0b5ed7",
	}

	darkPalette = Palette{
		Background:    "#111827",
		Surface:       "#1f2937",
		Text:          "#f9fafb",
		TextSecondary: "#9ca3af",
		Accent:        "#60a5fa",
		Border:        "#374151",
		Active:        "#3b82f6",
	}
)

func init() {
	// Grid lines are 10% black on light and 10% white on dark.
	lightPalette.Grid = blendHex(lightPalette.Background, "#000000", 0.1)
	darkPalette.Grid = blendHex(darkPalette.Background, "#ffffff", 0.1)
}

// PaletteFor returns the palette for a theme.
func PaletteFor(t Theme) Palette {
	if t == Dark {
		return darkPalette
	}
	return lightPalette
}
