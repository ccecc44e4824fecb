package theme

// Decor is the presentation-only decoration for a preset body.
type Decor struct {
	Icon     string
	Backdrop string // tint behind the preset button
}

var decorations = map[string]Decor{
	"Earth":      {Icon: "🌍", Backdrop: "#1e3a5f"},
	"Light Bulb": {Icon: "💡", Backdrop: "#5c4a1e"},
	"Sun":        {Icon: "☀️", Backdrop: "#7a4a00"},
	"Sirius A":   {Icon: "⭐", Backdrop: "#1b2a5c"},
}

// Decoration returns the icon and backdrop for a preset name.
func Decoration(name string) (Decor, bool) {
	d, ok := decorations[name]
	return d, ok
}
