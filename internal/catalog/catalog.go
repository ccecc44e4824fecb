// Package catalog holds the preset reference bodies and the custom-body classifier.
package catalog

// Body is a named reference body with a literal surface temperature.
type Body struct {
	Name        string  // e.g. "Sun"
	TempK       float64 // surface temperature in kelvin
	Observation string  // one-sentence note on how the body radiates
}

// CustomObservation is shown for any temperature not picked from the presets.
const CustomObservation = "A custom body at this temperature."

// DefaultBody is the preset shown on start.
const DefaultBody = "Sun"

// presets is ordered for display; lookups are exact-match on Name.
var presets = []Body{
	{"Earth", 250, "Emits in the infrared range, radiating heat but producing no visible light."},
	{"Light Bulb", 3000, "Most radiation is infrared (heat), making incandescent bulbs inefficient."},
	{"Sun", 5800, "Emission peaks in the visible spectrum, appearing white to our eyes."},
	{"Sirius A", 9850, "A hot, massive star that emits strongly in the UV and blue part of the spectrum."},
}

// Presets returns a copy of the preset table in display order.
func Presets() []Body {
	out := make([]Body, len(presets))
	copy(out, presets)
	return out
}

// Names returns preset names in display order.
func Names() []string {
	names := make([]string, len(presets))
	for i, b := range presets {
		names[i] = b.Name
	}
	return names
}

// Lookup finds a preset by exact name.
func Lookup(name string) (Body, bool) {
	for _, b := range presets {
		if b.Name == name {
			return b, true
		}
	}
	return Body{}, false
}

// Profile is the display identity synthesized for a custom temperature.
type Profile struct {
	Name string
	Icon string
}

// ProfileForTemperature classifies an arbitrary temperature into a body type.
func ProfileForTemperature(tempK float64) Profile {
	switch {
	case tempK < 400:
		return Profile{Name: "Cold Object", Icon: "🪐"}
	case tempK < 2500:
		return Profile{Name: "Red Dwarf Star", Icon: "🔴"}
	case tempK < 5000:
		return Profile{Name: "Orange Giant", Icon: "🟠"}
	case tempK < 8000:
		return Profile{Name: "Sun-like Star", Icon: "☀️"}
	default:
		return Profile{Name: "Blue Giant Star", Icon: "🔵"}
	}
}

// Custom builds a Body for a temperature that did not come from the presets.
func Custom(tempK float64) Body {
	return Body{
		Name:        ProfileForTemperature(tempK).Name,
		TempK:       tempK,
		Observation: CustomObservation,
	}
}
