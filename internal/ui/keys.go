package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Preset      key.Binding
	Left        key.Binding
	Right       key.Binding
	CoarseLeft  key.Binding
	CoarseRight key.Binding
	Home        key.Binding
	End         key.Binding
	Theme       key.Binding
	SavePNG     key.Binding
	NextView    key.Binding
	PrevView    key.Binding
	Focus       key.Binding
	Back        key.Binding
	Help        key.Binding
	Quit        key.Binding
	ForceQuit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Preset:      key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "preset")),
		Left:        key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", "temperature")),
		Right:       key.NewBinding(key.WithKeys("right", "l")),
		CoarseLeft:  key.NewBinding(key.WithKeys("shift+left", "H"), key.WithHelp("H/L", "coarse")),
		CoarseRight: key.NewBinding(key.WithKeys("shift+right", "L")),
		Home:        key.NewBinding(key.WithKeys("home"), key.WithHelp("home/end", "min/max")),
		End:         key.NewBinding(key.WithKeys("end")),
		Theme:       key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		SavePNG:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "save png")),
		NextView:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next view")),
		PrevView:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev view")),
		Focus:       key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "switch input")),
		Back:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "explorer")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		ForceQuit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Preset, k.Left, k.Theme, k.NextView, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Preset, k.Left, k.CoarseLeft, k.Home},
		{k.Theme, k.SavePNG},
		{k.NextView, k.PrevView, k.Help, k.Quit},
	}
}

// calcKeyMap is the help shown while a calculator input has focus.
type calcKeyMap struct{ k keyMap }

func (c calcKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{c.k.Focus, c.k.NextView, c.k.Back, c.k.ForceQuit}
}

func (c calcKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{c.ShortHelp()}
}
