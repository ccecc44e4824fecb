package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-blackbody/internal/report"
)

// defaultCalcInput seeds both calculators.
const defaultCalcInput = "5800"

// calcOutput is the text shown under one calculator.
type calcOutput struct {
	text        string
	description string
	invalid     bool
}

// CalculatorsModel holds the Wien and Stefan–Boltzmann calculators.
// Both recompute on every keystroke.
type CalculatorsModel struct {
	width  int
	inputs [2]textinput.Model
	focus  int

	wien   calcOutput
	stefan calcOutput
}

// Calculator input indexes.
const (
	calcWien = iota
	calcStefan
)

// NewCalculatorsModel creates the calculators view with the Wien input focused.
func NewCalculatorsModel() CalculatorsModel {
	var m CalculatorsModel
	for i := range m.inputs {
		in := textinput.New()
		in.Placeholder = "temperature in K"
		in.CharLimit = 24
		in.Width = 24
		in.Prompt = "T = "
		in.SetValue(defaultCalcInput)
		m.inputs[i] = in
	}
	m.inputs[calcWien].Focus()
	m.recompute()
	return m
}

// Init implements the Bubble Tea model interface.
func (m CalculatorsModel) Init() tea.Cmd {
	return textinput.Blink
}

// SetSize updates the viewport size.
func (m CalculatorsModel) SetSize(width, height int) CalculatorsModel {
	m.width = width
	return m
}

// SetInput replaces one calculator's text and recomputes.
func (m CalculatorsModel) SetInput(idx int, value string) CalculatorsModel {
	if idx < 0 || idx >= len(m.inputs) {
		return m
	}
	m.inputs[idx].SetValue(value)
	m.recompute()
	return m
}

// Focused returns the index of the focused input.
func (m CalculatorsModel) Focused() int {
	return m.focus
}

// Update handles messages.
func (m CalculatorsModel) Update(msg tea.Msg) (CalculatorsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "down":
			m.inputs[m.focus].Blur()
			m.focus = (m.focus + 1) % len(m.inputs)
			return m, m.inputs[m.focus].Focus()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.recompute()
	return m, cmd
}

func (m *CalculatorsModel) recompute() {
	if r, err := report.Wien(m.inputs[calcWien].Value()); err != nil {
		m.wien = calcOutput{text: report.InvalidText, invalid: true}
	} else {
		m.wien = calcOutput{text: r.Text, description: r.Description}
	}

	if r, err := report.Stefan(m.inputs[calcStefan].Value()); err != nil {
		m.stefan = calcOutput{text: report.InvalidText, invalid: true}
	} else {
		m.stefan = calcOutput{text: r.Text, description: r.Description}
	}
}

// View renders both calculators side by side, or stacked on narrow terminals.
func (m CalculatorsModel) View(st Styles) string {
	wien := m.renderCalc(st, "Wien's Displacement Law", "λ_max = b / T", calcWien, m.wien)
	stefan := m.renderCalc(st, "Stefan–Boltzmann Law", "P/A = σT⁴", calcStefan, m.stefan)

	if m.width >= 90 {
		return lipgloss.JoinHorizontal(lipgloss.Top, wien, "  ", stefan)
	}
	return wien + "\n" + stefan
}

func (m CalculatorsModel) renderCalc(st Styles, title, formula string, idx int, out calcOutput) string {
	panel := st.Panel.Width(42)
	if idx == m.focus {
		panel = panel.BorderForeground(lipgloss.Color(st.Palette.Active))
	}

	result := st.Value.Render(out.text)
	if out.invalid {
		result = st.Error.Render(out.text)
	}

	lines := []string{
		st.Title.Render(title),
		st.Muted.Render(formula),
		"",
		m.inputs[idx].View(),
		"",
		result,
		st.Muted.Render(out.description),
	}
	return panel.Render(strings.Join(lines, "\n"))
}
