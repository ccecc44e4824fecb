// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-blackbody/internal/catalog"
	"github.com/litescript/ls-blackbody/internal/config"
	"github.com/litescript/ls-blackbody/internal/logging"
	"github.com/litescript/ls-blackbody/internal/plot"
	"github.com/litescript/ls-blackbody/internal/state"
	"github.com/litescript/ls-blackbody/internal/theme"
	"github.com/litescript/ls-blackbody/internal/version"
)

// ViewMode represents the current UI view.
type ViewMode int

const (
	ViewExplorer ViewMode = iota
	ViewCalculators
	ViewEventLog
	viewCount
)

// Msg types for Bubble Tea
type (
	// prefsSavedMsg reports the result of persisting the theme.
	prefsSavedMsg struct {
		theme theme.Theme
		err   error
	}

	// pngSavedMsg reports the result of a chart export.
	pngSavedMsg struct {
		path string
		err  error
	}
)

// Options configures the root model.
type Options struct {
	// PrefsPath is where the theme is saved on toggle. Empty disables saving.
	PrefsPath string

	// OutputDir receives PNG exports. Empty means the working directory.
	OutputDir string

	Logger *logging.Logger
}

// Model is the root Bubble Tea model.
type Model struct {
	// Dependencies
	state *state.Manager
	opts  Options
	log   *logging.Logger

	// UI state
	viewMode  ViewMode
	width     int
	height    int
	ready     bool
	statusMsg string
	keys      keyMap
	help      help.Model
	styles    Styles
	styled    bool

	// Sub-models
	explorer    ExplorerModel
	calculators CalculatorsModel
	eventLog    EventLogModel

	snapshot state.Snapshot
}

// New creates a new root UI model.
func New(stateMgr *state.Manager, opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}

	m := Model{
		state:       stateMgr,
		opts:        opts,
		log:         log,
		viewMode:    ViewExplorer,
		keys:        defaultKeyMap(),
		help:        help.New(),
		explorer:    NewExplorerModel(),
		calculators: NewCalculatorsModel(),
		eventLog:    NewEventLogModel(),
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.calculators.Init()
}

// refresh pulls a fresh snapshot and pushes it to every view.
func (m *Model) refresh() {
	m.snapshot = m.state.Snapshot()
	if !m.styled || m.styles.Theme != m.snapshot.Theme {
		m.styles = NewStyles(m.snapshot.Theme)
		m.styled = true
		m.help.Styles.ShortKey = m.styles.Label.Bold(true)
		m.help.Styles.ShortDesc = m.styles.Muted
		m.help.Styles.FullKey = m.styles.Label.Bold(true)
		m.help.Styles.FullDesc = m.styles.Muted
	}
	m.explorer = m.explorer.UpdateData(m.snapshot)
	m.eventLog = m.eventLog.UpdateData(m.snapshot)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.viewMode == ViewCalculators {
			return m.updateCalculators(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextView):
			m.viewMode = (m.viewMode + 1) % viewCount
		case key.Matches(msg, m.keys.PrevView):
			m.viewMode = (m.viewMode + viewCount - 1) % viewCount
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Theme):
			cmds = append(cmds, m.toggleTheme())
		case key.Matches(msg, m.keys.SavePNG):
			cmds = append(cmds, m.savePNG())
		default:
			m.handleExplorerKey(msg)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.help.Width = msg.Width

		// Header ~3 lines, footer ~3 lines
		contentHeight := msg.Height - 6
		m.explorer = m.explorer.SetSize(msg.Width, contentHeight)
		m.calculators = m.calculators.SetSize(msg.Width, contentHeight)
		m.eventLog = m.eventLog.SetSize(msg.Width, contentHeight)

	case prefsSavedMsg:
		if msg.err != nil {
			m.log.Warn("save prefs: %v", msg.err)
			m.statusMsg = "Could not save theme: " + msg.err.Error()
		} else {
			m.statusMsg = fmt.Sprintf("Theme set to %s", msg.theme)
		}

	case pngSavedMsg:
		if msg.err != nil {
			m.log.Error("write png: %v", msg.err)
			m.statusMsg = "PNG export failed: " + msg.err.Error()
		} else {
			m.log.Info("chart written to %s", msg.path)
			m.statusMsg = "Chart saved to " + msg.path
		}

	default:
		if m.viewMode == ViewCalculators {
			var cmd tea.Cmd
			m.calculators, cmd = m.calculators.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

// updateCalculators routes keys while a text input has focus. Only view
// switching and ctrl+c stay global so digits and letters reach the inputs.
func (m Model) updateCalculators(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextView):
		m.viewMode = (m.viewMode + 1) % viewCount
		return m, nil
	case key.Matches(msg, m.keys.PrevView):
		m.viewMode = (m.viewMode + viewCount - 1) % viewCount
		return m, nil
	case key.Matches(msg, m.keys.Back):
		m.viewMode = ViewExplorer
		return m, nil
	}

	var cmd tea.Cmd
	m.calculators, cmd = m.calculators.Update(msg)
	return m, cmd
}

// handleExplorerKey applies preset and slider keys. They work from any view
// except the calculators so the event log updates live.
func (m *Model) handleExplorerKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Preset):
		idx := int(msg.String()[0] - '1')
		presets := catalog.Presets()
		if idx < 0 || idx >= len(presets) {
			return
		}
		if err := m.state.SelectPreset(presets[idx].Name); err != nil {
			m.log.Error("select preset: %v", err)
			return
		}
		m.log.Debug("preset %s selected", presets[idx].Name)
	case key.Matches(msg, m.keys.Left):
		m.state.NudgeSlider(-fineStep)
	case key.Matches(msg, m.keys.Right):
		m.state.NudgeSlider(fineStep)
	case key.Matches(msg, m.keys.CoarseLeft):
		m.state.NudgeSlider(-coarseStep)
	case key.Matches(msg, m.keys.CoarseRight):
		m.state.NudgeSlider(coarseStep)
	case key.Matches(msg, m.keys.Home):
		m.state.SetSlider(0)
	case key.Matches(msg, m.keys.End):
		m.state.SetSlider(1000)
	default:
		return
	}
	m.statusMsg = ""
	m.refresh()
}

// toggleTheme flips the theme now and persists it in the background.
func (m *Model) toggleTheme() tea.Cmd {
	t := m.state.ToggleTheme()
	m.refresh()
	m.log.Info("theme toggled to %s", t)

	path := m.opts.PrefsPath
	if path == "" {
		return nil
	}
	return func() tea.Msg {
		err := config.SavePrefs(path, config.Prefs{Theme: t.String()})
		return prefsSavedMsg{theme: t, err: err}
	}
}

// savePNG writes the current chart to OutputDir in the background.
func (m *Model) savePNG() tea.Cmd {
	snap := m.snapshot
	path := filepath.Join(m.opts.OutputDir, PNGFileName(snap.Result.Name, snap.TempK))

	return func() tea.Msg {
		opts := plot.DefaultPNGOptions()
		opts.Theme = snap.Theme
		opts.Title = fmt.Sprintf("%s  %.0f K", snap.Result.Name, snap.TempK)

		f, err := os.Create(path)
		if err != nil {
			return pngSavedMsg{path: path, err: err}
		}
		err = plot.WritePNG(f, snap.Result.Spectrum, opts)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		return pngSavedMsg{path: path, err: err}
	}
}

// PNGFileName builds an export file name such as "blackbody-sirius-a-9850K.png".
func PNGFileName(name string, tempK float64) string {
	slug := strings.ToLower(strings.Join(strings.Fields(name), "-"))
	return fmt.Sprintf("blackbody-%s-%.0fK.png", slug, tempK)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var content string
	switch m.viewMode {
	case ViewExplorer:
		content = m.explorer.View(m.styles)
	case ViewCalculators:
		content = m.calculators.View(m.styles)
	case ViewEventLog:
		content = m.eventLog.View(m.styles)
	}

	return m.renderFrame(content)
}

func (m Model) renderFrame(content string) string {
	return m.renderHeader() + "\n" + content + "\n" + m.renderFooter()
}

func (m Model) renderHeader() string {
	title := m.styles.Title.Render("  Blackbody Radiation Explorer")
	ver := m.styles.Muted.Render(fmt.Sprintf("  v%s · %s theme", version.Version, m.snapshot.Theme))
	return "\n" + title + ver + "\n" + m.renderTabs() + "\n"
}

func (m Model) renderTabs() string {
	tabs := []string{"Explorer", "Calculators", "Event log"}

	var parts []string
	for i, tab := range tabs {
		if ViewMode(i) == m.viewMode {
			parts = append(parts, m.styles.ActiveTab.Render("▶ "+tab))
		} else {
			parts = append(parts, m.styles.Tab.Render("  "+tab))
		}
	}
	return "  " + strings.Join(parts, "  ")
}

func (m Model) renderFooter() string {
	session := m.snapshot.Session
	id := session.ID
	if len(id) > 8 {
		id = id[:8]
	}
	info := m.styles.Muted.Render(fmt.Sprintf("session %s · started %s", id, session.Started.Format("15:04:05")))

	var hints string
	if m.viewMode == ViewCalculators {
		hints = m.help.View(calcKeyMap{m.keys})
	} else {
		hints = m.help.View(m.keys)
	}

	footer := "  " + info + "  " + m.styles.Muted.Render("|") + "  " + hints
	if m.statusMsg != "" {
		footer += "\n  " + lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.Palette.Accent)).Render(m.statusMsg)
	}
	return footer
}

// ViewMode returns the active view.
func (m Model) ViewMode() ViewMode {
	return m.viewMode
}

// Snapshot returns the state last rendered.
func (m Model) Snapshot() state.Snapshot {
	return m.snapshot
}

// Run starts the Bubble Tea program on the alternate screen.
func Run(stateMgr *state.Manager, opts Options) error {
	p := tea.NewProgram(New(stateMgr, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
