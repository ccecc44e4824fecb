// Package cli provides the command-line interface for ls-blackbody.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/litescript/ls-blackbody/internal/catalog"
	"github.com/litescript/ls-blackbody/internal/config"
	"github.com/litescript/ls-blackbody/internal/logging"
	"github.com/litescript/ls-blackbody/internal/report"
	"github.com/litescript/ls-blackbody/internal/state"
	"github.com/litescript/ls-blackbody/internal/theme"
	"github.com/litescript/ls-blackbody/internal/ui"
	"github.com/litescript/ls-blackbody/internal/version"
)

// app carries what every command shares once flags are parsed.
type app struct {
	cfg     *config.Config
	log     *logging.Logger
	logFile *os.File
}

// NewRootCmd builds the command tree. Running the root command starts the TUI.
func NewRootCmd() *cobra.Command {
	a := &app{cfg: config.NewConfig(), log: logging.Discard()}
	a.cfg.LoadFromEnv()

	var tgt target

	rootCmd := &cobra.Command{
		Use:   "ls-blackbody",
		Short: "Explore blackbody radiation in the terminal",
		Long: `ls-blackbody plots Planck's law for a chosen temperature and shows the
Wien peak, the spectral region of the peak and the Stefan–Boltzmann power.

Run without a subcommand for the interactive explorer. The subcommands
print the same results for scripts.

Examples:
  # Start at Sirius A
  ls-blackbody --body "Sirius A"

  # Start at a custom temperature
  ls-blackbody --temp 4200

  # Headless summary
  ls-blackbody info --body Earth --format yaml`,
		Version:      version.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI(cmd, &tgt)
		},
	}

	a.cfg.BindFlags(rootCmd.PersistentFlags())
	tgt.bind(rootCmd)

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(
		a.infoCmd(),
		a.spectrumCmd(),
		wienCmd(),
		stefanCmd(),
		bodiesCmd(),
		a.plotCmd(),
		versionCmd(),
	)

	return rootCmd
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		return 1
	}
	return 0
}

// setup validates the configuration and opens the logger. The TUI owns the
// terminal, so without --log-file it logs nowhere; other commands log to stderr.
func (a *app) setup(cmd *cobra.Command) error {
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	level := logging.ParseLevel(a.cfg.LogLevel)
	var w io.Writer
	switch {
	case a.cfg.LogFile != "":
		f, err := os.OpenFile(a.cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		a.logFile = f
		w = f
	case !cmd.HasParent():
		a.log = logging.Discard()
		return nil
	default:
		w = cmd.ErrOrStderr()
	}

	a.log = logging.New(level, w).Named(cmd.Name())
	a.log.Debug("config: theme=%s prefs=%q", a.cfg.Theme, a.cfg.PrefsPath)
	return nil
}

func (a *app) close() error {
	if a.logFile == nil {
		return nil
	}
	err := a.logFile.Close()
	a.logFile = nil
	return err
}

// resolveTheme picks the theme: an explicit --theme wins, then the saved
// prefs, then terminal detection.
func (a *app) resolveTheme() theme.Theme {
	if strings.EqualFold(a.cfg.Theme, "auto") {
		if t, ok := a.savedTheme(); ok {
			return t
		}
	}

	t, err := theme.Resolve(a.cfg.Theme)
	if err != nil {
		a.log.Warn("theme: %v", err)
		return theme.Detect()
	}
	return t
}

// savedTheme reads the theme from the prefs file, if one was saved.
func (a *app) savedTheme() (theme.Theme, bool) {
	path, err := a.cfg.PrefsFile()
	if err != nil {
		a.log.Warn("prefs: %v", err)
		return theme.Light, false
	}
	prefs, err := config.LoadPrefs(path)
	if err != nil {
		a.log.Warn("load prefs: %v", err)
		return theme.Light, false
	}
	if prefs.Theme == "" {
		return theme.Light, false
	}

	t, err := theme.Parse(prefs.Theme)
	if err != nil {
		a.log.Warn("ignoring saved theme %q", prefs.Theme)
		return theme.Light, false
	}
	return t, true
}

func (a *app) runTUI(cmd *cobra.Command, tgt *target) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("the explorer needs a terminal; try \"ls-blackbody info\" for text output")
	}

	initial, err := tgt.result(cmd)
	if err != nil {
		return err
	}

	stateMgr, err := a.explorerState(initial)
	if err != nil {
		return err
	}

	prefsPath, err := a.cfg.PrefsFile()
	if err != nil {
		a.log.Warn("theme changes will not be saved: %v", err)
		prefsPath = ""
	}

	log := a.log.With("session", stateMgr.Session().ID)
	return ui.Run(stateMgr, ui.Options{
		PrefsPath: prefsPath,
		Logger:    log.Named("ui"),
	})
}

// explorerState builds the TUI state for the initial body. A custom
// temperature is clamped to the slider range.
func (a *app) explorerState(initial report.Result) (*state.Manager, error) {
	stateCfg := state.DefaultConfig()
	stateCfg.MaxEvents = a.cfg.MaxEventHistory
	stateCfg.Theme = a.resolveTheme()
	if initial.Preset {
		stateCfg.InitialBody = initial.Name
	}
	stateMgr := state.NewManager(stateCfg)

	if !initial.Preset {
		if err := stateMgr.SetTemperature(initial.TempK); err != nil {
			return nil, err
		}
	}

	snap := stateMgr.Snapshot()
	a.log.Info("starting explorer at %s (%.0f K), session %s",
		snap.Result.Name, snap.TempK, snap.Session.ID)
	return stateMgr, nil
}

// target is the --body / --temp pair shared by several commands.
type target struct {
	body string
	temp float64
}

func (t *target) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&t.body, "body", catalog.DefaultBody,
		"Preset body ("+strings.Join(catalog.Names(), ", ")+")")
	cmd.Flags().Float64Var(&t.temp, "temp", 0, "Custom temperature in kelvin")
	cmd.MarkFlagsMutuallyExclusive("body", "temp")
}

// result computes the selected body. --temp must be positive; body names
// match case-insensitively.
func (t *target) result(cmd *cobra.Command) (report.Result, error) {
	if cmd.Flags().Changed("temp") {
		if _, err := report.WienFor(t.temp); err != nil {
			return report.Result{}, err
		}
		return report.ForTemperature(t.temp), nil
	}

	for _, name := range catalog.Names() {
		if strings.EqualFold(name, strings.TrimSpace(t.body)) {
			return report.ForBody(name)
		}
	}
	return report.ForBody(t.body)
}
