package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/litescript/ls-blackbody/internal/plot"
	"github.com/litescript/ls-blackbody/internal/report"
	"github.com/litescript/ls-blackbody/internal/ui"
	"github.com/litescript/ls-blackbody/internal/version"
)

// Output formats accepted by --format.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
	formatCSV  = "csv"
)

func (a *app) infoCmd() *cobra.Command {
	var (
		tgt         target
		outFormat   string
		withSamples bool
	)

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print the results for one body",
		Long: `Print temperature, peak wavelength, peak region and total power for a
preset body or a custom temperature.

Examples:
  ls-blackbody info --body "Light Bulb"
  ls-blackbody info --temp 4200 --format json
  ls-blackbody info --body Sun --format yaml --samples`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := tgt.result(cmd)
			if err != nil {
				return err
			}
			a.log.Debug("info for %s at %.0f K", r.Name, r.TempK)

			out := cmd.OutOrStdout()
			switch strings.ToLower(outFormat) {
			case formatText:
				if isTerminal(out) {
					swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(r.Color(a.resolveTheme())))
					fmt.Fprintln(out, swatch.Render(strings.Repeat("█", 48)))
				}
				report.WriteSummary(out, r)
				return nil
			case formatJSON:
				return newExport(r, withSamples).WriteJSON(out)
			case formatYAML:
				return newExport(r, withSamples).WriteYAML(out)
			default:
				return fmt.Errorf("unknown format %q (want text, json or yaml)", outFormat)
			}
		},
	}

	tgt.bind(cmd)
	cmd.Flags().StringVarP(&outFormat, "format", "f", formatText, "Output format (text, json, yaml)")
	cmd.Flags().BoolVar(&withSamples, "samples", false, "Include spectrum samples in json/yaml output")
	return cmd
}

func (a *app) spectrumCmd() *cobra.Command {
	var (
		tgt       target
		outFormat string
	)

	cmd := &cobra.Command{
		Use:   "spectrum",
		Short: "Print the sampled Planck curve",
		Long: `Print the spectral radiance samples used for the chart, in MW/m²/sr/μm.

Examples:
  ls-blackbody spectrum --temp 5800 > sun.csv
  ls-blackbody spectrum --body Earth --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := tgt.result(cmd)
			if err != nil {
				return err
			}
			a.log.Debug("spectrum for %.0f K: %d samples", r.TempK, len(r.Spectrum.Samples))

			out := cmd.OutOrStdout()
			switch strings.ToLower(outFormat) {
			case formatCSV:
				return report.WriteCSV(out, r.Spectrum)
			case formatJSON:
				return newExport(r, true).WriteJSON(out)
			case formatYAML:
				return newExport(r, true).WriteYAML(out)
			default:
				return fmt.Errorf("unknown format %q (want csv, json or yaml)", outFormat)
			}
		},
	}

	tgt.bind(cmd)
	cmd.Flags().StringVarP(&outFormat, "format", "f", formatCSV, "Output format (csv, json, yaml)")
	return cmd
}

func wienCmd() *cobra.Command {
	return calcCmd("wien", "Peak wavelength for a temperature (Wien's law)", "5800",
		func(in string) (string, string, error) {
			r, err := report.Wien(in)
			return r.Text, r.Description, err
		})
}

func stefanCmd() *cobra.Command {
	return calcCmd("stefan", "Radiated power per area (Stefan–Boltzmann law)", "3000",
		func(in string) (string, string, error) {
			r, err := report.Stefan(in)
			return r.Text, r.Description, err
		})
}

// calcCmd wraps one calculator. Flag parsing is off so that a negative
// temperature reaches the calculator instead of being read as a shorthand flag.
func calcCmd(name, short, example string, eval func(string) (string, string, error)) *cobra.Command {
	return &cobra.Command{
		Use:                name + " <temperature>",
		Short:              short,
		Example:            "  ls-blackbody " + name + " " + example,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 && (args[0] == "-h" || args[0] == "--help") {
				return cmd.Help()
			}
			if len(args) != 1 {
				return fmt.Errorf("%s takes one temperature, got %d arguments", name, len(args))
			}

			text, desc, err := eval(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			fmt.Fprintln(cmd.OutOrStdout(), desc)
			return nil
		},
	}
}

func bodiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bodies",
		Short: "List the preset bodies",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			report.WriteBodies(cmd.OutOrStdout())
		},
	}
}

func (a *app) plotCmd() *cobra.Command {
	var (
		tgt    target
		output string
	)

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Render the spectrum chart to a PNG file",
		Long: `Render the Planck curve with the peak marker and visible band to a PNG.
The theme follows --theme, then the saved preference.

Examples:
  ls-blackbody plot --body "Sirius A"
  ls-blackbody plot --temp 3000 --theme dark -o bulb.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := tgt.result(cmd)
			if err != nil {
				return err
			}

			path := output
			if path == "" {
				path = ui.PNGFileName(r.Name, r.TempK)
			}

			opts := plot.DefaultPNGOptions()
			opts.Theme = a.resolveTheme()
			opts.Title = fmt.Sprintf("%s  %.0f K", r.Name, r.TempK)

			if err := writePNG(path, r, opts); err != nil {
				return err
			}
			a.log.Info("chart written to %s (%s theme)", path, opts.Theme)
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	tgt.bind(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: blackbody-<body>-<T>K.png)")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}

func newExport(r report.Result, withSamples bool) *report.Export {
	return report.NewExport(r, uuid.NewString(), time.Now().UTC(), withSamples)
}

func writePNG(path string, r report.Result, opts plot.PNGOptions) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := plot.WritePNG(f, r.Spectrum, opts); err != nil {
		f.Close()
		return fmt.Errorf("render %s: %w", path, err)
	}
	return f.Close()
}

// isTerminal reports whether w is a terminal file.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
