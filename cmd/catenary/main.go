package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/catenary/internal/catenary"
	"github.com/san-kum/catenary/internal/config"
	"github.com/san-kum/catenary/internal/logging"
	"github.com/san-kum/catenary/internal/version"
)

var (
	configFile  string
	coefficient float64
	preset      string
	lang        string
	logLevel    string

	// Sampling, shared by plot and table.
	from    float64
	to      float64
	samples int
	column  string
	output  string
	format  string
	centers []float64
	raw     bool

	cfg    *config.Config
	logger *slog.Logger
)

// main runs the root command and exits with status 1 if it fails.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "catenary",
		Short: "catenary calculator: ordinate, arc length, curvature and area",
		// Without a subcommand, start the line shell.
		RunE:              runShell,
		PersistentPreRunE: setup,
		SilenceUsage:      true,
		Version:           version.Version,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.Float64VarP(&coefficient, "coefficient", "a", config.DefaultCoefficient, "shape coefficient a (all values except 0)")
	pf.StringVar(&preset, "preset", "", "use a named coefficient (see `catenary presets`)")
	pf.StringVar(&lang, "lang", config.DefaultLang, "shell language: en, ru")
	pf.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level: debug, info, warn, error")

	shellCmd := &cobra.Command{
		Use:   "shell",
		Short: "interactive menu on stdin/stdout",
		RunE:  runShell,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "full-screen terminal UI",
		RunE:  runTUI,
	}

	evalCmd := &cobra.Command{
		Use:   "eval [operation] [x...]",
		Short: "evaluate one operation",
		Long: "Evaluate one operation and print the result.\n\n" +
			"Operations: ordinate x, arc-length x, radius x, center x, area x1 x2.\n" +
			"Flags go before the operation so negative abscissas are read as numbers:\n" +
			"  catenary eval -a 2 area -1 1",
		Args: cobra.MinimumNArgs(1),
		RunE: runEval,
	}
	evalCmd.Flags().SetInterspersed(false)
	evalCmd.Flags().BoolVar(&raw, "raw", false, "print signed values instead of magnitudes")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot the curve in the terminal or to an image",
		RunE:  runPlot,
	}
	addRangeFlags(plotCmd)
	plotCmd.Flags().StringVar(&column, "column", "ordinate", "series to plot: ordinate, arc_length, radius")
	plotCmd.Flags().StringVarP(&output, "output", "o", "", "image file (.png, .svg, .pdf); terminal if empty")
	plotCmd.Flags().Float64SliceVar(&centers, "center", nil, "mark the curvature centers at these abscissas (image only)")

	tableCmd := &cobra.Command{
		Use:   "table",
		Short: "tabulate the curve as CSV or JSON",
		RunE:  runTable,
	}
	addRangeFlags(tableCmd)
	tableCmd.Flags().StringVarP(&format, "format", "f", "csv", "output format: csv, json")
	tableCmd.Flags().StringVarP(&output, "output", "o", "", "output file; stdout if empty")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list named coefficients",
		RunE:  listPresets,
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "print build information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}

	rootCmd.AddCommand(shellCmd, tuiCmd, evalCmd, plotCmd, tableCmd, presetsCmd, versionCmd)
	return rootCmd
}

func addRangeFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&from, "from", config.DefaultFrom, "first abscissa")
	cmd.Flags().Float64Var(&to, "to", config.DefaultTo, "last abscissa")
	cmd.Flags().IntVarP(&samples, "samples", "n", config.DefaultSamples, "number of samples")
}

// setup resolves the configuration: defaults, then the config file, then
// .env and CATENARY_* variables, then a preset, then explicit flags.
func setup(cmd *cobra.Command, args []string) error {
	c := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		c = loaded
	}

	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}
	if err := config.ApplyEnv(c); err != nil {
		return err
	}

	if preset != "" {
		a, ok := config.GetPreset(preset)
		if !ok {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		c.Coefficient = a
	}

	flags := cmd.Flags()
	if flags.Changed("coefficient") {
		c.Coefficient = coefficient
	}
	if flags.Changed("lang") {
		c.Lang = lang
	}
	if flags.Changed("log-level") {
		c.LogLevel = logLevel
	}
	if flags.Changed("from") {
		c.Plot.From = from
	}
	if flags.Changed("to") {
		c.Plot.To = to
	}
	if flags.Changed("samples") {
		c.Plot.Samples = samples
	}

	if err := c.Validate(); err != nil {
		return err
	}

	l, err := logging.New(cmd.ErrOrStderr(), c.LogLevel, os.Getenv("NO_COLOR") != "")
	if err != nil {
		return err
	}
	slog.SetDefault(l)

	cfg, logger = c, l
	logger.Debug("configuration resolved",
		"coefficient", cfg.Coefficient, "lang", cfg.Lang, "config", configFile, "preset", preset)
	return nil
}

// newCurve builds the curve for cfg.Coefficient, logging the fallback
// warning if the coefficient is rejected.
func newCurve() *catenary.Curve {
	c, err := catenary.New(cfg.Coefficient)
	var ce *catenary.CoefficientError
	if errors.As(err, &ce) {
		logger.Warn("coefficient rejected", "rejected", ce.Rejected, "substitute", ce.Substitute)
	}
	return c
}
