package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/catenary/internal/catenary"
	"github.com/san-kum/catenary/internal/config"
	"github.com/san-kum/catenary/internal/diagram"
	"github.com/san-kum/catenary/internal/export"
	"github.com/san-kum/catenary/internal/profile"
	"github.com/san-kum/catenary/internal/query"
	"github.com/san-kum/catenary/internal/shell"
	"github.com/san-kum/catenary/internal/tui"
)

func runShell(cmd *cobra.Command, args []string) error {
	// Ask for the coefficient unless the user already chose one.
	ask := !cmd.Flags().Changed("coefficient") && preset == "" && os.Getenv(config.EnvCoefficient) == ""

	s, err := shell.New(cmd.InOrStdin(), cmd.OutOrStdout(), shell.Options{
		Lang:           cfg.Lang,
		Logger:         logger,
		AskCoefficient: ask,
		Coefficient:    cfg.Coefficient,
	})
	if err != nil {
		return err
	}
	return s.Run()
}

func runTUI(cmd *cobra.Command, args []string) error {
	return tui.RunInteractive(newCurve(), cfg.Plot, logger)
}

func runEval(cmd *cobra.Command, args []string) error {
	op, err := query.NewRegistry().ByName(args[0])
	if err != nil {
		return fmt.Errorf("%w (available: %v)", err, query.NewRegistry().Names())
	}

	xs := make([]float64, len(args)-1)
	for i, s := range args[1:] {
		if xs[i], err = strconv.ParseFloat(s, 64); err != nil {
			return fmt.Errorf("invalid abscissa %q: %w", s, err)
		}
	}

	res, err := op.Eval(newCurve(), xs)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if raw && !res.IsPair() {
		fmt.Fprintln(out, query.FormatFloat(res.Value))
		return nil
	}
	for _, line := range res.Lines() {
		fmt.Fprintln(out, line)
	}
	return nil
}

func tabulate() (*profile.Profile, error) {
	return profile.Tabulate(newCurve(), cfg.Plot.From, cfg.Plot.To, cfg.Plot.Samples)
}

func runPlot(cmd *cobra.Command, args []string) error {
	p, err := tabulate()
	if err != nil {
		return err
	}

	if output == "" {
		chart, err := diagram.ASCII(p, column, cfg.Plot.Width, cfg.Plot.Height)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), chart)
		return nil
	}

	marks := []catenary.Point{p.Vertex()}
	for _, x := range centers {
		pair := p.Curve().CurvatureCenter(x).Points()
		marks = append(marks, pair[:]...)
	}
	if err := diagram.ExportImage(p, marks, output); err != nil {
		return err
	}
	logger.Info("plot saved", "file", output, "samples", len(p.Samples))
	return nil
}

func runTable(cmd *cobra.Command, args []string) error {
	p, err := tabulate()
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	if err := export.Write(w, format, p); err != nil {
		return err
	}
	if output != "" {
		logger.Info("table saved", "file", output, "format", format, "samples", len(p.Samples))
	}
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCOEFFICIENT")
	for _, name := range config.ListPresets() {
		a, _ := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%g\n", name, a)
	}
	return w.Flush()
}
