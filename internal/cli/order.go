package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexshd/orderbench"
	"github.com/alexshd/orderbench/internal/chart"
)

// OrderOptions holds the order command flags.
type OrderOptions struct {
	PerLayer bool
	Save     bool
}

// NewOrderCmd runs the C6 analysis on one solution file.
func NewOrderCmd() *cobra.Command {
	opts := &OrderOptions{}

	cmd := &cobra.Command{
		Use:   "order <file_path> <output_flag> <plot_flag>",
		Short: "Compute c6 and |ψ|² for every solution in a batch",
		Long: "order reads a solution batch, computes the sublattice order parameter of\n" +
			"every record and keeps the samples whose ψ⁶ is non-zero.\n\n" +
			"output_flag (true|false) prints \"c6<TAB>|ψ|²\" lines to stdout once the\n" +
			"whole batch succeeded; plot_flag (true|false) draws both densities.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrder(cmd, args, opts)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&opts.PerLayer, "per-layer", false, "analyse each lattice layer separately")
	f.BoolVar(&opts.Save, "save", false, "write the detailed series under output_dir")
	return cmd
}

func runOrder(cmd *cobra.Command, args []string, opts *OrderOptions) error {
	cliCtx, err := GetCLIContext(cmd)
	if err != nil {
		return err
	}
	logger := cliCtx.Logger

	output, err := parseFlag("output_flag", args[1])
	if err != nil {
		return err
	}
	plot, err := parseFlag("plot_flag", args[2])
	if err != nil {
		return err
	}

	run := orderbench.FileOptions{
		Options:  orderbench.DefaultOptions(),
		PerLayer: opts.PerLayer,
	}
	run.Logger = logger
	if output {
		run.Output = cmd.OutOrStdout()
	}

	md, series, err := orderbench.AnalyzeFile(args[0], run)
	if err != nil {
		return err
	}

	sum := series.Summary()
	logger.Info("analysis complete",
		"file", args[0],
		"lattice", md.Length,
		"records", sum.Records,
		"samples", series.Len(),
		"dropped", sum.Dropped,
		"c6_mean", sum.C6.Mean,
		"magnitude_sq_mean", sum.MagnitudeSq.Mean,
	)

	if opts.Save {
		name, err := orderbench.SaveSeries(cliCtx.Config.OutputDir, md, series)
		if err != nil {
			return err
		}
		logger.Info("series saved", "path", name)
	}

	if plot {
		if series.Len() == 0 {
			logger.Warn("nothing to plot: every sample was dropped", "file", args[0])
			return nil
		}
		return chart.Plot(cmd.OutOrStdout(), series.C6(), series.MagnitudeSq(), cliCtx.Chart())
	}
	return nil
}

// parseFlag accepts "true" or "false" in any letter case.
func parseFlag(name, value string) (bool, error) {
	switch strings.ToLower(value) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, fmt.Errorf("%s must be true or false, got %q", name, value)
}
