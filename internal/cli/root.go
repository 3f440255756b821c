// Package cli implements the orderbench command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/alexshd/orderbench/internal/chart"
	"github.com/alexshd/orderbench/internal/config"
	"github.com/alexshd/orderbench/internal/logging"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// cliContextKey is the context key for CLIContext.
type cliContextKey struct{}

// RootOptions holds global CLI flags.
type RootOptions struct {
	ConfigPath string
	LogLevel   string
	Bins       int
}

// CLIContext carries the loaded configuration and logger to subcommands.
type CLIContext struct {
	Config *config.Config
	Logger *slog.Logger
}

// Chart returns the chart settings of the loaded configuration.
func (c *CLIContext) Chart() chart.Config {
	return chart.Config{
		Width:  c.Config.Chart.Width,
		Height: c.Config.Chart.Height,
		Bins:   c.Config.Bins,
	}
}

// NewRootCommand creates the root command with its global flags and
// subcommands.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "orderbench",
		Short: "C6 order-parameter analysis of triangular-lattice solution batches",
		Long: "orderbench reads batches of QUBO solutions for triangular-lattice spin models,\n" +
			"computes the three-sublattice clock order parameter ψ of every solution and\n" +
			"reports the C6 anisotropy cos(6·arg ψ) together with |ψ|².",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildDate),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return persistentPreRun(cmd, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.ConfigPath, "config", "c", "", "config file path (YAML)")
	pf.StringVar(&opts.LogLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	pf.IntVar(&opts.Bins, "bins", 0, "histogram bins per chart curve (default from config)")

	cmd.AddCommand(
		NewMetaCmd(),
		NewOrderCmd(),
		NewPlotCmd(),
		NewConfigCmd(),
		NewVersionCmd(),
	)
	return cmd
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// persistentPreRun loads the configuration, applies flag overrides and
// stores the CLIContext on the command.
func persistentPreRun(cmd *cobra.Command, opts *RootOptions) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.LogLevel
	}
	if flags.Changed("bins") {
		cfg.Bins = opts.Bins
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	logger := logging.New(cmd.ErrOrStderr(), logging.Options{
		Level: cfg.Log.Level,
		Color: cfg.Log.Color,
	})

	cliCtx := &CLIContext{Config: cfg, Logger: logger}
	cmd.SetContext(context.WithValue(cmd.Context(), cliContextKey{}, cliCtx))
	return nil
}

// GetCLIContext extracts the CLIContext stored by the root command.
func GetCLIContext(cmd *cobra.Command) (*CLIContext, error) {
	ctx := cmd.Context()
	if ctx == nil {
		return nil, errors.New("cli: command has no context")
	}
	cliCtx, ok := ctx.Value(cliContextKey{}).(*CLIContext)
	if !ok || cliCtx == nil {
		return nil, errors.New("cli: context not initialised")
	}
	return cliCtx, nil
}
