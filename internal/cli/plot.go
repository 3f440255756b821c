package cli

import (
	"github.com/spf13/cobra"

	"github.com/alexshd/orderbench"
	"github.com/alexshd/orderbench/internal/chart"
)

// NewPlotCmd charts a previously written two-column series file.
func NewPlotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plot <data_file_path>",
		Short: "Chart the c6 and |ψ|² densities of a saved series",
		Long: "plot reads a whitespace-separated file whose first two columns are c6 and\n" +
			"|ψ|² (lines starting with # are comments) and draws both densities.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}

			c6, magSq, err := orderbench.LoadColumnsFile(args[0])
			if err != nil {
				return err
			}
			cliCtx.Logger.Debug("series loaded", "file", args[0], "rows", len(c6))

			return chart.Plot(cmd.OutOrStdout(), c6, magSq, cliCtx.Chart())
		},
	}
}
