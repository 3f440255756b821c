package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexshd/orderbench"
)

// NewMetaCmd answers a metadata query about a dataset path.
func NewMetaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "meta <file_path> <FileType|Gamma|Metadata>",
		Short: "Print metadata derived from a dataset path",
		Long: "meta parses a dataset path of the form\n" +
			"  .../Gamma<g>/Strength<s>_Lattice<L>_<L>_<h>_Time<t>.<ext>\n" +
			"and prints the file extension (FileType), the gamma text (Gamma) or\n" +
			"the \"<s>_<L>_<L>_<h>\" key (Metadata). The file is not opened.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := orderbench.QueryMetadata(args[0], args[1])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
}
