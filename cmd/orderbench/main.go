// Command orderbench computes C6 order-parameter statistics for batches of
// triangular-lattice QUBO solutions.
package main

import (
	"fmt"
	"os"

	"github.com/alexshd/orderbench/internal/cli"
)

// Build-time variables injected via ldflags.
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func init() {
	cli.Version = version
	cli.GitCommit = commit
	cli.BuildDate = buildDate
}

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
