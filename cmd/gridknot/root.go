package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gridknot",
	Short: "gridknot manipulates knot grid diagrams and relaxes their space curves",
	Long: `gridknot loads knot grid diagrams (CSV: one row per line, fields "x",
"o", or a single space), applies Cromwell moves, extracts the knot's 3D
curve, and relaxes it with a bead/spring simulation.`,
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
