package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/knotworks/gridknot/grid"
)

var traceVerbose bool

var traceCmd = &cobra.Command{
	Use:   "trace <diagram.csv>",
	Short: "Extract the diagram's 3D curve and print its vertices",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := grid.ParseFile(args[0])
		if err != nil {
			return err
		}
		c, err := d.GenerateCurve()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		lifts := 0
		for _, v := range c.Vertices() {
			if v.Z > 0 {
				lifts++
			}
			if traceVerbose {
				fmt.Fprintf(out, "%g,%g,%g\n", v.X, v.Y, v.Z)
			}
		}
		fmt.Fprintf(out, "vertices: %d, crossings: %d, perimeter: %.3f\n",
			c.Len(), lifts, c.Perimeter())
		return nil
	},
}

func init() {
	traceCmd.Flags().BoolVarP(&traceVerbose, "verbose", "v", false, "print every vertex as x,y,z")
	rootCmd.AddCommand(traceCmd)
}
