package main

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/knotworks/gridknot/grid"
	"github.com/knotworks/gridknot/tube"
)

var (
	meshRadius   float64
	meshSegments int
)

var meshCmd = &cobra.Command{
	Use:   "mesh <diagram.csv>",
	Short: "Extract the diagram's curve and print a tube mesh as Wavefront OBJ",
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
		tris, err := tube.Generate(c, meshRadius, meshSegments)
		if err != nil {
			return err
		}

		w := bufio.NewWriter(cmd.OutOrStdout())
		for _, v := range tris {
			fmt.Fprintf(w, "v %g %g %g\n", v.X, v.Y, v.Z)
		}
		// OBJ face indices are 1-based; the triangle list is flat.
		for i := 1; i <= len(tris); i += 3 {
			fmt.Fprintf(w, "f %d %d %d\n", i, i+1, i+2)
		}
		return w.Flush()
	},
}

func init() {
	meshCmd.Flags().Float64Var(&meshRadius, "radius", 0.1, "tube radius")
	meshCmd.Flags().IntVar(&meshSegments, "segments", 8, "vertices per tube cross-section")
	rootCmd.AddCommand(meshCmd)
}
