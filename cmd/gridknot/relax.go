package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/knotworks/gridknot/grid"
	"github.com/knotworks/gridknot/knot"
)

var (
	relaxSteps     int
	relaxParams    string
	relaxSpacing   float64
	relaxNoAnchors bool
	relaxVerbose   bool
)

var relaxCmd = &cobra.Command{
	Use:   "relax <diagram.csv>",
	Short: "Extract the curve and run the bead/spring relaxation",
	Long: `Extracts the diagram's curve, builds the bead/spring model, and runs the
requested number of relaxation steps. Reports the perimeter before and
after, and how many beads ended the final step locked by the segment
proximity guard.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := grid.ParseFile(args[0])
		if err != nil {
			return err
		}
		c, err := d.GenerateCurve()
		if err != nil {
			return err
		}

		params := knot.DefaultSimulationParams()
		if relaxParams != "" {
			f, err := os.Open(relaxParams)
			if err != nil {
				return err
			}
			params, err = knot.LoadParams(f)
			f.Close()
			if err != nil {
				return err
			}
		}
		if relaxNoAnchors {
			params.AnchorWeight = 0
		}

		if relaxSpacing > 0 {
			c, err = c.Refine(relaxSpacing)
			if err != nil {
				return err
			}
		}

		k, err := knot.New(c, params)
		if err != nil {
			return err
		}

		before := k.Rope().Perimeter()
		for i := 0; i < relaxSteps; i++ {
			k.Step()
		}

		locked := 0
		for _, stuck := range k.Stuck() {
			if stuck {
				locked++
			}
		}

		out := cmd.OutOrStdout()
		if relaxVerbose {
			for _, v := range k.Rope().Vertices() {
				fmt.Fprintf(out, "%g,%g,%g\n", v.X, v.Y, v.Z)
			}
		}
		fmt.Fprintf(out, "steps: %d, perimeter: %.3f -> %.3f, locked beads: %d/%d\n",
			relaxSteps, before, k.Rope().Perimeter(), locked, k.Rope().Len())
		return nil
	},
}

func init() {
	relaxCmd.Flags().IntVarP(&relaxSteps, "steps", "n", 100, "number of relaxation steps")
	relaxCmd.Flags().StringVar(&relaxParams, "params", "", "YAML simulation parameter preset")
	relaxCmd.Flags().Float64Var(&relaxSpacing, "spacing", 0, "resample the curve at this spacing before relaxing (0 keeps grid vertices)")
	relaxCmd.Flags().BoolVar(&relaxNoAnchors, "no-anchors", false, "disable the anchor restoring force")
	relaxCmd.Flags().BoolVarP(&relaxVerbose, "verbose", "v", false, "print final vertices as x,y,z")
	rootCmd.AddCommand(relaxCmd)
}
