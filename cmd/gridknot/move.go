package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/knotworks/gridknot/grid"
)

var (
	moveAxis   string
	moveCorner string
	moveRow    int
	moveCol    int
	moveIndex  int
)

var moveCmd = &cobra.Command{
	Use:   "move <diagram.csv> <translate-up|translate-down|translate-left|translate-right|commute|stabilize|destabilize>",
	Short: "Apply one Cromwell move and print the resulting diagram",
	Long: `Applies a single Cromwell move to the diagram and prints the result in
the same CSV encoding. Move preconditions are reported as errors and
leave the diagram unchanged.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := grid.ParseFile(args[0])
		if err != nil {
			return err
		}
		if err := applyMove(d, args[1]); err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), d.String())
		return nil
	},
}

func init() {
	moveCmd.Flags().StringVar(&moveAxis, "axis", "row", "axis for commute: row or col")
	moveCmd.Flags().StringVar(&moveCorner, "corner", "NW", "blank corner for stabilize: NW, SW, NE, or SE")
	moveCmd.Flags().IntVar(&moveRow, "row", 0, "row index of the target cell or block")
	moveCmd.Flags().IntVar(&moveCol, "col", 0, "column index of the target cell or block")
	moveCmd.Flags().IntVar(&moveIndex, "index", 0, "row/column index for commute")
	rootCmd.AddCommand(moveCmd)
}

func applyMove(d *grid.Diagram, name string) error {
	switch name {
	case "translate-up":
		d.Translate(grid.Up)
	case "translate-down":
		d.Translate(grid.Down)
	case "translate-left":
		d.Translate(grid.Left)
	case "translate-right":
		d.Translate(grid.Right)
	case "commute":
		axis, err := parseAxis(moveAxis)
		if err != nil {
			return err
		}
		return d.Commute(axis, moveIndex)
	case "stabilize":
		corner, err := parseCorner(moveCorner)
		if err != nil {
			return err
		}
		return d.Stabilize(corner, moveRow, moveCol)
	case "destabilize":
		return d.Destabilize(moveRow, moveCol)
	default:
		return fmt.Errorf("unknown move %q", name)
	}

	return nil
}

func parseAxis(s string) (grid.Axis, error) {
	switch s {
	case "row":
		return grid.Rows, nil
	case "col":
		return grid.Cols, nil
	}

	return 0, errors.New(`axis must be "row" or "col"`)
}

func parseCorner(s string) (grid.Corner, error) {
	switch s {
	case "NW":
		return grid.NW, nil
	case "SW":
		return grid.SW, nil
	case "NE":
		return grid.NE, nil
	case "SE":
		return grid.SE, nil
	}

	return 0, errors.New("corner must be NW, SW, NE, or SE")
}
