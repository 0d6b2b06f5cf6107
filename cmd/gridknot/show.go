package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/knotworks/gridknot/grid"
)

var (
	xStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	oStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	blankStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

var showCmd = &cobra.Command{
	Use:   "show <diagram.csv>",
	Short: "Parse a grid diagram and print it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := grid.ParseFile(args[0])
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), renderDiagram(d))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

// renderDiagram draws the grid with styled marks and dots for blanks.
func renderDiagram(d *grid.Diagram) string {
	var sb strings.Builder
	for i := 0; i < d.Size(); i++ {
		cells := make([]string, d.Size())
		for j := 0; j < d.Size(); j++ {
			switch d.At(i, j) {
			case grid.X:
				cells[j] = xStyle.Render("x")
			case grid.O:
				cells[j] = oStyle.Render("o")
			default:
				cells[j] = blankStyle.Render("·")
			}
		}
		sb.WriteString(strings.Join(cells, " "))
		sb.WriteByte('\n')
	}

	return sb.String()
}
