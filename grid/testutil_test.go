package grid_test

import (
	"testing"

	"github.com/knotworks/gridknot/grid"
)

// diagramFromRows builds a diagram from compact row strings where 'x' is
// an X, 'o' is an O, and any other rune is blank.
func diagramFromRows(t *testing.T, rows ...string) *grid.Diagram {
	t.Helper()

	cells := make([][]grid.Entry, len(rows))
	for i, row := range rows {
		cells[i] = make([]grid.Entry, len(row))
		for j, r := range row {
			switch r {
			case 'x':
				cells[i][j] = grid.X
			case 'o':
				cells[i][j] = grid.O
			default:
				cells[i][j] = grid.Blank
			}
		}
	}

	d, err := grid.New(cells)
	if err != nil {
		t.Fatalf("diagramFromRows: %v", err)
	}

	return d
}

// unknot2 is the smallest valid diagram: a 2×2 unknot.
func unknot2(t *testing.T) *grid.Diagram {
	t.Helper()
	return diagramFromRows(t,
		"xo",
		"ox",
	)
}

// trefoil5 is the standard 5×5 torus-knot diagram of the trefoil.
func trefoil5(t *testing.T) *grid.Diagram {
	t.Helper()
	return diagramFromRows(t,
		"x.o..",
		".x.o.",
		"..x.o",
		"o..x.",
		".o..x",
	)
}

// trefoil6 is trefoil5 after an NW stabilization at (0,0); it is the 6×6
// diagram used by the extraction tests.
func trefoil6(t *testing.T) *grid.Diagram {
	t.Helper()
	return diagramFromRows(t,
		".x.o..",
		"xo....",
		"..x.o.",
		"...x.o",
		"o...x.",
		"..o..x",
	)
}

// requireValid re-validates a diagram's cells through the constructor,
// catching any move that broke the one-X-one-O rule.
func requireValid(t *testing.T, d *grid.Diagram) {
	t.Helper()
	if _, err := grid.New(d.Cells()); err != nil {
		t.Fatalf("diagram violates invariant:\n%s", d)
	}
}
