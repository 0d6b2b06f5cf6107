package grid_test

import (
	"testing"

	"github.com/knotworks/gridknot/grid"
)

// benchDiagram builds an N×N spiral unknot: X on the diagonal, O one
// column to the right (wrapping), which traces a single closed loop.
func benchDiagram(b *testing.B, n int) *grid.Diagram {
	b.Helper()

	cells := make([][]grid.Entry, n)
	for i := range cells {
		cells[i] = make([]grid.Entry, n)
		cells[i][i] = grid.X
		cells[i][(i+1)%n] = grid.O
	}
	d, err := grid.New(cells)
	if err != nil {
		b.Fatal(err)
	}

	return d
}

func BenchmarkGenerateCurve(b *testing.B) {
	d := benchDiagram(b, 32)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := d.GenerateCurve(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkStabilizeDestabilize(b *testing.B) {
	d := benchDiagram(b, 32)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := d.Stabilize(grid.NW, 0, 0); err != nil {
			b.Fatal(err)
		}
		if err := d.Destabilize(0, 0); err != nil {
			b.Fatal(err)
		}
	}
}
