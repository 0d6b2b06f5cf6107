package grid_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knotworks/gridknot/curve"
)

// TestTraverse_Unknot2 pins down the exact walk on the smallest diagram.
// Absolute indices are row + col*N: the walk visits (0,0), (1,0), (1,1),
// (0,1) and closes back on its start.
func TestTraverse_Unknot2(t *testing.T) {
	d := unknot2(t)
	indices, err := d.Traverse()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 2, 0}, indices)
}

// TestTraverse_Trefoil6 checks the full walk of the 6×6 trefoil: exactly
// 2N+1 indices, closing on the start.
func TestTraverse_Trefoil6(t *testing.T) {
	d := trefoil6(t)
	indices, err := d.Traverse()
	require.NoError(t, err)

	assert.Len(t, indices, 2*d.Size()+1)
	assert.Equal(t, indices[0], indices[len(indices)-1], "walk must close on its start")
	assert.Equal(t, []int{1, 4, 28, 26, 14, 17, 35, 33, 21, 18, 6, 7, 1}, indices)
}

// TestGenerateCurve_Unknot2 checks the exact geometry of the unknot
// square: four vertices, centered at the origin, no lifted crossings.
func TestGenerateCurve_Unknot2(t *testing.T) {
	d := unknot2(t)
	c, err := d.GenerateCurve()
	require.NoError(t, err)

	want := []curve.Vec3{
		{X: -1, Y: 1, Z: 0},
		{X: -1, Y: 0, Z: 0},
		{X: 0, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
	}
	assert.Equal(t, want, c.Vertices())
	assert.InDelta(t, 4.0, c.Perimeter(), 1e-12)
}

// TestGenerateCurve_Trefoil6 verifies the documented trefoil scenario:
// three crossings (every trefoil diagram has at least three), filler
// vertices keeping the polyline grid-aligned, and a closed loop.
func TestGenerateCurve_Trefoil6(t *testing.T) {
	d := trefoil6(t)
	c, err := d.GenerateCurve()
	require.NoError(t, err)

	// One vertex per unit step of the closed loop: 12 marks, 3 crossings,
	// and 13 fillers. A crossing vertex takes the place of the filler
	// that would otherwise occupy its cell.
	assert.Equal(t, 28, c.Len())

	lifted := 0
	for _, v := range c.Vertices() {
		if v.Z > 0 {
			lifted++
		}
	}
	assert.Equal(t, 3, lifted, "the trefoil has exactly three crossings")

	// Every segment must stay grid-aligned: unit movement along one
	// planar axis at most, plus the lift transition.
	verts := c.Vertices()
	for i := range verts {
		a := verts[i]
		b := verts[(i+1)%len(verts)]
		dx := math.Abs(a.X - b.X)
		dy := math.Abs(a.Y - b.Y)
		assert.LessOrEqual(t, dx, 1.0)
		assert.LessOrEqual(t, dy, 1.0)
		assert.False(t, dx > 0 && dy > 0, "segment %d jumps diagonally", i)
	}
}

// TestGenerateCurve_LiftedNeighbors checks a lifted vertex sits between
// two in-plane vertices of the same column strand.
func TestGenerateCurve_LiftedNeighbors(t *testing.T) {
	c, err := trefoil6(t).GenerateCurve()
	require.NoError(t, err)

	verts := c.Vertices()
	for i, v := range verts {
		if v.Z == 0 {
			continue
		}
		l := verts[c.WrappedIndex(i-1)]
		r := verts[c.WrappedIndex(i+1)]
		assert.Zero(t, l.Z, "vertex before a crossing is in-plane")
		assert.Zero(t, r.Z, "vertex after a crossing is in-plane")
		assert.Equal(t, v.X, l.X, "crossing stays on its column")
		assert.Equal(t, v.X, r.X, "crossing stays on its column")
	}
}

// TestGenerateCurve_AllValidDiagrams runs extraction over every fixture
// and checks the structural properties hold.
func TestGenerateCurve_AllValidDiagrams(t *testing.T) {
	for _, tc := range []struct {
		name string
		rows []string
	}{
		{"Unknot2", []string{"xo", "ox"}},
		{"Unknot3", []string{"xo.", ".xo", "o.x"}},
		{"Trefoil5", []string{"x.o..", ".x.o.", "..x.o", "o..x.", ".o..x"}},
		{"Trefoil6", []string{".x.o..", "xo....", "..x.o.", "...x.o", "o...x.", "..o..x"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			d := diagramFromRows(t, tc.rows...)

			indices, err := d.Traverse()
			require.NoError(t, err)
			assert.Len(t, indices, 2*d.Size()+1)

			c, err := d.GenerateCurve()
			require.NoError(t, err)
			assert.GreaterOrEqual(t, c.Len(), 2*d.Size())
		})
	}
}
