package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knotworks/gridknot/grid"
)

// TestNew_Errors verifies that invalid matrices are rejected with
// ErrInvalidDiagram and no diagram is returned.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name  string
		cells [][]grid.Entry
	}{
		{"Empty", [][]grid.Entry{}},
		{"NonSquare", [][]grid.Entry{
			{grid.X, grid.O},
			{grid.O, grid.X},
			{grid.Blank, grid.Blank},
		}},
		{"Ragged", [][]grid.Entry{
			{grid.X, grid.O},
			{grid.O},
		}},
		{"MissingO", [][]grid.Entry{
			{grid.X, grid.Blank},
			{grid.Blank, grid.X},
		}},
		{"DoubleX", [][]grid.Entry{
			{grid.X, grid.X},
			{grid.O, grid.O},
		}},
		{"SingleCell", [][]grid.Entry{{grid.X}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := grid.New(tc.cells)
			assert.Nil(t, d)
			assert.ErrorIs(t, err, grid.ErrInvalidDiagram)
		})
	}
}

// TestNew_DeepCopies verifies construction snapshots the input matrix.
func TestNew_DeepCopies(t *testing.T) {
	cells := [][]grid.Entry{
		{grid.X, grid.O},
		{grid.O, grid.X},
	}
	d, err := grid.New(cells)
	require.NoError(t, err)

	cells[0][0] = grid.Blank
	assert.Equal(t, grid.X, d.At(0, 0), "diagram must not alias caller memory")
}

// TestAccessors covers Size, At, Row, Col, FindFirst, and MarkSpan on the
// 6×6 trefoil.
func TestAccessors(t *testing.T) {
	d := trefoil6(t)

	assert.Equal(t, 6, d.Size())
	assert.Equal(t, grid.X, d.At(0, 1))
	assert.Equal(t, grid.O, d.At(1, 1))
	assert.Equal(t, grid.Blank, d.At(0, 0))

	assert.Equal(t, []grid.Entry{grid.X, grid.O, grid.Blank, grid.Blank, grid.Blank, grid.Blank}, d.Row(1))
	assert.Equal(t, []grid.Entry{grid.Blank, grid.X, grid.Blank, grid.Blank, grid.O, grid.Blank}, d.Col(0))

	assert.Equal(t, 1, d.FindFirst(grid.Rows, 0, grid.X))
	assert.Equal(t, 3, d.FindFirst(grid.Rows, 0, grid.O))
	assert.Equal(t, 1, d.FindFirst(grid.Cols, 0, grid.X))
	assert.Equal(t, 4, d.FindFirst(grid.Cols, 0, grid.O))

	x, o := d.MarkSpan(grid.Cols, 5)
	assert.Equal(t, 5, x)
	assert.Equal(t, 3, o)
}

// TestCellsAndClone verifies the returned matrix and clone are
// independent copies.
func TestCellsAndClone(t *testing.T) {
	d := unknot2(t)

	cells := d.Cells()
	cells[0][0] = grid.Blank
	assert.Equal(t, grid.X, d.At(0, 0))

	c := d.Clone()
	require.True(t, d.Equal(c))
	c.Translate(grid.Up)
	assert.False(t, d.Equal(c), "clone mutation must not affect the original")
}

// TestTranslate_Bijection checks that up/down and left/right are inverse
// pairs restoring the grid exactly.
func TestTranslate_Bijection(t *testing.T) {
	pairs := []struct {
		name     string
		fwd, inv grid.Direction
	}{
		{"UpDown", grid.Up, grid.Down},
		{"DownUp", grid.Down, grid.Up},
		{"LeftRight", grid.Left, grid.Right},
		{"RightLeft", grid.Right, grid.Left},
	}
	for _, tc := range pairs {
		t.Run(tc.name, func(t *testing.T) {
			d := trefoil6(t)
			want := d.Clone()

			d.Translate(tc.fwd)
			requireValid(t, d)
			assert.False(t, d.Equal(want), "one translation must change the grid")

			d.Translate(tc.inv)
			assert.True(t, d.Equal(want))
		})
	}
}

// TestTranslate_FullCycle rotates N times in one direction and expects
// the original grid back.
func TestTranslate_FullCycle(t *testing.T) {
	d := trefoil5(t)
	want := d.Clone()
	for i := 0; i < d.Size(); i++ {
		d.Translate(grid.Right)
		requireValid(t, d)
	}
	assert.True(t, d.Equal(want))
}

// TestErrorFamilies verifies every move error matches ErrCromwell.
func TestErrorFamilies(t *testing.T) {
	for _, err := range []error{
		grid.ErrCommuteIndex,
		grid.ErrInterleaved,
		grid.ErrNoMark,
		grid.ErrBadBlock,
		grid.ErrIndexOutOfRange,
	} {
		assert.True(t, errors.Is(err, grid.ErrCromwell), "%v must wrap ErrCromwell", err)
	}
	assert.False(t, errors.Is(grid.ErrInvalidDiagram, grid.ErrCromwell))
}
