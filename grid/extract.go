package grid

import (
	"sort"

	"github.com/knotworks/gridknot/curve"
)

// liftHeight is the z-offset applied to crossing vertices where a
// vertical strand passes over a horizontal one.
const liftHeight = 1.0

// Traverse walks the diagram's X/O connectivity and returns the closed
// sequence of absolute cell indices (row + col*N) it visits: the X and O
// of column 0, then alternating row and column hops until the walk
// returns to its start. The final entry duplicates the first, so a valid
// N×N diagram yields exactly 2N+1 indices; any other count is reported as
// ErrCurveConstruction.
func (d *Diagram) Traverse() ([]int, error) {
	n := len(d.cells)

	// Columns connect X to O; rows connect O to X.
	s := d.FindFirst(Cols, 0, X)
	e := d.FindFirst(Cols, 0, O)
	tie := d.absIndex(s, 0)

	indices := []int{tie, d.absIndex(e, 0)}
	seen := map[int]bool{indices[0]: true, indices[1]: true}

	horizontal := true
	for steps := 0; steps <= 2*n; steps++ {
		var next, abs int
		if horizontal {
			next = d.FindFirst(Rows, e, X)
			abs = d.absIndex(e, next)
		} else {
			next = d.FindFirst(Cols, e, O)
			abs = d.absIndex(next, e)
		}

		if seen[abs] {
			// Back at the start: close the loop.
			indices = append(indices, tie)
			break
		}
		indices = append(indices, abs)
		seen[abs] = true

		e = next
		horizontal = !horizontal
	}

	if len(indices) != 2*n+1 {
		return nil, ErrCurveConstruction
	}

	return indices, nil
}

// crossing is one vertical-over-horizontal intersection: the blank cell
// where a column segment passes over a row segment.
type crossing struct {
	row int // row index of the horizontal strand, used for ordering
	abs int // absolute index of the intersection cell
}

// GenerateCurve converts the diagram into a closed 3D polyline. Grid cell
// (i, j) maps to (j - N/2, N/2 - i, 0) so the diagram is centered at the
// origin with unit cell spacing; one extra vertex, lifted by liftHeight,
// is inserted per crossing (columns always pass over rows); and a filler
// vertex is added for every cell a segment skips, keeping the polyline
// grid-aligned. The closing duplicate of the start vertex is dropped.
func (d *Diagram) GenerateCurve() (*curve.PolygonalCurve, error) {
	indices, err := d.Traverse()
	if err != nil {
		return nil, err
	}
	n := len(d.cells)

	// Column segments are consecutive pairs of the walk with the closing
	// tie dropped; row segments are the same pairs shifted by one.
	cols := indices[:len(indices)-1]
	rows := indices[1:]

	lifted := make(map[int]bool)

	for ci := 0; ci < len(cols)/2; ci++ {
		travelStart := cols[ci*2]
		colLo, colHi := ordered(cols[ci*2], cols[ci*2+1])
		upward := travelStart == colHi // strand runs bottom-to-top

		csI, csJ := d.gridIndices(colLo)
		ceI, _ := d.gridIndices(colHi)

		var crossings []crossing
		for ri := 0; ri < len(rows)/2; ri++ {
			rowLo, rowHi := ordered(rows[ri*2], rows[ri*2+1])
			rsI, rsJ := d.gridIndices(rowLo)
			_, reJ := d.gridIndices(rowHi)

			// Interior intersection: the column's x-position lies strictly
			// between the row's endpoints and the row's y-position strictly
			// between the column's endpoints.
			if csJ > rsJ && csJ < reJ && csI < rsI && ceI > rsI {
				c := crossing{row: rsI, abs: d.absIndex(rsI, csJ)}
				crossings = append(crossings, c)
				lifted[c.abs] = true
			}
		}
		if len(crossings) == 0 {
			continue
		}

		// Order along the travel direction: top-to-bottom for a downward
		// strand, bottom-to-top for an upward one.
		sort.Slice(crossings, func(a, b int) bool {
			if upward {
				return crossings[a].row > crossings[b].row
			}
			return crossings[a].row < crossings[b].row
		})

		// Splice the crossings in right after the segment's first endpoint
		// in traversal order.
		for p, abs := range indices {
			if abs != travelStart {
				continue
			}
			spliced := make([]int, 0, len(indices)+len(crossings))
			spliced = append(spliced, indices[:p+1]...)
			for _, c := range crossings {
				spliced = append(spliced, c.abs)
			}
			spliced = append(spliced, indices[p+1:]...)
			indices = spliced
			break
		}
	}

	// Map to 3D, inserting filler vertices for skipped cells so that no
	// segment jumps diagonally or spans more than one cell.
	coordinate := func(i, j int, lift bool) curve.Vec3 {
		z := 0.0
		if lift {
			z = liftHeight
		}
		return curve.Vec3{
			X: float64(j) - float64(n)/2,
			Y: float64(n)/2 - float64(i),
			Z: z,
		}
	}

	var pts []curve.Vec3
	prevI, prevJ := -1, -1
	for idx, abs := range indices {
		i, j := d.gridIndices(abs)

		if prevI != -1 {
			if prevI == i {
				for f := step(prevJ, j); f != j; f = step(f, j) {
					pts = append(pts, coordinate(i, f, false))
				}
			} else {
				for f := step(prevI, i); f != i; f = step(f, i) {
					pts = append(pts, coordinate(f, j, false))
				}
			}
		}

		// The final index duplicates the start and exists only to close
		// the filler run above.
		if idx < len(indices)-1 {
			pts = append(pts, coordinate(i, j, lifted[abs]))
		}
		prevI, prevJ = i, j
	}

	return curve.NewPolygonalCurve(pts)
}

// ordered returns the pair (lo, hi).
func ordered(a, b int) (lo, hi int) {
	if a > b {
		return b, a
	}

	return a, b
}

// step moves from toward target by one.
func step(from, target int) int {
	if from < target {
		return from + 1
	}

	return from - 1
}
