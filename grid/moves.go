package grid

// This file implements the four Cromwell moves. Every move validates its
// preconditions before touching the matrix, so a returned error guarantees
// the diagram is unchanged.

// Translate cyclically rotates all rows (Up/Down) or all columns
// (Left/Right) by one position. Translation has no precondition and
// always preserves the diagram invariant.
func (d *Diagram) Translate(dir Direction) {
	n := len(d.cells)
	switch dir {
	case Up:
		first := d.cells[0]
		copy(d.cells, d.cells[1:])
		d.cells[n-1] = first
	case Down:
		last := d.cells[n-1]
		copy(d.cells[1:], d.cells[:n-1])
		d.cells[0] = last
	case Left:
		for _, row := range d.cells {
			first := row[0]
			copy(row, row[1:])
			row[n-1] = first
		}
	case Right:
		for _, row := range d.cells {
			last := row[n-1]
			copy(row[1:], row[:n-1])
			row[0] = last
		}
	}
}

// Commute exchanges row (or column) index with index+1. Returns
// ErrIndexOutOfRange for a bad index, ErrCommuteIndex when index is the
// last line, and ErrInterleaved when the two lines' mark spans interleave.
func (d *Diagram) Commute(axis Axis, index int) error {
	if !d.inBounds(index) {
		return ErrIndexOutOfRange
	}
	if index == len(d.cells)-1 {
		return ErrCommuteIndex
	}
	if d.areInterleaved(axis, index, index+1) {
		return ErrInterleaved
	}

	if axis == Rows {
		d.cells[index], d.cells[index+1] = d.cells[index+1], d.cells[index]
	} else {
		for _, row := range d.cells {
			row[index], row[index+1] = row[index+1], row[index]
		}
	}

	return nil
}

// areInterleaved reports whether the mark spans of lines a and b overlap
// partially. Each line's X and O positions define an interval on the
// orthogonal axis; the lines commute iff the intervals are disjoint or
// one strictly contains the other.
func (d *Diagram) areInterleaved(axis Axis, a, b int) bool {
	aLo, aHi := orderedSpan(d.MarkSpan(axis, a))
	bLo, bHi := orderedSpan(d.MarkSpan(axis, b))

	disjoint := aHi < bLo || bHi < aLo
	nested := (aLo > bLo && aHi < bHi) || (bLo > aLo && bHi < aHi)

	return !disjoint && !nested
}

// orderedSpan normalizes a mark span to (low, high).
func orderedSpan(x, o int) (lo, hi int) {
	if x > o {
		return o, x
	}

	return x, o
}

// Stabilize replaces the mark at (i, j) with a 2×2 sub-block, inserting
// one new row and one new column; the grid grows by one. The corner names
// which cell of the new block is left blank: the new column goes to the
// right of column j for NW/SW and to its left for NE/SE, and the new row
// goes below row i for NW/NE and above for SW/SE. Returns
// ErrIndexOutOfRange for a bad position and ErrNoMark if (i, j) is blank.
func (d *Diagram) Stabilize(corner Corner, i, j int) error {
	if !d.inBounds(i) || !d.inBounds(j) {
		return ErrIndexOutOfRange
	}
	mark := d.cells[i][j]
	if mark == Blank {
		return ErrNoMark
	}

	// Insert the new column: right of j for NW/SW, left of j for NE/SE.
	// For NE/SE the original mark shifts to column j+1, so in both cases
	// the block occupies columns j and j+1 of rows i and i+1 (after the
	// row insert below).
	colAt := j + 1
	if corner == NE || corner == SE {
		colAt = j
	}
	for r, row := range d.cells {
		grown := make([]Entry, 0, len(row)+1)
		grown = append(grown, row[:colAt]...)
		grown = append(grown, Blank)
		grown = append(grown, row[colAt:]...)
		d.cells[r] = grown
	}

	extra := make([]Entry, len(d.cells)+1)
	switch corner {
	case NW, SW:
		d.cells[i][j] = Blank
		d.cells[i][j+1] = mark
		extra[j] = mark
		extra[j+1] = mark.Opposite()
	case NE, SE:
		d.cells[i][j] = mark
		d.cells[i][j+1] = Blank
		extra[j] = mark.Opposite()
		extra[j+1] = mark
	}

	// Insert the new row: below row i for NW/NE, above for SW/SE.
	rowAt := i + 1
	if corner == SW || corner == SE {
		rowAt = i
	}
	d.cells = append(d.cells, nil)
	copy(d.cells[rowAt+1:], d.cells[rowAt:])
	d.cells[rowAt] = extra

	return nil
}

// Destabilize collapses the 2×2 block whose upper-left corner is (i, j)
// back into a single mark; the grid shrinks by one. The block must hold
// exactly one blank, a pair of equal marks on the corners adjacent to the
// blank, and the opposite mark diagonal to it. The row and column of the
// diagonal (minority) mark are removed and the majority mark is placed at
// the collapsed cell. Returns ErrIndexOutOfRange if the block does not
// fit in the grid and ErrBadBlock for any other arrangement.
func (d *Diagram) Destabilize(i, j int) error {
	n := len(d.cells)
	if i < 0 || j < 0 || i >= n-1 || j >= n-1 {
		return ErrIndexOutOfRange
	}

	// Locate the single blank corner of the block.
	bi, bj := -1, -1
	for _, c := range [4][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}} {
		if d.cells[i+c[0]][j+c[1]] == Blank {
			if bi != -1 {
				return ErrBadBlock
			}
			bi, bj = c[0], c[1]
		}
	}
	if bi == -1 {
		return ErrBadBlock
	}

	majority := d.cells[i+bi][j+1-bj] // corner adjacent to the blank
	minority := d.cells[i+1-bi][j+1-bj]
	if majority == Blank ||
		d.cells[i+1-bi][j+bj] != majority ||
		minority != majority.Opposite() {
		return ErrBadBlock
	}

	// Remove the minority mark's row and column; the surviving block
	// corner is where the blank sat, and it takes the majority mark.
	cutRow, cutCol := i+1-bi, j+1-bj
	keepRow, keepCol := i+bi, j+bj
	if cutRow < keepRow {
		keepRow--
	}
	if cutCol < keepCol {
		keepCol--
	}

	shrunk := make([][]Entry, 0, n-1)
	for r, row := range d.cells {
		if r == cutRow {
			continue
		}
		cut := make([]Entry, 0, n-1)
		cut = append(cut, row[:cutCol]...)
		cut = append(cut, row[cutCol+1:]...)
		shrunk = append(shrunk, cut)
	}
	shrunk[keepRow][keepCol] = majority
	d.cells = shrunk

	return nil
}
