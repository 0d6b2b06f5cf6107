package grid

// Diagram is a knot grid diagram: a square matrix of cells in which every
// row and every column contains exactly one X and exactly one O. The
// invariant is enforced at construction and preserved by every move; a
// move that fails leaves the diagram untouched.
type Diagram struct {
	// cells[i][j] is the entry at row i, column j.
	cells [][]Entry
}

// New constructs a Diagram from an N×N matrix of entries, deep-copying
// the input. Returns ErrInvalidDiagram if the matrix is not square or any
// row or column does not hold exactly one X and one O.
func New(cells [][]Entry) (*Diagram, error) {
	n := len(cells)
	cp := make([][]Entry, n)
	for i, row := range cells {
		if len(row) != n {
			return nil, ErrInvalidDiagram
		}
		cp[i] = make([]Entry, n)
		copy(cp[i], row)
	}

	d := &Diagram{cells: cp}
	if err := d.validate(); err != nil {
		return nil, err
	}

	return d, nil
}

// validate checks the one-X-one-O rule on every row and column.
func (d *Diagram) validate() error {
	n := len(d.cells)
	if n == 0 {
		return ErrInvalidDiagram
	}
	for i := 0; i < n; i++ {
		var rowX, rowO, colX, colO int
		for j := 0; j < n; j++ {
			switch d.cells[i][j] {
			case X:
				rowX++
			case O:
				rowO++
			}
			switch d.cells[j][i] {
			case X:
				colX++
			case O:
				colO++
			}
		}
		if rowX != 1 || rowO != 1 || colX != 1 || colO != 1 {
			return ErrInvalidDiagram
		}
	}

	return nil
}

// Size returns N, the number of rows (equivalently, columns).
func (d *Diagram) Size() int {
	return len(d.cells)
}

// At returns the entry at row i, column j.
func (d *Diagram) At(i, j int) Entry {
	return d.cells[i][j]
}

// Row returns a copy of the entries in row i.
func (d *Diagram) Row(i int) []Entry {
	row := make([]Entry, len(d.cells))
	copy(row, d.cells[i])

	return row
}

// Col returns a copy of the entries in column j.
func (d *Diagram) Col(j int) []Entry {
	col := make([]Entry, len(d.cells))
	for i := range d.cells {
		col[i] = d.cells[i][j]
	}

	return col
}

// Cells returns a deep copy of the full cell matrix, for display layers.
func (d *Diagram) Cells() [][]Entry {
	cp := make([][]Entry, len(d.cells))
	for i, row := range d.cells {
		cp[i] = make([]Entry, len(row))
		copy(cp[i], row)
	}

	return cp
}

// Clone returns an independent copy of the diagram.
func (d *Diagram) Clone() *Diagram {
	return &Diagram{cells: d.Cells()}
}

// Equal reports whether d and other hold identical cells.
func (d *Diagram) Equal(other *Diagram) bool {
	if d.Size() != other.Size() {
		return false
	}
	for i, row := range d.cells {
		for j, e := range row {
			if other.cells[i][j] != e {
				return false
			}
		}
	}

	return true
}

// FindFirst returns the position of the first occurrence of entry in the
// given row (axis == Rows) or column (axis == Cols), or -1 if absent. For
// a valid diagram X and O each occur exactly once per line, so the result
// is the mark's unique index.
func (d *Diagram) FindFirst(axis Axis, index int, entry Entry) int {
	for k := 0; k < len(d.cells); k++ {
		var e Entry
		if axis == Rows {
			e = d.cells[index][k]
		} else {
			e = d.cells[k][index]
		}
		if e == entry {
			return k
		}
	}

	return -1
}

// MarkSpan returns the indices of the X and O in the given row or column.
func (d *Diagram) MarkSpan(axis Axis, index int) (x, o int) {
	return d.FindFirst(axis, index, X), d.FindFirst(axis, index, O)
}

// inBounds reports whether i is a valid row/column index.
func (d *Diagram) inBounds(i int) bool {
	return i >= 0 && i < len(d.cells)
}

// absIndex flattens (row i, col j) to a column-major absolute index in
// [0, N²): i + j*N. The curve walker uses this encoding so that indices
// within one column are consecutive.
func (d *Diagram) absIndex(i, j int) int {
	return i + j*len(d.cells)
}

// gridIndices inverts absIndex, returning (row, col).
func (d *Diagram) gridIndices(abs int) (i, j int) {
	return abs % len(d.cells), abs / len(d.cells)
}
