package grid

// This file defines the cell, axis, direction, and corner types shared by
// the diagram operations.

// Entry is the content of a single grid cell.
type Entry int

const (
	// Blank marks an empty cell.
	Blank Entry = iota
	// X marks an x-cell.
	X
	// O marks an o-cell.
	O
)

// Opposite returns the other mark type. Blank is its own opposite.
func (e Entry) Opposite() Entry {
	switch e {
	case X:
		return O
	case O:
		return X
	default:
		return Blank
	}
}

// String returns the CSV token for the entry: "x", "o", or " ".
func (e Entry) String() string {
	switch e {
	case X:
		return "x"
	case O:
		return "o"
	default:
		return " "
	}
}

// Axis selects rows or columns for axial operations.
type Axis int

const (
	// Rows selects the row axis.
	Rows Axis = iota
	// Cols selects the column axis.
	Cols
)

// String returns "row" or "col".
func (a Axis) String() string {
	if a == Rows {
		return "row"
	}

	return "col"
}

// Direction is one of the four cyclic translation directions.
type Direction int

const (
	// Up rotates all rows one position toward row 0.
	Up Direction = iota
	// Down rotates all rows one position away from row 0.
	Down
	// Left rotates all columns one position toward column 0.
	Left
	// Right rotates all columns one position away from column 0.
	Right
)

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "right"
	}
}

// Corner names the corner of a stabilization's 2×2 sub-block that is left
// blank (the cell the original mark vacated).
type Corner int

const (
	// NW is the north-west (upper-left) corner.
	NW Corner = iota
	// SW is the south-west (lower-left) corner.
	SW
	// NE is the north-east (upper-right) corner.
	NE
	// SE is the south-east (lower-right) corner.
	SE
)

// String returns the compass abbreviation for the corner.
func (c Corner) String() string {
	switch c {
	case NW:
		return "NW"
	case SW:
		return "SW"
	case NE:
		return "NE"
	default:
		return "SE"
	}
}
