package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDiagram indicates a diagram that is not square, contains an
	// unrecognized token, or violates the one-X-one-O-per-row/column rule.
	ErrInvalidDiagram = errors.New("grid: invalid diagram - each row and column must contain exactly one x and one o")

	// ErrCromwell is the family sentinel for every failed Cromwell move
	// precondition. The wrapped variants below all satisfy
	// errors.Is(err, ErrCromwell).
	ErrCromwell = errors.New("grid: cromwell move rejected")

	// ErrCommuteIndex indicates commutation on the last row/column, which
	// has no successor to exchange with.
	ErrCommuteIndex = fmt.Errorf("%w: no adjacent row or column to exchange with", ErrCromwell)
	// ErrInterleaved indicates commutation of two interleaved rows/columns.
	ErrInterleaved = fmt.Errorf("%w: rows or columns are interleaved", ErrCromwell)
	// ErrNoMark indicates stabilization of a blank cell.
	ErrNoMark = fmt.Errorf("%w: no mark at the specified cell", ErrCromwell)
	// ErrBadBlock indicates destabilization of a 2×2 block that is not one
	// blank, an adjacent same-mark pair, and one opposite mark.
	ErrBadBlock = fmt.Errorf("%w: 2x2 block is not destabilizable", ErrCromwell)
	// ErrIndexOutOfRange indicates a row/column index outside the grid.
	ErrIndexOutOfRange = fmt.Errorf("%w: index out of range", ErrCromwell)

	// ErrCurveConstruction indicates the grid walk visited an unexpected
	// number of cells before closing. Should be unreachable for a
	// validated diagram.
	ErrCurveConstruction = errors.New("grid: curve traversal produced an unexpected vertex count")
)
