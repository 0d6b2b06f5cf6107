package curve

import "errors"

var (
	// ErrTooFewVertices indicates a closed curve with fewer than three vertices.
	ErrTooFewVertices = errors.New("curve: a closed curve requires at least three vertices")
	// ErrBadSpacing indicates a non-positive refinement spacing.
	ErrBadSpacing = errors.New("curve: refinement spacing must be positive")
	// ErrVertexCountMismatch indicates SetVertices was called with a slice
	// whose length differs from the curve's vertex count.
	ErrVertexCountMismatch = errors.New("curve: replacement vertices must match the existing vertex count")
)
