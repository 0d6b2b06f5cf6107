package knot

import "github.com/knotworks/gridknot/curve"

// Bead is a simulated point mass bound to one curve vertex. Its neighbor
// indices come from the curve's cyclic adjacency and never change during
// relaxation; topology is frozen until the diagram changes and the knot
// is rebuilt.
type Bead struct {
	// Position is the bead's current location.
	Position curve.Vec3
	// Prev is the position before the most recent integration, used to
	// revert a move that would bring segments too close.
	Prev curve.Vec3
	// Velocity and Acceleration hold the integration state.
	Velocity     curve.Vec3
	Acceleration curve.Vec3

	// Index is the bead's (stable) vertex index in the curve.
	Index int
	// NeighborL and NeighborR are the cyclic neighbor indices.
	NeighborL int
	NeighborR int

	// Stuck reports that the bead was reverted this step because one of
	// its adjacent segments came within DClose of a non-adjacent segment.
	Stuck bool
}

// IsNeighbor reports whether the bead at index other is one of b's two
// cyclic neighbors.
func (b *Bead) IsNeighbor(other int) bool {
	return other == b.NeighborL || other == b.NeighborR
}
