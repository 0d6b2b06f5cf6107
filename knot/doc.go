// Package knot relaxes a closed polygonal curve toward a tauter, more
// canonical embedding using a bead/spring model.
//
// What:
//
//   - Knot owns one Bead per curve vertex. Beads are linked to their two
//     cyclic neighbors; the link topology is frozen at construction.
//   - Step runs one relaxation tick: every pair of beads interacts
//     (neighbors attract with a mechanical spring law h·r^(1+β),
//     non-neighbors repel electrostatically with k·r^−(2+α)), an optional
//     anchor force pulls each bead toward its original position, then
//     damped integration moves the bead by at most DMax.
//   - A bead whose adjacent segments would pass within DClose of any
//     non-adjacent segment is reverted to its previous position and
//     flagged stuck for that step. Stuck flags are informational and feed
//     visualization; they clear at the start of the next step.
//   - Reset restores the anchor shape and zeroes all motion state.
//
// Why:
//
//   - Curves extracted from grid diagrams are rectilinear and slack;
//     relaxation pulls them toward the knot's natural rope-like form
//     without letting strands pass through each other.
//
// Complexity:
//
//   - Step: O(n²) pairwise forces plus O(n²) segment-proximity checks.
//     The caller drives relaxation by invoking Step repeatedly; there is
//     no internal scheduler, thread, or cancellation.
//
// Errors:
//
//   - ErrCurveTooShort: fewer than three vertices.
//   - ErrBadParams: non-positive mass or epsilon.
//
// Forces at distances below Epsilon are skipped entirely, so coincident
// beads contribute exactly zero force instead of NaN or Inf.
package knot
