// Package grid implements knot grid diagrams and the Cromwell moves that
// edit them without changing the underlying knot type.
//
// What:
//
//   - Diagram wraps a square matrix of X / O / blank cells in which every
//     row and every column holds exactly one X and exactly one O.
//   - Translate cyclically rotates all rows or columns by one position.
//   - Commute exchanges two adjacent, non-interleaved rows or columns.
//   - Stabilize replaces a single mark with a 2×2 sub-block, growing the
//     grid by one row and one column; Destabilize is its inverse.
//   - GenerateCurve walks the X/O connectivity and produces a closed 3D
//     polyline with crossing vertices lifted out of the plane (vertical
//     strands pass over horizontal ones).
//   - Parse / Encode read and write the plain CSV encoding: one row per
//     line, fields "x", "o", or a single space.
//
// Why:
//
//   - Grid diagrams give knots a purely combinatorial representation;
//     the four Cromwell moves generate all diagrams of a given knot.
//   - The extracted curve feeds the knot package's relaxation engine.
//
// Complexity (N = grid size):
//
//   - Validation, Translate, Commute: O(N²) / O(N).
//   - Stabilize, Destabilize: O(N²) (the matrix is rebuilt).
//   - GenerateCurve: O(N²) traversal plus O(N²) crossing detection.
//
// Errors:
//
//   - ErrInvalidDiagram: bad shape, bad token, or invariant violation at
//     construction time.
//   - ErrCromwell and its wrapped variants (ErrCommuteIndex,
//     ErrInterleaved, ErrNoMark, ErrBadBlock, ErrIndexOutOfRange): a
//     move's precondition failed; the diagram is left unchanged.
//   - ErrCurveConstruction: the traversal visited an unexpected number of
//     cells. Unreachable for a validated diagram; checked defensively.
package grid
