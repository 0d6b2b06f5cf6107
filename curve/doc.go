// Package curve provides the 3D geometry primitives shared by the grid
// walker and the relaxation engine: vectors, line segments, and closed
// polygonal curves.
//
// What:
//
//   - Vec3 — a minimal float64 3-vector with the usual algebra.
//   - Segment — a line segment with length, midpoint, interpolation, and
//     the clamped closest-approach distance to another segment.
//   - PolygonalCurve — an ordered, implicitly closed vertex loop with
//     wrapped indexing, perimeter, arc-length parameterization PointAt,
//     axis-aligned bounds, and uniform arc-length refinement.
//
// Why:
//
//   - The knot pipeline hands a PolygonalCurve from diagram extraction to
//     relaxation to tube meshing; every stage relies on the same cyclic
//     adjacency and segment geometry.
//
// Complexity:
//
//   - Segment.DistanceTo: O(1).
//   - Perimeter, PointAt, Bounds, Refine: O(n) in the vertex count.
//
// Errors:
//
//   - ErrTooFewVertices: a closed curve needs at least three vertices.
//   - ErrBadSpacing: refinement spacing must be positive.
//   - ErrVertexCountMismatch: SetVertices must preserve the vertex count.
package curve
