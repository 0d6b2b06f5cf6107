package curve

import "math"

// PolygonalCurve is an ordered sequence of 3D vertices forming an
// implicitly closed loop: the last vertex connects back to the first.
type PolygonalCurve struct {
	vertices []Vec3
}

// NewPolygonalCurve constructs a closed curve from pts, deep-copying the
// input. Returns ErrTooFewVertices for fewer than three points.
func NewPolygonalCurve(pts []Vec3) (*PolygonalCurve, error) {
	if len(pts) < 3 {
		return nil, ErrTooFewVertices
	}
	vs := make([]Vec3, len(pts))
	copy(vs, pts)

	return &PolygonalCurve{vertices: vs}, nil
}

// Vertices returns a copy of the curve's vertex list.
func (c *PolygonalCurve) Vertices() []Vec3 {
	vs := make([]Vec3, len(c.vertices))
	copy(vs, c.vertices)

	return vs
}

// Vertex returns the vertex at index i, wrapped into range.
func (c *PolygonalCurve) Vertex(i int) Vec3 {
	return c.vertices[c.WrappedIndex(i)]
}

// Len returns the number of vertices in the curve.
func (c *PolygonalCurve) Len() int {
	return len(c.vertices)
}

// WrappedIndex maps any (possibly negative) index onto [0, Len).
func (c *PolygonalCurve) WrappedIndex(i int) int {
	n := len(c.vertices)
	return ((i % n) + n) % n
}

// NeighborIndices returns the indices of the vertices on either side of
// vertex i under cyclic adjacency: the left neighbor of vertex 0 is the
// last vertex, and the right neighbor of the last vertex is vertex 0.
func (c *PolygonalCurve) NeighborIndices(i int) (left, right int) {
	w := c.WrappedIndex(i)
	return c.WrappedIndex(w - 1), c.WrappedIndex(w + 1)
}

// SegmentAt returns the segment from vertex i to vertex i+1 (wrapped).
func (c *PolygonalCurve) SegmentAt(i int) Segment {
	return Segment{
		A: c.vertices[c.WrappedIndex(i)],
		B: c.vertices[c.WrappedIndex(i+1)],
	}
}

// Perimeter returns the total length of the curve: the sum of all Len
// wrapped segment lengths.
func (c *PolygonalCurve) Perimeter() float64 {
	total := 0.0
	for i := range c.vertices {
		total += c.SegmentAt(i).Length()
	}

	return total
}

// PointAt returns the point at parameter t along the closed curve, where
// t=0 is the first vertex and t=1 wraps back around to it. t is clamped
// to [0,1].
func (c *PolygonalCurve) PointAt(t float64) Vec3 {
	if t <= 0 {
		return c.vertices[0]
	}
	if t >= 1 {
		return c.vertices[0]
	}

	target := c.Perimeter() * t
	traversed := 0.0
	for i := range c.vertices {
		seg := c.SegmentAt(i)
		l := seg.Length()
		if traversed+l >= target {
			if l == 0 {
				return seg.A
			}
			return seg.PointAt((target - traversed) / l)
		}
		traversed += l
	}

	// Unreachable for t < 1; guard against accumulated float error.
	return c.vertices[0]
}

// Bounds returns the axis-aligned bounding box of the curve as a
// (min, max) corner pair.
func (c *PolygonalCurve) Bounds() (min, max Vec3) {
	min = Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	max = Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, v := range c.vertices {
		min.X = math.Min(min.X, v.X)
		min.Y = math.Min(min.Y, v.Y)
		min.Z = math.Min(min.Z, v.Z)
		max.X = math.Max(max.X, v.X)
		max.Y = math.Max(max.Y, v.Y)
		max.Z = math.Max(max.Z, v.Z)
	}

	return min, max
}

// Refine resamples the curve at uniform arc-length intervals of at most
// spacing units, returning a new curve. The sample count is
// ceil(Perimeter/spacing), never less than three; original vertices are
// not preserved. Returns ErrBadSpacing if spacing is not positive.
func (c *PolygonalCurve) Refine(spacing float64) (*PolygonalCurve, error) {
	if spacing <= 0 {
		return nil, ErrBadSpacing
	}

	n := int(math.Ceil(c.Perimeter() / spacing))
	if n < 3 {
		n = 3
	}
	pts := make([]Vec3, n)
	for i := 0; i < n; i++ {
		pts[i] = c.PointAt(float64(i) / float64(n))
	}

	return NewPolygonalCurve(pts)
}

// SetVertices replaces the curve's vertices in place. The replacement
// must have the same length as the existing vertex list: the curve's
// topology (cyclic adjacency by index) is fixed at construction.
func (c *PolygonalCurve) SetVertices(vs []Vec3) error {
	if len(vs) != len(c.vertices) {
		return ErrVertexCountMismatch
	}
	copy(c.vertices, vs)

	return nil
}

// Clone returns an independent copy of the curve.
func (c *PolygonalCurve) Clone() *PolygonalCurve {
	return &PolygonalCurve{vertices: c.Vertices()}
}
