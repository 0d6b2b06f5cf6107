package tube

import (
	"errors"
	"math"

	"github.com/knotworks/gridknot/curve"
)

var (
	// ErrBadRadius indicates a non-positive tube radius.
	ErrBadRadius = errors.New("tube: radius must be positive")
	// ErrBadSegments indicates a ring with fewer than three segments.
	ErrBadSegments = errors.New("tube: at least three segments per ring are required")
)

// Generate extrudes c into a tube of the given radius, with segments
// vertices per circular cross-section. It returns a flat triangle list:
// every three consecutive points form one triangle of the tube's surface.
func Generate(c *curve.PolygonalCurve, radius float64, segments int) ([]curve.Vec3, error) {
	if radius <= 0 {
		return nil, ErrBadRadius
	}
	if segments < 3 {
		return nil, ErrBadSegments
	}

	n := c.Len()
	rings := make([]curve.Vec3, 0, (n+1)*segments)
	var vPrev curve.Vec3

	// One ring per vertex plus a repeat of the first to close the loop.
	for i := 0; i <= n; i++ {
		center := c.Vertex(i)
		left, right := c.NeighborIndices(i)

		towardsL := c.Vertex(left).Sub(center).Normalize()
		towardsR := c.Vertex(right).Sub(center).Normalize()

		// Tangent from the neighbor directions; at a straight section the
		// difference vanishes, so fall back to the segment direction.
		diff := towardsR.Sub(towardsL)
		var t curve.Vec3
		if diff.Dot(diff) > 0 {
			t = diff.Normalize()
		} else {
			t = towardsL.Scale(-1)
		}

		// Ring basis: seed u from a fixed axis, then parallel-transport
		// the previous v to keep consecutive rings aligned.
		var u curve.Vec3
		if i == 0 {
			u = curve.Vec3{Z: 1}.Cross(t).Normalize()
			if u.Length() == 0 {
				// Tangent parallel to z; seed from another axis.
				u = curve.Vec3{X: 1}.Cross(t).Normalize()
			}
		} else {
			u = t.Cross(vPrev).Normalize()
		}
		v := u.Cross(t).Normalize()

		for s := 0; s < segments; s++ {
			theta := 2 * math.Pi * float64(s) / float64(segments)
			offset := u.Scale(radius * math.Cos(theta)).Add(v.Scale(radius * math.Sin(theta)))
			rings = append(rings, center.Add(offset))
		}

		vPrev = v
	}

	numRings := len(rings) / segments
	triangles := make([]curve.Vec3, 0, (numRings-1)*segments*6)
	for ring := 0; ring < numRings-1; ring++ {
		next := ring + 1
		for s := 0; s < segments; s++ {
			sn := (s + 1) % segments

			a := rings[ring*segments+s]
			b := rings[next*segments+s]
			cTop := rings[next*segments+sn]
			dTop := rings[ring*segments+sn]

			triangles = append(triangles, a, b, cTop)
			triangles = append(triangles, a, cTop, dTop)
		}
	}

	return triangles, nil
}
