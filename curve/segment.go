package curve

import "math"

// parallelEps bounds the determinant below which two segments are treated
// as parallel in the closest-approach computation.
const parallelEps = 1e-9

// Segment is a line segment between two points in 3-space.
type Segment struct {
	A, B Vec3
}

// Length returns the scalar length of the segment.
func (s Segment) Length() float64 {
	return s.A.Distance(s.B)
}

// Midpoint returns the point halfway between the segment's endpoints.
func (s Segment) Midpoint() Vec3 {
	return s.A.Add(s.B).Scale(0.5)
}

// PointAt returns the point at parameter t along the segment, where t=0
// corresponds to A and t=1 corresponds to B.
func (s Segment) PointAt(t float64) Vec3 {
	return s.A.Lerp(s.B, t)
}

// ClosestApproach returns the vector between the pair of closest points on
// s and other, with both parametric positions clamped to [0,1]. When the
// segments are nearly parallel one parameter is fixed at zero and the
// other solved directly.
func (s Segment) ClosestApproach(other Segment) Vec3 {
	u := s.B.Sub(s.A)
	v := other.B.Sub(other.A)
	w := s.A.Sub(other.A)

	a := u.Dot(u)
	b := u.Dot(v)
	c := v.Dot(v)
	d := u.Dot(w)
	e := v.Dot(w)
	det := a*c - b*b

	sN, sD := 0.0, det
	tN, tD := 0.0, det

	if det < parallelEps {
		// Near-parallel: pin s to its A endpoint.
		sN, sD = 0, 1
		tN, tD = e, c
	} else {
		sN = b*e - c*d
		tN = a*e - b*d

		if sN < 0 {
			sN = 0
			tN, tD = e, c
		} else if sN > sD {
			sN = sD
			tN, tD = e+b, c
		}
	}

	if tN < 0 {
		tN = 0
		switch {
		case -d < 0:
			sN = 0
		case -d > a:
			sN = sD
		default:
			sN, sD = -d, a
		}
	} else if tN > tD {
		tN = tD
		switch {
		case -d+b < 0:
			sN = 0
		case -d+b > a:
			sN = sD
		default:
			sN, sD = -d+b, a
		}
	}

	sc := 0.0
	if math.Abs(sN) > parallelEps {
		sc = sN / sD
	}
	tc := 0.0
	if math.Abs(tN) > parallelEps {
		tc = tN / tD
	}

	return w.Add(u.Scale(sc)).Sub(v.Scale(tc))
}

// DistanceTo returns the shortest distance between s and other.
func (s Segment) DistanceTo(other Segment) float64 {
	return s.ClosestApproach(other).Length()
}
