package knot

import (
	"errors"
	"math"

	"github.com/knotworks/gridknot/curve"
)

// ErrCurveTooShort indicates a curve with too few vertices to relax.
var ErrCurveTooShort = errors.New("knot: curve must have at least three vertices")

// Knot treats a closed curve as a mass/spring system: one bead per
// vertex, cyclic neighbor links, and an immutable anchor copy of the
// starting shape. The rope curve is rewritten from bead positions after
// every step.
type Knot struct {
	rope    *curve.PolygonalCurve
	anchors *curve.PolygonalCurve
	beads   []Bead
	params  SimulationParams
}

// New builds a Knot from a closed curve. The beads' neighbor indices are
// fixed from the curve's cyclic adjacency; the anchor copy preserves the
// starting shape for Reset and the anchor-restoring force. Returns
// ErrCurveTooShort or ErrBadParams.
func New(c *curve.PolygonalCurve, params SimulationParams) (*Knot, error) {
	if c == nil || c.Len() < 3 {
		return nil, ErrCurveTooShort
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	rope := c.Clone()
	verts := rope.Vertices()
	beads := make([]Bead, len(verts))
	for i, v := range verts {
		l, r := rope.NeighborIndices(i)
		beads[i] = Bead{
			Position:  v,
			Prev:      v,
			Index:     i,
			NeighborL: l,
			NeighborR: r,
		}
	}

	return &Knot{
		rope:    rope,
		anchors: c.Clone(),
		beads:   beads,
		params:  params,
	}, nil
}

// Rope returns the current (relaxing) curve. The engine rewrites its
// vertices after every Step; callers should treat it as read-only.
func (k *Knot) Rope() *curve.PolygonalCurve {
	return k.rope
}

// Anchors returns a copy of the anchor (rest-shape) curve.
func (k *Knot) Anchors() *curve.PolygonalCurve {
	return k.anchors.Clone()
}

// Beads returns a copy of the bead states, for inspection.
func (k *Knot) Beads() []Bead {
	bs := make([]Bead, len(k.beads))
	copy(bs, k.beads)

	return bs
}

// Stuck returns the per-bead lock flags from the most recent step, for
// visualization.
func (k *Knot) Stuck() []bool {
	flags := make([]bool, len(k.beads))
	for i := range k.beads {
		flags[i] = k.beads[i].Stuck
	}

	return flags
}

// Params returns the current simulation parameters.
func (k *Knot) Params() SimulationParams {
	return k.params
}

// SetParams replaces the simulation parameters. Returns ErrBadParams and
// leaves the old parameters in place if the new set is invalid.
func (k *Knot) SetParams(p SimulationParams) error {
	if err := p.Validate(); err != nil {
		return err
	}
	k.params = p

	return nil
}

// Step advances the simulation by one tick. Forces are computed from a
// snapshot of the previous step's positions, so the update is
// conceptually simultaneous. Per bead: accumulate pairwise forces and the
// anchor pull, integrate with damping and the DMax displacement clamp,
// then revert and flag the bead if its adjacent segments would pass
// within DClose of any non-adjacent segment. Finally the rope's vertices
// are rebuilt from bead positions.
func (k *Knot) Step() {
	p := k.params
	anchorVerts := k.anchors.Vertices()

	// Snapshot so every force reads pre-step positions.
	snapshot := make([]curve.Vec3, len(k.beads))
	for i := range k.beads {
		snapshot[i] = k.beads[i].Position
		k.beads[i].Stuck = false
	}

	for i := range k.beads {
		bead := &k.beads[i]

		var force curve.Vec3
		for j := range k.beads {
			if j == i {
				continue
			}
			if bead.IsNeighbor(j) {
				// Mechanical spring: pull toward the neighbor.
				dir := snapshot[j].Sub(snapshot[i])
				r := dir.Length()
				if r < p.Epsilon {
					continue
				}
				force = force.Add(dir.Normalize().Scale(p.H * math.Pow(r, 1+p.Beta)))
			} else {
				// Electrostatic repulsion: push away from the other bead.
				dir := snapshot[i].Sub(snapshot[j])
				r := dir.Length()
				if r < p.Epsilon {
					continue
				}
				force = force.Add(dir.Normalize().Scale(p.K * math.Pow(r, -(2 + p.Alpha))))
			}
		}

		if p.AnchorWeight > 0 {
			dir := anchorVerts[i].Sub(snapshot[i])
			r := dir.Length()
			if r >= p.Epsilon {
				pull := dir.Normalize().Scale(p.H * math.Pow(r, 1+p.Beta))
				force = force.Add(pull.Scale(p.AnchorWeight))
			}
		}

		k.integrate(bead, force)

		if k.tooClose(i, snapshot) {
			bead.Position = bead.Prev
			bead.Stuck = true
		}
	}

	verts := make([]curve.Vec3, len(k.beads))
	for i := range k.beads {
		verts[i] = k.beads[i].Position
	}
	_ = k.rope.SetVertices(verts) // lengths match by construction
}

// integrate applies the accumulated force to one bead: damped velocity
// update, acceleration reset, and a displacement clamped to DMax.
func (k *Knot) integrate(bead *Bead, force curve.Vec3) {
	p := k.params

	bead.Acceleration = bead.Acceleration.Add(force.Scale(1 / p.Mass))
	bead.Velocity = bead.Velocity.Add(bead.Acceleration).Scale(p.Damping)
	bead.Acceleration = curve.Vec3{}

	disp := bead.Velocity
	if l := disp.Length(); l > p.DMax && l > 0 {
		disp = disp.Scale(p.DMax / l)
	}

	bead.Prev = bead.Position
	bead.Position = bead.Position.Add(disp)
}

// tooClose reports whether either segment adjacent to bead i (at its
// tentative position) comes within DClose of any segment that does not
// share an endpoint with them. Segment m spans vertices m and m+1; the
// excluded segments are i-2, i-1, i, and i+1.
func (k *Knot) tooClose(i int, snapshot []curve.Vec3) bool {
	n := len(k.beads)
	wrap := func(x int) int { return ((x % n) + n) % n }

	pos := func(j int) curve.Vec3 {
		if j == i {
			return k.beads[i].Position
		}
		return snapshot[j]
	}

	adjacent := [2]curve.Segment{
		{A: pos(wrap(i - 1)), B: pos(i)},
		{A: pos(i), B: pos(wrap(i + 1))},
	}

	skip := map[int]bool{
		wrap(i - 2): true,
		wrap(i - 1): true,
		wrap(i):     true,
		wrap(i + 1): true,
	}

	for m := 0; m < n; m++ {
		if skip[m] {
			continue
		}
		other := curve.Segment{A: snapshot[m], B: snapshot[wrap(m+1)]}
		for _, adj := range adjacent {
			if adj.DistanceTo(other) < k.params.DClose {
				return true
			}
		}
	}

	return false
}

// Reset restores every bead to its anchor position, zeroes all motion
// state, clears the lock flags, and rewrites the rope to match the
// anchor curve exactly.
func (k *Knot) Reset() {
	anchorVerts := k.anchors.Vertices()
	for i := range k.beads {
		k.beads[i].Position = anchorVerts[i]
		k.beads[i].Prev = anchorVerts[i]
		k.beads[i].Velocity = curve.Vec3{}
		k.beads[i].Acceleration = curve.Vec3{}
		k.beads[i].Stuck = false
	}
	_ = k.rope.SetVertices(anchorVerts)
}
