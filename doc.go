// Package gridknot is a toolkit for knot theory on grid diagrams — from
// the combinatorial moves that reshape a diagram to a physical model that
// pulls the resulting space curve taut.
//
// What is gridknot?
//
//	A pure-algorithms library organized under four subpackages:
//		• grid/  — N×N grid diagrams, the one-X-one-O invariant, and the
//		           four Cromwell moves (translation, commutation,
//		           stabilization, destabilization)
//		• curve/ — 3D segments and closed polygonal curves: perimeter,
//		           arc-length parameterization, closest approach between
//		           segments, uniform refinement
//		• knot/  — a bead/spring relaxation engine that evolves the
//		           extracted curve toward a tauter embedding
//		• tube/  — tube-mesh vertex generation for display consumers
//
// A grid diagram encodes a knot projection: every row and every column of
// the grid holds exactly one X and one O, and connecting each X to the O
// sharing its column, then each O to the X sharing its row, traces out a
// closed loop. Vertical strands pass over horizontal ones. The Cromwell
// moves edit the grid without changing the underlying knot type.
//
// Typical flow:
//
//	d, err := grid.ParseFile("trefoil.csv")
//	c, err := d.GenerateCurve()
//	k, err := knot.New(c, knot.DefaultSimulationParams())
//	for i := 0; i < 1000; i++ {
//		k.Step()
//	}
//	relaxed := k.Rope()
//
// The cmd/gridknot CLI wraps the same pipeline for quick experiments.
package gridknot
