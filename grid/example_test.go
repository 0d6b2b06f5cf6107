package grid_test

import (
	"fmt"
	"strings"

	"github.com/knotworks/gridknot/grid"
)

// ExampleParse loads the smallest diagram and rotates it.
func ExampleParse() {
	d, _ := grid.Parse(strings.NewReader("x,o\no,x\n"))
	d.Translate(grid.Up)
	fmt.Print(d)

	// Output:
	// o,x
	// x,o
}

// ExampleDiagram_Stabilize grows a 2×2 unknot into a 3×3 diagram by
// replacing the X at (0,0) with a 2×2 sub-block whose NW corner is blank.
func ExampleDiagram_Stabilize() {
	d, _ := grid.Parse(strings.NewReader("x,o\no,x\n"))
	if err := d.Stabilize(grid.NW, 0, 0); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("size:", d.Size())
	fmt.Println("block:", d.At(0, 0), d.At(0, 1), d.At(1, 0), d.At(1, 1))

	// Output:
	// size: 3
	// block:   x x o
}

// ExampleDiagram_GenerateCurve extracts the unknot's square curve.
func ExampleDiagram_GenerateCurve() {
	d, _ := grid.Parse(strings.NewReader("x,o\no,x\n"))
	c, _ := d.GenerateCurve()
	for _, v := range c.Vertices() {
		fmt.Printf("(%g, %g, %g)\n", v.X, v.Y, v.Z)
	}

	// Output:
	// (-1, 1, 0)
	// (-1, 0, 0)
	// (0, 0, 0)
	// (0, 1, 0)
}
