package knot_test

import (
	"fmt"
	"strings"

	"github.com/knotworks/gridknot/knot"
)

// ExampleLoadParams shows a preset overriding only two fields while the
// rest keep their defaults.
func ExampleLoadParams() {
	preset := `
damping: 0.5
anchor_weight: 0
`
	p, err := knot.LoadParams(strings.NewReader(preset))
	if err != nil {
		fmt.Println("load:", err)
		return
	}

	fmt.Printf("damping: %.2f\n", p.Damping)
	fmt.Printf("anchor_weight: %.2f\n", p.AnchorWeight)
	fmt.Printf("mass: %.2f\n", p.Mass)

	// Output:
	// damping: 0.50
	// anchor_weight: 0.00
	// mass: 1.00
}
