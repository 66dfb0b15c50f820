// File: descent/example_test.go
package descent_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/gridpath/descent"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/wavefront"
)

////////////////////////////////////////////////////////////////////////////////
// Example: LocatePath
////////////////////////////////////////////////////////////////////////////////

// ExampleLocatePath demonstrates the full pipeline on a corridor:
// construct → score → locate. The corridor has a single route, so no tie
// is ever drawn and the output is stable for any seed.
// Scenario:
//
//	S . . . E      5×1, no walls
func ExampleLocatePath() {
	g, _ := grid.New(
		grid.Coordinate{X: 0, Y: 0},
		grid.Coordinate{X: 4, Y: 0},
		nil,
		5, 1,
	)
	scored, _ := wavefront.Score(g)

	path, _ := descent.LocatePath(rand.New(rand.NewSource(1)), scored)
	for i, c := range path {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Printf("(%d,%d)", c.X, c.Y)
	}
	fmt.Println()
	fmt.Println("reached goal:", path[len(path)-1] == scored.End)

	// Output:
	// (0,0) (1,0) (2,0) (3,0) (4,0)
	// reached goal: true
}
