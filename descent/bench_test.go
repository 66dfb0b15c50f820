package descent_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/descent"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/wavefront"
)

// BenchmarkLocatePath_Open measures a corner-to-corner walk across a fully
// open 1000×1000 scored grid, the plateau-heaviest layout (a draw on nearly
// every step).
func BenchmarkLocatePath_Open(b *testing.B) {
	const n = 1000
	g, err := grid.New(grid.Coordinate{X: 0, Y: 0}, grid.Coordinate{X: n - 1, Y: n - 1}, nil, n, n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	scored, err := wavefront.Score(g)
	if err != nil {
		b.Fatalf("setup Score failed: %v", err)
	}
	rng := rand.New(rand.NewSource(42))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = descent.LocatePath(rng, scored); err != nil {
			b.Fatal(err)
		}
	}
}
