package descent

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// LocatePath returns an ordered coordinate sequence from the grid's Start
// toward its End by descending the score gradient produced by the wavefront
// stage. Ties between equally-scored candidates are broken by a uniform draw
// from r, so the walk is fully deterministic for a deterministic source.
//
// Returns:
//
//   - path: begins at Start; ends at End on success (length = End score + 1).
//     A path whose last element is not End is a partial path: the goal is
//     unreachable from where the walk stopped. Passing an unscored grid
//     yields [Start] — no neighbor ever improves on the sentinel.
//   - err: ErrNilRand / ErrNilGrid for nil inputs, or the wrapped grid
//     sentinel if g fails structural validation. Unreachability is never
//     an error.
//
// The grid is read, never written; paths over distinct grids may be located
// concurrently as long as each call owns its Rand.
//
// Complexity: O(P) time and memory, P = path length.
func LocatePath(r Rand, g *grid.Grid) ([]grid.Coordinate, error) {
	// 1) Validate inputs.
	if r == nil {
		return nil, ErrNilRand
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("descent: %w", err)
	}

	// 2) Walk downhill. The sentinel start score makes any labeled neighbor
	//    an improvement on the first step; unscored and Impassable cells
	//    carry the sentinel themselves, so the strict comparison filters
	//    them at every step with no special cases.
	cur := g.Start
	curScore := grid.ScoreUnset
	path := []grid.Coordinate{cur}

	for cur != g.End {
		var closer []grid.Cell
		for _, nb := range g.Neighbors(cur) {
			if nb.Score < curScore {
				closer = append(closer, nb)
			}
		}

		switch len(closer) {
		case 0:
			// Dead end: the goal is unreachable from here. Hand back what
			// was walked so far as a partial path.
			return path, nil
		case 1:
			cur, curScore = closer[0].Coord, closer[0].Score
		default:
			// Score plateau: draw uniformly among the qualified neighbors.
			pick := closer[r.Intn(len(closer))]
			cur, curScore = pick.Coord, pick.Score
		}
		path = append(path, cur)
	}

	return path, nil
}
