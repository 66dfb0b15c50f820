package wavefront

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Score returns a copy of g in which every cell reachable from End carries
// its shortest-path distance from End, in grid steps. Cells the wavefront
// cannot reach — walled-off regions, and everything beyond MaxDistance —
// keep the grid.ScoreUnset sentinel, as do Impassable cells always.
//
// Returns:
//
//   - a new *grid.Grid with score annotations; the argument is not mutated.
//   - err: ErrNilGrid for a nil grid, or the wrapped grid sentinel if g
//     fails its structural validation.
//
// Scoring an already-scored grid relabels the reachable region with
// identical values, so Score is idempotent there.
//
// Complexity: O(W×H) time and memory.
func Score(g *grid.Grid, opts ...Option) (*grid.Grid, error) {
	// 1) Build Options (option constructors validate their own arguments).
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the grid.
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("wavefront: %w", err)
	}

	// 3) Label a clone, never the argument.
	out := g.Clone()

	// 4) Seed the wavefront: End scored 0, everything else unscored.
	endIdx := out.End.Index(out.Width)
	out.Cells[endIdx].Score = 0
	scored := make([]bool, len(out.Cells))
	scored[endIdx] = true
	unscored := len(out.Cells) - 1
	frontier := []grid.Coordinate{out.End}

	// 5) Expand one ring per round until the frontier dies out, nothing is
	//    left to label, or the radius cap is hit.
	for dist := 1; unscored > 0 && len(frontier) > 0 && dist <= cfg.MaxDistance; dist++ {
		// Candidate window: bounding rectangle of the frontier, grown by one.
		// A 4-connected wavefront advances at most one step per round, so the
		// window can never exclude a cell this round could label.
		minX, minY, maxX, maxY := out.Width, out.Height, -1, -1
		if cfg.Pruning {
			for _, c := range frontier {
				minX, maxX = min(minX, c.X), max(maxX, c.X)
				minY, maxY = min(minY, c.Y), max(maxY, c.Y)
			}
			minX, minY, maxX, maxY = minX-1, minY-1, maxX+1, maxY+1
		}

		var next []grid.Coordinate
		for _, c := range frontier {
			for _, nb := range out.Neighbors(c) {
				// First occurrence wins: a cell two frontier members share is
				// labeled once, on its first visit.
				if scored[nb.Index] || !nb.Passable() {
					continue
				}
				if cfg.Pruning &&
					(nb.Coord.X < minX || nb.Coord.X > maxX ||
						nb.Coord.Y < minY || nb.Coord.Y > maxY) {
					continue
				}
				out.Cells[nb.Index].Score = dist
				scored[nb.Index] = true
				unscored--
				next = append(next, nb.Coord)
			}
		}
		frontier = next
	}

	return out, nil
}
