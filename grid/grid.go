package grid

import (
	"fmt"
)

// New constructs an unscored Grid from a start coordinate, an end coordinate,
// a list of impassable coordinates, and the grid dimensions.
//
// Validation (in order):
//  1. width and height must be ≥ 1 (ErrBadDimensions).
//  2. start and end must lie within bounds (ErrOutOfBounds).
//  3. start and end must differ (ErrStartEqualsEnd).
//  4. every impassable coordinate must lie within bounds (ErrOutOfBounds,
//     wrapped with the offending coordinate).
//
// An impassable coordinate equal to start or end is ignored: the marker wins,
// so both termini are always traversable.
//
// The End cell is created with score 0 (the wavefront seed); every other cell
// starts at ScoreUnset.
//
// Complexity: O(W×H) time and memory.
func New(start, end Coordinate, impassable []Coordinate, width, height int) (*Grid, error) {
	// 1) Dimensions.
	if width < 1 || height < 1 {
		return nil, ErrBadDimensions
	}
	g := &Grid{Width: width, Height: height, Start: start, End: end}

	// 2) Termini in bounds.
	if !g.InBounds(start.X, start.Y) || !g.InBounds(end.X, end.Y) {
		return nil, ErrOutOfBounds
	}

	// 3) Distinct termini.
	if start == end {
		return nil, ErrStartEqualsEnd
	}

	// 4) Walls in bounds.
	for _, c := range impassable {
		if !g.InBounds(c.X, c.Y) {
			return nil, fmt.Errorf("grid: impassable (%d,%d): %w", c.X, c.Y, ErrOutOfBounds)
		}
	}

	// Lay out the cell sequence: Empty everywhere, then walls, then markers.
	g.Cells = make([]Cell, width*height)
	for i := range g.Cells {
		g.Cells[i] = Cell{Index: i, Coord: CoordinateAt(i, width), Kind: Empty, Score: ScoreUnset}
	}
	for _, c := range impassable {
		if c == start || c == end {
			continue // marker wins
		}
		g.Cells[c.Index(width)].Kind = Impassable
	}
	g.Cells[start.Index(width)].Kind = Start
	g.Cells[end.Index(width)].Kind = End
	g.Cells[end.Index(width)].Score = 0

	return g, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the cell at c. Caller must ensure c is in bounds.
// Complexity: O(1).
func (g *Grid) At(c Coordinate) Cell {
	return g.Cells[c.Index(g.Width)]
}

// Neighbors returns the in-bounds cells at the four orthogonal offsets of c,
// in the fixed order up, left, right, down. Off-grid offsets are silently
// dropped; impassable neighbors are included (callers filter by Kind/Score).
// Complexity: O(1).
func (g *Grid) Neighbors(c Coordinate) []Cell {
	out := make([]Cell, 0, 4)
	for _, d := range neighborOffsets {
		nx, ny := c.X+d[0], c.Y+d[1]
		if !g.InBounds(nx, ny) {
			continue
		}
		out = append(out, g.Cells[Coordinate{nx, ny}.Index(g.Width)])
	}

	return out
}

// Clone returns a deep copy of the grid. Annotating stages clone first and
// label the copy, keeping the input untouched.
// Complexity: O(W×H) time and memory.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.Cells))
	copy(cells, g.Cells)

	return &Grid{Width: g.Width, Height: g.Height, Start: g.Start, End: g.End, Cells: cells}
}

// Validate checks the structural invariants of the receiver: positive
// dimensions, cell count, exactly one Start and one End cell,
// per-cell index/coordinate consistency, and agreement between the declared
// Start/End coordinates and the marked cells.
//
// Returns the first violated invariant's sentinel error, or nil.
// Complexity: O(W×H) time, O(1) memory.
func (g *Grid) Validate() error {
	if g == nil {
		return ErrNilGrid
	}
	if g.Width < 1 || g.Height < 1 {
		return ErrBadDimensions
	}
	if len(g.Cells) != g.Width*g.Height {
		return ErrCellCount
	}

	starts, ends := 0, 0
	for i, c := range g.Cells {
		if c.Index != i || c.Coord != CoordinateAt(i, g.Width) {
			return fmt.Errorf("grid: cell %d: %w", i, ErrCellMismatch)
		}
		switch c.Kind {
		case Start:
			starts++
			if c.Coord != g.Start {
				return ErrMarkerMismatch
			}
		case End:
			ends++
			if c.Coord != g.End {
				return ErrMarkerMismatch
			}
		}
	}
	if starts != 1 {
		return ErrStartCount
	}
	if ends != 1 {
		return ErrEndCount
	}

	return nil
}

// IsValid reports whether Validate passes. Convenience boolean surface for
// callers that do not need the cause.
func (g *Grid) IsValid() bool { return g.Validate() == nil }
