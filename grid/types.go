// Package grid defines core types and sentinel errors for the grid model
// of github.com/katalvlaran/gridpath.
package grid

import (
	"errors"
	"math"
)

// Sentinel errors for grid construction and validation.
var (
	// ErrBadDimensions indicates width or height below 1.
	ErrBadDimensions = errors.New("grid: width and height must be at least 1")
	// ErrOutOfBounds indicates a coordinate outside [0,width) x [0,height).
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrStartEqualsEnd indicates coinciding start and end coordinates.
	ErrStartEqualsEnd = errors.New("grid: start and end must differ")
	// ErrNilGrid indicates a nil *Grid receiver or argument.
	ErrNilGrid = errors.New("grid: grid is nil")
	// ErrCellCount indicates len(Cells) != Width*Height.
	ErrCellCount = errors.New("grid: cell count does not match width*height")
	// ErrStartCount indicates the grid does not hold exactly one Start cell.
	ErrStartCount = errors.New("grid: exactly one Start cell required")
	// ErrEndCount indicates the grid does not hold exactly one End cell.
	ErrEndCount = errors.New("grid: exactly one End cell required")
	// ErrCellMismatch indicates a cell whose Index or Coord disagrees with
	// its position in the sequence.
	ErrCellMismatch = errors.New("grid: cell index/coordinate mismatch")
	// ErrMarkerMismatch indicates declared Start/End coordinates that do not
	// match the marked Start/End cells.
	ErrMarkerMismatch = errors.New("grid: declared start/end do not match marked cells")
)

// ScoreUnset is the sentinel "infinitely far" score carried by every cell the
// wavefront has not labeled, and permanently by Impassable cells. Any real
// score compares strictly less than it, so "strictly closer to the goal"
// checks need no special cases.
const ScoreUnset = math.MaxInt

// Coordinate is an (X,Y) position on a grid. It is a value type: compare
// with ==; translations return new values.
type Coordinate struct {
	X, Y int
}

// Up returns the coordinate one cell above (Y-1).
func (c Coordinate) Up() Coordinate { return Coordinate{c.X, c.Y - 1} }

// Down returns the coordinate one cell below (Y+1).
func (c Coordinate) Down() Coordinate { return Coordinate{c.X, c.Y + 1} }

// Left returns the coordinate one cell to the left (X-1).
func (c Coordinate) Left() Coordinate { return Coordinate{c.X - 1, c.Y} }

// Right returns the coordinate one cell to the right (X+1).
func (c Coordinate) Right() Coordinate { return Coordinate{c.X + 1, c.Y} }

// Index maps the coordinate to its row-major index: Y*width + X.
// Complexity: O(1).
func (c Coordinate) Index(width int) int { return c.Y*width + c.X }

// CoordinateAt converts a row-major index back to a Coordinate.
// Complexity: O(1).
func CoordinateAt(idx, width int) Coordinate {
	return Coordinate{X: idx % width, Y: idx / width}
}

// CellKind is the closed discriminant over the four cell variants.
// Dispatch on Kind, never on dynamic types.
type CellKind int

const (
	// Empty is a passable cell with no marker; unscored until labeled.
	Empty CellKind = iota
	// Start is the search origin; unscored until labeled.
	Start
	// End is the search goal; its score is fixed at 0, seeding the wavefront.
	End
	// Impassable is a wall: never scored, never traversed.
	Impassable
)

// String returns the kind's name, for diagnostics and test output.
func (k CellKind) String() string {
	switch k {
	case Empty:
		return "Empty"
	case Start:
		return "Start"
	case End:
		return "End"
	case Impassable:
		return "Impassable"
	default:
		return "Unknown"
	}
}

// Cell is one grid square. Index always equals Coord.Index(gridWidth) for
// the grid that owns it. Score is ScoreUnset until the wavefront labels the
// cell; Impassable cells keep ScoreUnset forever.
type Cell struct {
	Index int
	Coord Coordinate
	Kind  CellKind
	Score int
}

// Scored reports whether the cell carries a real distance label.
func (c Cell) Scored() bool { return c.Score != ScoreUnset }

// Passable reports whether the wavefront and the path may enter the cell.
func (c Cell) Passable() bool { return c.Kind != Impassable }

// Grid is a rectangular field of Cells in row-major order, immutable after
// construction: stages that annotate scores operate on a Clone, never on a
// shared value. Exactly one Start and one End cell exist in a valid Grid.
type Grid struct {
	Width, Height int
	Start, End    Coordinate
	Cells         []Cell
}

// neighborOffsets enumerates the four orthogonal offsets in the fixed
// sampling order: up, left, right, down.
var neighborOffsets = [4][2]int{{0, -1}, {-1, 0}, {1, 0}, {0, 1}}
