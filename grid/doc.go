// Package grid defines the coordinate, cell, and grid model for 4-connected
// rectangular pathfinding, plus construction and structural validation.
//
// What:
//
//   - Coordinate: an (X,Y) integer pair with unit translations and
//     row-major index mapping (idx = Y*width + X).
//   - Cell: a closed variant set (Empty / Start / End / Impassable), each
//     carrying its row-major Index, its Coordinate, and a distance Score
//     (ScoreUnset until labeled; Impassable cells never receive a score).
//   - Grid: an index-addressable sequence of Cells with declared Width,
//     Height, Start, and End. Built once by New; later stages clone it
//     instead of mutating it.
//   - Neighbors: in-bounds orthogonal neighbor sampling in the fixed order
//     up, left, right, down.
//
// Why:
//
//   - Tile maps: route characters around walls on a game board.
//   - Robotics/planning toys: shortest routes on occupancy grids.
//   - A minimal, pure value model that keeps scoring and path location
//     side-effect-free and trivially testable.
//
// Complexity:
//
//   - New:       O(W×H) time and memory.
//   - Validate:  O(W×H) time, O(1) memory.
//   - Neighbors: O(1) (at most four cells).
//   - Clone:     O(W×H) time and memory.
//
// Errors:
//
//   - ErrBadDimensions:   width or height below 1.
//   - ErrOutOfBounds:     a supplied coordinate lies outside the grid.
//   - ErrStartEqualsEnd:  start and end coincide.
//   - ErrNilGrid:         a nil *Grid was passed to Validate.
//   - ErrCellCount:       len(Cells) differs from Width×Height.
//   - ErrStartCount:      not exactly one Start cell.
//   - ErrEndCount:        not exactly one End cell.
//   - ErrCellMismatch:    a cell's Index or Coord disagrees with its position.
//   - ErrMarkerMismatch:  declared Start/End disagree with the marked cells.
package grid
