// Package descent walks a scored grid from Start down the distance gradient
// to End, breaking score ties with an injected randomness source.
//
// What:
//
//   - LocatePath starts at Start with the ScoreUnset sentinel as its current
//     score, so any labeled neighbor qualifies as an improvement. Each step
//     moves to a neighbor whose score is strictly smaller than the current
//     one; among several equally-qualified neighbors one is drawn uniformly
//     via the supplied Rand.
//   - The returned sequence always begins at Start. If it ends at End, the
//     route is complete and its length equals End's score + 1. If no
//     strictly-closer neighbor exists — Start was never labeled, or a local
//     dead end was hit — the walk stops and the accumulated partial path is
//     returned as a value, never as an error.
//
// Why:
//
//   - Separating tie-breaking into an explicit Rand capability keeps the walk
//     replayable: the same grid and the same seeded source always yield the
//     same path, which makes randomized routes unit-testable.
//   - Equally short routes stay equally likely, so repeated walks spread
//     traffic across score plateaus instead of always hugging one side.
//
// Complexity:
//
//   - Time:  O(P) where P ≤ W×H is the path length — scores decrease
//     strictly, so no cell is visited twice.
//   - Memory: O(P) for the accumulated path.
//
// Errors:
//
//   - ErrNilRand: no randomness source was supplied.
//   - ErrNilGrid: a nil grid was passed.
//   - structurally invalid grids are rejected with the wrapped grid sentinel.
//
// Unreachable goals are NOT errors: detect them by comparing the last
// element of the returned path against the grid's End coordinate.
package descent
