// Package wavefront labels every reachable cell of a grid with its
// shortest-path distance, in grid steps, from the End cell.
//
// What:
//
//   - Score runs a breadth-first wavefront expansion seeded at End (score 0).
//     Each round labels the still-unscored, passable neighbors of the
//     previous round's frontier with the round counter (1, 2, 3, …).
//   - Candidates are restricted each round to the bounding rectangle of the
//     current frontier expanded by one cell — a pruning step that cannot
//     exclude a reachable cell, since a 4-connected wavefront grows by at
//     most one step per round.
//   - Scoring is pure: the input grid is cloned and the clone is labeled;
//     the argument is never mutated.
//
// Why:
//
//   - The labeling turns path location into a trivial gradient walk: from any
//     scored cell, stepping to any strictly-smaller-scored neighbor moves one
//     step closer to End.
//   - Disconnected regions fall out naturally: cells the wavefront never
//     reaches simply keep the ScoreUnset sentinel, and callers detect an
//     unreachable Start by checking its score.
//
// Complexity:
//
//   - Time:  O(W×H) — every cell is labeled at most once and each label
//     inspects at most four neighbors.
//   - Memory: O(W×H) for the cloned grid and the frontier.
//   - Rounds: at most W×H (single-cell-wide serpentine); typically
//     O(max(W,H)).
//
// Options:
//
//   - WithMaxDistance(d): stop after labeling distance d; farther cells keep
//     ScoreUnset.
//   - WithoutPruning(): disable the bounding-rectangle restriction and scan
//     the full unscored set each round. The labeling must be identical with
//     or without it; the option exists so tests can assert exactly that on
//     pathological layouts.
//
// Errors:
//
//   - ErrNilGrid: a nil grid was passed.
//   - structurally invalid grids are rejected with the wrapped grid sentinel
//     (use errors.Is against the grid package errors).
package wavefront
