// Package gridpath is a small, pure-Go pathfinding toolkit for rectangular,
// 4-connected grids: mark a start, an end, and a set of impassable cells,
// and get back a walkable route.
//
// 🚀 What is gridpath?
//
//	A deterministic two-phase engine split across three subpackages:
//		• grid/      — the Coordinate/Cell/Grid model, construction & validation
//		• wavefront/ — distance labeling: BFS wavefront expansion seeded at End
//		• descent/   — path location: greedy score descent with random tie-breaks
//
// ✨ Why choose gridpath?
//
//   - Pure functions — scoring returns a new Grid, nothing shared is mutated
//   - No hidden randomness — tie-breaking consumes an injected source, so
//     every path is replayable from a seed
//   - Data results, not exceptions — an unreachable goal yields a partial
//     path you can inspect, never a panic
//   - Pure Go — no cgo, no runtime deps
//
// Typical flow:
//
//	g, err := grid.New(start, end, walls, w, h)   // construct
//	scored, err := wavefront.Score(g)             // label distances from End
//	path, err := descent.LocatePath(rng, scored)  // walk the gradient down
//
// A path reaches the goal iff its last coordinate equals g.End; on success
// its length is exactly the End cell's score + 1.
//
// Dive into examples/ for runnable scenarios, and each subpackage's doc.go
// for contracts, complexity, and error sets.
//
//	go get github.com/katalvlaran/gridpath
package gridpath
