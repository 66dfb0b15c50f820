// Package descent defines the randomness capability and sentinel errors for
// the path-location stage of github.com/katalvlaran/gridpath.
package descent

import "errors"

// Sentinel errors returned by LocatePath.
var (
	// ErrNilRand indicates a nil randomness source was passed to LocatePath.
	ErrNilRand = errors.New("descent: randomness source is nil")

	// ErrNilGrid indicates a nil *grid.Grid was passed to LocatePath.
	ErrNilGrid = errors.New("descent: grid is nil")
)

// Rand is the bounded uniform draw LocatePath consumes to break score ties:
// Intn must return an integer in [0,n), uniformly distributed, for n > 0.
//
// *math/rand.Rand satisfies Rand, so a seeded source is one line away:
//
//	rng := rand.New(rand.NewSource(7))
//
// The source is a required parameter rather than an option with a default —
// a hidden fallback generator would make paths unreproducible. A Rand shared
// across concurrent LocatePath calls must be serialized by the caller;
// supplying one source per call needs no coordination.
type Rand interface {
	Intn(n int) int
}
