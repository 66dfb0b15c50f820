// Package wavefront defines configuration options and sentinel errors for
// the distance-labeling stage of github.com/katalvlaran/gridpath.
package wavefront

import (
	"errors"
	"math"
)

// Sentinel errors returned by Score.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed to Score.
	ErrNilGrid = errors.New("wavefront: grid is nil")

	// ErrBadMaxDistance indicates WithMaxDistance was given a negative value.
	ErrBadMaxDistance = errors.New("wavefront: MaxDistance must be non-negative")
)

// Options configures the behavior of Score.
//
// MaxDistance – labeling radius cap: rounds whose score would exceed this
//
//	value are not run, so cells farther than MaxDistance keep the
//	ScoreUnset sentinel. Must be ≥ 0. Default is math.MaxInt (no cap).
//
// Pruning     – restrict each round's candidates to the bounding rectangle of
//
//	the frontier expanded by one cell. On by default; disable with
//	WithoutPruning to cross-check labelings in tests.
type Options struct {
	MaxDistance int  // Maximum distance to label
	Pruning     bool // Whether the bounding-rectangle restriction is applied
}

// Option represents a functional option for configuring Score.
type Option func(*Options)

// WithMaxDistance caps the labeling radius at d. Cells whose distance from
// End exceeds d are left unscored.
// Must pass a non-negative value; negative values cause ErrBadMaxDistance.
func WithMaxDistance(d int) Option {
	return func(o *Options) {
		if d < 0 {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = d
	}
}

// WithoutPruning disables the bounding-rectangle candidate restriction.
// The resulting labeling is identical either way; disabling exists so tests
// can verify that equivalence on adversarial layouts.
func WithoutPruning() Option {
	return func(o *Options) {
		o.Pruning = false
	}
}

// DefaultOptions returns an Options struct initialized with sensible
// defaults:
//   - MaxDistance: math.MaxInt (label every reachable cell).
//   - Pruning:     true.
func DefaultOptions() Options {
	return Options{
		MaxDistance: math.MaxInt,
		Pruning:     true,
	}
}
