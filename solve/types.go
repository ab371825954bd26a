package solve

import (
	"errors"
	"math"

	"github.com/katalvlaran/labyrinth/maze"
)

// Sentinel errors returned by Solve.
var (
	// ErrNilGrid indicates that a nil *maze.Grid was passed to Solve.
	ErrNilGrid = errors.New("solve: grid is nil")

	// ErrInvalidCoordinate indicates a start or end point outside the grid.
	ErrInvalidCoordinate = errors.New("solve: coordinate out of bounds")

	// ErrBadMaxDistance indicates a negative MaxDistance, which would make
	// even the start cell unreachable.
	ErrBadMaxDistance = errors.New("solve: MaxDistance must be non-negative")
)

// SettleFunc observes the solver: it is called once per settled cell, in
// settle order, with the cell's final distance from start. A non-nil error
// aborts the solve and is returned wrapped.
type SettleFunc func(p maze.Point, dist int) error

// Options configures Solve.
//
// OnSettle    – optional hook invoked for each settled cell (nil = none).
// MaxDistance – cells farther than this from start are never settled.
//
//	Default math.MaxInt (no cap).
type Options struct {
	OnSettle    SettleFunc
	MaxDistance int
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithOnSettle installs a settle hook. Panics on nil.
func WithOnSettle(fn SettleFunc) Option {
	if fn == nil {
		panic("solve: WithOnSettle(nil)")
	}
	return func(o *Options) {
		o.OnSettle = fn
	}
}

// WithMaxDistance stops exploration beyond max steps from start. An end
// farther away is reported as not found. Panics on a negative value.
func WithMaxDistance(max int) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// DefaultOptions returns the defaults: no hook, no distance cap.
func DefaultOptions() Options {
	return Options{MaxDistance: math.MaxInt}
}

// Result is the outcome of a Solve call.
//
// Path     – start..end inclusive when Found; nil otherwise.
// Found    – whether end was reached.
// Distance – number of steps on Path (Path.Steps()); 0 when not found.
// Settled  – number of cells whose distance was finalized, end included.
type Result struct {
	Path     maze.Path `json:"path"`
	Found    bool      `json:"found"`
	Distance int       `json:"distance"`
	Settled  int       `json:"settled"`
}
