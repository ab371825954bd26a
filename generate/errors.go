// SPDX-License-Identifier: MIT
// Package: labyrinth/generate
//
// errors.go — sentinel errors for the generate package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached with %w and a method prefix.
//   • Generators never panic on input; the single runtime panic is
//     mustCarve, which fires only on an internal invariant violation.

package generate

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/labyrinth/maze"
)

// ErrInvalidDimension indicates a width or height that is not positive.
// It is the same value as maze.ErrInvalidDimension, so either sentinel
// matches with errors.Is.
var ErrInvalidDimension = maze.ErrInvalidDimension

// ErrUnknownAlgorithm indicates an Algorithm value or name that does not
// correspond to any generator.
var ErrUnknownAlgorithm = errors.New("generate: unknown algorithm")

// newGrid allocates the all-walls grid for method, wrapping the dimension
// error with the method name.
func newGrid(method string, width, height int) (*maze.Grid, error) {
	g, err := maze.New(width, height)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	return g, nil
}

// mustCarve opens the passage (x, y)→d or panics with an error wrapping both
// maze.ErrProgramDefect and the carve error. Generators only carve toward
// neighbours produced by maze.Neighbors, so a failure here is a bug.
func mustCarve(method string, g *maze.Grid, x, y int, d maze.Direction) {
	if err := g.Carve(x, y, d); err != nil {
		panic(fmt.Errorf("%s: %w: %w", method, maze.ErrProgramDefect, err))
	}
}
