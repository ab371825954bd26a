// SPDX-License-Identifier: MIT
// Package: labyrinth/generate
//
// backtracker.go — randomized depth-first search with an explicit stack.
//
// Determinism:
//   • Start cell drawn x then y; candidates gathered in maze.Neighbors order.
//   • One Intn draw per carved passage.

package generate

import (
	"github.com/katalvlaran/labyrinth/maze"
)

// Backtracker carves a perfect width×height maze by randomized depth-first
// search. Returns ErrInvalidDimension (wrapped) for non-positive or
// overflowing dimensions.
//
// Complexity: O(W·H) time, O(W·H) memory for the visited flags and stack.
func Backtracker(width, height int, opts ...Option) (*maze.Grid, error) {
	// 1) Validate and allocate.
	g, err := newGrid(methodBacktracker, width, height)
	if err != nil {
		return nil, err
	}
	rng := newGenConfig(opts...).rng

	// 2) Mark the start cell and push it.
	visited := make([]bool, width*height)
	start := randomCell(rng, width, height)
	visited[start.Y*width+start.X] = true
	stack := make([]maze.Point, 1, width*height)
	stack[0] = start

	// 3) Extend from the top of the stack; pop when it has no unvisited neighbour.
	candidates := make([]maze.Neighbor, 0, len(maze.Directions))
	for len(stack) > 0 {
		top := stack[len(stack)-1]

		candidates = candidates[:0]
		for _, n := range maze.Neighbors(top.X, top.Y, width, height) {
			if !visited[n.Y*width+n.X] {
				candidates = append(candidates, n)
			}
		}
		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := pickNeighbor(rng, candidates)
		mustCarve(methodBacktracker, g, top.X, top.Y, next.Dir)
		visited[next.Y*width+next.X] = true
		stack = append(stack, next.Point)
	}

	return g, nil
}
