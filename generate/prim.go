// SPDX-License-Identifier: MIT
// Package: labyrinth/generate
//
// prim.go — randomized Prim over a frontier of candidate edges.
//
// The frontier holds edges (in-maze cell → neighbour, direction). Removal is
// uniform over the frontier and done by swap-remove, so the frontier order is
// an implementation detail; the draw sequence is still fixed for a fixed seed.

package generate

import (
	"github.com/katalvlaran/labyrinth/maze"
)

// frontierEdge is a candidate passage from an in-maze cell toward a
// neighbour that was outside the maze when the edge was pushed.
type frontierEdge struct {
	from maze.Point
	to   maze.Point
	dir  maze.Direction
}

// Prim carves a perfect width×height maze by randomized Prim. Returns
// ErrInvalidDimension (wrapped) for non-positive or overflowing dimensions.
//
// Complexity: O(W·H) time; the frontier never exceeds 4·W·H entries.
func Prim(width, height int, opts ...Option) (*maze.Grid, error) {
	// 1) Validate and allocate.
	g, err := newGrid(methodPrim, width, height)
	if err != nil {
		return nil, err
	}
	rng := newGenConfig(opts...).rng

	inMaze := make([]bool, width*height)
	var frontier []frontierEdge

	// push marks p in-maze and adds its edges toward cells still outside.
	push := func(p maze.Point) {
		inMaze[p.Y*width+p.X] = true
		for _, n := range maze.Neighbors(p.X, p.Y, width, height) {
			if !inMaze[n.Y*width+n.X] {
				frontier = append(frontier, frontierEdge{from: p, to: n.Point, dir: n.Dir})
			}
		}
	}

	// 2) Seed with the start cell.
	push(randomCell(rng, width, height))

	// 3) Remove a uniform frontier edge; carve it when it still leads outside.
	for len(frontier) > 0 {
		i := rng.Intn(len(frontier))
		e := frontier[i]
		last := len(frontier) - 1
		frontier[i] = frontier[last]
		frontier = frontier[:last]

		if inMaze[e.to.Y*width+e.to.X] {
			continue // both ends already joined
		}
		mustCarve(methodPrim, g, e.from.X, e.from.Y, e.dir)
		push(e.to)
	}

	return g, nil
}
