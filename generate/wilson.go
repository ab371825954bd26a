// SPDX-License-Identifier: MIT
// Package: labyrinth/generate
//
// wilson.go — uniform spanning trees by loop-erased random walks.
//
// Walk record:
//   • cells  — visited cells in walk order, loop-erased.
//   • index  — cell → position in cells, for O(1) revisit detection.
//   • dirs   — dirs[i] leads from cells[i] to cells[i+1].
// The three are truncated together, so len(dirs) == len(cells)-1 always.

package generate

import (
	"github.com/katalvlaran/labyrinth/maze"
)

// walk is the loop-erased record of the current random walk.
type walk struct {
	cells []maze.Point
	index map[maze.Point]int
	dirs  []maze.Direction
}

func newWalk(capacity int) *walk {
	return &walk{
		cells: make([]maze.Point, 0, capacity),
		index: make(map[maze.Point]int, capacity),
		dirs:  make([]maze.Direction, 0, capacity),
	}
}

// reset starts a new walk at p.
func (w *walk) reset(p maze.Point) {
	w.cells = w.cells[:0]
	w.dirs = w.dirs[:0]
	for k := range w.index {
		delete(w.index, k)
	}
	w.index[p] = 0
	w.cells = append(w.cells, p)
}

// step records a move in direction d to p. If p is already on the walk, the
// loop closed by the move is erased instead.
func (w *walk) step(d maze.Direction, p maze.Point) {
	if i, ok := w.index[p]; ok {
		w.truncate(i)
		return
	}
	w.index[p] = len(w.cells)
	w.cells = append(w.cells, p)
	w.dirs = append(w.dirs, d)
}

// truncate keeps cells[:i+1] and dirs[:i].
func (w *walk) truncate(i int) {
	for _, p := range w.cells[i+1:] {
		delete(w.index, p)
	}
	w.cells = w.cells[:i+1]
	w.dirs = w.dirs[:i]
}

// Wilson carves a perfect width×height maze chosen uniformly among all
// spanning trees of the grid. Returns ErrInvalidDimension (wrapped) for
// non-positive or overflowing dimensions.
//
// Complexity: O(W·H) memory; time is the total loop-erased walk length,
// expected polynomial in W·H and unbounded in the worst case.
func Wilson(width, height int, opts ...Option) (*maze.Grid, error) {
	// 1) Validate and allocate.
	g, err := newGrid(methodWilson, width, height)
	if err != nil {
		return nil, err
	}
	rng := newGenConfig(opts...).rng

	// 2) Seed the maze with one random cell.
	n := width * height
	inMaze := make([]bool, n)
	seed := randomCell(rng, width, height)
	inMaze[seed.Y*width+seed.X] = true

	// remaining lists the cells outside the maze in row-major order.
	remaining := make([]int, 0, n-1)
	for i := 0; i < n; i++ {
		if !inMaze[i] {
			remaining = append(remaining, i)
		}
	}

	w := newWalk(n)
	for len(remaining) > 0 {
		// 3) Walk from a uniformly chosen outside cell until the maze is hit.
		i := remaining[rng.Intn(len(remaining))]
		cur := maze.Point{X: i % width, Y: i / width}
		w.reset(cur)
		for !inMaze[cur.Y*width+cur.X] {
			next := pickNeighbor(rng, maze.Neighbors(cur.X, cur.Y, width, height))
			w.step(next.Dir, next.Point)
			cur = next.Point
		}

		// 4) Carve the loop-erased walk and add its cells to the maze.
		for k, d := range w.dirs {
			p := w.cells[k]
			mustCarve(methodWilson, g, p.X, p.Y, d)
			inMaze[p.Y*width+p.X] = true
		}

		// 5) Compact the remaining list, keeping row-major order.
		kept := remaining[:0]
		for _, j := range remaining {
			if !inMaze[j] {
				kept = append(kept, j)
			}
		}
		remaining = kept
	}

	return g, nil
}
