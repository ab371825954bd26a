// RNG helpers shared by the generators.
//
// Every draw goes through the *rand.Rand resolved in genConfig; nothing here
// touches the global math/rand source.

package generate

import (
	"math/rand"

	"github.com/katalvlaran/labyrinth/maze"
)

// randomCell draws a cell uniformly: x first, then y.
// Complexity: O(1).
func randomCell(r *rand.Rand, width, height int) maze.Point {
	x := r.Intn(width)
	y := r.Intn(height)
	return maze.Point{X: x, Y: y}
}

// pickNeighbor returns a uniformly chosen element of ns, which must be
// non-empty.
// Complexity: O(1).
func pickNeighbor(r *rand.Rand, ns []maze.Neighbor) maze.Neighbor {
	return ns[r.Intn(len(ns))]
}
