package maze_test

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/maze"
)

// ExampleGrid_Carve carves an L-shaped tree into a 2×2 grid and prints the
// row-major masks, the edges and the validation result.
func ExampleGrid_Carve() {
	g, _ := maze.New(2, 2)
	_ = g.Carve(0, 0, maze.East)
	_ = g.Carve(1, 0, maze.South)
	_ = g.Carve(0, 0, maze.South)

	fmt.Println("rows:", g.Rows())
	fmt.Println("edges:", len(g.Edges()))
	fmt.Println("perfect:", g.IsPerfect())
	fmt.Println("(0,0):", g.Cell(0, 0))

	// Output:
	// rows: [[10 6] [1 1]]
	// edges: 3
	// perfect: true
	// (0,0): SE
}

// ExampleNeighbors shows the fixed N, S, W, E enumeration order.
func ExampleNeighbors() {
	for _, n := range maze.Neighbors(1, 0, 3, 2) {
		fmt.Println(n.Dir, n.Point)
	}

	// Output:
	// S (1,1)
	// W (0,0)
	// E (2,0)
}
