package solve_test

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/solve"
)

// ExampleSolve solves the 2×2 L-shaped maze from its top-left to its
// bottom-right corner.
func ExampleSolve() {
	g, _ := maze.FromRows([][]int{{10, 6}, {1, 1}})

	res, err := solve.Solve(g, maze.Pt(0, 0), maze.Pt(1, 1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("found:", res.Found)
	fmt.Println("steps:", res.Distance)
	fmt.Println("path:", res.Path)
	// Output:
	// found: true
	// steps: 2
	// path: (0,0) -> (1,0) -> (1,1)
}

// ExampleWithOnSettle prints the wavefront as cells are settled.
func ExampleWithOnSettle() {
	g, _ := maze.FromRows([][]int{{10, 6}, {1, 1}})

	hook := func(p maze.Point, dist int) error {
		fmt.Printf("settle %s at %d\n", p, dist)
		return nil
	}
	res, _ := solve.Solve(g, maze.Pt(0, 0), maze.Pt(1, 1), solve.WithOnSettle(hook))
	fmt.Println("settled:", res.Settled)
	// Output:
	// settle (0,0) at 0
	// settle (0,1) at 1
	// settle (1,0) at 1
	// settle (1,1) at 2
	// settled: 4
}

// ExampleSolve_unreachable shows that an unreachable end is reported through
// Result.Found rather than an error.
func ExampleSolve_unreachable() {
	g, _ := maze.New(2, 1)

	res, err := solve.Solve(g, maze.Pt(0, 0), maze.Pt(1, 0))
	fmt.Println(res.Found, res.Path == nil, err)
	// Output: false true <nil>
}
