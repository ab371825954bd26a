// Package solve finds the shortest path between two cells of a maze.Grid.
//
// Solve runs Dijkstra's algorithm with unit edge weights over the passage
// graph: a cell's neighbour is expanded only when the passage bit toward it
// is set. On a perfect maze the path is the unique simple path; on any grid
// it is a shortest one.
//
// Complexity:
//
//   - Time:  O(V log V) with V = settled cells (each cell has ≤ 4 passages,
//     so E ≤ 4V and heap entries stay O(V)).
//   - Space: O(V). Distances, predecessors and settled flags live in maps
//     that grow only with the cells actually reached.
//
// Implementation notes:
//
//   - Lazy decrease-key: an improved distance pushes a new heap entry; stale
//     entries are skipped when popped because their cell is already settled.
//   - Equal distances pop in push order, so the settle order is fixed for a
//     fixed grid, start and end.
//   - The loop stops as soon as end is popped, or when the heap runs dry.
//
// Options:
//
//   - WithOnSettle(fn):     observe each settled cell (used for wavefront
//     animations); an error from fn aborts the solve.
//   - WithMaxDistance(max): never settle cells farther than max steps.
//
// Errors (sentinel):
//
//   - ErrNilGrid            if the grid is nil.
//   - ErrInvalidCoordinate  if start or end lies outside the grid.
//
// An unreachable end is not an error: Result.Found is false and Result.Path
// is nil.
//
// Example usage:
//
//	res, err := solve.Solve(g, maze.Pt(0, 0), maze.Pt(g.Width()-1, g.Height()-1))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Found, res.Path.Steps())
package solve
