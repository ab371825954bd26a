// Package maze is the shared data model for rectangular perfect mazes: a grid
// of cells, each cell a 4-bit passage mask, plus bounds-aware neighbour
// enumeration and symmetric carving.
//
// What:
//
//   - Direction is a single-bit flag (North=1, South=2, West=4, East=8) with a
//     unit offset and an opposite direction.
//   - Cell is the OR of the directions that have an open passage (0..15).
//   - Grid holds Height rows × Width columns of cells, addressed by (x, y) with
//     x ∈ [0,Width), y ∈ [0,Height). Carving is the only mutation.
//   - Path is an ordered list of points joined by carved passages.
//
// Invariants:
//
//   - Passage symmetry: if (x,y) has d set, the neighbour in direction d has
//     d.Opposite() set. Carve maintains this on every call.
//   - Perfect maze: the passage graph is connected and acyclic, i.e. it has
//     exactly Width×Height−1 edges. Validate checks both.
//
// Persistence:
//
//   - Rows returns the row-major [][]int form (one mask per cell) and FromRows
//     rebuilds an identical Grid. Grid also marshals to and from JSON in the
//     same form, which is the maze_grid.json layout used by the tools.
//
// Complexity:
//
//   - New, Rows, FromRows, Edges:   O(W×H) time and memory.
//   - Neighbors, Carve, HasPassage: O(1).
//   - ConnectedComponents, Validate: O(W×H) time and memory.
//
// Errors:
//
//   - ErrInvalidDimension: width or height ≤ 0, or width×height overflows int.
//   - ErrUnknownDirection: a direction outside the four flags.
//   - ErrOutOfBounds:      a coordinate, or the neighbour reached by a carve, is
//     outside the grid.
//   - ErrEmptyGrid, ErrNonRectangular, ErrInvalidMask: FromRows input errors.
//   - ErrAsymmetricPassage, ErrCycle, ErrDisconnected: Validate findings.
//   - ErrProgramDefect: wraps invariant violations raised by generators.
package maze
