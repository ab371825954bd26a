// Package generate carves perfect mazes into fresh maze.Grid values.
//
// Three generators are provided, all sharing the same contract:
//
//   - Backtracker: randomized depth-first search with an explicit stack.
//     Long corridors, few dead ends. O(W·H) time and memory.
//   - Prim: randomized Prim over a frontier of candidate edges, removing a
//     uniformly random frontier edge each step. Many short dead ends.
//     O(W·H) time and memory.
//   - Wilson: loop-erased random walks. The result is drawn uniformly from
//     all spanning trees of the grid. Expected time depends on hitting times
//     of the walk; the walk length is unbounded.
//
// Generate dispatches on an Algorithm value, and ParseAlgorithm maps the
// command-line names ("dfs", "backtracker", "prim", "wilson") to one.
//
// Contract:
//
//   - width ≤ 0, height ≤ 0 or an overflowing width×height returns
//     ErrInvalidDimension before any work.
//   - The returned grid always satisfies maze.(*Grid).Validate: every cell
//     reachable, no loops, width·height−1 passages, passage symmetry.
//   - Randomness comes only from the *rand.Rand resolved from the options:
//     WithSeed(s) or WithRand(r). With neither, a time-seeded source is used,
//     so unseeded runs differ. Same seed and same dimensions give the same
//     grid.
//   - A *rand.Rand is not safe for concurrent use. Parallel generations must
//     each get their own source.
//   - A failing carve during generation can only come from a bug in this
//     package; the generator panics with an error wrapping
//     maze.ErrProgramDefect rather than returning it.
//
// Generators never log. Errors carry the method name as prefix, e.g.
// "Prim: New: width=0, height=3: maze: invalid width or height".
package generate
