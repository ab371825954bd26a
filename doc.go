// Package labyrinth generates, solves, renders and serves perfect mazes.
//
// 🚀 What is labyrinth?
//
//	A small toolkit built around one data type, a grid of passage masks:
//		• Generation: recursive backtracker, randomized Prim, Wilson (uniform)
//		• Validation: symmetry, bounds, cycles and connectivity checks
//		• Solving: Dijkstra with per-cell hooks and a distance cap
//		• Rendering: ASCII, PNG, and animated wavefront GIFs
//		• Storage: JSON files, memory, Redis and MongoDB repositories
//		• Serving: a gin HTTP API and two command-line tools
//
// ✨ Guarantees
//
//   - Every generator returns a spanning tree: W·H−1 passages, one component.
//   - Seeded runs are reproducible; randomness is never global.
//   - Library packages never log; they return wrapped sentinel errors.
//
// Packages:
//
//	maze/     — Grid, Direction, Cell, Point, Path; codec and validation
//	generate/ — Backtracker, Prim, Wilson and the Algorithm selector
//	solve/    — Solve (Dijkstra) with OnSettle and MaxDistance options
//	render/   — ASCII, Image/WritePNG, Wavefront
//	store/    — file helpers and the Repository backends
//	config/   — environment and .env loading
//	api/      — HTTP router and maze controller
//	cmd/      — mazegen, mazesolve, mazed
//
// Quick ASCII example (3×2, start S, end E):
//
//	 _____
//	|S _| |
//	|_ _ E|
//
// Encoding: a cell stores N=1, S=2, W=4, E=8 for each open side, and every
// passage is recorded in both cells it joins.
//
// Quick start:
//
//	go run ./cmd/mazegen -algo wilson -width 30 -height 20 -ascii
//	go run ./cmd/mazesolve -gif -txt
package labyrinth
