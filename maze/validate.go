package maze

import (
	"fmt"

	"github.com/spakin/disjoint"
)

// Validate checks the passage invariants of g in this order:
//  1. every open passage stays inside the grid (ErrOutOfBounds);
//  2. every open passage has its opposite bit set in the neighbour
//     (ErrAsymmetricPassage);
//  3. no edge closes a loop (ErrCycle);
//  4. all cells form a single component (ErrDisconnected).
//
// A nil error means g is a perfect maze.
// Complexity: O(W·H·α(W·H)).
func (g *Grid) Validate() error {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := g.cells[g.index(x, y)]
			if !c.Valid() {
				return fmt.Errorf("Validate: cell (%d,%d)=%d: %w", x, y, c, ErrInvalidMask)
			}
			for _, d := range Directions {
				if !c.Has(d) {
					continue
				}
				dx, dy := d.Offset()
				nx, ny := x+dx, y+dy
				if !g.InBounds(nx, ny) {
					return fmt.Errorf("Validate: passage %s from (%d,%d) leaves the grid: %w", d, x, y, ErrOutOfBounds)
				}
				if !g.cells[g.index(nx, ny)].Has(d.Opposite()) {
					return fmt.Errorf("Validate: (%d,%d) opens %s but (%d,%d) lacks %s: %w",
						x, y, d, nx, ny, d.Opposite(), ErrAsymmetricPassage)
				}
			}
		}
	}

	// One set per cell; an edge whose ends already share a set closes a loop.
	sets := make([]*disjoint.Element, len(g.cells))
	for i := range sets {
		sets[i] = disjoint.NewElement()
	}
	edges := g.Edges()
	for _, e := range edges {
		a, b := sets[g.index(e.A.X, e.A.Y)], sets[g.index(e.B.X, e.B.Y)]
		if a.Find() == b.Find() {
			return fmt.Errorf("Validate: edge %s-%s: %w", e.A, e.B, ErrCycle)
		}
		disjoint.Union(a, b)
	}
	// An acyclic graph on n vertices with n-1 edges is a spanning tree.
	if len(edges) != len(g.cells)-1 {
		return fmt.Errorf("Validate: %d components: %w", len(g.ConnectedComponents()), ErrDisconnected)
	}

	return nil
}

// IsPerfect reports whether Validate finds no violation.
func (g *Grid) IsPerfect() bool { return g.Validate() == nil }
