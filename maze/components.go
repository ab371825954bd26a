package maze

// ConnectedComponents finds all groups of cells joined by carved passages.
// Returns a slice of components; each component lists its points in BFS
// discovery order, and components appear in row-major order of their first
// cell. A perfect maze has exactly one component.
//
// Passages leading outside the grid are ignored here; Validate reports them.
//
// Time:   O(W·H).
// Memory: O(W·H) for seen flags and output.
func (g *Grid) ConnectedComponents() [][]Point {
	seen := make([]bool, len(g.cells))
	var comps [][]Point

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			i0 := g.index(x, y)
			if seen[i0] {
				continue
			}
			// BFS to collect component
			queue := []int{i0}
			seen[i0] = true
			var comp []Point

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				ux, uy := g.Coordinate(u)
				comp = append(comp, Point{X: ux, Y: uy})
				for _, d := range Directions {
					if !g.cells[u].Has(d) {
						continue // wall
					}
					dx, dy := d.Offset()
					vx, vy := ux+dx, uy+dy
					if !g.InBounds(vx, vy) {
						continue
					}
					vi := g.index(vx, vy)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, comp)
		}
	}
	return comps
}

// Edges returns every carved passage once, as {A, B} with A before B in
// row-major order. Only South and East bits are inspected, so an asymmetric
// grid reports the passages as seen from their upper/left cell.
// Complexity: O(W·H).
func (g *Grid) Edges() []Edge {
	edges := make([]Edge, 0, len(g.cells))
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := g.cells[g.index(x, y)]
			p := Point{X: x, Y: y}
			for _, d := range [2]Direction{East, South} {
				q := p.Step(d)
				if c.Has(d) && g.Contains(q) {
					edges = append(edges, Edge{A: p, B: q})
				}
			}
		}
	}
	return edges
}
