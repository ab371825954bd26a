package maze

import (
	"fmt"
	"math"
)

// Grid is a rectangular array of passage masks, Height rows × Width columns,
// stored row-major. The zero value is not usable; build one with New or
// FromRows.
type Grid struct {
	width, height int
	cells         []Cell
}

// New allocates a width×height grid with every cell fully walled.
// Returns ErrInvalidDimension (wrapped with the values) if width ≤ 0,
// height ≤ 0, or width×height does not fit in an int; nothing is allocated
// in that case.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Grid, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}, nil
}

// checkDimensions rejects non-positive sizes and cell counts that overflow int.
func checkDimensions(width, height int) error {
	if width <= 0 || height <= 0 || width > math.MaxInt/height {
		return fmt.Errorf("width=%d, height=%d: %w", width, height, ErrInvalidDimension)
	}
	return nil
}

// Neighbors returns, in Directions order, every neighbour of (x, y) that lies
// within [0,width)×[0,height), with the direction leading to it. The order is
// fixed for fixed inputs.
// Complexity: O(1).
func Neighbors(x, y, width, height int) []Neighbor {
	out := make([]Neighbor, 0, len(Directions))
	for _, d := range Directions {
		dx, dy := d.Offset()
		nx, ny := x+dx, y+dy
		if nx < 0 || nx >= width || ny < 0 || ny >= height {
			continue
		}
		out = append(out, Neighbor{Point: Point{X: nx, Y: ny}, Dir: d})
	}
	return out
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Size returns Width×Height.
func (g *Grid) Size() int { return g.width * g.height }

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Contains reports whether p lies inside the grid.
func (g *Grid) Contains(p Point) bool { return g.InBounds(p.X, p.Y) }

// index maps (x, y) to its row-major offset; callers check bounds first.
func (g *Grid) index(x, y int) int { return y*g.width + x }

// Coordinate converts a row-major index back to (x, y).
func (g *Grid) Coordinate(i int) (x, y int) { return i % g.width, i / g.width }

// Cell returns the passage mask at (x, y), or 0 when (x, y) is outside the grid.
func (g *Grid) Cell(x, y int) Cell {
	if !g.InBounds(x, y) {
		return 0
	}
	return g.cells[g.index(x, y)]
}

// HasPassage reports whether (x, y) has an open passage in direction d.
// Out-of-bounds coordinates and invalid directions report false.
func (g *Grid) HasPassage(x, y int, d Direction) bool {
	return g.Cell(x, y).Has(d)
}

// Linked reports whether a and b are adjacent and joined by a passage.
func (g *Grid) Linked(a, b Point) bool {
	for _, d := range Directions {
		if a.Step(d) == b {
			return g.HasPassage(a.X, a.Y, d)
		}
	}
	return false
}

// Neighbors returns the in-bounds neighbours of (x, y); see the package-level Neighbors.
func (g *Grid) Neighbors(x, y int) []Neighbor {
	return Neighbors(x, y, g.width, g.height)
}

// Carve opens the passage from (x, y) in direction d and the opposite passage
// in the neighbour it leads to, keeping passage symmetry.
//
// Errors (grid unchanged):
//   - ErrUnknownDirection if d is not one of the four flags.
//   - ErrOutOfBounds if (x, y) or the neighbour is outside the grid.
//
// Callers carve only directions returned by Neighbors, so both errors mark a
// programming mistake rather than a runtime condition.
// Complexity: O(1).
func (g *Grid) Carve(x, y int, d Direction) error {
	if !d.Valid() {
		return fmt.Errorf("Carve(%d,%d,%d): %w", x, y, uint8(d), ErrUnknownDirection)
	}
	dx, dy := d.Offset()
	nx, ny := x+dx, y+dy
	if !g.InBounds(x, y) || !g.InBounds(nx, ny) {
		return fmt.Errorf("Carve(%d,%d,%s) in %dx%d: %w", x, y, d, g.width, g.height, ErrOutOfBounds)
	}
	i, j := g.index(x, y), g.index(nx, ny)
	g.cells[i] = g.cells[i].With(d)
	g.cells[j] = g.cells[j].With(d.Opposite())

	return nil
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{width: g.width, height: g.height, cells: cells}
}

// Equal reports whether g and other have the same dimensions and masks.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// DefaultEndpoints returns the conventional start (0,0) and end
// (Width−1, Height−1) used by the command-line tools and the HTTP API.
func DefaultEndpoints(g *Grid) (start, end Point) {
	return Point{}, Point{X: g.width - 1, Y: g.height - 1}
}
