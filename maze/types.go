package maze

import (
	"fmt"
	"strings"
)

// Direction is a single compass direction encoded as one bit, so several
// directions combine into a Cell with bitwise OR.
type Direction uint8

const (
	// North points to y-1.
	North Direction = 1 << iota
	// South points to y+1.
	South
	// West points to x-1.
	West
	// East points to x+1.
	East
)

// Directions lists the four directions in enumeration order. Neighbors
// follows this order, which seeded generators rely on for reproducibility.
var Directions = [4]Direction{North, South, West, East}

// offsets and opposites are indexed by bit position (North=0 … East=3).
var (
	offsets   = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	opposites = [4]Direction{South, North, East, West}
	names     = [4]string{"N", "S", "W", "E"}
)

// bit returns the bit position of d, or -1 when d is not exactly one of the
// four flags.
func (d Direction) bit() int {
	switch d {
	case North:
		return 0
	case South:
		return 1
	case West:
		return 2
	case East:
		return 3
	}
	return -1
}

// Valid reports whether d is exactly one of North, South, West, East.
func (d Direction) Valid() bool { return d.bit() >= 0 }

// Offset returns the unit step (dx, dy) for d; (0, 0) if d is not valid.
func (d Direction) Offset() (dx, dy int) {
	i := d.bit()
	if i < 0 {
		return 0, 0
	}
	return offsets[i][0], offsets[i][1]
}

// Opposite returns the reverse direction (N↔S, E↔W); 0 if d is not valid.
func (d Direction) Opposite() Direction {
	i := d.bit()
	if i < 0 {
		return 0
	}
	return opposites[i]
}

// String returns "N", "S", "W" or "E".
func (d Direction) String() string {
	i := d.bit()
	if i < 0 {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return names[i]
}

// Cell is a passage mask: bit d set means a passage exists through that face
// into the neighbouring cell. Zero is a fully walled cell.
type Cell uint8

// maxMask is the largest valid Cell value (all four passages open).
const maxMask = Cell(North | South | West | East)

// Has reports whether the passage in direction d is open.
func (c Cell) Has(d Direction) bool { return d.Valid() && c&Cell(d) != 0 }

// With returns c with the passage in direction d opened.
func (c Cell) With(d Direction) Cell { return c | Cell(d) }

// Valid reports whether c only uses the four direction bits.
func (c Cell) Valid() bool { return c <= maxMask }

// Degree returns the number of open passages.
func (c Cell) Degree() int {
	n := 0
	for _, d := range Directions {
		if c.Has(d) {
			n++
		}
	}
	return n
}

// String lists the open directions, e.g. "NE", or "-" for a walled cell.
func (c Cell) String() string {
	var b strings.Builder
	for _, d := range Directions {
		if c.Has(d) {
			b.WriteString(d.String())
		}
	}
	if b.Len() == 0 {
		return "-"
	}
	return b.String()
}

// Point is a cell coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Step returns the point reached from p by moving one cell in direction d.
func (p Point) Step(d Direction) Point {
	dx, dy := d.Offset()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// String renders p as "(x,y)".
func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// before reports whether p precedes q in row-major order.
func (p Point) before(q Point) bool {
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.X < q.X
}

// Neighbor is an in-bounds adjacent cell together with the direction that
// leads to it.
type Neighbor struct {
	Point
	Dir Direction
}

// Edge is a carved passage between two adjacent cells; A precedes B in
// row-major order.
type Edge struct {
	A, B Point
}

// Path is an ordered sequence of points from start to end in which every
// consecutive pair is joined by a carved passage.
type Path []Point

// Steps returns the number of edges in the path (0 for an empty or one-point path).
func (p Path) Steps() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Contains reports whether q lies on the path.
func (p Path) Contains(q Point) bool {
	for _, v := range p {
		if v == q {
			return true
		}
	}
	return false
}

// String renders the path as "(x,y) -> (x,y) -> …".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, v := range p {
		parts[i] = v.String()
	}
	return strings.Join(parts, " -> ")
}
