package render

import (
	"strings"

	"github.com/katalvlaran/labyrinth/maze"
)

// ASCII draws g with underscores and bars, two characters per cell:
//
//	 ___
//	|S  |
//	|_|E|
//
// The first line is a space followed by 2·W−1 underscores. Each row starts
// with "|"; each cell contributes its floor (" " when the South passage is
// open, "_" otherwise, and always "_" when the cell below has no North
// passage) and then " " for an open East passage or "|" for a wall. The
// floor character is replaced by "S" or "E" at the start and end, and by "."
// for intermediate cells of a path set with WithPath.
func ASCII(g *maze.Grid, opts ...Option) string {
	o := newOptions(opts...)
	w, h := g.Width(), g.Height()

	dots := make(map[maze.Point]bool, len(o.path))
	if len(o.path) > 2 {
		for _, p := range o.path[1 : len(o.path)-1] {
			dots[p] = true
		}
	}

	var b strings.Builder
	b.Grow((2*w + 2) * (h + 1))
	b.WriteByte(' ')
	b.WriteString(strings.Repeat("_", 2*w-1))

	for y := 0; y < h; y++ {
		b.WriteString("\n|")
		for x := 0; x < w; x++ {
			p := maze.Pt(x, y)

			floor := byte('_')
			if g.HasPassage(x, y, maze.South) {
				floor = ' '
			}
			if y+1 < h && !g.HasPassage(x, y+1, maze.North) {
				floor = '_'
			}
			switch {
			case o.start != nil && *o.start == p:
				floor = 'S'
			case o.end != nil && *o.end == p:
				floor = 'E'
			case dots[p]:
				floor = '.'
			}

			east := byte('|')
			if g.HasPassage(x, y, maze.East) {
				east = ' '
			}
			b.WriteByte(floor)
			b.WriteByte(east)
		}
	}

	return b.String()
}
