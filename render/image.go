package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/yalue/image_utils"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/katalvlaran/labyrinth/maze"
)

// shadeLevels is the number of distinct wavefront shades.
const shadeLevels = 16

var (
	wallColor       = color.RGBA{0, 0, 0, 255}
	floorColor      = color.RGBA{255, 255, 255, 255}
	pathColor       = color.RGBA{50, 205, 50, 255}
	currentColor    = color.RGBA{255, 165, 0, 255}
	startFillColor  = color.RGBA{190, 240, 190, 255}
	endFillColor    = color.RGBA{245, 190, 190, 255}
	startGlyphColor = color.RGBA{20, 130, 40, 255}
	endGlyphColor   = color.RGBA{200, 30, 30, 255}

	// shades run from light blue at distance 0 to violet at the current
	// maximum distance.
	shades = func() [shadeLevels]color.RGBA {
		var s [shadeLevels]color.RGBA
		for i := range s {
			t := float64(i) / float64(shadeLevels-1)
			s[i] = color.RGBA{153, uint8(204 - 127*t), 255, 255}
		}
		return s
	}()
)

// Image draws a grid lazily: it satisfies image.Image and computes each
// pixel from the grid on demand. Each cell is CellSize pixels square with a
// one-pixel wall line on its top and left; the image is one pixel wider and
// taller than W·CellSize × H·CellSize to close the right and bottom border.
type Image struct {
	g     *maze.Grid
	cell  int
	start *maze.Point
	end   *maze.Point
	path  map[maze.Point]bool

	// Wavefront state; empty for static renders.
	dist    map[maze.Point]int
	maxDist int
	current *maze.Point
}

// NewImage returns a lazily drawn picture of g. WithStart, WithEnd,
// WithPath and WithCellSize apply.
func NewImage(g *maze.Grid, opts ...Option) *Image {
	o := newOptions(opts...)
	m := &Image{
		g:     g,
		cell:  o.cellSize,
		start: o.start,
		end:   o.end,
		dist:  make(map[maze.Point]int),
	}
	m.setPath(o.path)
	return m
}

func (m *Image) setPath(path maze.Path) {
	m.path = make(map[maze.Point]bool, len(path))
	for _, p := range path {
		m.path[p] = true
	}
}

// ColorModel returns color.RGBAModel.
func (m *Image) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds returns the pixel rectangle anchored at (0, 0).
func (m *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.g.Width()*m.cell+1, m.g.Height()*m.cell+1)
}

// CellBounds returns the interior pixels of p, wall lines excluded.
func (m *Image) CellBounds(p maze.Point) image.Rectangle {
	x0, y0 := p.X*m.cell, p.Y*m.cell
	return image.Rect(x0+1, y0+1, x0+m.cell, y0+m.cell)
}

// At returns the colour of pixel (x, y).
func (m *Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(m.Bounds())) {
		return color.Transparent
	}
	w, h := m.g.Width(), m.g.Height()
	cx, cy := x/m.cell, y/m.cell
	onV, onH := x%m.cell == 0, y%m.cell == 0

	// Corner posts are always drawn.
	if onV && onH {
		return wallColor
	}
	// Clamp so the right and bottom border lines map to the last cell.
	if cx >= w {
		cx = w - 1
	}
	if cy >= h {
		cy = h - 1
	}
	if onV {
		if x == 0 || x == w*m.cell || !m.g.HasPassage(cx, cy, maze.West) {
			return wallColor
		}
		return m.fill(maze.Pt(cx, cy))
	}
	if onH {
		if y == 0 || y == h*m.cell || !m.g.HasPassage(cx, cy, maze.North) {
			return wallColor
		}
		return m.fill(maze.Pt(cx, cy))
	}
	return m.fill(maze.Pt(cx, cy))
}

// fill picks the interior colour of a cell: path, then the cell being
// settled, then the distance shade, then the start/end tint.
func (m *Image) fill(p maze.Point) color.Color {
	if m.path[p] {
		return pathColor
	}
	if m.current != nil && *m.current == p {
		return currentColor
	}
	if d, ok := m.dist[p]; ok {
		return m.shade(d)
	}
	if m.start != nil && *m.start == p {
		return startFillColor
	}
	if m.end != nil && *m.end == p {
		return endFillColor
	}
	return floorColor
}

// shade maps a distance to one of the shadeLevels colours relative to the
// largest distance seen so far.
func (m *Image) shade(d int) color.RGBA {
	top := m.maxDist
	if top < 1 {
		top = 1
	}
	level := (d*(shadeLevels-1) + top/2) / top
	if level >= shadeLevels {
		level = shadeLevels - 1
	}
	return shades[level]
}

// drawMarkers writes "S" and "E" glyphs centred in the start and end cells.
func (m *Image) drawMarkers(dst draw.Image) {
	if m.start != nil {
		m.drawGlyph(dst, *m.start, "S", startGlyphColor)
	}
	if m.end != nil && (m.start == nil || *m.end != *m.start) {
		m.drawGlyph(dst, *m.end, "E", endGlyphColor)
	}
}

func (m *Image) drawGlyph(dst draw.Image, p maze.Point, s string, c color.Color) {
	face := basicfont.Face7x13
	r := m.CellBounds(p)
	x := r.Min.X + (r.Dx()-face.Advance)/2
	y := r.Min.Y + (r.Dy()-face.Height)/2 + face.Ascent
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// Rasterize draws m into a new RGBA image and adds the start and end glyphs.
func (m *Image) Rasterize() *image.RGBA {
	rgba := image_utils.ToRGBA(m)
	m.drawMarkers(rgba)
	return rgba
}

// WritePNG renders g as a PNG to w. WithStart, WithEnd, WithPath and
// WithCellSize apply.
func WritePNG(w io.Writer, g *maze.Grid, opts ...Option) error {
	return png.Encode(w, NewImage(g, opts...).Rasterize())
}
