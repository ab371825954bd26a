package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"

	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/solve"
)

// wavePalette holds every colour Image can produce, so frames quantize
// without loss.
var wavePalette = func() color.Palette {
	p := color.Palette{
		floorColor, wallColor, pathColor, currentColor,
		startFillColor, endFillColor, startGlyphColor, endGlyphColor,
	}
	for _, s := range shades {
		p = append(p, s)
	}
	return p
}()

// Wavefront solves g from start to end and writes an animated GIF of the
// search to w: one frame per WithFrameEvery settled cells (the cell being
// settled highlighted, settled cells shaded by distance), then one frame per
// prefix of the path when end was reached. WithCellSize and WithFrameDelay
// apply; start and end are always marked.
//
// The solver result is returned as well. Errors come from solve.Solve
// (invalid grid or coordinates) or from the GIF encoder.
func Wavefront(w io.Writer, g *maze.Grid, start, end maze.Point, opts ...Option) (*solve.Result, error) {
	o := newOptions(opts...)
	if g == nil {
		return nil, solve.ErrNilGrid
	}
	imgOpts := make([]Option, 0, len(opts)+3)
	imgOpts = append(imgOpts, opts...)
	imgOpts = append(imgOpts, WithStart(start), WithEnd(end), WithPath(nil))
	img := NewImage(g, imgOpts...)

	anim := &gif.GIF{}
	emit := func() {
		bounds := img.Bounds()
		frame := image.NewPaletted(bounds, wavePalette)
		draw.Draw(frame, bounds, img, bounds.Min, draw.Src)
		img.drawMarkers(frame)
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, o.delay)
	}

	// 1) One frame per frameEvery settled cells; the end cell always gets one.
	settled := 0
	hook := func(p maze.Point, d int) error {
		img.dist[p] = d
		if d > img.maxDist {
			img.maxDist = d
		}
		settled++
		if settled%o.frameEvery == 0 || p == end {
			img.current = &p
			emit()
		}
		return nil
	}
	res, err := solve.Solve(g, start, end, solve.WithOnSettle(hook))
	if err != nil {
		return nil, err
	}

	// 2) Grow the path one cell per frame.
	img.current = nil
	for i := range res.Path {
		img.setPath(res.Path[:i+1])
		emit()
	}

	if len(anim.Image) == 0 {
		emit()
	}
	if err := gif.EncodeAll(w, anim); err != nil {
		return nil, fmt.Errorf("Wavefront: encode: %w", err)
	}
	return res, nil
}
