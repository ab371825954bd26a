package render

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/generate"
	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/solve"
)

func rgba(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

func TestImage_Bounds(t *testing.T) {
	img := NewImage(lShape(t), WithCellSize(10))
	assert.Equal(t, image.Rect(0, 0, 21, 21), img.Bounds())
	assert.Equal(t, image.Rect(11, 1, 20, 10), img.CellBounds(maze.Pt(1, 0)))
	assert.Equal(t, color.Transparent, img.At(-1, 0))
	assert.Equal(t, color.Transparent, img.At(21, 0))
}

func TestImage_Walls(t *testing.T) {
	// Cell size 10: vertical line x=10 separates column 0 and 1, horizontal
	// line y=10 separates row 0 and 1.
	img := NewImage(lShape(t), WithCellSize(10))

	// Outer border.
	assert.Equal(t, wallColor, rgba(img.At(0, 5)))
	assert.Equal(t, wallColor, rgba(img.At(5, 0)))
	assert.Equal(t, wallColor, rgba(img.At(20, 15)))
	assert.Equal(t, wallColor, rgba(img.At(15, 20)))

	// (0,0)-(1,0) open: x=10 in row 0 is floor.
	assert.Equal(t, floorColor, rgba(img.At(10, 5)))
	// (0,1)-(1,1) walled: x=10 in row 1 is wall.
	assert.Equal(t, wallColor, rgba(img.At(10, 15)))
	// (0,0)-(0,1) open, (1,0)-(1,1) open.
	assert.Equal(t, floorColor, rgba(img.At(5, 10)))
	assert.Equal(t, floorColor, rgba(img.At(15, 10)))
	// Interior.
	assert.Equal(t, floorColor, rgba(img.At(5, 5)))
}

func TestImage_FillPrecedence(t *testing.T) {
	img := NewImage(lShape(t),
		WithCellSize(10),
		WithStart(maze.Pt(0, 0)),
		WithEnd(maze.Pt(1, 1)),
		WithPath(maze.Path{maze.Pt(0, 0), maze.Pt(1, 0)}),
	)
	assert.Equal(t, pathColor, rgba(img.At(5, 5)), "path over start tint")
	assert.Equal(t, pathColor, rgba(img.At(15, 5)))
	assert.Equal(t, endFillColor, rgba(img.At(15, 15)))
	assert.Equal(t, floorColor, rgba(img.At(5, 15)))
}

func TestImage_Shade(t *testing.T) {
	img := NewImage(lShape(t))
	img.maxDist = 2
	assert.Equal(t, shades[0], img.shade(0))
	assert.Equal(t, shades[shadeLevels-1], img.shade(2))
	assert.Equal(t, shades[8], img.shade(1))

	img.maxDist = 0
	assert.Equal(t, shades[0], img.shade(0))
}

func TestWithCellSize_Panics(t *testing.T) {
	assert.Panics(t, func() { WithCellSize(MinCellSize - 1) })
	assert.NotPanics(t, func() { WithCellSize(MinCellSize) })
	assert.Panics(t, func() { WithFrameEvery(0) })
	assert.Panics(t, func() { WithFrameDelay(-1) })
}

func TestWritePNG(t *testing.T) {
	g, err := generate.Prim(6, 4, generate.WithSeed(3))
	require.NoError(t, err)
	start, end := maze.DefaultEndpoints(g)

	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, g, WithCellSize(20), WithStart(start), WithEnd(end)))

	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 121, 81), decoded.Bounds())
	assert.Equal(t, wallColor, rgba(decoded.At(0, 0)))

	// The start cell holds green glyph pixels, the end cell red ones.
	assert.True(t, containsColor(decoded, image.Rect(1, 1, 20, 20), startGlyphColor))
	assert.True(t, containsColor(decoded, image.Rect(101, 61, 120, 80), endGlyphColor))
}

func containsColor(img image.Image, r image.Rectangle, c color.RGBA) bool {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if rgba(img.At(x, y)) == c {
				return true
			}
		}
	}
	return false
}

func TestWavefront_Frames(t *testing.T) {
	var buf bytes.Buffer
	res, err := Wavefront(&buf, lShape(t), maze.Pt(0, 0), maze.Pt(1, 1), WithCellSize(8))
	require.NoError(t, err)
	require.True(t, res.Found)

	anim, err := gif.DecodeAll(&buf)
	require.NoError(t, err)
	// 4 settled cells + 3 path prefixes.
	assert.Len(t, anim.Image, res.Settled+len(res.Path))
	for _, d := range anim.Delay {
		assert.Equal(t, DefaultFrameDelay, d)
	}
	assert.Equal(t, image.Rect(0, 0, 17, 17), anim.Image[0].Bounds())

	// Last frame: every path cell is lime.
	last := anim.Image[len(anim.Image)-1]
	assert.Equal(t, pathColor, rgba(last.At(12, 2)))
}

func TestWavefront_FrameEvery(t *testing.T) {
	g, err := generate.Wilson(10, 10, generate.WithSeed(9))
	require.NoError(t, err)
	start, end := maze.DefaultEndpoints(g)

	var buf bytes.Buffer
	res, err := Wavefront(&buf, g, start, end, WithFrameEvery(5), WithFrameDelay(3), WithCellSize(6))
	require.NoError(t, err)
	require.True(t, res.Found)

	anim, err := gif.DecodeAll(&buf)
	require.NoError(t, err)
	settleFrames := res.Settled / 5
	if res.Settled%5 != 0 {
		settleFrames++ // the end cell always gets a frame
	}
	assert.Len(t, anim.Image, settleFrames+len(res.Path))
	assert.Equal(t, 3, anim.Delay[0])
}

func TestWavefront_Unreachable(t *testing.T) {
	g, _ := maze.New(3, 1)
	var buf bytes.Buffer
	res, err := Wavefront(&buf, g, maze.Pt(0, 0), maze.Pt(2, 0), WithFrameEvery(4))
	require.NoError(t, err)
	assert.False(t, res.Found)

	anim, err := gif.DecodeAll(&buf)
	require.NoError(t, err)
	assert.Len(t, anim.Image, 1, "a single still frame is written")
}

func TestWavefront_Errors(t *testing.T) {
	var buf bytes.Buffer
	_, err := Wavefront(&buf, nil, maze.Pt(0, 0), maze.Pt(0, 0))
	assert.ErrorIs(t, err, solve.ErrNilGrid)

	_, err = Wavefront(&buf, lShape(t), maze.Pt(0, 0), maze.Pt(5, 5))
	assert.Error(t, err)
	assert.Zero(t, buf.Len(), "nothing is written on error")
}
