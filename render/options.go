package render

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/maze"
)

// Defaults for the image renderers.
const (
	// DefaultCellSize is the side of one cell in pixels, walls included.
	DefaultCellSize = 16
	// MinCellSize keeps a visible interior between two wall lines.
	MinCellSize = 5
	// DefaultFrameDelay is the delay between GIF frames in 1/100 s.
	DefaultFrameDelay = 8
)

// Option customizes a render call.
type Option func(*options)

type options struct {
	start, end *maze.Point
	path       maze.Path
	cellSize   int
	frameEvery int
	delay      int
}

func newOptions(opts ...Option) options {
	o := options{
		cellSize:   DefaultCellSize,
		frameEvery: 1,
		delay:      DefaultFrameDelay,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithStart marks p with "S".
func WithStart(p maze.Point) Option {
	return func(o *options) { o.start = &p }
}

// WithEnd marks p with "E". A point that is also the start shows "S".
func WithEnd(p maze.Point) Option {
	return func(o *options) { o.end = &p }
}

// WithPath highlights the cells of path. In ASCII the first and last cells
// are left to the start and end markers.
func WithPath(path maze.Path) Option {
	return func(o *options) { o.path = path }
}

// WithCellSize sets the pixel size of one cell. Panics if n < MinCellSize.
func WithCellSize(n int) Option {
	if n < MinCellSize {
		panic(fmt.Sprintf("render: WithCellSize(%d) below %d", n, MinCellSize))
	}
	return func(o *options) { o.cellSize = n }
}

// WithFrameEvery makes Wavefront emit one frame per n settled cells. Panics
// if n < 1.
func WithFrameEvery(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("render: WithFrameEvery(%d)", n))
	}
	return func(o *options) { o.frameEvery = n }
}

// WithFrameDelay sets the GIF frame delay in hundredths of a second. Panics
// if d < 0.
func WithFrameDelay(d int) Option {
	if d < 0 {
		panic(fmt.Sprintf("render: WithFrameDelay(%d)", d))
	}
	return func(o *options) { o.delay = d }
}
