// Command mazesolve loads a grid written by mazegen and solves it from the
// top-left to the bottom-right corner, writing a wavefront GIF, a solved
// text drawing, or both.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/render"
	"github.com/katalvlaran/labyrinth/solve"
	"github.com/katalvlaran/labyrinth/store"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout io.Writer) error {
	flags := flag.NewFlagSet("mazesolve", flag.ContinueOnError)
	var (
		in         = flags.String("in", store.DefaultGridFile, "grid JSON file written by mazegen")
		gif        = flags.Bool("gif", false, "write the wavefront animation")
		txt        = flags.Bool("txt", false, "write the solved ASCII maze")
		gifOut     = flags.String("gif-out", "maze_wavefront.gif", "animation output file")
		txtOut     = flags.String("txt-out", "maze_solved.txt", "text output file")
		frameEvery = flags.Int("frame-every", 1, "emit a frame every N settled cells")
		cellSize   = flags.Int("cell", render.DefaultCellSize, "GIF cell size in pixels")
	)
	if err := flags.Parse(args); err != nil {
		return err
	}
	if !*gif && !*txt {
		fmt.Fprintln(stdout, "No output type specified. Use -gif, -txt, or both.")
		return nil
	}
	if *frameEvery < 1 {
		return fmt.Errorf("mazesolve: -frame-every must be positive, got %d", *frameEvery)
	}
	if *cellSize < render.MinCellSize {
		return fmt.Errorf("mazesolve: -cell must be at least %d", render.MinCellSize)
	}

	g, err := store.LoadJSON(*in)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("mazesolve: %s not found, run mazegen first", *in)
	}
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"file":   *in,
		"width":  g.Width(),
		"height": g.Height(),
	}).Info("grid loaded")
	if err := g.Validate(); err != nil {
		log.WithError(err).Warn("grid is not a perfect maze")
	}

	start, end := maze.DefaultEndpoints(g)
	var res *solve.Result
	if *gif {
		if res, err = writeGIF(*gifOut, g, start, end, *frameEvery, *cellSize); err != nil {
			return err
		}
		log.WithField("file", *gifOut).Info("wavefront animation saved")
	} else {
		if res, err = solve.Solve(g, start, end); err != nil {
			return err
		}
	}
	log.WithFields(logrus.Fields{
		"found":   res.Found,
		"steps":   res.Distance,
		"settled": res.Settled,
	}).Info("maze solved")

	if *txt {
		opts := []render.Option{render.WithStart(start), render.WithEnd(end)}
		if res.Found {
			opts = append(opts, render.WithPath(res.Path))
		}
		if err := store.SaveText(*txtOut, render.ASCII(g, opts...)); err != nil {
			return err
		}
		log.WithField("file", *txtOut).Info("solved maze saved")
	}

	return nil
}

func writeGIF(path string, g *maze.Grid, start, end maze.Point, every, cell int) (*solve.Result, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("mazesolve: %w", err)
	}
	res, err := render.Wavefront(f, g, start, end, render.WithFrameEvery(every), render.WithCellSize(cell))
	if err != nil {
		f.Close()
		return nil, err
	}
	return res, f.Close()
}
