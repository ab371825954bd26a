// Command mazegen generates a perfect maze and writes it as JSON, text or PNG.
//
//	mazegen -algo wilson -width 30 -height 20 -seed 42 -ascii -save-png maze.png
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/labyrinth/generate"
	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/render"
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
	fs := flag.NewFlagSet("mazegen", flag.ContinueOnError)
	var (
		algoName = fs.String("algo", "dfs", "generation algorithm: dfs, prim or wilson")
		width    = fs.Int("width", 20, "maze width in cells")
		height   = fs.Int("height", 12, "maze height in cells")
		seed     = fs.Int64("seed", 0, "random seed (default: derived from the clock)")
		ascii    = fs.Bool("ascii", false, "print the ASCII maze to stdout")
		saveText = fs.String("save-text", "", "file to write the ASCII maze to")
		savePNG  = fs.String("save-png", "", "file to write a PNG picture to")
		cellSize = fs.Int("cell", render.DefaultCellSize, "PNG cell size in pixels")
		out      = fs.String("out", store.DefaultGridFile, "grid JSON file; empty disables")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	algo, err := generate.ParseAlgorithm(*algoName)
	if err != nil {
		return err
	}
	seeded := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seeded = true
		}
	})
	if !seeded {
		*seed = time.Now().UnixNano()
	}
	if *cellSize < render.MinCellSize {
		return fmt.Errorf("mazegen: -cell must be at least %d", render.MinCellSize)
	}

	g, err := generate.Generate(algo, *width, *height, generate.WithSeed(*seed))
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"algorithm": algo,
		"width":     *width,
		"height":    *height,
		"seed":      *seed,
	}).Info("maze generated")

	if *out != "" {
		if err := store.SaveJSON(*out, g); err != nil {
			return err
		}
		log.WithField("file", *out).Info("grid saved")
	}

	start, end := maze.DefaultEndpoints(g)
	text := render.ASCII(g, render.WithStart(start), render.WithEnd(end))
	if *ascii {
		fmt.Fprintln(stdout, text)
	}
	if *saveText != "" {
		if err := store.SaveText(*saveText, text); err != nil {
			return err
		}
		log.WithField("file", *saveText).Info("maze text saved")
	}
	if *savePNG != "" {
		if err := writePNG(*savePNG, g, start, end, *cellSize); err != nil {
			return err
		}
		log.WithField("file", *savePNG).Info("maze picture saved")
	}

	return nil
}

func writePNG(path string, g *maze.Grid, start, end maze.Point, cell int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("mazegen: %w", err)
	}
	if err := render.WritePNG(f, g, render.WithStart(start), render.WithEnd(end), render.WithCellSize(cell)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
