package main

import (
	"bytes"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/generate"
	"github.com/katalvlaran/labyrinth/store"
)

func init() {
	log.SetOutput(io.Discard)
}

func TestRun_WritesEveryOutput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "grid.json")
	txt := filepath.Join(dir, "maze.txt")
	pic := filepath.Join(dir, "maze.png")

	var stdout bytes.Buffer
	err := run([]string{
		"-algo", "prim", "-width", "7", "-height", "5", "-seed", "11",
		"-ascii", "-save-text", txt, "-save-png", pic, "-cell", "8", "-out", out,
	}, &stdout)
	require.NoError(t, err)

	g, err := store.LoadJSON(out)
	require.NoError(t, err)
	assert.NoError(t, g.Validate())
	want, err := generate.Generate(generate.AlgorithmPrim, 7, 5, generate.WithSeed(11))
	require.NoError(t, err)
	assert.True(t, want.Equal(g))

	text, err := os.ReadFile(txt)
	require.NoError(t, err)
	assert.Equal(t, strings.TrimSuffix(stdout.String(), "\n"), string(text))
	assert.Len(t, strings.Split(string(text), "\n"), 6)

	f, err := os.Open(pic)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 7*8+1, img.Bounds().Dx())
}

func TestRun_NoOutputFile(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	require.NoError(t, run([]string{"-width", "3", "-height", "3", "-out", ""}, io.Discard))
	entries, err := os.ReadDir(".")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "grid.json")
	cases := [][]string{
		{"-algo", "kruskal"},
		{"-width", "0"},
		{"-height", "-3"},
		{"-width", strconv.Itoa(math.MaxInt), "-height", "2"},
		{"-cell", "2"},
		{"-nope"},
	}
	for _, args := range cases {
		args = append(args, "-out", out)
		assert.Error(t, run(args, io.Discard), "%v", args)
	}
	_, err := os.Stat(out)
	assert.True(t, os.IsNotExist(err))
}
