package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/katalvlaran/labyrinth/maze"
)

// DefaultGridFile is the file name shared by mazegen and mazesolve.
const DefaultGridFile = "maze_grid.json"

// SaveJSON writes g to path as a JSON array of rows of masks.
func SaveJSON(path string, g *maze.Grid) error {
	if g == nil {
		return fmt.Errorf("SaveJSON(%s): %w", path, ErrNilRecord)
	}
	data, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("SaveJSON(%s): %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("SaveJSON(%s): %w", path, err)
	}
	return nil
}

// LoadJSON reads a grid written by SaveJSON. Shape and mask errors come from
// maze.FromRows; passage symmetry is not checked.
func LoadJSON(path string) (*maze.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadJSON(%s): %w", path, err)
	}
	var g maze.Grid
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("LoadJSON(%s): %w", path, err)
	}
	return &g, nil
}

// SaveText writes text to path verbatim.
func SaveText(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("SaveText(%s): %w", path, err)
	}
	return nil
}
