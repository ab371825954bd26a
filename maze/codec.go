package maze

import (
	"encoding/json"
	"fmt"
)

// Rows returns the grid as a row-major numeric array: Rows()[y][x] is the
// passage mask of (x, y). The result is a fresh copy.
// Complexity: O(W×H).
func (g *Grid) Rows() [][]int {
	rows := make([][]int, g.height)
	for y := 0; y < g.height; y++ {
		row := make([]int, g.width)
		for x := 0; x < g.width; x++ {
			row[x] = int(g.cells[g.index(x, y)])
		}
		rows[y] = row
	}
	return rows
}

// FromRows rebuilds a Grid from the numeric array produced by Rows. The input
// is copied. Passage symmetry is not checked here; use Validate for that.
//
// Errors:
//   - ErrEmptyGrid if rows has no rows or no columns.
//   - ErrNonRectangular if any row length differs from the first.
//   - ErrInvalidMask if a value lies outside 0..15.
//   - ErrInvalidDimension if the cell count overflows int.
//
// Complexity: O(W×H).
func FromRows(rows [][]int) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	if err := checkDimensions(w, h); err != nil {
		return nil, fmt.Errorf("FromRows: %w", err)
	}
	g := &Grid{width: w, height: h, cells: make([]Cell, w*h)}
	for y, row := range rows {
		for x, v := range row {
			if v < 0 || v > int(maxMask) {
				return nil, fmt.Errorf("FromRows: cell (%d,%d)=%d: %w", x, y, v, ErrInvalidMask)
			}
			g.cells[g.index(x, y)] = Cell(v)
		}
	}
	return g, nil
}

// MarshalJSON encodes the grid in its Rows form.
func (g *Grid) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.Rows())
}

// UnmarshalJSON decodes a Rows-form array into g, replacing its contents.
func (g *Grid) UnmarshalJSON(data []byte) error {
	var rows [][]int
	if err := json.Unmarshal(data, &rows); err != nil {
		return err
	}
	decoded, err := FromRows(rows)
	if err != nil {
		return err
	}
	*g = *decoded

	return nil
}
