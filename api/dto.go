package api

import (
	"time"

	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/store"
)

// CreateMazeRequest asks for a new maze. An empty algorithm selects the
// controller default; a nil seed draws one from the clock.
type CreateMazeRequest struct {
	Algorithm string `json:"algorithm"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Seed      *int64 `json:"seed"`
}

// MazeResponse is the JSON form of a stored maze.
type MazeResponse struct {
	ID        string    `json:"id"`
	Algorithm string    `json:"algorithm"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Seed      int64     `json:"seed"`
	Grid      [][]int   `json:"grid"`
	Solution  maze.Path `json:"solution,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func newMazeResponse(rec *store.Record) *MazeResponse {
	return &MazeResponse{
		ID:        rec.ID.String(),
		Algorithm: rec.Algorithm.String(),
		Width:     rec.Width,
		Height:    rec.Height,
		Seed:      rec.Seed,
		Grid:      rec.Grid.Rows(),
		Solution:  rec.Solution,
		CreatedAt: rec.CreatedAt,
	}
}

// SolveRequest names the endpoints; omitted ones default to the top-left
// and bottom-right corners.
type SolveRequest struct {
	Start *maze.Point `json:"start"`
	End   *maze.Point `json:"end"`
}

// SolveResponse reports the solver outcome.
type SolveResponse struct {
	Found   bool      `json:"found"`
	Steps   int       `json:"steps"`
	Settled int       `json:"settled"`
	Path    maze.Path `json:"path"`
}
