package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/labyrinth/generate"
	"github.com/katalvlaran/labyrinth/maze"
)

// Record is a stored maze together with how it was generated.
type Record struct {
	ID        uuid.UUID          `json:"id"`
	Algorithm generate.Algorithm `json:"algorithm"`
	Width     int                `json:"width"`
	Height    int                `json:"height"`
	Seed      int64              `json:"seed"`
	Grid      *maze.Grid         `json:"grid"`
	Solution  maze.Path          `json:"solution,omitempty"`
	CreatedAt time.Time          `json:"createdAt"`
}

// NewRecord wraps a freshly generated grid in a Record with a random id.
func NewRecord(algo generate.Algorithm, seed int64, g *maze.Grid) *Record {
	return &Record{
		ID:        uuid.New(),
		Algorithm: algo,
		Width:     g.Width(),
		Height:    g.Height(),
		Seed:      seed,
		Grid:      g,
		CreatedAt: time.Now().UTC(),
	}
}

// clone returns a deep copy of r.
func (r *Record) clone() *Record {
	c := *r
	if r.Grid != nil {
		c.Grid = r.Grid.Clone()
	}
	if r.Solution != nil {
		c.Solution = append(maze.Path(nil), r.Solution...)
	}
	return &c
}

// Repository defines maze persistence operations.
type Repository interface {
	// Save inserts or replaces a record.
	Save(ctx context.Context, rec *Record) error

	// ByID retrieves a record by id, or ErrNotFound.
	ByID(ctx context.Context, id uuid.UUID) (*Record, error)

	// SaveSolution attaches a solution path to an existing record, or
	// returns ErrNotFound.
	SaveSolution(ctx context.Context, id uuid.UUID, path maze.Path) error
}
