package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/labyrinth/maze"
)

// MemoryRepository keeps records in a map. Records are copied on the way in
// and out, so callers never share state with the repository.
type MemoryRepository struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*Record
}

// NewMemoryRepository returns an empty MemoryRepository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{records: make(map[uuid.UUID]*Record)}
}

// Save inserts or replaces rec.
func (m *MemoryRepository) Save(_ context.Context, rec *Record) error {
	if rec == nil || rec.Grid == nil {
		return ErrNilRecord
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[rec.ID] = rec.clone()
	return nil
}

// ByID retrieves a copy of the record with the given id.
func (m *MemoryRepository) ByID(_ context.Context, id uuid.UUID) (*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.records[id]
	if !ok {
		return nil, fmt.Errorf("ByID(%s): %w", id, ErrNotFound)
	}
	return rec.clone(), nil
}

// SaveSolution stores a copy of path on the record.
func (m *MemoryRepository) SaveSolution(_ context.Context, id uuid.UUID, path maze.Path) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[id]
	if !ok {
		return fmt.Errorf("SaveSolution(%s): %w", id, ErrNotFound)
	}
	rec.Solution = append(maze.Path(nil), path...)
	return nil
}

// Len returns the number of stored records.
func (m *MemoryRepository) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}
