package store

import "errors"

var (
	// ErrNotFound indicates no record exists for the requested id.
	ErrNotFound = errors.New("store: maze not found")
	// ErrNilRecord indicates a nil record or a record without a grid.
	ErrNilRecord = errors.New("store: record or grid is nil")
)
