// Package store persists mazes.
//
// Files: SaveJSON and LoadJSON read and write the row-major mask array used
// by the command-line tools (maze_grid.json); SaveText writes a rendered
// drawing.
//
// Records: a Record pairs a grid with how it was generated and, once
// solved, its solution path. Repository is implemented by
// MemoryRepository (process-local), RedisRepository (JSON values with a TTL,
// writes serialised per maze by a redsync mutex) and MongoRepository
// (one document per maze, upserted by id). All implementations are safe
// for concurrent use and return ErrNotFound for an unknown id.
package store
