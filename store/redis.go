package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/katalvlaran/labyrinth/maze"
)

const (
	// default prefix for redis keys
	defaultRedisPrefix = "maze"

	// key formats: <prefix>:<id> and <prefix>:<id>:lock
	recordKeyFmt = "%s:%s"
	lockKeyFmt   = "%s:%s:lock"
)

// RedisRepository stores each record as a JSON string under
// "<prefix>:<id>" with a TTL. Writes to one id are serialised by a redsync
// mutex so a solution update never races a replace.
type RedisRepository struct {
	client *redis.Client
	locker *redsync.Redsync
	prefix string
	ttl    time.Duration
}

// NewRedisRepository wraps client. ttlSeconds ≤ 0 stores records without
// expiry; an empty prefix falls back to "maze".
func NewRedisRepository(client *redis.Client, prefix string, ttlSeconds int) *RedisRepository {
	if prefix == "" {
		prefix = defaultRedisPrefix
	}
	repo := &RedisRepository{
		client: client,
		prefix: prefix,
	}
	if ttlSeconds > 0 {
		repo.ttl = time.Duration(ttlSeconds) * time.Second
	}
	pool := goredis.NewPool(client)
	repo.locker = redsync.New(pool)
	return repo
}

func (r *RedisRepository) key(id uuid.UUID) string {
	return fmt.Sprintf(recordKeyFmt, r.prefix, id)
}

// withLock runs fn while holding the per-id mutex.
func (r *RedisRepository) withLock(id uuid.UUID, fn func() error) error {
	mutex := r.locker.NewMutex(fmt.Sprintf(lockKeyFmt, r.prefix, id))
	if err := mutex.Lock(); err != nil {
		return fmt.Errorf("lock %s: %w", id, err)
	}
	defer func() {
		_, _ = mutex.Unlock()
	}()
	return fn()
}

// Save writes rec, replacing any previous value and resetting the TTL.
func (r *RedisRepository) Save(ctx context.Context, rec *Record) error {
	if rec == nil || rec.Grid == nil {
		return ErrNilRecord
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("Save(%s): %w", rec.ID, err)
	}
	return r.withLock(rec.ID, func() error {
		if err := r.client.Set(ctx, r.key(rec.ID), data, r.ttl).Err(); err != nil {
			return fmt.Errorf("Save(%s): %w", rec.ID, err)
		}
		return nil
	})
}

// ByID reads and decodes the record for id.
func (r *RedisRepository) ByID(ctx context.Context, id uuid.UUID) (*Record, error) {
	data, err := r.client.Get(ctx, r.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("ByID(%s): %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("ByID(%s): %w", id, err)
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("ByID(%s): decode: %w", id, err)
	}
	return &rec, nil
}

// SaveSolution rewrites the record with path attached, keeping its TTL.
func (r *RedisRepository) SaveSolution(ctx context.Context, id uuid.UUID, path maze.Path) error {
	return r.withLock(id, func() error {
		rec, err := r.ByID(ctx, id)
		if err != nil {
			return fmt.Errorf("SaveSolution: %w", err)
		}
		rec.Solution = path
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("SaveSolution(%s): %w", id, err)
		}
		if err := r.client.Set(ctx, r.key(id), data, redis.KeepTTL).Err(); err != nil {
			return fmt.Errorf("SaveSolution(%s): %w", id, err)
		}
		return nil
	})
}
