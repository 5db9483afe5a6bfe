package storage

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// SnapshotStore is the read contract against the snapshot cache.
//
// Values are whole pre-serialized lists written by external producer jobs on
// their own schedule; this service never writes, retries, or merges them.
type SnapshotStore interface {
	// Get returns the raw value at key. found is false when the key is
	// absent; err reports store-level failures (connectivity, timeouts).
	Get(ctx context.Context, key string) (value string, found bool, err error)
}

type redisSnapshotStore struct {
	rdb *redis.Client
}

// NewRedisSnapshotStore wraps a Redis client as a SnapshotStore.
func NewRedisSnapshotStore(rdb *redis.Client) SnapshotStore {
	return &redisSnapshotStore{rdb: rdb}
}

func (s *redisSnapshotStore) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}
