// Package dedup implements the webhook dedup store on Redis, with an in-memory fallback.
package dedup

import (
	"context"
	"time"

	"clubrelay/internal/domain/service"
	"clubrelay/internal/errors"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "clubrelay:webhook:dedup:"

type redisStore struct {
	client redis.UniversalClient
}

// NewRedisStore wraps client. SET NX gives first-writer-wins across instances.
func NewRedisStore(client redis.UniversalClient) service.DedupStore {
	return &redisStore{client: client}
}

func (s *redisStore) Acquire(ctx context.Context, key string, window time.Duration) (bool, error) {
	ok, err := s.client.SetNX(ctx, keyPrefix+key, time.Now().UTC().Format(time.RFC3339Nano), window).Result()
	if err != nil {
		return false, errors.Wrap(err, "redis SETNX failed")
	}

	return ok, nil
}
