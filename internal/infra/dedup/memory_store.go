package dedup

import (
	"context"
	"time"

	"clubrelay/internal/domain/service"

	"github.com/jellydator/ttlcache/v3"
)

// memoryStore is a single-process dedup store.
type memoryStore struct {
	cache *ttlcache.Cache[string, struct{}]
}

// NewMemoryStore creates the store. Start launches expiry cleanup; Stop ends it.
func NewMemoryStore() *memoryStore {
	return &memoryStore{
		cache: ttlcache.New[string, struct{}](
			// Hits must not extend the window.
			ttlcache.WithDisableTouchOnHit[string, struct{}](),
		),
	}
}

var _ service.DedupStore = (*memoryStore)(nil)

func (s *memoryStore) Acquire(_ context.Context, key string, window time.Duration) (bool, error) {
	_, found := s.cache.GetOrSet(key, struct{}{}, ttlcache.WithTTL[string, struct{}](window))

	return !found, nil
}

func (s *memoryStore) Start() {
	go s.cache.Start()
}

func (s *memoryStore) Stop() {
	s.cache.Stop()
}
