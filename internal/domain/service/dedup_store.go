package service

import (
	"context"
	"time"
)

// DedupStore remembers keys for a bounded window.
type DedupStore interface {
	// Acquire records key for window and reports whether this call was the first within the window.
	// It must be atomic under concurrent callers.
	Acquire(ctx context.Context, key string, window time.Duration) (bool, error)
}
