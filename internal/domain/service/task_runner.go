package service

import "context"

// TaskRunner runs best-effort side effects without blocking the caller.
// Failures are observed through logs and metrics, never returned.
type TaskRunner interface {
	Go(ctx context.Context, name string, fn func(ctx context.Context) error)
}
