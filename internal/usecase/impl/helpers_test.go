package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"clubrelay/config"
	mockService "clubrelay/internal/mocks/service"

	"github.com/stretchr/testify/mock"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	config.ApplyDefaults(cfg)

	return cfg
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// syncRunner runs every background task inline so its effects are visible to assertions.
func syncRunner(t *testing.T) *mockService.MockTaskRunner {
	runner := mockService.NewMockTaskRunner(t)
	runner.EXPECT().
		Go(mock.Anything, mock.AnythingOfType("string"), mock.Anything).
		Run(func(ctx context.Context, _ string, fn func(context.Context) error) {
			_ = fn(ctx)
		}).
		Maybe()

	return runner
}

// steppingClock returns a fixed start that advances by step on every call.
func steppingClock(start time.Time, step time.Duration) func() time.Time {
	var mu sync.Mutex
	current := start

	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now := current
		current = current.Add(step)

		return now
	}
}

func strPtr(s string) *string { return &s }
