// Package background runs best-effort side effects off the request path.
package background

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"clubrelay/config"
	deliverycontext "clubrelay/internal/delivery/context"
	"clubrelay/internal/domain/lifecycle"
	"clubrelay/internal/domain/service"
	"clubrelay/internal/infra/metrics"

	"go.uber.org/fx"
)

// Runner implements service.TaskRunner. Tasks are detached from the caller's
// cancellation, bounded by a timeout and drained on shutdown.
type Runner struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
	timeout time.Duration
	wg      sync.WaitGroup
}

// RunnerParams holds dependencies for Runner, injected by Fx.
type RunnerParams struct {
	fx.In

	Lc      fx.Lifecycle
	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics
}

// NewTaskRunner creates the runner and registers the shutdown drain.
func NewTaskRunner(params RunnerParams) service.TaskRunner {
	r := NewRunner(params.Logger, params.Metrics, params.Config.Background.TaskTimeout)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			waitCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if !r.Wait(waitCtx) {
				r.logger.Warn("Background tasks still running at shutdown")
			}

			return nil
		},
	})

	return r
}

// NewRunner builds a Runner without lifecycle wiring.
func NewRunner(logger *slog.Logger, m *metrics.Metrics, timeout time.Duration) *Runner {
	return &Runner{
		logger:  logger,
		metrics: m,
		timeout: timeout,
	}
}

// Go starts fn on its own goroutine. The request logger and request id travel with ctx.
func (r *Runner) Go(ctx context.Context, name string, fn func(ctx context.Context) error) {
	r.wg.Add(1)

	go func() {
		defer r.wg.Done()

		taskCtx := context.WithoutCancel(ctx)
		if r.timeout > 0 {
			var cancel context.CancelFunc
			taskCtx, cancel = context.WithTimeout(taskCtx, r.timeout)
			defer cancel()
		}

		logger := deliverycontext.GetLoggerOrDefault(ctx, r.logger)

		if err := r.run(taskCtx, fn); err != nil {
			logger.Warn("Background task failed",
				slog.String("task", name),
				slog.Any("error", err),
			)
			if r.metrics != nil {
				r.metrics.BackgroundFailures.WithLabelValues(name).Inc()
			}
		}
	}()
}

func (r *Runner) run(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic: %v", rec)
		}
	}()

	return fn(ctx)
}

// Wait blocks until every started task returns or ctx is done. It reports whether all tasks finished.
func (r *Runner) Wait(ctx context.Context) bool {
	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return true
	case <-ctx.Done():
		return false
	}
}
