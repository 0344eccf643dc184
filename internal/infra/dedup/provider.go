package dedup

import (
	"context"
	"log/slog"

	"clubrelay/config"
	"clubrelay/internal/domain/lifecycle"
	"clubrelay/internal/domain/service"
	"clubrelay/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// StoreParams holds dependencies for the dedup store, injected by Fx.
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewDedupStore picks Redis when redis.addr is set and the in-memory store otherwise.
func NewDedupStore(params StoreParams) service.DedupStore {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, using in-memory webhook dedup")

		store := NewMemoryStore()
		params.Lc.Append(fx.Hook{
			OnStart: func(context.Context) error {
				store.Start()

				return nil
			},
			OnStop: func(context.Context) error {
				store.Stop()

				return nil
			},
		})

		return store
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			// Dedup degrades to the audit-table fallback, so an unreachable Redis is not fatal.
			if err := client.Ping(ctx).Err(); err != nil {
				params.Logger.Warn("Redis ping failed", slog.String("addr", cfg.Addr), slog.Any("error", err))
			}

			return nil
		},
		OnStop: func(context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	params.Logger.Info("Using Redis webhook dedup", slog.String("addr", cfg.Addr))

	return NewRedisStore(client)
}
