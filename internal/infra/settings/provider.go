// Package settings serves app_settings through a short-lived cache.
package settings

import (
	"context"
	"log/slog"
	"time"

	"clubrelay/config"
	"clubrelay/internal/domain/lifecycle"
	"clubrelay/internal/domain/repository"
	"clubrelay/internal/domain/service"
	"clubrelay/internal/errors"

	"github.com/jellydator/ttlcache/v3"
	"go.uber.org/fx"
)

// entry caches misses too, so an unset key does not hit the database on every webhook.
type entry struct {
	value string
	found bool
}

type cachedProvider struct {
	repo   repository.SettingRepository
	cache  *ttlcache.Cache[string, entry]
	logger *slog.Logger
}

// ProviderParams holds dependencies for the settings provider, injected by Fx.
type ProviderParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Repo   repository.SettingRepository
	Logger *slog.Logger
}

// NewSettingsProvider creates the provider and ties cache cleanup to the app lifecycle.
func NewSettingsProvider(params ProviderParams) service.SettingsProvider {
	p := NewCachedProvider(params.Repo, params.Config.Settings.CacheTTL, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go p.cache.Start()

			return nil
		},
		OnStop: func(context.Context) error {
			p.cache.Stop()

			return nil
		},
	})

	return p
}

// NewCachedProvider builds a provider whose entries live for ttl.
func NewCachedProvider(repo repository.SettingRepository, ttl time.Duration, logger *slog.Logger) *cachedProvider {
	p := &cachedProvider{repo: repo, logger: logger}

	loader := ttlcache.LoaderFunc[string, entry](p.load)
	p.cache = ttlcache.New[string, entry](
		ttlcache.WithTTL[string, entry](ttl),
		ttlcache.WithDisableTouchOnHit[string, entry](),
		ttlcache.WithLoader[string, entry](ttlcache.NewSuppressedLoader[string, entry](loader, nil)),
	)

	return p
}

func (p *cachedProvider) Get(_ context.Context, key string) (string, bool) {
	item := p.cache.Get(key)
	if item == nil {
		return "", false
	}

	e := item.Value()

	return e.value, e.found
}

// load runs under singleflight. Read errors are not cached.
func (p *cachedProvider) load(c *ttlcache.Cache[string, entry], key string) *ttlcache.Item[string, entry] {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	setting, err := p.repo.FindByKey(ctx, key)
	switch {
	case errors.Is(err, repository.ErrSettingNotFound):
		return c.Set(key, entry{}, ttlcache.DefaultTTL)
	case err != nil:
		p.logger.Warn("Failed to load app setting", slog.String("key", key), slog.Any("error", err))

		return nil
	default:
		return c.Set(key, entry{value: setting.Value, found: true}, ttlcache.DefaultTTL)
	}
}
