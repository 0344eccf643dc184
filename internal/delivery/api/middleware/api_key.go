package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"

	"clubrelay/config"
	"clubrelay/internal/delivery/api/response"
	deliverycontext "clubrelay/internal/delivery/context"
	domainerrors "clubrelay/internal/domain/errors"
	"clubrelay/internal/domain/service"

	"github.com/jellydator/ttlcache/v3"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HeaderAPIKey carries the mobile app's API key.
const HeaderAPIKey = "X-API-Key"

// APIKeyMiddleware checks X-API-Key against the configured bcrypt hashes.
// Keys that verified are remembered by their SHA-256 digest so bcrypt runs once per TTL.
type APIKeyMiddleware struct {
	hasher   service.SecretHasher
	hashes   []string
	verified *ttlcache.Cache[string, struct{}]
	logger   *slog.Logger
}

// APIKeyMiddlewareParams holds dependencies for APIKeyMiddleware, injected by Fx.
type APIKeyMiddlewareParams struct {
	fx.In

	Lc     fx.Lifecycle
	Cfg    *config.Config
	Hasher service.SecretHasher
	Logger *slog.Logger
}

// NewAPIKeyMiddleware builds the middleware and ties the cache janitor to the app lifecycle.
func NewAPIKeyMiddleware(params APIKeyMiddlewareParams) *APIKeyMiddleware {
	m := newAPIKeyMiddleware(params.Cfg.Auth, params.Hasher, params.Logger)
	if len(m.hashes) == 0 {
		params.Logger.Warn("No API key hashes configured; every /api/v1 request will be rejected")
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go m.verified.Start()

			return nil
		},
		OnStop: func(context.Context) error {
			m.verified.Stop()

			return nil
		},
	})

	return m
}

func newAPIKeyMiddleware(cfg *config.AuthConfig, hasher service.SecretHasher, logger *slog.Logger) *APIKeyMiddleware {
	return &APIKeyMiddleware{
		hasher: hasher,
		hashes: cfg.APIKeyHashes,
		verified: ttlcache.New[string, struct{}](
			ttlcache.WithTTL[string, struct{}](cfg.APIKeyCacheTTL),
			ttlcache.WithDisableTouchOnHit[string, struct{}](),
		),
		logger: logger,
	}
}

// Authenticate rejects requests without a valid API key.
func (m *APIKeyMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		key := c.Request().Header.Get(HeaderAPIKey)
		if key == "" || !m.valid(key) {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Warn("Rejected API key", slog.String("path", c.Request().URL.Path))

			return response.Unauthorized(c, domainerrors.ErrInvalidAPIKey.ErrorCode(), domainerrors.ErrInvalidAPIKey.Message())
		}

		return next(c)
	}
}

func (m *APIKeyMiddleware) valid(key string) bool {
	sum := sha256.Sum256([]byte(key))
	digest := hex.EncodeToString(sum[:])

	if m.verified.Has(digest) {
		return true
	}

	for _, hash := range m.hashes {
		if m.hasher.Check(key, hash) {
			m.verified.Set(digest, struct{}{}, ttlcache.DefaultTTL)

			return true
		}
	}

	return false
}
