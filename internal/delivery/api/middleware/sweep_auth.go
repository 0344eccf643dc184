package middleware

import (
	"context"
	"crypto/subtle"
	"log/slog"

	"clubrelay/config"
	"clubrelay/internal/delivery/api/response"
	deliverycontext "clubrelay/internal/delivery/context"
	domainerrors "clubrelay/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"google.golang.org/api/idtoken"
)

// HeaderSweepSecret carries the shared secret of the sweep invoker.
const HeaderSweepSecret = "X-Sweep-Secret"

// OIDCValidator verifies a Google-signed ID token for audience.
type OIDCValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// SweepAuthMiddleware admits the sweep trigger by shared secret or by a Cloud Scheduler OIDC token.
type SweepAuthMiddleware struct {
	secret   string
	audience string
	validate OIDCValidator
	logger   *slog.Logger
}

// NewSweepAuthMiddleware is the constructor for SweepAuthMiddleware.
func NewSweepAuthMiddleware(cfg *config.Config, logger *slog.Logger) *SweepAuthMiddleware {
	return NewSweepAuthMiddlewareWithValidator(cfg, logger, idtoken.Validate)
}

// NewSweepAuthMiddlewareWithValidator allows the OIDC check to be replaced.
func NewSweepAuthMiddlewareWithValidator(cfg *config.Config, logger *slog.Logger, validate OIDCValidator) *SweepAuthMiddleware {
	if cfg.Deletion.SweepSecret == "" && cfg.Deletion.SweepOIDCAudience == "" {
		logger.Warn("Neither deletion.sweepSecret nor deletion.sweepOidcAudience is set; the sweep endpoint is closed")
	}

	return &SweepAuthMiddleware{
		secret:   cfg.Deletion.SweepSecret,
		audience: cfg.Deletion.SweepOIDCAudience,
		validate: validate,
		logger:   logger,
	}
}

// Authenticate rejects sweep triggers that carry neither credential.
func (m *SweepAuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

		if provided := c.Request().Header.Get(HeaderSweepSecret); provided != "" && m.secret != "" {
			if subtle.ConstantTimeCompare([]byte(provided), []byte(m.secret)) == 1 {
				return next(c)
			}
		}

		if token, ok := bearerToken(c); ok && m.audience != "" {
			payload, err := m.validate(c.Request().Context(), token, m.audience)
			if err == nil && validIssuer(payload.Issuer) {
				logger.Info("Sweep triggered by OIDC caller", slog.String("subject", payload.Subject))

				return next(c)
			}
			logger.Warn("Rejected sweep OIDC token", slog.Any("error", err))
		}

		return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), domainerrors.ErrUnauthorized.Message())
	}
}

func validIssuer(iss string) bool {
	return iss == "accounts.google.com" || iss == "https://accounts.google.com"
}
