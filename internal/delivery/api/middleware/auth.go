// Package middleware holds the authentication middleware of the API server.
package middleware

import (
	"slices"
	"strings"

	"clubrelay/internal/delivery/api/response"
	deliverycontext "clubrelay/internal/delivery/context"
	domainerrors "clubrelay/internal/domain/errors"
	"clubrelay/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware authenticates admin bearer tokens.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the admin JWT and stores its subject and roles.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := bearerToken(c)
		if !ok {
			return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), "Authorization header must carry a Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), "Invalid or expired token")
		}

		if claims.Subject == "" {
			return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), "Token subject is missing")
		}

		deliverycontext.SetAdmin(c, claims.Subject, claims.Roles)

		return next(c)
	}
}

// RequireRole checks that the authenticated token carries role.
// It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, ok := deliverycontext.GetAdminRoles(c)
			if !ok || !slices.Contains(roles, role) {
				return response.Forbidden(c, domainerrors.ErrForbidden.ErrorCode(), "Permission denied: require '"+role+"' role")
			}

			return next(c)
		}
	}
}

func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))

	return token, token != ""
}
