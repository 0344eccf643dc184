package middleware

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clubrelay/config"
	"clubrelay/internal/delivery/api/response"
	"clubrelay/internal/domain/constants"
	domainerrors "clubrelay/internal/domain/errors"
	"clubrelay/internal/infra/auth"
	mockService "clubrelay/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ok(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func serve(t *testing.T, h echo.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))

	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body.Error.Code
}

func TestAuthMiddleware(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{AdminSecret: "admin-secret"}}
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)
	m := NewAuthMiddleware(tokens)
	chain := m.Authenticate(m.RequireRole(constants.RoleAdmin)(ok))

	adminToken, err := tokens.GenerateToken("ops@club.test", []string{constants.RoleAdmin}, time.Hour)
	require.NoError(t, err)
	viewerToken, err := tokens.GenerateToken("viewer@club.test", []string{"viewer"}, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantCode   string
	}{
		{name: "admin token", header: "Bearer " + adminToken, wantStatus: http.StatusOK},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized, wantCode: "UNAUTHORIZED"},
		{name: "not bearer", header: "Basic abc", wantStatus: http.StatusUnauthorized, wantCode: "UNAUTHORIZED"},
		{name: "garbage token", header: "Bearer not-a-jwt", wantStatus: http.StatusUnauthorized, wantCode: "UNAUTHORIZED"},
		{name: "missing role", header: "Bearer " + viewerToken, wantStatus: http.StatusForbidden, wantCode: "FORBIDDEN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin/deletion-requests/x", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}

			rec := serve(t, chain, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, errorCode(t, rec))
			}
		})
	}
}

func TestAPIKeyMiddleware(t *testing.T) {
	hasher := mockService.NewMockSecretHasher(t)
	cfg := &config.AuthConfig{APIKeyHashes: []string{"hash-a", "hash-b"}, APIKeyCacheTTL: time.Minute}
	m := newAPIKeyMiddleware(cfg, hasher, discardLogger())
	h := m.Authenticate(ok)

	hasher.EXPECT().Check("good-key", "hash-a").Return(false).Once()
	hasher.EXPECT().Check("good-key", "hash-b").Return(true).Once()
	hasher.EXPECT().Check("bad-key", "hash-a").Return(false).Twice()
	hasher.EXPECT().Check("bad-key", "hash-b").Return(false).Twice()

	request := func(key string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/devices", nil)
		if key != "" {
			req.Header.Set(HeaderAPIKey, key)
		}

		return req
	}

	t.Run("valid key is verified once then cached", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, serve(t, h, request("good-key")).Code)
		assert.Equal(t, http.StatusOK, serve(t, h, request("good-key")).Code)
	})

	t.Run("invalid key is never cached", func(t *testing.T) {
		for range 2 {
			rec := serve(t, h, request("bad-key"))
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, domainerrors.ErrInvalidAPIKey.ErrorCode(), errorCode(t, rec))
		}
	})

	t.Run("missing key", func(t *testing.T) {
		rec := serve(t, h, request(""))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAPIKeyMiddleware_Bcrypt(t *testing.T) {
	hasher := auth.NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 4}})
	hash, err := hasher.Hash("mobile-key")
	require.NoError(t, err)

	m := newAPIKeyMiddleware(&config.AuthConfig{APIKeyHashes: []string{hash}, APIKeyCacheTTL: time.Minute}, hasher, discardLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/devices", nil)
	req.Header.Set(HeaderAPIKey, "mobile-key")
	assert.Equal(t, http.StatusOK, serve(t, m.Authenticate(ok), req).Code)
}

func TestSweepAuthMiddleware(t *testing.T) {
	cfg := &config.Config{Deletion: &config.DeletionConfig{
		SweepSecret:       "sweep-secret",
		SweepOIDCAudience: "https://relay.test/internal/deletion-sweep",
	}}

	validator := func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		if audience != cfg.Deletion.SweepOIDCAudience {
			return nil, errors.New("audience mismatch")
		}
		switch token {
		case "google-token":
			return &idtoken.Payload{Issuer: "https://accounts.google.com", Subject: "scheduler"}, nil
		case "foreign-token":
			return &idtoken.Payload{Issuer: "https://issuer.example", Subject: "other"}, nil
		default:
			return nil, errors.New("invalid token")
		}
	}
	h := NewSweepAuthMiddlewareWithValidator(cfg, discardLogger(), validator).Authenticate(ok)

	tests := []struct {
		name       string
		secret     string
		bearer     string
		wantStatus int
	}{
		{name: "shared secret", secret: "sweep-secret", wantStatus: http.StatusOK},
		{name: "wrong secret", secret: "nope", wantStatus: http.StatusUnauthorized},
		{name: "google oidc", bearer: "google-token", wantStatus: http.StatusOK},
		{name: "foreign issuer", bearer: "foreign-token", wantStatus: http.StatusUnauthorized},
		{name: "invalid oidc", bearer: "forged", wantStatus: http.StatusUnauthorized},
		{name: "wrong secret falls through to oidc", secret: "nope", bearer: "google-token", wantStatus: http.StatusOK},
		{name: "no credentials", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/internal/deletion-sweep", nil)
			if tt.secret != "" {
				req.Header.Set(HeaderSweepSecret, tt.secret)
			}
			if tt.bearer != "" {
				req.Header.Set(echo.HeaderAuthorization, "Bearer "+tt.bearer)
			}

			assert.Equal(t, tt.wantStatus, serve(t, h, req).Code)
		})
	}
}

func TestSweepAuthMiddleware_NothingConfigured(t *testing.T) {
	cfg := &config.Config{Deletion: &config.DeletionConfig{}}
	h := NewSweepAuthMiddlewareWithValidator(cfg, discardLogger(), func(context.Context, string, string) (*idtoken.Payload, error) {
		t.Fatal("oidc must not be consulted without an audience")

		return nil, nil
	}).Authenticate(ok)

	req := httptest.NewRequest(http.MethodPost, "/internal/deletion-sweep", nil)
	req.Header.Set(HeaderSweepSecret, "")
	req.Header.Set(echo.HeaderAuthorization, "Bearer anything")

	assert.Equal(t, http.StatusUnauthorized, serve(t, h, req).Code)
}

func TestErrorMiddleware(t *testing.T) {
	m := NewErrorMiddleware(discardLogger())

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "app error", err: domainerrors.ErrDeviceNotFound, wantStatus: http.StatusNotFound, wantCode: "DEVICE_NOT_FOUND"},
		{name: "wrapped app error", err: errors.Wrap(domainerrors.ErrStateChanged, "hold"), wantStatus: http.StatusConflict, wantCode: "STATE_CHANGED"},
		{name: "echo error", err: echo.ErrMethodNotAllowed, wantStatus: http.StatusMethodNotAllowed, wantCode: "HTTP_ERROR"},
		{name: "unknown error", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, errorCode(t, rec))
		})
	}
}
