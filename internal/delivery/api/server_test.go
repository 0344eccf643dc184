package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"clubrelay/config"
	apimiddleware "clubrelay/internal/delivery/api/middleware"
	"clubrelay/internal/delivery/api/router"
	"clubrelay/internal/delivery/api/router/handler"
	deliverycontext "clubrelay/internal/delivery/context"
	"clubrelay/internal/domain/constants"
	"clubrelay/internal/domain/entity"
	"clubrelay/internal/infra/auth"
	"clubrelay/internal/infra/metrics"
	mockUsecase "clubrelay/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

const testAPIKey = "mobile-key"

type testServer struct {
	echo     *echo.Echo
	devices  *mockUsecase.MockDeviceUsecase
	deletion *mockUsecase.MockDeletionUsecase
	token    string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: 4, AdminSecret: "admin-secret", APIKeyCacheTTL: time.Minute},
		Deletion: &config.DeletionConfig{
			SweepSecret: "sweep-secret",
		},
		TestRoutes: &config.TestRoutesConfig{},
	}
	cfg.HTTP.MaxRequestBodySize = "1KB"

	hasher := auth.NewBcryptHasher(cfg)
	hash, err := hasher.Hash(testAPIKey)
	require.NoError(t, err)
	cfg.Auth.APIKeyHashes = []string{hash}

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)
	token, err := tokens.GenerateToken("ops", []string{constants.RoleAdmin}, time.Hour)
	require.NoError(t, err)

	devices := mockUsecase.NewMockDeviceUsecase(t)
	deletion := mockUsecase.NewMockDeletionUsecase(t)
	notifications := mockUsecase.NewMockNotificationUsecase(t)
	webhooks := mockUsecase.NewMockWebhookUsecase(t)

	params := ServerParams{
		Lc:      fxtest.NewLifecycle(t),
		Cfg:     cfg,
		Logger:  logger,
		Metrics: metrics.New(),
	}
	params.RouterParams = router.RouterParams{
		DeviceHandler: handler.NewDeviceHandler(handler.DeviceHandlerParams{DeviceUC: devices, DeletionUC: deletion, Logger: logger}),
		AdminHandler:  handler.NewAdminHandler(handler.AdminHandlerParams{DeletionUC: deletion, NotificationUC: notifications, Logger: logger}),
		SweepHandler:  handler.NewSweepHandler(handler.SweepHandlerParams{DeletionUC: deletion, Logger: logger}),
		WebhookHandler: handler.NewWebhookHandler(handler.WebhookHandlerParams{
			WebhookUC: webhooks,
			Logger:    logger,
		}),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(tokens),
		APIKey: apimiddleware.NewAPIKeyMiddleware(apimiddleware.APIKeyMiddlewareParams{
			Lc: params.Lc, Cfg: cfg, Hasher: hasher, Logger: logger,
		}),
		SweepAuth: apimiddleware.NewSweepAuthMiddleware(cfg, logger),
		Metrics:   params.Metrics,
		Config:    cfg,
	}

	return &testServer{
		echo:     newEcho(params),
		devices:  devices,
		deletion: deletion,
		token:    token,
	}
}

func (s *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	return rec
}

func TestServer_PublicRoutes(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))

	rec = s.do(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "clubrelay_http_request_duration_seconds")
}

func TestServer_AuthBoundaries(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name   string
		method string
		target string
	}{
		{name: "devices without api key", method: http.MethodGet, target: "/api/v1/devices?email=a@b.c"},
		{name: "account without api key", method: http.MethodDelete, target: "/api/v1/account?email=a@b.c"},
		{name: "admin without token", method: http.MethodGet, target: "/admin/deletion-requests/" + uuid.NewString()},
		{name: "sweep without secret", method: http.MethodPost, target: "/internal/deletion-sweep"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(httptest.NewRequest(tt.method, tt.target, nil))
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestServer_APIKeyGrantsDeviceRoutes(t *testing.T) {
	s := newTestServer(t)
	s.devices.EXPECT().
		ListDevices(mock.Anything, entity.UserKey{Email: "member@club.example"}).
		Return([]*entity.Device{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/devices?email=member@club.example", nil)
	req.Header.Set(apimiddleware.HeaderAPIKey, testAPIKey)
	rec := s.do(req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_AdminTokenGrantsDeletionLookup(t *testing.T) {
	s := newTestServer(t)
	id := uuid.New()
	s.deletion.EXPECT().
		GetRequest(mock.Anything, id).
		Return(&entity.DeletionRequest{ID: id, UserID: "AHC2601", Status: entity.DeletionStatusPending}, nil)

	req := httptest.NewRequest(http.MethodGet, "/admin/deletion-requests/"+id.String(), nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+s.token)
	rec := s.do(req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), id.String())
}

func TestServer_BodyLimit(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/webhooks/woocommerce", strings.NewReader(strings.Repeat("a", 4096)))
	rec := s.do(req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
