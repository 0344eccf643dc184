package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"clubrelay/config"
	deliverycontext "clubrelay/internal/delivery/context"
	"clubrelay/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.GET("/ping", func(c echo.Context) error {
		assert.Equal(t, deliverycontext.GetRequestID(c), deliverycontext.GetRequestIDFromContext(c.Request().Context()))
		assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

		return c.NoContent(http.StatusNoContent)
	})

	t.Run("propagates client id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "req-123")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
	})

	t.Run("generates id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Len(t, rec.Header().Get(deliverycontext.HeaderXRequestID), 36)
	})

	t.Run("replaces unsafe id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "evil id\tinjected")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		got := rec.Header().Get(deliverycontext.HeaderXRequestID)
		assert.NotEqual(t, "evil id\tinjected", got)
		assert.Len(t, got, 36)
	})
}

func TestValidRequestID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{name: "empty", id: "", want: false},
		{name: "uuid", id: "6f1c2f2e-3c1d-4c55-9d1a-3f1f7c0e8a21", want: true},
		{name: "cloud trace style", id: "abc123/0;o=1", want: false},
		{name: "colon and dots", id: "wc:order.42_retry", want: true},
		{name: "space", id: "a b", want: false},
		{name: "max length", id: strings.Repeat("a", maxRequestIDLength), want: true},
		{name: "too long", id: strings.Repeat("a", maxRequestIDLength+1), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validRequestID(tt.id))
		})
	}
}

func TestLoggerMiddleware_RecordsLatency(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.Env.Debug = true
	m := metrics.New()

	e := echo.New()
	e.Use(NewLoggerMiddleware(logger, cfg, m).Handle)
	e.GET("/ok", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/teapot", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "short and stout")
	})

	for _, path := range []string{"/ok", "/teapot", "/missing"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	}

	count, err := testutil.GatherAndCount(m.Registry(), "clubrelay_http_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/teapot", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}
