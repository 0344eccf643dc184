package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newEchoContext() echo.Context {
	return echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
}

func TestRequestID(t *testing.T) {
	c := newEchoContext()
	assert.Len(t, GetRequestID(c), 36, "falls back to a uuid")

	SetRequestID(c, "req-9")
	assert.Equal(t, "req-9", GetRequestID(c))

	ctx := context.Background()
	assert.Empty(t, GetRequestIDFromContext(ctx))
	assert.Equal(t, "req-9", GetRequestIDFromContext(WithRequestID(ctx, "req-9")))
}

func TestLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With(slog.String("request_id", "req-9"))
	ctx := context.Background()

	assert.Nil(t, GetLogger(ctx))
	assert.Same(t, fallback, GetLoggerOrDefault(ctx, fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(ctx, scoped), fallback))
}

func TestAdmin(t *testing.T) {
	c := newEchoContext()

	_, ok := GetAdminSubject(c)
	assert.False(t, ok)

	SetAdmin(c, "ops@club.example", []string{"admin"})

	subject, ok := GetAdminSubject(c)
	assert.True(t, ok)
	assert.Equal(t, "ops@club.example", subject)

	roles, ok := GetAdminRoles(c)
	assert.True(t, ok)
	assert.Equal(t, []string{"admin"}, roles)
}
