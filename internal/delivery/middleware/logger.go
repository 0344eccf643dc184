// Package middleware holds transport-agnostic echo middleware.
package middleware

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"clubrelay/config"
	deliverycontext "clubrelay/internal/delivery/context"
	"clubrelay/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware records request latency and, in debug mode, logs every request
type LoggerMiddleware struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
	debug   bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config, m *metrics.Metrics) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger:  logger,
		metrics: m,
		debug:   config.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		// Let the error handler write the response so the status is final.
		if err != nil {
			c.Error(err)
		}

		m.observe(c, start)
		if m.debug {
			m.logRequest(c, start, err)
		}

		return nil
	}
}

func (m *LoggerMiddleware) observe(c echo.Context, start time.Time) {
	if m.metrics == nil {
		return
	}

	route := c.Path()
	if route == "" {
		route = "unmatched"
	}

	m.metrics.HTTPRequests.
		WithLabelValues(c.Request().Method, route, strconv.Itoa(c.Response().Status)).
		Observe(time.Since(start).Seconds())
}

// logRequest logs request details
func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()

	fields := []slog.Attr{
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", res.Status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}

	// Query strings may carry the webhook secret
	if len(req.URL.RawQuery) > 0 && c.Path() != "/webhooks/woocommerce" {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}

	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	logLevel := slog.LevelInfo
	if res.Status >= 400 {
		logLevel = slog.LevelWarn
	}
	if res.Status >= 500 {
		logLevel = slog.LevelError
	}

	m.logger.LogAttrs(context.Background(), logLevel, "HTTP Request", fields...)
}
