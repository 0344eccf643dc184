package notification

import (
	"context"

	"clubrelay/internal/domain/service"
	"clubrelay/internal/errors"
	"clubrelay/internal/infra/metrics"
)

// Push result labels
const (
	resultSuccess      = "success"
	resultInvalidToken = "invalid_token"
	resultUnavailable  = "unavailable"
	resultError        = "error"
)

type instrumented struct {
	next    service.NotificationService
	metrics *metrics.Metrics
}

// NewInstrumented counts every send by result.
func NewInstrumented(next service.NotificationService, m *metrics.Metrics) service.NotificationService {
	return &instrumented{next: next, metrics: m}
}

func (s *instrumented) SendSingleNotification(
	ctx context.Context,
	token, title, body string,
	data map[string]string,
) (string, error) {
	id, err := s.next.SendSingleNotification(ctx, token, title, body, data)

	s.metrics.PushResults.WithLabelValues(resultLabel(err)).Inc()

	return id, err
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return resultSuccess
	case errors.Is(err, service.ErrInvalidToken):
		return resultInvalidToken
	case errors.Is(err, service.ErrProviderUnavailable):
		return resultUnavailable
	default:
		return resultError
	}
}
