package service

import (
	"context"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidToken is returned when the provider reports the token as invalid or unregistered.
	ErrInvalidToken = errors.New("push token is invalid or unregistered")
	// ErrProviderUnavailable is returned when no push provider is configured.
	ErrProviderUnavailable = errors.New("push provider is not configured")
)

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SendSingleNotification sends a push notification to a single device token
	// and returns the provider's message id.
	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) (string, error)
}
