package service

import (
	"context"

	"clubrelay/internal/domain/entity"
)

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAccountEvent publishes an account lifecycle event
	PublishAccountEvent(ctx context.Context, event *entity.AccountEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
