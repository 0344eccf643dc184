package usecase

import (
	"context"

	"clubrelay/internal/domain/entity"
)

// WebhookDelivery is one inbound webhook as received over HTTP.
type WebhookDelivery struct {
	Source    string
	Topic     string
	Body      []byte
	Signature string
}

// WebhookUsecase ingests shop webhooks and turns them into pushes.
type WebhookUsecase interface {
	Ingest(ctx context.Context, delivery *WebhookDelivery) (*entity.IngestResult, error)
}
