package repository

import (
	"context"
	"time"

	"clubrelay/internal/domain/entity"
)

// WebhookLogRepository stores inbound webhook audit rows.
type WebhookLogRepository interface {
	Create(ctx context.Context, log *entity.WebhookLog) error

	// ExistsRecent reports whether a non-deduplicated row with dedupKey was received after since.
	ExistsRecent(ctx context.Context, dedupKey string, since time.Time) (bool, error)
}

// PushLogRepository stores outbound push audit rows.
type PushLogRepository interface {
	CreateBatch(ctx context.Context, logs []*entity.PushLog) error
}
