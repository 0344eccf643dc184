package postgres

import (
	"context"
	"time"

	"clubrelay/internal/domain/entity"
	domainerrors "clubrelay/internal/domain/errors"
	"clubrelay/internal/domain/repository"
	"clubrelay/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const pushLogBatchSize = 100

type webhookLogRepository struct {
	db *gorm.DB
}

// NewWebhookLogRepository is the constructor for webhookLogRepository.
func NewWebhookLogRepository(db *gorm.DB) repository.WebhookLogRepository {
	return &webhookLogRepository{db: db}
}

func (repo *webhookLogRepository) Create(ctx context.Context, log *entity.WebhookLog) error {
	logM := &model.WebhookLogModel{
		ID:            log.ID,
		Source:        log.Source,
		Topic:         log.Topic,
		ResourceID:    log.ResourceID,
		Status:        log.Status,
		DedupKey:      log.DedupKey,
		Deduplicated:  log.Deduplicated,
		CustomerEmail: log.CustomerEmail,
		Processed:     log.Processed,
		PushSuccess:   log.PushSuccess,
		PushMessageID: log.PushMessageID,
		PushError:     log.PushError,
		RawPayload:    log.RawPayload,
		ReceivedAt:    log.ReceivedAt,
	}
	if logM.ID == uuid.Nil {
		logM.ID = uuid.New()
	}
	if logM.ReceivedAt.IsZero() {
		logM.ReceivedAt = time.Now().UTC()
	}

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create webhook log")
	}
	log.ID = logM.ID

	return nil
}

// ExistsRecent is the dedup fallback when the dedup store is unavailable.
func (repo *webhookLogRepository) ExistsRecent(ctx context.Context, dedupKey string, since time.Time) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.WebhookLogModel{}).
		Where("dedup_key = ? AND deduplicated = ? AND received_at > ?", dedupKey, false, since).
		Limit(1).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to query recent webhook logs")
	}

	return count > 0, nil
}

type pushLogRepository struct {
	db *gorm.DB
}

// NewPushLogRepository is the constructor for pushLogRepository.
func NewPushLogRepository(db *gorm.DB) repository.PushLogRepository {
	return &pushLogRepository{db: db}
}

func (repo *pushLogRepository) CreateBatch(ctx context.Context, logs []*entity.PushLog) error {
	if len(logs) == 0 {
		return nil
	}

	now := time.Now().UTC()
	logModels := make([]*model.PushNotificationLogModel, 0, len(logs))
	for _, l := range logs {
		logM := &model.PushNotificationLogModel{
			ID:          l.ID,
			UserID:      l.UserID,
			Email:       l.Email,
			DeviceRef:   l.DeviceRef,
			TokenPrefix: l.TokenPrefix,
			Title:       l.Title,
			Body:        l.Body,
			Trigger:     l.Trigger,
			Success:     l.Success,
			MessageID:   l.MessageID,
			Error:       l.Error,
			CreatedAt:   l.CreatedAt,
		}
		if logM.ID == uuid.Nil {
			logM.ID = uuid.New()
		}
		if logM.CreatedAt.IsZero() {
			logM.CreatedAt = now
		}
		logModels = append(logModels, logM)
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(logModels, pushLogBatchSize).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create push logs")
	}

	return nil
}
