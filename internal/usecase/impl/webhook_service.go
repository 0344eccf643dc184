package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"clubrelay/config"
	deliverycontext "clubrelay/internal/delivery/context"
	"clubrelay/internal/domain/constants"
	"clubrelay/internal/domain/entity"
	domainerrors "clubrelay/internal/domain/errors"
	"clubrelay/internal/domain/repository"
	"clubrelay/internal/domain/service"
	"clubrelay/internal/errors"
	"clubrelay/internal/infra/metrics"
	"clubrelay/internal/usecase"
	"clubrelay/internal/util"

	"github.com/google/uuid"
)

var errNotAnObject = errors.New("webhook body is not a JSON object")

// Dedup fallback paths, used as metric labels
const (
	dedupFallbackAuditLog = "audit_log"
	dedupFallbackFailOpen = "fail_open"
)

type webhookService struct {
	verifier       service.SignatureVerifier
	dedup          service.DedupStore
	webhookLogRepo repository.WebhookLogRepository
	notifier       usecase.NotificationUsecase
	composer       *messageComposer
	runner         service.TaskRunner
	metrics        *metrics.Metrics
	logger         *slog.Logger
	source         string
	window         time.Duration
	now            func() time.Time
}

// NewWebhookService creates the shop webhook ingestion service.
func NewWebhookService(
	verifier service.SignatureVerifier,
	dedup service.DedupStore,
	webhookLogRepo repository.WebhookLogRepository,
	notifier usecase.NotificationUsecase,
	settings service.SettingsProvider,
	runner service.TaskRunner,
	cfg *config.Config,
	m *metrics.Metrics,
	logger *slog.Logger,
) usecase.WebhookUsecase {
	return &webhookService{
		verifier:       verifier,
		dedup:          dedup,
		webhookLogRepo: webhookLogRepo,
		notifier:       notifier,
		composer:       newMessageComposer(settings, logger),
		runner:         runner,
		metrics:        m,
		logger:         logger,
		source:         cfg.Webhook.Source,
		window:         cfg.Webhook.DedupWindow,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// Ingest accepts one delivery. Only signature and payload problems are returned as errors;
// everything after that is reported in the result and the audit row.
func (s *webhookService) Ingest(ctx context.Context, delivery *usecase.WebhookDelivery) (*entity.IngestResult, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	topic := strings.ToLower(strings.TrimSpace(delivery.Topic))
	domain := entity.DomainFromTopic(topic)

	if isPing(delivery.Body) {
		s.count(domain, metrics.WebhookPing)
		logger.InfoContext(ctx, "Webhook ping received", slog.String("topic", topic))

		return &entity.IngestResult{Accepted: true, Ping: true, Topic: topic}, nil
	}

	if s.verifier.Enabled() && !s.verifier.Verify(delivery.Body, delivery.Signature) {
		s.count(domain, metrics.WebhookRejected)

		return nil, domainerrors.ErrInvalidSignature
	}

	payload, err := parsePayload(delivery.Body)
	if err != nil {
		s.count(domain, metrics.WebhookRejected)

		return nil, domainerrors.ErrInvalidWebhookPayload.WithDetails(err.Error())
	}

	fields := extractFields(payload)
	source := delivery.Source
	if source == "" {
		source = s.source
	}
	key := dedupKey(source, topic, fields.ResourceID, fields.Status)

	result := &entity.IngestResult{
		Accepted:   true,
		ResourceID: fields.ResourceID,
		Status:     fields.Status,
		Topic:      topic,
	}
	audit := &entity.WebhookLog{
		ID:            uuid.New(),
		Source:        source,
		Topic:         topic,
		ResourceID:    fields.ResourceID,
		Status:        fields.Status,
		DedupKey:      key,
		CustomerEmail: util.NilIfEmpty(util.NormalizeEmail(fields.Email)),
		RawPayload:    string(delivery.Body),
		ReceivedAt:    s.now(),
	}

	if fields.ResourceID == "" || fields.Status == "" || domain == entity.WebhookDomainUnknown {
		logger.InfoContext(ctx, "Webhook accepted without dispatch",
			slog.String("topic", topic),
			slog.String("resource_id", fields.ResourceID),
			slog.String("status", fields.Status),
		)
		s.count(domain, metrics.WebhookIgnored)
		s.writeAudit(ctx, audit)

		return result, nil
	}

	if !s.acquire(ctx, key) {
		result.Dedup = true
		audit.Deduplicated = true
		s.count(domain, metrics.WebhookDeduplicated)
		s.writeAudit(ctx, audit)

		return result, nil
	}

	content := s.composer.Compose(ctx, domain, fields.Status, fields.ResourceID)
	data := map[string]string{
		"type":        string(domain),
		"topic":       topic,
		"resource_id": fields.ResourceID,
		"status":      fields.Status,
	}
	if content.Icon != "" {
		data["icon"] = content.Icon
	}

	dispatch := s.notifier.Dispatch(ctx, &usecase.DispatchRequest{
		Email:   fields.Email,
		Title:   content.Title,
		Body:    content.Body,
		Data:    data,
		Trigger: topic,
	})

	result.Processed = true
	result.Dispatch = dispatch

	audit.Processed = true
	audit.PushSuccess = dispatch.Success
	audit.PushMessageID = util.NilIfEmpty(dispatch.MessageID)
	audit.PushError = util.NilIfEmpty(dispatch.Error)

	s.count(domain, metrics.WebhookProcessed)
	s.writeAudit(ctx, audit)

	return result, nil
}

func dedupKey(source, topic, resourceID, status string) string {
	return strings.Join([]string{source, topic, resourceID, status}, "|")
}

// acquire reports whether this delivery is the first for key within the window.
// Store errors fall back to the audit log, and to processing when that fails too.
func (s *webhookService) acquire(ctx context.Context, key string) bool {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	first, err := s.dedup.Acquire(ctx, key, s.window)
	if err == nil {
		return first
	}
	logger.WarnContext(ctx, "Dedup store unavailable, checking audit log",
		slog.String("dedup_key", key),
		slog.Any("error", err),
	)

	seen, err := s.webhookLogRepo.ExistsRecent(ctx, key, s.now().Add(-s.window))
	if err == nil {
		s.metrics.DedupStoreFallback.WithLabelValues(dedupFallbackAuditLog).Inc()

		return !seen
	}

	logger.ErrorContext(ctx, "Dedup fallback failed, processing event",
		slog.String("dedup_key", key),
		slog.Any("error", err),
	)
	s.metrics.DedupStoreFallback.WithLabelValues(dedupFallbackFailOpen).Inc()

	return true
}

func (s *webhookService) writeAudit(ctx context.Context, audit *entity.WebhookLog) {
	s.runner.Go(ctx, constants.TaskWebhookAudit, func(ctx context.Context) error {
		return s.webhookLogRepo.Create(ctx, audit)
	})
}

func (s *webhookService) count(domain entity.WebhookDomain, outcome string) {
	s.metrics.WebhookEvents.WithLabelValues(string(domain), outcome).Inc()
}
