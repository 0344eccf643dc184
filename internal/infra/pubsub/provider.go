package pubsub

import (
	"context"
	"log/slog"

	"clubrelay/config"
	"clubrelay/internal/domain/constants"
	"clubrelay/internal/domain/entity"
	"clubrelay/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishAccountEvent(ctx context.Context, event *entity.AccountEvent) error {
	p.logger.Debug("Event publishing disabled, dropping account event",
		slog.String("event_type", event.Type),
		slog.String("user_id", event.UserID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the account event sink from config and closes it on shutdown.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	publisher, err := newPublisher(params.Ctx, params.Config.PubSub, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

func newPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, account events are dropped")

		return &noopPublisher{logger: logger}, nil
	}

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("pubsub.localEndpoint is required for the local provider")
		}
		logger.Info("Publishing account events over local HTTP", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider %q", cfg.Provider)
	}
}

// eventAttributes are set on every message for subscription filtering.
func eventAttributes(event *entity.AccountEvent) map[string]string {
	attrs := map[string]string{
		"event_type": event.Type,
		"user_id":    event.UserID,
	}
	if event.DeletionRequestID != "" {
		attrs["deletion_request_id"] = event.DeletionRequestID
	}
	if event.RequestID != "" {
		attrs["request_id"] = event.RequestID
	}

	return attrs
}
