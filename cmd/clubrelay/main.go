package main

import (
	"context"
	"log/slog"
	"os"

	"clubrelay/config"
	"clubrelay/internal/delivery"
	"clubrelay/internal/delivery/api"
	apimiddleware "clubrelay/internal/delivery/api/middleware"
	"clubrelay/internal/delivery/api/router/handler"
	"clubrelay/internal/infra/auth"
	"clubrelay/internal/infra/background"
	"clubrelay/internal/infra/dedup"
	logs "clubrelay/internal/infra/log"
	"clubrelay/internal/infra/metrics"
	"clubrelay/internal/infra/notification"
	"clubrelay/internal/infra/persistence/postgres"
	"clubrelay/internal/infra/pubsub"
	"clubrelay/internal/infra/settings"
	"clubrelay/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		metrics.New,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewDeviceRepository,
			postgres.NewDeletionRequestRepository,
			postgres.NewWebhookLogRepository,
			postgres.NewPushLogRepository,
			postgres.NewSettingRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewSignatureVerifier,
			notification.NewNotificationService,
			pubsub.NewEventPublisher,
			dedup.NewDedupStore,
			settings.NewSettingsProvider,
			background.NewTaskRunner,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDeviceService,
			impl.NewDeletionService,
			impl.NewNotificationService,
			impl.NewWebhookService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
			apimiddleware.NewAPIKeyMiddleware,
			apimiddleware.NewSweepAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewDeviceHandler,
			handler.NewAdminHandler,
			handler.NewSweepHandler,
			handler.NewWebhookHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
