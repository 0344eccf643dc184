package notification

import (
	"context"
	"log/slog"

	"clubrelay/config"
	"clubrelay/internal/domain/service"
	"clubrelay/internal/infra/metrics"

	"go.uber.org/fx"
)

// noopService stands in when Firebase is not configured.
type noopService struct{}

func (noopService) SendSingleNotification(context.Context, string, string, string, map[string]string) (string, error) {
	return "", service.ErrProviderUnavailable
}

// ServiceParams holds dependencies for the push provider, injected by Fx.
type ServiceParams struct {
	fx.In

	Ctx     context.Context
	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics
}

// NewNotificationService builds the Firebase sender, or a stub that always
// reports the provider as unavailable when firebase is not configured.
func NewNotificationService(params ServiceParams) (service.NotificationService, error) {
	var svc service.NotificationService

	cfg := params.Config.Firebase
	if cfg == nil {
		params.Logger.Warn("Firebase not configured, pushes will fail with provider unavailable")
		svc = noopService{}
	} else {
		fb, err := NewFirebaseService(params.Ctx, cfg.ProjectID, cfg.CredentialsPath)
		if err != nil {
			return nil, err
		}
		svc = fb
	}

	return NewInstrumented(svc, params.Metrics), nil
}
