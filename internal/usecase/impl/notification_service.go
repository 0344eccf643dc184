package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"clubrelay/config"
	deliverycontext "clubrelay/internal/delivery/context"
	"clubrelay/internal/domain/constants"
	"clubrelay/internal/domain/entity"
	"clubrelay/internal/domain/repository"
	"clubrelay/internal/domain/service"
	"clubrelay/internal/usecase"
	"clubrelay/internal/util"

	"github.com/google/uuid"
)

const errNoMatchingUser = "no matching user"

type notificationService struct {
	userRepo        repository.UserRepository
	deviceRepo      repository.DeviceRepository
	pushLogRepo     repository.PushLogRepository
	notificationSvc service.NotificationService
	runner          service.TaskRunner
	logger          *slog.Logger
	pushTimeout     time.Duration
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(
	userRepo repository.UserRepository,
	deviceRepo repository.DeviceRepository,
	pushLogRepo repository.PushLogRepository,
	notificationSvc service.NotificationService,
	runner service.TaskRunner,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	return &notificationService{
		userRepo:        userRepo,
		deviceRepo:      deviceRepo,
		pushLogRepo:     pushLogRepo,
		notificationSvc: notificationSvc,
		runner:          runner,
		logger:          logger,
		pushTimeout:     cfg.Push.Timeout,
	}
}

// pushTarget is one token to send to.
type pushTarget struct {
	device *entity.Device // nil for the legacy token
	token  string
}

// Dispatch sends to every device of the user. Failures end up in the result.
func (s *notificationService) Dispatch(ctx context.Context, req *usecase.DispatchRequest) (result *entity.DispatchResult) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	defer func() {
		if r := recover(); r != nil {
			logger.ErrorContext(ctx, "Dispatch panicked", slog.Any("panic", r))
			result = &entity.DispatchResult{Error: fmt.Sprintf("dispatch panicked: %v", r)}
		}
	}()

	email := util.NormalizeEmail(req.Email)
	if email == "" {
		return &entity.DispatchResult{Error: errNoMatchingUser}
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return &entity.DispatchResult{Error: errNoMatchingUser}
		}
		logger.ErrorContext(ctx, "Failed to look up push recipient", slog.Any("error", err))

		return &entity.DispatchResult{Error: "user lookup failed"}
	}

	targets, err := s.targets(ctx, user)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load devices", slog.String("user_id", user.ID), slog.Any("error", err))

		return &entity.DispatchResult{Error: "device lookup failed"}
	}
	if len(targets) == 0 {
		return &entity.DispatchResult{Error: "no registered devices"}
	}

	result = &entity.DispatchResult{Deliveries: make([]entity.DeviceDelivery, 0, len(targets))}
	logs := make([]*entity.PushLog, 0, len(targets))
	var invalid []pushTarget

	for _, target := range targets {
		messageID, sendErr := s.send(ctx, target.token, req)

		delivery := entity.DeviceDelivery{
			TokenPrefix: util.TokenPrefix(target.token),
			Legacy:      target.device == nil,
			Success:     sendErr == nil,
			MessageID:   messageID,
		}
		if target.device != nil {
			delivery.DeviceID = target.device.DeviceID
		}
		if sendErr != nil {
			delivery.Error = sendErr.Error()
			if errors.Is(sendErr, service.ErrInvalidToken) {
				invalid = append(invalid, target)
			}
		} else if !result.Success {
			result.Success = true
			result.MessageID = messageID
		}
		result.Deliveries = append(result.Deliveries, delivery)

		logs = append(logs, pushLogFor(user, email, req, target, delivery))
	}

	if !result.Success {
		result.Error = result.Deliveries[0].Error
	}

	s.removeInvalidTokens(ctx, user, invalid)
	s.runner.Go(ctx, constants.TaskPushLog, func(ctx context.Context) error {
		return s.pushLogRepo.CreateBatch(ctx, logs)
	})

	return result
}

// targets prefers devices that still hold a token and falls back to the legacy token.
func (s *notificationService) targets(ctx context.Context, user *entity.User) ([]pushTarget, error) {
	devices, err := s.deviceRepo.FindByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	targets := make([]pushTarget, 0, len(devices))
	for _, d := range devices {
		if d.FCMToken == "" {
			continue
		}
		targets = append(targets, pushTarget{device: d, token: d.FCMToken})
	}

	if len(targets) == 0 && util.Deref(user.LegacyFCMToken) != "" {
		targets = append(targets, pushTarget{token: *user.LegacyFCMToken})
	}

	return targets, nil
}

// send bounds one provider call and turns a provider panic into an error.
func (s *notificationService) send(ctx context.Context, token string, req *usecase.DispatchRequest) (messageID string, err error) {
	sendCtx, cancel := context.WithTimeout(ctx, s.pushTimeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("push provider panicked: %v", r)
		}
	}()

	return s.notificationSvc.SendSingleNotification(sendCtx, token, req.Title, req.Body, req.Data)
}

func (s *notificationService) removeInvalidTokens(ctx context.Context, user *entity.User, invalid []pushTarget) {
	if len(invalid) == 0 {
		return
	}

	s.runner.Go(ctx, constants.TaskTokenCleanup, func(ctx context.Context) error {
		var errs []error
		for _, target := range invalid {
			if target.device != nil {
				_, err := s.deviceRepo.DeleteByToken(ctx, target.token)
				errs = append(errs, err)

				continue
			}
			_, err := s.userRepo.ClearLegacyToken(ctx, target.token, "")
			errs = append(errs, err)
		}

		deliverycontext.GetLoggerOrDefault(ctx, s.logger).InfoContext(ctx, "Removed invalid push tokens",
			slog.String("user_id", user.ID),
			slog.Int("count", len(invalid)),
		)

		return errors.Join(errs...)
	})
}

func pushLogFor(
	user *entity.User,
	email string,
	req *usecase.DispatchRequest,
	target pushTarget,
	delivery entity.DeviceDelivery,
) *entity.PushLog {
	log := &entity.PushLog{
		ID:          uuid.New(),
		UserID:      &user.ID,
		Email:       email,
		TokenPrefix: delivery.TokenPrefix,
		Title:       req.Title,
		Body:        req.Body,
		Trigger:     req.Trigger,
		Success:     delivery.Success,
		MessageID:   util.NilIfEmpty(delivery.MessageID),
		Error:       util.NilIfEmpty(delivery.Error),
		CreatedAt:   time.Now().UTC(),
	}
	if target.device != nil {
		log.DeviceRef = &target.device.ID
	}

	return log
}
