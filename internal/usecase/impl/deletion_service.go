package impl

import (
	"context"
	"errors"
	"fmt"
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
	"clubrelay/internal/infra/metrics"
	"clubrelay/internal/usecase"

	"github.com/google/uuid"
)

const sweepErrStateChanged = "state changed"

type deletionService struct {
	userRepo    repository.UserRepository
	requestRepo repository.DeletionRequestRepository
	publisher   service.EventPublisher
	runner      service.TaskRunner
	metrics     *metrics.Metrics
	logger      *slog.Logger
	grace       time.Duration
	now         func() time.Time
}

// NewDeletionService creates the account deletion lifecycle service.
func NewDeletionService(
	userRepo repository.UserRepository,
	requestRepo repository.DeletionRequestRepository,
	publisher service.EventPublisher,
	runner service.TaskRunner,
	cfg *config.Config,
	m *metrics.Metrics,
	logger *slog.Logger,
) usecase.DeletionUsecase {
	return &deletionService{
		userRepo:    userRepo,
		requestRepo: requestRepo,
		publisher:   publisher,
		runner:      runner,
		metrics:     m,
		logger:      logger,
		grace:       cfg.Deletion.GracePeriod,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// RequestDeletion is idempotent: an active request is returned unchanged.
func (s *deletionService) RequestDeletion(ctx context.Context, key entity.UserKey, reason *string) (*entity.DeletionRequest, error) {
	if key.IsEmpty() {
		return nil, domainerrors.ErrMissingUserKey
	}

	user, err := findUser(ctx, s.userRepo, key)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	active, err := s.requestRepo.FindActiveByUser(ctx, user.ID)
	switch {
	case err == nil:
		return active, nil
	case !errors.Is(err, repository.ErrDeletionRequestNotFound):
		return nil, fmt.Errorf("failed to find active deletion request: %w", err)
	}

	now := s.now()
	req := &entity.DeletionRequest{
		ID:           uuid.New(),
		UserID:       user.ID,
		Status:       entity.DeletionStatusPending,
		Reason:       trimReason(reason),
		RequestedAt:  now,
		AutoDeleteAt: now.Add(s.grace),
	}

	if err := s.requestRepo.Create(ctx, req); err != nil {
		if errors.Is(err, repository.ErrDuplicateActiveRequest) {
			// Lost the race against a concurrent request; the winner is the answer.
			return s.requestRepo.FindActiveByUser(ctx, user.ID)
		}
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, fmt.Errorf("failed to create deletion request: %w", err)
	}

	s.publish(ctx, constants.EventAccountDeletionRequested, req)

	return req, nil
}

func trimReason(reason *string) *string {
	if reason == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*reason)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}

func (s *deletionService) GetRequest(ctx context.Context, id uuid.UUID) (*entity.DeletionRequest, error) {
	req, err := s.requestRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDeletionRequestNotFound) {
			return nil, domainerrors.ErrDeletionRequestNotFound
		}

		return nil, fmt.Errorf("failed to find deletion request: %w", err)
	}

	return req, nil
}

// Hold pauses the timer. autoDeleteAt is left as is.
func (s *deletionService) Hold(ctx context.Context, id uuid.UUID) (*entity.DeletionRequest, error) {
	return s.transition(ctx, id, entity.DeletionTransition{
		From: entity.ActiveDeletionStatuses,
		To:   entity.DeletionStatusOnHold,
	})
}

// Resume restarts the timer with a full grace period from now.
func (s *deletionService) Resume(ctx context.Context, id uuid.UUID) (*entity.DeletionRequest, error) {
	autoDeleteAt := s.now().Add(s.grace)

	return s.transition(ctx, id, entity.DeletionTransition{
		From:         entity.ActiveDeletionStatuses,
		To:           entity.DeletionStatusPending,
		AutoDeleteAt: &autoDeleteAt,
	})
}

// ForceDelete records the terminal state first, then removes the user.
func (s *deletionService) ForceDelete(ctx context.Context, id uuid.UUID) (*entity.DeletionRequest, error) {
	return s.finalize(ctx, id, entity.ActiveDeletionStatuses)
}

func (s *deletionService) finalize(ctx context.Context, id uuid.UUID, from []entity.DeletionStatus) (*entity.DeletionRequest, error) {
	resolvedAt := s.now()

	req, err := s.transition(ctx, id, entity.DeletionTransition{
		From:       from,
		To:         entity.DeletionStatusDeleted,
		ResolvedAt: &resolvedAt,
	})
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Delete(ctx, req.UserID); err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).ErrorContext(ctx, "Failed to delete user after marking request deleted",
			slog.String("deletion_request_id", req.ID.String()),
			slog.String("user_id", req.UserID),
			slog.Any("error", err),
		)

		return req, domainerrors.ErrUserDeletionFailed.WithDetails(err.Error())
	}

	s.publish(ctx, constants.EventAccountDeleted, req)

	return req, nil
}

func (s *deletionService) transition(ctx context.Context, id uuid.UUID, t entity.DeletionTransition) (*entity.DeletionRequest, error) {
	req, err := s.requestRepo.Transition(ctx, id, t)
	switch {
	case err == nil:
		return req, nil
	case errors.Is(err, repository.ErrDeletionRequestNotFound):
		return nil, domainerrors.ErrDeletionRequestNotFound
	case errors.Is(err, repository.ErrTransitionRejected):
		if req != nil && req.Status == entity.DeletionStatusDeleted {
			return nil, domainerrors.ErrRequestAlreadyProcessed
		}

		return nil, domainerrors.ErrStateChanged
	default:
		return nil, fmt.Errorf("failed to update deletion request: %w", err)
	}
}

// ApplyAction maps an admin action name onto the lifecycle.
func (s *deletionService) ApplyAction(ctx context.Context, id uuid.UUID, action string) (*usecase.DeletionActionResult, error) {
	act := entity.DeletionAction(strings.ToLower(strings.TrimSpace(action)))

	var (
		req *entity.DeletionRequest
		err error
	)
	switch act {
	case entity.DeletionActionHold:
		req, err = s.Hold(ctx, id)
	case entity.DeletionActionResume:
		req, err = s.Resume(ctx, id)
	case entity.DeletionActionDelete:
		req, err = s.ForceDelete(ctx, id)
	default:
		return nil, domainerrors.ErrInvalidAction
	}
	if err != nil {
		return nil, err
	}

	return &usecase.DeletionActionResult{
		Action:      act,
		Request:     req,
		UserDeleted: act == entity.DeletionActionDelete,
	}, nil
}

// Sweep finalizes due requests one by one. A failing item never stops the loop.
func (s *deletionService) Sweep(ctx context.Context, dryRun bool) (*entity.SweepReport, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	due, err := s.requestRepo.FindDue(ctx, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to find due deletion requests: %w", err)
	}

	report := &entity.SweepReport{
		DryRun:  dryRun,
		Results: make([]entity.SweepItem, 0, len(due)),
	}

	for _, req := range due {
		item := entity.SweepItem{RequestID: req.ID, UserID: req.UserID}

		switch {
		case dryRun:
			item.Status = entity.SweepItemWouldDelete
		default:
			if _, err := s.finalize(ctx, req.ID, []entity.DeletionStatus{entity.DeletionStatusPending}); err != nil {
				item.Status = entity.SweepItemFailed
				item.Error = sweepError(err)
				report.Failed++
				logger.WarnContext(ctx, "Sweep item failed",
					slog.String("deletion_request_id", req.ID.String()),
					slog.String("user_id", req.UserID),
					slog.Any("error", err),
				)
			} else {
				item.Status = entity.SweepItemDeleted
				report.Deleted++
			}
		}

		s.metrics.SweepItems.WithLabelValues(item.Status).Inc()
		report.Results = append(report.Results, item)
		report.Processed++
	}

	logger.InfoContext(ctx, "Deletion sweep finished",
		slog.Bool("dry_run", dryRun),
		slog.Int("processed", report.Processed),
		slog.Int("deleted", report.Deleted),
		slog.Int("failed", report.Failed),
	)

	return report, nil
}

func sweepError(err error) string {
	if errors.Is(err, domainerrors.ErrStateChanged) || errors.Is(err, domainerrors.ErrRequestAlreadyProcessed) {
		return sweepErrStateChanged
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Details() != "" {
			return appErr.Message() + ": " + appErr.Details()
		}

		return appErr.Message()
	}

	return err.Error()
}

func (s *deletionService) publish(ctx context.Context, eventType string, req *entity.DeletionRequest) {
	event := &entity.AccountEvent{
		RequestID:         deliverycontext.GetRequestIDFromContext(ctx),
		Type:              eventType,
		UserID:            req.UserID,
		DeletionRequestID: req.ID.String(),
		OccurredAt:        s.now(),
	}

	s.runner.Go(ctx, constants.TaskEventPublish, func(ctx context.Context) error {
		return s.publisher.PublishAccountEvent(ctx, event)
	})
}
