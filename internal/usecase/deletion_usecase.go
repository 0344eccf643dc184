package usecase

import (
	"context"

	"clubrelay/internal/domain/entity"

	"github.com/google/uuid"
)

// DeletionActionResult is returned by ApplyAction.
type DeletionActionResult struct {
	Action      entity.DeletionAction
	Request     *entity.DeletionRequest
	UserDeleted bool
}

// DeletionUsecase drives the account deletion lifecycle.
type DeletionUsecase interface {
	// RequestDeletion opens a pending request or returns the active one.
	RequestDeletion(ctx context.Context, key entity.UserKey, reason *string) (*entity.DeletionRequest, error)

	// GetRequest returns the current state of a request.
	GetRequest(ctx context.Context, id uuid.UUID) (*entity.DeletionRequest, error)

	// Hold pauses the auto-delete timer.
	Hold(ctx context.Context, id uuid.UUID) (*entity.DeletionRequest, error)

	// Resume restarts the timer with a full grace period.
	Resume(ctx context.Context, id uuid.UUID) (*entity.DeletionRequest, error)

	// ForceDelete marks the request deleted and removes the user now.
	ForceDelete(ctx context.Context, id uuid.UUID) (*entity.DeletionRequest, error)

	// ApplyAction dispatches an admin action by name.
	ApplyAction(ctx context.Context, id uuid.UUID, action string) (*DeletionActionResult, error)

	// Sweep finalizes every pending request whose timer elapsed.
	Sweep(ctx context.Context, dryRun bool) (*entity.SweepReport, error)
}
