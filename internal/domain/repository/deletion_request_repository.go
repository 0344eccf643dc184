package repository

import (
	"context"
	"time"

	"clubrelay/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrDeletionRequestNotFound is returned when no request matches.
	ErrDeletionRequestNotFound = errors.New("deletion request not found")
	// ErrDuplicateActiveRequest is returned when the user already has an active request.
	ErrDuplicateActiveRequest = errors.New("user already has an active deletion request")
	// ErrTransitionRejected is returned when the current status is not one of the allowed sources.
	ErrTransitionRejected = errors.New("deletion request is not in an allowed state")
)

// DeletionRequestRepository persists account deletion requests.
type DeletionRequestRepository interface {
	Create(ctx context.Context, req *entity.DeletionRequest) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.DeletionRequest, error)

	// FindActiveByUser returns the pending or on_hold request of a user.
	FindActiveByUser(ctx context.Context, userID string) (*entity.DeletionRequest, error)

	// FindDue returns pending requests whose auto delete time is at or before now, oldest first.
	FindDue(ctx context.Context, now time.Time) ([]*entity.DeletionRequest, error)

	// Transition applies a conditional status change and returns the updated request.
	// It returns ErrTransitionRejected when the status is not in t.From and
	// ErrDeletionRequestNotFound when the request does not exist.
	Transition(ctx context.Context, id uuid.UUID, t entity.DeletionTransition) (*entity.DeletionRequest, error)
}
