package usecase

import (
	"context"

	"clubrelay/internal/domain/entity"
)

// DispatchRequest addresses a push to every device of the user with Email.
type DispatchRequest struct {
	Email   string
	Title   string
	Body    string
	Data    map[string]string
	Trigger string
}

// NotificationUsecase sends pushes to a user's devices.
type NotificationUsecase interface {
	// Dispatch never fails; every problem is reported in the result.
	Dispatch(ctx context.Context, req *DispatchRequest) *entity.DispatchResult
}
