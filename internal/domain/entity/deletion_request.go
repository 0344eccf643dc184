package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeletionStatus is the state of an account deletion request.
type DeletionStatus string

const (
	DeletionStatusPending DeletionStatus = "pending"
	DeletionStatusOnHold  DeletionStatus = "on_hold"
	DeletionStatusDeleted DeletionStatus = "deleted"
)

// ActiveDeletionStatuses are the non-terminal states.
var ActiveDeletionStatuses = []DeletionStatus{DeletionStatusPending, DeletionStatusOnHold}

// IsActive reports whether the request can still be acted on.
func (s DeletionStatus) IsActive() bool {
	return s == DeletionStatusPending || s == DeletionStatusOnHold
}

// DeletionAction is an admin command on a deletion request.
type DeletionAction string

const (
	DeletionActionHold   DeletionAction = "hold"
	DeletionActionResume DeletionAction = "resume"
	DeletionActionDelete DeletionAction = "delete"
)

// DeletionRequest is a scheduled account teardown.
// AutoDeleteAt is only meaningful while Status is pending.
type DeletionRequest struct {
	ID           uuid.UUID      `json:"id"`
	UserID       string         `json:"userId"`
	Status       DeletionStatus `json:"status"`
	Reason       *string        `json:"reason,omitempty"`
	RequestedAt  time.Time      `json:"requestedAt"`
	AutoDeleteAt time.Time      `json:"autoDeleteAt"`
	ResolvedAt   *time.Time     `json:"resolvedAt,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// DeletionTransition describes a conditional status change.
// The change applies only when the current status is one of From.
type DeletionTransition struct {
	From         []DeletionStatus
	To           DeletionStatus
	AutoDeleteAt *time.Time
	ResolvedAt   *time.Time
}

// SweepItem is the outcome for one request in a sweep.
type SweepItem struct {
	RequestID uuid.UUID `json:"requestId"`
	UserID    string    `json:"userId"`
	Status    string    `json:"status"`
	Error     string    `json:"error,omitempty"`
}

// Sweep item statuses
const (
	SweepItemDeleted     = "deleted"
	SweepItemFailed      = "failed"
	SweepItemWouldDelete = "would_delete"
)

// SweepReport aggregates one sweep run.
type SweepReport struct {
	DryRun    bool        `json:"dryRun"`
	Processed int         `json:"processed"`
	Deleted   int         `json:"deleted"`
	Failed    int         `json:"failed"`
	Results   []SweepItem `json:"results"`
}
