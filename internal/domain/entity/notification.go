package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationContent is what the user sees.
type NotificationContent struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Icon  string `json:"icon,omitempty"`
}

// DeviceDelivery is the outcome of one push attempt.
type DeviceDelivery struct {
	DeviceID    string `json:"deviceId,omitempty"`
	TokenPrefix string `json:"tokenPrefix"`
	Legacy      bool   `json:"legacy,omitempty"`
	Success     bool   `json:"success"`
	MessageID   string `json:"messageId,omitempty"`
	Error       string `json:"error,omitempty"`
}

// DispatchResult is always returned by dispatch, never an error.
type DispatchResult struct {
	Success    bool             `json:"success"`
	MessageID  string           `json:"messageId,omitempty"`
	Error      string           `json:"error,omitempty"`
	Deliveries []DeviceDelivery `json:"deliveries,omitempty"`
}

// PushLog is the audit row for one outbound push attempt.
type PushLog struct {
	ID          uuid.UUID
	UserID      *string
	Email       string
	DeviceRef   *uuid.UUID
	TokenPrefix string
	Title       string
	Body        string
	Trigger     string
	Success     bool
	MessageID   *string
	Error       *string
	CreatedAt   time.Time
}
