package entity

import "time"

// AccountEvent is published when an account moves through the deletion lifecycle.
type AccountEvent struct {
	RequestID         string    `json:"requestId,omitempty"`
	Type              string    `json:"type"`
	UserID            string    `json:"userId"`
	DeletionRequestID string    `json:"deletionRequestId,omitempty"`
	OccurredAt        time.Time `json:"occurredAt"`
}
