package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// WebhookDomain groups topics that share a status vocabulary.
type WebhookDomain string

const (
	WebhookDomainOrder        WebhookDomain = "order"
	WebhookDomainSubscription WebhookDomain = "subscription"
	WebhookDomainUnknown      WebhookDomain = "unknown"
)

// DomainFromTopic maps "order.updated" to order, "subscription.updated" to subscription.
func DomainFromTopic(topic string) WebhookDomain {
	prefix, _, _ := strings.Cut(strings.ToLower(strings.TrimSpace(topic)), ".")
	switch WebhookDomain(prefix) {
	case WebhookDomainOrder:
		return WebhookDomainOrder
	case WebhookDomainSubscription:
		return WebhookDomainSubscription
	default:
		return WebhookDomainUnknown
	}
}

// WebhookLog is the audit row for one inbound webhook delivery.
type WebhookLog struct {
	ID            uuid.UUID
	Source        string
	Topic         string
	ResourceID    string
	Status        string
	DedupKey      string
	Deduplicated  bool
	CustomerEmail *string
	Processed     bool
	PushSuccess   bool
	PushMessageID *string
	PushError     *string
	RawPayload    string
	ReceivedAt    time.Time
}

// IngestResult is echoed back to the webhook sender.
type IngestResult struct {
	Accepted   bool            `json:"accepted"`
	Ping       bool            `json:"ping,omitempty"`
	Processed  bool            `json:"processed"`
	Dedup      bool            `json:"dedup"`
	ResourceID string          `json:"resourceId,omitempty"`
	Status     string          `json:"status,omitempty"`
	Topic      string          `json:"topic,omitempty"`
	Dispatch   *DispatchResult `json:"dispatch,omitempty"`
}
