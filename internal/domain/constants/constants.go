// Package constants holds values shared across layers.
package constants

const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Roles carried in admin tokens
const (
	RoleAdmin = "admin"
)

// Sequence names in id_sequences
const (
	SequenceUserID = "user_id"
)

// Account event types
const (
	EventAccountDeletionRequested = "account.deletion_requested"
	EventAccountDeleted           = "account.deleted"
)

// Background task names, used as metric labels
const (
	TaskWebhookAudit  = "webhook_audit"
	TaskPushLog       = "push_log"
	TaskTokenCleanup  = "token_cleanup"
	TaskEventPublish  = "event_publish"
	TaskLegacyTokenGC = "legacy_token_cleanup"
)
