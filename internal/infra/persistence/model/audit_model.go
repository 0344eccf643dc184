package model

import (
	"time"

	"github.com/google/uuid"
)

// WebhookLogModel is the GORM-specific struct for the 'webhook_logs' table.
// Columns copied from payloads are unbounded text so an audit row never fails on length.
type WebhookLogModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Source        string    `gorm:"type:text;not null"`
	Topic         string    `gorm:"type:text;not null"`
	ResourceID    string    `gorm:"type:text;not null"`
	Status        string    `gorm:"type:text;not null"`
	DedupKey      string    `gorm:"type:text;not null;index:idx_webhook_logs_dedup,priority:1"`
	Deduplicated  bool      `gorm:"not null;default:false"`
	CustomerEmail *string   `gorm:"type:text"`
	Processed     bool      `gorm:"not null;default:false"`
	PushSuccess   bool      `gorm:"not null;default:false"`
	PushMessageID *string   `gorm:"type:varchar(255)"`
	PushError     *string   `gorm:"type:text"`
	RawPayload    string    `gorm:"type:text"`
	ReceivedAt    time.Time `gorm:"not null;index:idx_webhook_logs_dedup,priority:2"`
}

// TableName explicitly sets the table name for GORM.
func (WebhookLogModel) TableName() string {
	return "webhook_logs"
}

// PushNotificationLogModel is the GORM-specific struct for the 'push_notification_logs' table.
// It has no foreign keys so that rows outlive deleted users.
type PushNotificationLogModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID      *string    `gorm:"type:varchar(32);index"`
	Email       string     `gorm:"type:text;not null"`
	DeviceRef   *uuid.UUID `gorm:"type:uuid"`
	TokenPrefix string     `gorm:"type:varchar(16);not null"`
	Title       string     `gorm:"type:text;not null"`
	Body        string     `gorm:"type:text;not null"`
	Trigger     string     `gorm:"type:text;not null"`
	Success     bool       `gorm:"not null"`
	MessageID   *string    `gorm:"type:varchar(255)"`
	Error       *string    `gorm:"type:text"`
	CreatedAt   time.Time  `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (PushNotificationLogModel) TableName() string {
	return "push_notification_logs"
}

// AppSettingModel is the GORM-specific struct for the 'app_settings' table.
type AppSettingModel struct {
	Key       string `gorm:"type:varchar(191);primaryKey"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

func (AppSettingModel) TableName() string {
	return "app_settings"
}
