package model

import (
	"time"

	"github.com/google/uuid"
)

// DeletionRequestModel is the GORM-specific struct for the 'deletion_requests' table.
// The partial unique index keeps at most one active request per user.
type DeletionRequestModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID       string     `gorm:"type:varchar(32);not null;uniqueIndex:idx_deletion_requests_active_user,where:status <> 'deleted'"`
	Status       string     `gorm:"type:varchar(16);not null;index:idx_deletion_requests_due,priority:1"`
	Reason       *string    `gorm:"type:text"`
	RequestedAt  time.Time  `gorm:"not null"`
	AutoDeleteAt time.Time  `gorm:"not null;index:idx_deletion_requests_due,priority:2"`
	ResolvedAt   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeletionRequestModel) TableName() string {
	return "deletion_requests"
}
