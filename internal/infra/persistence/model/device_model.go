package model

import (
	"time"

	"github.com/google/uuid"
)

// UserDeviceModel is the GORM-specific struct for the 'user_devices' table.
// It represents one app installation registered for push notifications.
type UserDeviceModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_user_devices_user_device,priority:1"`
	DeviceID     string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_user_devices_user_device,priority:2"`
	Platform     string    `gorm:"type:varchar(16);not null"`
	FCMToken     *string   `gorm:"type:text;uniqueIndex:idx_user_devices_fcm_token"` // NULL once the token moved to another device.
	DeviceName   *string   `gorm:"type:varchar(255)"`
	AppVersion   *string   `gorm:"type:varchar(64)"`
	LastActiveAt time.Time `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserDeviceModel) TableName() string {
	return "user_devices"
}
