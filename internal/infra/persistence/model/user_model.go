package model

import (
	"time"
)

// UserModel is the GORM-specific struct for the 'users' table.
type UserModel struct {
	ID             string  `gorm:"type:varchar(32);primaryKey"`
	ExternalID     *string `gorm:"type:varchar(255);uniqueIndex"`
	Email          string  `gorm:"type:varchar(320);not null;uniqueIndex"`
	LegacyFCMToken *string `gorm:"type:text;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Devices          []UserDeviceModel      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	DeletionRequests []DeletionRequestModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// IDSequenceModel backs named counters such as the user id sequence.
type IDSequenceModel struct {
	Name  string `gorm:"type:varchar(64);primaryKey"`
	Value int64  `gorm:"not null"`
}

func (IDSequenceModel) TableName() string {
	return "id_sequences"
}
