// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Platform is the mobile OS of a device.
type Platform string

const (
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
)

// ParsePlatform normalizes s and reports whether it names a supported platform.
func ParsePlatform(s string) (Platform, bool) {
	p := Platform(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case PlatformIOS, PlatformAndroid:
		return p, true
	default:
		return "", false
	}
}

// Device represents one app installation registered for push notifications.
type Device struct {
	ID           uuid.UUID `json:"id"`           // Row id.
	UserID       string    `json:"userId"`       // Owning user.
	DeviceID     string    `json:"deviceId"`     // Client-generated installation id, unique per user.
	Platform     Platform  `json:"platform"`     // ios or android.
	FCMToken     string    `json:"fcmToken"`     // Push token, unique system-wide. Empty after the token moved to another device.
	DeviceName   *string   `json:"deviceName"`   // Human readable name.
	AppVersion   *string   `json:"appVersion"`   // App build that registered.
	LastActiveAt time.Time `json:"lastActiveAt"` // Last registration call.
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
