// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// User is an app member known to the shop. It is the owner of devices and deletion requests.
type User struct {
	ID             string    // Opaque sequential id, e.g. "AHC2601".
	ExternalID     *string   // Customer id on the shop platform, if known.
	Email          string    // Lowercased and trimmed, unique.
	LegacyFCMToken *string   // Single-device push token kept for pre multi-device clients.
	CreatedAt      time.Time // Timestamp of when this user was created.
	UpdatedAt      time.Time // Timestamp of the last modification.
}

// UserKey identifies a user by external id, with email as the fallback.
type UserKey struct {
	ExternalID string
	Email      string
}

// IsEmpty reports whether neither identifier is set.
func (k UserKey) IsEmpty() bool {
	return k.ExternalID == "" && k.Email == ""
}
