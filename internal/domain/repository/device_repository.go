package repository

import (
	"context"

	"clubrelay/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when a push token is held by another device.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// Upsert inserts the device or updates the row with the same (user, deviceId).
	Upsert(ctx context.Context, device *entity.Device) error

	// FindByUserAndDeviceID retrieves one installation of a user.
	FindByUserAndDeviceID(ctx context.Context, userID, deviceID string) (*entity.Device, error)

	// FindByUser retrieves all devices of a user, most recently active first.
	FindByUser(ctx context.Context, userID string) ([]*entity.Device, error)

	// CountByUser returns the number of devices of a user.
	CountByUser(ctx context.Context, userID string) (int64, error)

	// DetachTokenExcept clears token from every device other than (userID, deviceID).
	// The rows stay registered without a push token.
	DetachTokenExcept(ctx context.Context, token, userID, deviceID string) (int64, error)

	// DeleteByToken removes the device holding token.
	DeleteByToken(ctx context.Context, token string) (int64, error)

	// DeleteByUser removes one device of a user, or all of them when deviceID is empty.
	DeleteByUser(ctx context.Context, userID, deviceID string) (int64, error)
}
