package usecase

import (
	"context"

	"clubrelay/internal/domain/entity"
)

// RegisterDeviceInput is one registration call from the mobile app.
type RegisterDeviceInput struct {
	UserKey    entity.UserKey
	DeviceID   string
	Platform   string
	FCMToken   string
	DeviceName *string
	AppVersion *string
}

// RegisterDeviceResult is returned after a successful registration.
type RegisterDeviceResult struct {
	User         *entity.User
	Device       *entity.Device
	TotalDevices int64
}

// DeviceUsecase defines the interface for device management use cases
type DeviceUsecase interface {
	// RegisterDevice binds a push token to one installation, creating the user on first sight.
	RegisterDevice(ctx context.Context, input *RegisterDeviceInput) (*RegisterDeviceResult, error)

	// RemoveDevices removes one installation, or all of them when deviceID is empty.
	RemoveDevices(ctx context.Context, key entity.UserKey, deviceID string) (int64, error)

	// ListDevices returns the user's devices, most recently active first.
	ListDevices(ctx context.Context, key entity.UserKey) ([]*entity.Device, error)
}
