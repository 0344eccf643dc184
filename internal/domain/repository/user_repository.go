// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"clubrelay/internal/domain/entity"
)

var (
	// ErrUserNotFound is a domain-specific error returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUser is returned when the email or external id is already taken.
	ErrDuplicateUser = errors.New("user already exists")
)

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by id.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByExternalID retrieves a single user by the shop's customer id.
	FindByExternalID(ctx context.Context, externalID string) (*entity.User, error)

	// FindByEmail retrieves a single user by normalized email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user.
	Create(ctx context.Context, user *entity.User) error

	// Update writes the external id and legacy token of an existing user.
	Update(ctx context.Context, user *entity.User) error

	// ClearLegacyToken nulls the legacy token on every user holding it, except exceptUserID.
	ClearLegacyToken(ctx context.Context, token, exceptUserID string) (int64, error)

	// Delete removes the user; owned devices and deletion requests cascade.
	Delete(ctx context.Context, id string) error
}
