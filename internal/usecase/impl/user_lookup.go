package impl

import (
	"context"
	"errors"

	"clubrelay/internal/domain/entity"
	"clubrelay/internal/domain/repository"
	"clubrelay/internal/util"
)

// findUser resolves key by external id first, then by normalized email.
func findUser(ctx context.Context, users repository.UserRepository, key entity.UserKey) (*entity.User, error) {
	if key.ExternalID != "" {
		user, err := users.FindByExternalID(ctx, key.ExternalID)
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return nil, err
		}
	}

	if email := util.NormalizeEmail(key.Email); email != "" {
		return users.FindByEmail(ctx, email)
	}

	return nil, repository.ErrUserNotFound
}
