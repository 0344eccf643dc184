package postgres

import (
	"context"
	"time"

	"clubrelay/internal/domain/entity"
	domainerrors "clubrelay/internal/domain/errors"
	"clubrelay/internal/domain/repository"
	"clubrelay/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by id.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByExternalID retrieves a single user by the shop customer id.
func (repo *userRepository) FindByExternalID(ctx context.Context, externalID string) (*entity.User, error) {
	return repo.findOne(ctx, "external_id = ?", externalID)
}

// FindByEmail retrieves a single user by normalized email.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, "email = ?", email)
}

func (repo *userRepository) findOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).Where(query, arg).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user. The id must already be allocated.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateUser
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update writes the mutable columns of an existing user.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"external_id":      user.ExternalID,
			"legacy_fcm_token": user.LegacyFCMToken,
			"updated_at":       time.Now().UTC(),
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateUser
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// ClearLegacyToken nulls legacy_fcm_token on every other user holding token.
func (repo *userRepository) ClearLegacyToken(ctx context.Context, token, exceptUserID string) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("legacy_fcm_token = ? AND id <> ?", token, exceptUserID).
		Update("legacy_fcm_token", nil)
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to clear legacy token")
	}

	return result.RowsAffected, nil
}

// Delete removes the user. Devices and deletion requests go with it through ON DELETE CASCADE.
func (repo *userRepository) Delete(ctx context.Context, id string) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.UserModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:             data.ID,
		ExternalID:     data.ExternalID,
		Email:          data.Email,
		LegacyFCMToken: data.LegacyFCMToken,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:             data.ID,
		ExternalID:     data.ExternalID,
		Email:          data.Email,
		LegacyFCMToken: data.LegacyFCMToken,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
