package postgres

import (
	"context"
	"time"

	"clubrelay/internal/domain/entity"
	domainerrors "clubrelay/internal/domain/errors"
	"clubrelay/internal/domain/repository"
	"clubrelay/internal/infra/persistence/model"
	"clubrelay/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// Upsert inserts the device, or refreshes the row with the same (user_id, device_id).
// The entity is reloaded afterwards so it carries the stored id and timestamps.
func (repo *deviceRepository) Upsert(ctx context.Context, device *entity.Device) error {
	deviceM := fromDeviceDomain(device)
	if deviceM.ID == uuid.Nil {
		deviceM.ID = uuid.New()
	}
	if deviceM.LastActiveAt.IsZero() {
		deviceM.LastActiveAt = time.Now().UTC()
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "device_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"fcm_token", "platform", "device_name", "app_version", "last_active_at", "updated_at",
			}),
		}).
		Create(deviceM).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDevice
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert device")
	}

	stored, err := repo.FindByUserAndDeviceID(ctx, device.UserID, device.DeviceID)
	if err != nil {
		return err
	}
	*device = *stored

	return nil
}

// FindByUserAndDeviceID retrieves one installation of a user.
func (repo *deviceRepository) FindByUserAndDeviceID(ctx context.Context, userID, deviceID string) (*entity.Device, error) {
	var deviceM model.UserDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND device_id = ?", userID, deviceID).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device")
	}

	return toDeviceDomain(&deviceM), nil
}

// FindByUser retrieves all devices of a user, most recently active first.
func (repo *deviceRepository) FindByUser(ctx context.Context, userID string) ([]*entity.Device, error) {
	var deviceModels []*model.UserDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("last_active_at DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find devices by user")
	}

	devices := make([]*entity.Device, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// CountByUser returns the number of devices of a user.
func (repo *deviceRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count devices")
	}

	return count, nil
}

// DetachTokenExcept nulls the token on every row holding it other than (userID, deviceID).
// NULL tokens do not collide under the unique token index.
func (repo *deviceRepository) DetachTokenExcept(ctx context.Context, token, userID, deviceID string) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("fcm_token = ? AND NOT (user_id = ? AND device_id = ?)", token, userID, deviceID).
		Updates(map[string]any{"fcm_token": nil, "updated_at": time.Now().UTC()})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to detach token from devices")
	}

	return result.RowsAffected, nil
}

// DeleteByToken removes the device holding token.
func (repo *deviceRepository) DeleteByToken(ctx context.Context, token string) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("fcm_token = ?", token).
		Delete(&model.UserDeviceModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete device by token")
	}

	return result.RowsAffected, nil
}

// DeleteByUser removes one device of a user, or all of them when deviceID is empty.
func (repo *deviceRepository) DeleteByUser(ctx context.Context, userID, deviceID string) (int64, error) {
	tx := repo.db.WithContext(ctx).Where("user_id = ?", userID)
	if deviceID != "" {
		tx = tx.Where("device_id = ?", deviceID)
	}

	result := tx.Delete(&model.UserDeviceModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete devices")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toDeviceDomain converts a GORM UserDeviceModel to a domain Device entity.
func toDeviceDomain(data *model.UserDeviceModel) *entity.Device {
	if data == nil {
		return nil
	}

	return &entity.Device{
		ID:           data.ID,
		UserID:       data.UserID,
		DeviceID:     data.DeviceID,
		Platform:     entity.Platform(data.Platform),
		FCMToken:     util.Deref(data.FCMToken),
		DeviceName:   data.DeviceName,
		AppVersion:   data.AppVersion,
		LastActiveAt: data.LastActiveAt,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromDeviceDomain converts a domain Device entity to a GORM UserDeviceModel.
func fromDeviceDomain(data *entity.Device) *model.UserDeviceModel {
	if data == nil {
		return nil
	}

	return &model.UserDeviceModel{
		ID:           data.ID,
		UserID:       data.UserID,
		DeviceID:     data.DeviceID,
		Platform:     string(data.Platform),
		FCMToken:     util.NilIfEmpty(data.FCMToken),
		DeviceName:   data.DeviceName,
		AppVersion:   data.AppVersion,
		LastActiveAt: data.LastActiveAt,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
