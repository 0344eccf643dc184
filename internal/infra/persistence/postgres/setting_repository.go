package postgres

import (
	"context"

	"clubrelay/internal/domain/entity"
	"clubrelay/internal/domain/repository"
	"clubrelay/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type settingRepository struct {
	db *gorm.DB
}

// NewSettingRepository is the constructor for settingRepository.
func NewSettingRepository(db *gorm.DB) repository.SettingRepository {
	return &settingRepository{db: db}
}

func (repo *settingRepository) FindByKey(ctx context.Context, key string) (*entity.AppSetting, error) {
	var settingM model.AppSettingModel

	if err := repo.db.WithContext(ctx).Where(&model.AppSettingModel{Key: key}).First(&settingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSettingNotFound
		}

		return nil, errors.Wrap(err, "failed to find setting")
	}

	return &entity.AppSetting{
		Key:       settingM.Key,
		Value:     settingM.Value,
		UpdatedAt: settingM.UpdatedAt,
	}, nil
}

type sequenceRepository struct {
	db *gorm.DB
}

// NewSequenceRepository is the constructor for sequenceRepository.
func NewSequenceRepository(db *gorm.DB) repository.SequenceRepository {
	return &sequenceRepository{db: db}
}

// Next bumps the named counter in one statement so concurrent callers never share a value.
func (repo *sequenceRepository) Next(ctx context.Context, name string, start int64) (int64, error) {
	var value int64

	err := repo.db.WithContext(ctx).Raw(
		`INSERT INTO id_sequences (name, value) VALUES (?, ?)
		 ON CONFLICT (name) DO UPDATE SET value = id_sequences.value + 1
		 RETURNING value`,
		name, start,
	).Scan(&value).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to advance sequence")
	}

	return value, nil
}
