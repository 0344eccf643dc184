package repository

import (
	"context"

	"clubrelay/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrSettingNotFound is returned when the key is not set.
var ErrSettingNotFound = errors.New("setting not found")

// SettingRepository reads admin-maintained app settings.
type SettingRepository interface {
	FindByKey(ctx context.Context, key string) (*entity.AppSetting, error)
}

// SequenceRepository allocates monotonically increasing numbers.
type SequenceRepository interface {
	// Next returns the next value of the named sequence. The first call returns start.
	Next(ctx context.Context, name string, start int64) (int64, error)
}
