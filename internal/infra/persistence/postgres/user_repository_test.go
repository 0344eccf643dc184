package postgres

import (
	"context"
	"testing"

	"clubrelay/internal/domain/entity"
	"clubrelay/internal/domain/repository"
	"clubrelay/internal/testutil/dbtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

func seedUser(t *testing.T, db *gorm.DB, id, email string) *entity.User {
	t.Helper()

	user := &entity.User{ID: id, Email: email}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))

	return user
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := dbtest.NewSQLiteDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &entity.User{ID: "AHC2601", ExternalID: strPtr("42"), Email: "jane@example.com"}
	require.NoError(t, repo.Create(ctx, user))
	assert.False(t, user.CreatedAt.IsZero())

	byID, err := repo.FindByID(ctx, "AHC2601")
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", byID.Email)

	byExternal, err := repo.FindByExternalID(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, "AHC2601", byExternal.ID)

	byEmail, err := repo.FindByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, "AHC2601", byEmail.ID)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	db := dbtest.NewSQLiteDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	seedUser(t, db, "AHC2601", "jane@example.com")

	err := repo.Create(ctx, &entity.User{ID: "AHC2602", Email: "jane@example.com"})
	assert.ErrorIs(t, err, repository.ErrDuplicateUser)
}

func TestUserRepository_Update(t *testing.T) {
	db := dbtest.NewSQLiteDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "AHC2601", "jane@example.com")
	user.ExternalID = strPtr("42")
	user.LegacyFCMToken = strPtr("tok-1")
	require.NoError(t, repo.Update(ctx, user))

	stored, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.ExternalID)
	assert.Equal(t, "42", *stored.ExternalID)
	require.NotNil(t, stored.LegacyFCMToken)
	assert.Equal(t, "tok-1", *stored.LegacyFCMToken)

	err = repo.Update(ctx, &entity.User{ID: "missing", Email: "x@example.com"})
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_ClearLegacyToken(t *testing.T) {
	db := dbtest.NewSQLiteDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	keep := seedUser(t, db, "AHC2601", "keep@example.com")
	other := seedUser(t, db, "AHC2602", "other@example.com")
	for _, u := range []*entity.User{keep, other} {
		u.LegacyFCMToken = strPtr("shared")
		require.NoError(t, repo.Update(ctx, u))
	}

	cleared, err := repo.ClearLegacyToken(ctx, "shared", keep.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cleared)

	stored, err := repo.FindByID(ctx, other.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.LegacyFCMToken)

	stored, err = repo.FindByID(ctx, keep.ID)
	require.NoError(t, err)
	assert.NotNil(t, stored.LegacyFCMToken)
}

func TestUserRepository_Delete_CascadesDevices(t *testing.T) {
	db := dbtest.NewSQLiteDB(t)
	users := NewUserRepository(db)
	devices := NewDeviceRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "AHC2601", "jane@example.com")
	require.NoError(t, devices.Upsert(ctx, &entity.Device{
		UserID: user.ID, DeviceID: "d1", Platform: entity.PlatformIOS, FCMToken: "tok-1",
	}))

	require.NoError(t, users.Delete(ctx, user.ID))

	count, err := devices.CountByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	assert.ErrorIs(t, users.Delete(ctx, user.ID), repository.ErrUserNotFound)
}
