package impl

import (
	"context"
	"testing"
	"time"

	"clubrelay/internal/domain/entity"
	domainerrors "clubrelay/internal/domain/errors"
	"clubrelay/internal/domain/repository"
	"clubrelay/internal/infra/metrics"
	"clubrelay/internal/infra/persistence/postgres"
	mockRepo "clubrelay/internal/mocks/repository"
	"clubrelay/internal/testutil/dbtest"
	"clubrelay/internal/usecase"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service *deviceService
	db      *gorm.DB
	users   repository.UserRepository
	devices repository.DeviceRepository
	metrics *metrics.Metrics
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	return createTestDeviceServiceWithTx(t, nil)
}

func createTestDeviceServiceWithTx(t *testing.T, wrap func(repository.TransactionManager) repository.TransactionManager) deviceServiceFixtures {
	db := dbtest.NewSQLiteDB(t)
	users := postgres.NewUserRepository(db)
	devices := postgres.NewDeviceRepository(db)
	m := metrics.New()

	txManager := postgres.NewTransactionManager(db)
	if wrap != nil {
		txManager = wrap(txManager)
	}

	svc := NewDeviceService(txManager, users, devices, newTestConfig(), m, discardLogger()).(*deviceService)
	svc.now = steppingClock(time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC), time.Second)

	return deviceServiceFixtures{service: svc, db: db, users: users, devices: devices, metrics: m}
}

func registerInput(email, deviceID, token string) *usecase.RegisterDeviceInput {
	return &usecase.RegisterDeviceInput{
		UserKey:  entity.UserKey{Email: email},
		DeviceID: deviceID,
		Platform: "ios",
		FCMToken: token,
	}
}

func TestDeviceService_RegisterDevice_CreatesUser(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	input := registerInput("  Jane@Example.com ", "device-1", "token-aaaaaaaaaaaaaaaa")
	input.UserKey.ExternalID = "42"
	input.Platform = "IOS"
	input.DeviceName = strPtr("Jane's iPhone")

	result, err := fx.service.RegisterDevice(ctx, input)
	require.NoError(t, err)

	assert.Equal(t, "AHC2601", result.User.ID)
	assert.Equal(t, "jane@example.com", result.User.Email)
	require.NotNil(t, result.User.ExternalID)
	assert.Equal(t, "42", *result.User.ExternalID)
	require.NotNil(t, result.User.LegacyFCMToken)
	assert.Equal(t, "token-aaaaaaaaaaaaaaaa", *result.User.LegacyFCMToken)

	assert.Equal(t, entity.PlatformIOS, result.Device.Platform)
	assert.Equal(t, "device-1", result.Device.DeviceID)
	assert.Equal(t, int64(1), result.TotalDevices)
	assert.InDelta(t, 1, testutil.ToFloat64(fx.metrics.DeviceRegistered.WithLabelValues("ios")), 0)

	second, err := fx.service.RegisterDevice(ctx, registerInput("bob@example.com", "device-1", "token-bbbbbbbbbbbbbbbb"))
	require.NoError(t, err)
	assert.Equal(t, "AHC2602", second.User.ID)
}

func TestDeviceService_RegisterDevice_SameTokenSingleHolder(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	for _, deviceID := range []string{"d1", "d2", "d3"} {
		_, err := fx.service.RegisterDevice(ctx, registerInput("jane@example.com", deviceID, "shared-token"))
		require.NoError(t, err)
	}

	user, err := fx.users.FindByEmail(ctx, "jane@example.com")
	require.NoError(t, err)

	devices, err := fx.devices.FindByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, devices, 3)

	var holders []string
	for _, d := range devices {
		if d.FCMToken == "shared-token" {
			holders = append(holders, d.DeviceID)
		}
	}
	assert.Equal(t, []string{"d3"}, holders)
}

func TestDeviceService_RegisterDevice_TokenMovesToSecondDevice(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	first, err := fx.service.RegisterDevice(ctx, registerInput("alice@example.com", "D1", "T1"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.TotalDevices)

	second, err := fx.service.RegisterDevice(ctx, registerInput("alice@example.com", "D2", "T1"))
	require.NoError(t, err)
	assert.Equal(t, first.User.ID, second.User.ID)
	assert.Equal(t, int64(2), second.TotalDevices)
	assert.Equal(t, "T1", second.Device.FCMToken)

	d1, err := fx.devices.FindByUserAndDeviceID(ctx, first.User.ID, "D1")
	require.NoError(t, err)
	assert.Empty(t, d1.FCMToken)

	d2, err := fx.devices.FindByUserAndDeviceID(ctx, first.User.ID, "D2")
	require.NoError(t, err)
	assert.Equal(t, "T1", d2.FCMToken)
}

func TestDeviceService_RegisterDevice_TokenMovesBetweenUsers(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	alice, err := fx.service.RegisterDevice(ctx, registerInput("alice@example.com", "phone", "handed-down-token"))
	require.NoError(t, err)

	bob, err := fx.service.RegisterDevice(ctx, registerInput("bob@example.com", "phone", "handed-down-token"))
	require.NoError(t, err)
	assert.NotEqual(t, alice.User.ID, bob.User.ID)

	aliceDevices, err := fx.devices.FindByUser(ctx, alice.User.ID)
	require.NoError(t, err)
	require.Len(t, aliceDevices, 1)
	assert.Empty(t, aliceDevices[0].FCMToken)

	storedAlice, err := fx.users.FindByID(ctx, alice.User.ID)
	require.NoError(t, err)
	assert.Nil(t, storedAlice.LegacyFCMToken)

	storedBob, err := fx.users.FindByID(ctx, bob.User.ID)
	require.NoError(t, err)
	require.NotNil(t, storedBob.LegacyFCMToken)
	assert.Equal(t, "handed-down-token", *storedBob.LegacyFCMToken)
}

func TestDeviceService_RegisterDevice_BackfillsExternalID(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	first, err := fx.service.RegisterDevice(ctx, registerInput("jane@example.com", "d1", "token-1"))
	require.NoError(t, err)
	assert.Nil(t, first.User.ExternalID)

	input := registerInput("JANE@example.com", "d1", "token-2")
	input.UserKey.ExternalID = "777"
	second, err := fx.service.RegisterDevice(ctx, input)
	require.NoError(t, err)

	assert.Equal(t, first.User.ID, second.User.ID)
	assert.Equal(t, first.Device.ID, second.Device.ID)
	assert.Equal(t, "token-2", second.Device.FCMToken)

	byExternal, err := fx.users.FindByExternalID(ctx, "777")
	require.NoError(t, err)
	assert.Equal(t, first.User.ID, byExternal.ID)
}

func TestDeviceService_RegisterDevice_Validation(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		input   *usecase.RegisterDeviceInput
		wantErr error
	}{
		{
			name:    "no user key",
			input:   &usecase.RegisterDeviceInput{DeviceID: "d1", Platform: "ios", FCMToken: "t"},
			wantErr: domainerrors.ErrMissingUserKey,
		},
		{
			name:    "bad platform",
			input:   &usecase.RegisterDeviceInput{UserKey: entity.UserKey{Email: "a@b.c"}, DeviceID: "d1", Platform: "web", FCMToken: "t"},
			wantErr: domainerrors.ErrInvalidPlatform,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.service.RegisterDevice(ctx, tt.input)
			assert.Equal(t, tt.wantErr, err)
		})
	}

	missing := []*usecase.RegisterDeviceInput{
		{UserKey: entity.UserKey{Email: "a@b.c"}, Platform: "ios", FCMToken: "t"},
		{UserKey: entity.UserKey{Email: "a@b.c"}, DeviceID: "d1", FCMToken: "t"},
		{UserKey: entity.UserKey{Email: "a@b.c"}, DeviceID: "d1", Platform: "ios"},
	}
	for _, input := range missing {
		_, err := fx.service.RegisterDevice(ctx, input)
		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	}
}

func TestDeviceService_RegisterDevice_NewUserNeedsEmail(t *testing.T) {
	fx := createTestDeviceService(t)

	_, err := fx.service.RegisterDevice(context.Background(), &usecase.RegisterDeviceInput{
		UserKey:  entity.UserKey{ExternalID: "42"},
		DeviceID: "d1",
		Platform: "android",
		FCMToken: "t",
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

// conflictingTxManager fails the first n transactions with a unique violation.
type conflictingTxManager struct {
	repository.TransactionManager
	remaining int
	calls     int
}

func (m *conflictingTxManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	m.calls++
	if m.remaining > 0 {
		m.remaining--

		return repository.ErrDuplicateUser
	}

	return m.TransactionManager.Execute(ctx, fn)
}

func TestDeviceService_RegisterDevice_RetriesOnceAfterConflict(t *testing.T) {
	tx := &conflictingTxManager{remaining: 1}
	fx := createTestDeviceServiceWithTx(t, func(inner repository.TransactionManager) repository.TransactionManager {
		tx.TransactionManager = inner
		return tx
	})

	result, err := fx.service.RegisterDevice(context.Background(), registerInput("jane@example.com", "d1", "tok"))
	require.NoError(t, err)
	assert.Equal(t, 2, tx.calls)
	assert.Equal(t, int64(1), result.TotalDevices)
}

func TestDeviceService_RegisterDevice_GivesUpAfterSecondConflict(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		Return(repository.ErrDuplicateDevice).
		Times(registerAttempts)

	svc := NewDeviceService(
		txManager,
		mockRepo.NewMockUserRepository(t),
		mockRepo.NewMockDeviceRepository(t),
		newTestConfig(),
		metrics.New(),
		discardLogger(),
	)

	_, err := svc.RegisterDevice(context.Background(), registerInput("jane@example.com", "d1", "tok"))

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CONFLICT", appErr.ErrorCode())
}

func TestDeviceService_RemoveDevices(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	key := entity.UserKey{Email: "jane@example.com"}

	for _, deviceID := range []string{"d1", "d2", "d3"} {
		_, err := fx.service.RegisterDevice(ctx, registerInput(key.Email, deviceID, "tok-"+deviceID))
		require.NoError(t, err)
	}

	removed, err := fx.service.RemoveDevices(ctx, key, "d1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	_, err = fx.service.RemoveDevices(ctx, key, "d1")
	assert.Equal(t, domainerrors.ErrDeviceNotFound, err)

	removed, err = fx.service.RemoveDevices(ctx, key, "")
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	_, err = fx.service.RemoveDevices(ctx, entity.UserKey{Email: "ghost@example.com"}, "")
	assert.Equal(t, domainerrors.ErrUserNotFound, err)
}

func TestDeviceService_ListDevices(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	first, err := fx.service.RegisterDevice(ctx, registerInput("jane@example.com", "tablet", "tok-1"))
	require.NoError(t, err)
	_, err = fx.service.RegisterDevice(ctx, registerInput("jane@example.com", "phone", "tok-2"))
	require.NoError(t, err)

	devices, err := fx.service.ListDevices(ctx, entity.UserKey{ExternalID: "unknown", Email: "jane@example.com"})
	require.NoError(t, err)
	require.Len(t, devices, 2)
	assert.Equal(t, "phone", devices[0].DeviceID)
	assert.Equal(t, first.Device.DeviceID, devices[1].DeviceID)

	_, err = fx.service.ListDevices(ctx, entity.UserKey{})
	assert.Equal(t, domainerrors.ErrMissingUserKey, err)
}
