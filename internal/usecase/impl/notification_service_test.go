package impl

import (
	"context"
	"errors"
	"testing"

	"clubrelay/internal/domain/entity"
	"clubrelay/internal/domain/repository"
	"clubrelay/internal/domain/service"
	mockRepo "clubrelay/internal/mocks/repository"
	mockService "clubrelay/internal/mocks/service"
	"clubrelay/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type notificationServiceFixtures struct {
	service    usecase.NotificationUsecase
	userRepo   *mockRepo.MockUserRepository
	deviceRepo *mockRepo.MockDeviceRepository
	pushLogs   *mockRepo.MockPushLogRepository
	sender     *mockService.MockNotificationService
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	fx := notificationServiceFixtures{
		userRepo:   mockRepo.NewMockUserRepository(t),
		deviceRepo: mockRepo.NewMockDeviceRepository(t),
		pushLogs:   mockRepo.NewMockPushLogRepository(t),
		sender:     mockService.NewMockNotificationService(t),
	}
	fx.service = NewNotificationService(fx.userRepo, fx.deviceRepo, fx.pushLogs, fx.sender, syncRunner(t), newTestConfig(), discardLogger())

	return fx
}

func dispatchRequest(email string) *usecase.DispatchRequest {
	return &usecase.DispatchRequest{
		Email:   email,
		Title:   "Order completed",
		Body:    "Order #9001 is complete.",
		Data:    map[string]string{"resource_id": "9001"},
		Trigger: "order.updated",
	}
}

func TestNotificationService_Dispatch_NoMatchingUser(t *testing.T) {
	fx := createTestNotificationService(t)

	fx.userRepo.EXPECT().FindByEmail(mock.Anything, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	result := fx.service.Dispatch(context.Background(), dispatchRequest(" Ghost@Example.com "))
	assert.False(t, result.Success)
	assert.Equal(t, "no matching user", result.Error)
}

func TestNotificationService_Dispatch_EmptyEmail(t *testing.T) {
	fx := createTestNotificationService(t)

	result := fx.service.Dispatch(context.Background(), dispatchRequest(""))
	assert.False(t, result.Success)
	assert.Equal(t, "no matching user", result.Error)
}

func TestNotificationService_Dispatch_AllDevices(t *testing.T) {
	fx := createTestNotificationService(t)
	user := &entity.User{ID: "AHC2601", Email: "jane@example.com"}
	devices := []*entity.Device{
		{ID: uuid.New(), UserID: user.ID, DeviceID: "phone", FCMToken: "token-phone"},
		{ID: uuid.New(), UserID: user.ID, DeviceID: "tablet", FCMToken: "token-tablet"},
	}

	fx.userRepo.EXPECT().FindByEmail(mock.Anything, "jane@example.com").Return(user, nil)
	fx.deviceRepo.EXPECT().FindByUser(mock.Anything, user.ID).Return(devices, nil)
	fx.sender.EXPECT().
		SendSingleNotification(mock.Anything, "token-phone", "Order completed", "Order #9001 is complete.", mock.Anything).
		Return("", errors.New("quota exceeded"))
	fx.sender.EXPECT().
		SendSingleNotification(mock.Anything, "token-tablet", "Order completed", "Order #9001 is complete.", mock.Anything).
		Return("msg-2", nil)
	fx.pushLogs.EXPECT().
		CreateBatch(mock.Anything, mock.MatchedBy(func(logs []*entity.PushLog) bool {
			return len(logs) == 2 && !logs[0].Success && logs[1].Success && logs[1].DeviceRef != nil
		})).
		Return(nil)

	result := fx.service.Dispatch(context.Background(), dispatchRequest("jane@example.com"))
	assert.True(t, result.Success)
	assert.Equal(t, "msg-2", result.MessageID)
	assert.Empty(t, result.Error)
	require.Len(t, result.Deliveries, 2)
	assert.Equal(t, "quota exceeded", result.Deliveries[0].Error)
	assert.Equal(t, "tablet", result.Deliveries[1].DeviceID)
}

func TestNotificationService_Dispatch_LegacyTokenFallback(t *testing.T) {
	fx := createTestNotificationService(t)
	user := &entity.User{ID: "AHC2601", Email: "jane@example.com", LegacyFCMToken: strPtr("legacy-token")}

	fx.userRepo.EXPECT().FindByEmail(mock.Anything, "jane@example.com").Return(user, nil)
	fx.deviceRepo.EXPECT().FindByUser(mock.Anything, user.ID).Return(nil, nil)
	fx.sender.EXPECT().
		SendSingleNotification(mock.Anything, "legacy-token", mock.Anything, mock.Anything, mock.Anything).
		Return("msg-legacy", nil)
	fx.pushLogs.EXPECT().CreateBatch(mock.Anything, mock.Anything).Return(nil)

	result := fx.service.Dispatch(context.Background(), dispatchRequest("jane@example.com"))
	assert.True(t, result.Success)
	assert.Equal(t, "msg-legacy", result.MessageID)
	require.Len(t, result.Deliveries, 1)
	assert.True(t, result.Deliveries[0].Legacy)
}

func TestNotificationService_Dispatch_SkipsDetachedDevices(t *testing.T) {
	fx := createTestNotificationService(t)
	user := &entity.User{ID: "AHC2601", Email: "jane@example.com"}
	devices := []*entity.Device{
		{ID: uuid.New(), UserID: user.ID, DeviceID: "old-phone"},
		{ID: uuid.New(), UserID: user.ID, DeviceID: "new-phone", FCMToken: "token-new"},
	}

	fx.userRepo.EXPECT().FindByEmail(mock.Anything, "jane@example.com").Return(user, nil)
	fx.deviceRepo.EXPECT().FindByUser(mock.Anything, user.ID).Return(devices, nil)
	fx.sender.EXPECT().
		SendSingleNotification(mock.Anything, "token-new", mock.Anything, mock.Anything, mock.Anything).
		Return("msg-1", nil).
		Once()
	fx.pushLogs.EXPECT().
		CreateBatch(mock.Anything, mock.MatchedBy(func(logs []*entity.PushLog) bool { return len(logs) == 1 })).
		Return(nil)

	result := fx.service.Dispatch(context.Background(), dispatchRequest("jane@example.com"))
	assert.True(t, result.Success)
	require.Len(t, result.Deliveries, 1)
	assert.Equal(t, "new-phone", result.Deliveries[0].DeviceID)
}

func TestNotificationService_Dispatch_NoTargets(t *testing.T) {
	fx := createTestNotificationService(t)
	user := &entity.User{ID: "AHC2601", Email: "jane@example.com"}

	fx.userRepo.EXPECT().FindByEmail(mock.Anything, "jane@example.com").Return(user, nil)
	fx.deviceRepo.EXPECT().FindByUser(mock.Anything, user.ID).Return([]*entity.Device{}, nil)

	result := fx.service.Dispatch(context.Background(), dispatchRequest("jane@example.com"))
	assert.False(t, result.Success)
	assert.Equal(t, "no registered devices", result.Error)
}

func TestNotificationService_Dispatch_RemovesInvalidTokens(t *testing.T) {
	fx := createTestNotificationService(t)
	user := &entity.User{ID: "AHC2601", Email: "jane@example.com"}
	device := &entity.Device{ID: uuid.New(), UserID: user.ID, DeviceID: "phone", FCMToken: "stale-token"}

	fx.userRepo.EXPECT().FindByEmail(mock.Anything, "jane@example.com").Return(user, nil)
	fx.deviceRepo.EXPECT().FindByUser(mock.Anything, user.ID).Return([]*entity.Device{device}, nil)
	fx.sender.EXPECT().
		SendSingleNotification(mock.Anything, "stale-token", mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.Join(service.ErrInvalidToken, errors.New("registration-token-not-registered")))
	fx.deviceRepo.EXPECT().DeleteByToken(mock.Anything, "stale-token").Return(int64(1), nil)
	fx.pushLogs.EXPECT().CreateBatch(mock.Anything, mock.Anything).Return(nil)

	result := fx.service.Dispatch(context.Background(), dispatchRequest("jane@example.com"))
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "invalid")
}

func TestNotificationService_Dispatch_ProviderPanicBecomesResult(t *testing.T) {
	fx := createTestNotificationService(t)
	user := &entity.User{ID: "AHC2601", Email: "jane@example.com", LegacyFCMToken: strPtr("legacy-token")}

	fx.userRepo.EXPECT().FindByEmail(mock.Anything, "jane@example.com").Return(user, nil)
	fx.deviceRepo.EXPECT().FindByUser(mock.Anything, user.ID).Return(nil, nil)
	fx.sender.EXPECT().
		SendSingleNotification(mock.Anything, "legacy-token", mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, string, string, string, map[string]string) (string, error) {
			panic("sdk exploded")
		})
	fx.pushLogs.EXPECT().CreateBatch(mock.Anything, mock.Anything).Return(nil)

	var result *entity.DispatchResult
	require.NotPanics(t, func() {
		result = fx.service.Dispatch(context.Background(), dispatchRequest("jane@example.com"))
	})
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "sdk exploded")
}

func TestNotificationService_Dispatch_LookupFailure(t *testing.T) {
	fx := createTestNotificationService(t)

	fx.userRepo.EXPECT().FindByEmail(mock.Anything, "jane@example.com").Return(nil, errors.New("db down"))

	result := fx.service.Dispatch(context.Background(), dispatchRequest("jane@example.com"))
	assert.False(t, result.Success)
	assert.Equal(t, "user lookup failed", result.Error)
}
