package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"clubrelay/config"
	"clubrelay/internal/domain/constants"
	"clubrelay/internal/domain/entity"
	domainerrors "clubrelay/internal/domain/errors"
	"clubrelay/internal/domain/repository"
	"clubrelay/internal/errors"
	"clubrelay/internal/infra/metrics"
	"clubrelay/internal/usecase"
	"clubrelay/internal/util"
)

// registerAttempts is the first try plus one retry after a unique-constraint conflict.
const registerAttempts = 2

type deviceService struct {
	txManager  repository.TransactionManager
	userRepo   repository.UserRepository
	deviceRepo repository.DeviceRepository
	idConfig   *config.UserIDConfig
	metrics    *metrics.Metrics
	logger     *slog.Logger
	now        func() time.Time
}

// NewDeviceService creates a new device service instance
func NewDeviceService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	deviceRepo repository.DeviceRepository,
	cfg *config.Config,
	m *metrics.Metrics,
	logger *slog.Logger,
) usecase.DeviceUsecase {
	return &deviceService{
		txManager:  txManager,
		userRepo:   userRepo,
		deviceRepo: deviceRepo,
		idConfig:   cfg.UserID,
		metrics:    m,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

type registration struct {
	key        entity.UserKey
	deviceID   string
	platform   entity.Platform
	token      string
	deviceName *string
	appVersion *string
}

func normalizeRegistration(input *usecase.RegisterDeviceInput) (*registration, error) {
	key := entity.UserKey{
		ExternalID: strings.TrimSpace(input.UserKey.ExternalID),
		Email:      util.NormalizeEmail(input.UserKey.Email),
	}
	if key.IsEmpty() {
		return nil, domainerrors.ErrMissingUserKey
	}

	deviceID := strings.TrimSpace(input.DeviceID)
	token := strings.TrimSpace(input.FCMToken)
	switch {
	case deviceID == "":
		return nil, domainerrors.ErrValidationFailed.WithDetails("deviceId is required")
	case strings.TrimSpace(input.Platform) == "":
		return nil, domainerrors.ErrValidationFailed.WithDetails("platform is required")
	case token == "":
		return nil, domainerrors.ErrValidationFailed.WithDetails("token is required")
	}

	platform, ok := entity.ParsePlatform(input.Platform)
	if !ok {
		return nil, domainerrors.ErrInvalidPlatform
	}

	return &registration{
		key:        key,
		deviceID:   deviceID,
		platform:   platform,
		token:      token,
		deviceName: util.NilIfEmpty(util.Deref(input.DeviceName)),
		appVersion: util.NilIfEmpty(util.Deref(input.AppVersion)),
	}, nil
}

// RegisterDevice binds the token to (user, deviceId), taking it away from any other holder.
func (s *deviceService) RegisterDevice(ctx context.Context, input *usecase.RegisterDeviceInput) (*usecase.RegisterDeviceResult, error) {
	reg, err := normalizeRegistration(input)
	if err != nil {
		return nil, err
	}

	var result *usecase.RegisterDeviceResult
	for attempt := 1; attempt <= registerAttempts; attempt++ {
		result, err = s.register(ctx, reg)
		if !isRegistrationConflict(err) {
			break
		}
		s.logger.WarnContext(ctx, "Device registration conflicted, retrying",
			slog.Int("attempt", attempt),
			slog.String("device_id", reg.deviceID),
			slog.String("token_prefix", util.TokenPrefix(reg.token)),
		)
	}

	if err != nil {
		var appErr domainerrors.AppError
		switch {
		case errors.As(err, &appErr):
			return nil, err
		case isRegistrationConflict(err):
			return nil, domainerrors.ErrConflict.WithDetails("concurrent registration for the same token or email")
		default:
			return nil, fmt.Errorf("failed to register device: %w", err)
		}
	}

	s.metrics.DeviceRegistered.WithLabelValues(string(result.Device.Platform)).Inc()

	return result, nil
}

func isRegistrationConflict(err error) bool {
	return errors.IsAny(err, repository.ErrDuplicateDevice, repository.ErrDuplicateUser)
}

func (s *deviceService) register(ctx context.Context, reg *registration) (*usecase.RegisterDeviceResult, error) {
	result := &usecase.RegisterDeviceResult{}

	err := s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		users := repos.NewUserRepository()
		devices := repos.NewDeviceRepository()

		user, err := findUser(ctx, users, reg.key)
		if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
			return fmt.Errorf("failed to resolve user: %w", err)
		}

		var ownerID string
		if user != nil {
			ownerID = user.ID
		}

		if _, err := devices.DetachTokenExcept(ctx, reg.token, ownerID, reg.deviceID); err != nil {
			return err
		}
		if _, err := users.ClearLegacyToken(ctx, reg.token, ownerID); err != nil {
			return err
		}

		if user == nil {
			user, err = s.createUser(ctx, users, repos.NewSequenceRepository(), reg)
		} else {
			err = s.refreshUser(ctx, users, user, reg)
		}
		if err != nil {
			return err
		}

		device := &entity.Device{
			UserID:       user.ID,
			DeviceID:     reg.deviceID,
			Platform:     reg.platform,
			FCMToken:     reg.token,
			DeviceName:   reg.deviceName,
			AppVersion:   reg.appVersion,
			LastActiveAt: s.now(),
		}
		if err := devices.Upsert(ctx, device); err != nil {
			return err
		}

		total, err := devices.CountByUser(ctx, user.ID)
		if err != nil {
			return err
		}

		result.User = user
		result.Device = device
		result.TotalDevices = total

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (s *deviceService) createUser(
	ctx context.Context,
	users repository.UserRepository,
	seq repository.SequenceRepository,
	reg *registration,
) (*entity.User, error) {
	if reg.key.Email == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email is required to register a new user")
	}

	n, err := seq.Next(ctx, constants.SequenceUserID, s.idConfig.Start)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		ID:             s.idConfig.Prefix + strconv.FormatInt(n, 10),
		ExternalID:     util.NilIfEmpty(reg.key.ExternalID),
		Email:          reg.key.Email,
		LegacyFCMToken: &reg.token,
	}
	if err := users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// refreshUser backfills a missing external id and points the legacy token at the new token.
func (s *deviceService) refreshUser(ctx context.Context, users repository.UserRepository, user *entity.User, reg *registration) error {
	if user.ExternalID == nil && reg.key.ExternalID != "" {
		user.ExternalID = &reg.key.ExternalID
	}
	user.LegacyFCMToken = &reg.token

	return users.Update(ctx, user)
}

// RemoveDevices removes one installation, or every installation when deviceID is empty.
func (s *deviceService) RemoveDevices(ctx context.Context, key entity.UserKey, deviceID string) (int64, error) {
	user, err := s.lookupUser(ctx, key)
	if err != nil {
		return 0, err
	}

	deviceID = strings.TrimSpace(deviceID)
	removed, err := s.deviceRepo.DeleteByUser(ctx, user.ID, deviceID)
	if err != nil {
		return 0, fmt.Errorf("failed to remove devices: %w", err)
	}

	if deviceID != "" && removed == 0 {
		return 0, domainerrors.ErrDeviceNotFound
	}

	return removed, nil
}

// ListDevices returns the user's devices, most recently active first.
func (s *deviceService) ListDevices(ctx context.Context, key entity.UserKey) ([]*entity.Device, error) {
	user, err := s.lookupUser(ctx, key)
	if err != nil {
		return nil, err
	}

	devices, err := s.deviceRepo.FindByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}

	return devices, nil
}

func (s *deviceService) lookupUser(ctx context.Context, key entity.UserKey) (*entity.User, error) {
	if key.IsEmpty() {
		return nil, domainerrors.ErrMissingUserKey
	}

	user, err := findUser(ctx, s.userRepo, key)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}
