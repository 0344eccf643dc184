package handler

import (
	"log/slog"
	"net/http"
	"time"

	"clubrelay/internal/delivery/api/response"
	"clubrelay/internal/domain/entity"
	domainerrors "clubrelay/internal/domain/errors"
	"clubrelay/internal/usecase"
	"clubrelay/internal/util"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC   usecase.DeviceUsecase
	DeletionUC usecase.DeletionUsecase
	Logger     *slog.Logger
}

// DeviceHandler serves the mobile app's registration and account endpoints.
type DeviceHandler struct {
	deviceUC   usecase.DeviceUsecase
	deletionUC usecase.DeletionUsecase
	logger     *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC:   params.DeviceUC,
		deletionUC: params.DeletionUC,
		logger:     params.Logger,
	}
}

// RegisterDeviceRequest represents the request body for registering a device.
// Required fields are checked by the use case so its error codes reach the client.
type RegisterDeviceRequest struct {
	ExternalID string `json:"externalId" validate:"omitempty,max=255"`
	Email      string `json:"email" validate:"omitempty,max=320"`
	Token      string `json:"token"`
	DeviceID   string `json:"deviceId" validate:"omitempty,max=255"`
	Platform   string `json:"platform"`
	DeviceName string `json:"deviceName" validate:"omitempty,max=255"`
	AppVersion string `json:"appVersion" validate:"omitempty,max=64"`
}

// RemoveDevicesRequest selects one installation, or all of them when DeviceID is empty.
type RemoveDevicesRequest struct {
	UserKeyQuery
	DeviceID string `query:"deviceId" json:"deviceId" validate:"omitempty,max=255"`
}

// DeleteAccountRequest opens an account deletion request.
type DeleteAccountRequest struct {
	UserKeyQuery
	Reason string `query:"reason" json:"reason" validate:"omitempty,max=2000"`
}

type registeredUserView struct {
	ID         string  `json:"id"`
	ExternalID *string `json:"externalId"`
	Email      string  `json:"email"`
}

type registeredDeviceView struct {
	ID              uuid.UUID       `json:"id"`
	DeviceID        string          `json:"deviceId"`
	Platform        entity.Platform `json:"platform"`
	TokenRegistered bool            `json:"tokenRegistered"`
}

type registerDeviceResponse struct {
	User         registeredUserView   `json:"user"`
	Device       registeredDeviceView `json:"device"`
	TotalDevices int64                `json:"totalDevices"`
}

type deviceView struct {
	ID           uuid.UUID       `json:"id"`
	DeviceID     string          `json:"deviceId"`
	Platform     entity.Platform `json:"platform"`
	DeviceName   *string         `json:"deviceName"`
	AppVersion   *string         `json:"appVersion"`
	TokenPrefix  string          `json:"tokenPrefix,omitempty"`
	LastActiveAt time.Time       `json:"lastActiveAt"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// RegisterDevice handles POST /api/v1/devices
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	var req RegisterDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid device registration body")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	result, err := h.deviceUC.RegisterDevice(c.Request().Context(), &usecase.RegisterDeviceInput{
		UserKey:    UserKeyQuery{ExternalID: req.ExternalID, Email: req.Email}.key(),
		DeviceID:   req.DeviceID,
		Platform:   req.Platform,
		FCMToken:   req.Token,
		DeviceName: util.NilIfEmpty(req.DeviceName),
		AppVersion: util.NilIfEmpty(req.AppVersion),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, registerDeviceResponse{
		User: registeredUserView{
			ID:         result.User.ID,
			ExternalID: result.User.ExternalID,
			Email:      result.User.Email,
		},
		Device: registeredDeviceView{
			ID:              result.Device.ID,
			DeviceID:        result.Device.DeviceID,
			Platform:        result.Device.Platform,
			TokenRegistered: result.Device.FCMToken != "",
		},
		TotalDevices: result.TotalDevices,
	})
}

// ListDevices handles GET /api/v1/devices
func (h *DeviceHandler) ListDevices(c echo.Context) error {
	var q UserKeyQuery
	if err := c.Bind(&q); err != nil {
		return response.BindingError(c, "Invalid query")
	}

	if err := c.Validate(&q); err != nil {
		return response.ValidationError(c, err)
	}

	key := q.key()
	if key.IsEmpty() {
		return response.FromAppError(c, domainerrors.ErrMissingUserKey)
	}

	devices, err := h.deviceUC.ListDevices(c.Request().Context(), key)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	views := make([]deviceView, 0, len(devices))
	for _, d := range devices {
		views = append(views, deviceView{
			ID:           d.ID,
			DeviceID:     d.DeviceID,
			Platform:     d.Platform,
			DeviceName:   d.DeviceName,
			AppVersion:   d.AppVersion,
			TokenPrefix:  util.TokenPrefix(d.FCMToken),
			LastActiveAt: d.LastActiveAt,
			CreatedAt:    d.CreatedAt,
		})
	}

	return response.Success(c, http.StatusOK, map[string]any{"devices": views})
}

// RemoveDevices handles DELETE /api/v1/devices
func (h *DeviceHandler) RemoveDevices(c echo.Context) error {
	var req RemoveDevicesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid device removal request")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	key := req.key()
	if key.IsEmpty() {
		return response.FromAppError(c, domainerrors.ErrMissingUserKey)
	}

	removed, err := h.deviceUC.RemoveDevices(c.Request().Context(), key, req.DeviceID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"devicesRemoved": removed})
}

// DeleteAccount handles DELETE /api/v1/account
func (h *DeviceHandler) DeleteAccount(c echo.Context) error {
	var req DeleteAccountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid account deletion request")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	key := req.key()
	if key.IsEmpty() {
		return response.FromAppError(c, domainerrors.ErrMissingUserKey)
	}

	request, err := h.deletionUC.RequestDeletion(c.Request().Context(), key, util.NilIfEmpty(req.Reason))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"deletionRequest": request})
}
