package handler

import (
	"log/slog"
	"net/http"

	"clubrelay/internal/delivery/api/response"
	deliverycontext "clubrelay/internal/delivery/context"
	"clubrelay/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	DeletionUC     usecase.DeletionUsecase
	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// AdminHandler serves the admin-only endpoints.
type AdminHandler struct {
	deletionUC     usecase.DeletionUsecase
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		deletionUC:     params.DeletionUC,
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// DeletionActionRequest is the body of PUT /admin/deletion-requests/:id
type DeletionActionRequest struct {
	Action string `json:"action" validate:"required"`
}

// TestNotificationRequest is the body of POST /admin/notifications/test
type TestNotificationRequest struct {
	Email string            `json:"email" validate:"required,email"`
	Title string            `json:"title" validate:"required,max=200"`
	Body  string            `json:"body" validate:"required,max=2000"`
	Data  map[string]string `json:"data"`
}

// GetDeletionRequest handles GET /admin/deletion-requests/:id
func (h *AdminHandler) GetDeletionRequest(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "Invalid deletion request id")
	}

	request, err := h.deletionUC.GetRequest(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"deletionRequest": request})
}

// ApplyDeletionAction handles PUT /admin/deletion-requests/:id
func (h *AdminHandler) ApplyDeletionAction(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "Invalid deletion request id")
	}

	var req DeletionActionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid action body")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	ctx := c.Request().Context()
	admin, _ := deliverycontext.GetAdminSubject(c)
	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("Admin deletion action",
		slog.String("admin", admin),
		slog.String("deletion_request_id", id.String()),
		slog.String("action", req.Action),
	)

	result, err := h.deletionUC.ApplyAction(ctx, id, req.Action)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	body := map[string]any{
		"action":          result.Action,
		"deletionRequest": result.Request,
	}
	if result.UserDeleted {
		body["userDeleted"] = true
	}

	return response.Success(c, http.StatusOK, body)
}

// SendTestNotification handles POST /admin/notifications/test
func (h *AdminHandler) SendTestNotification(c echo.Context) error {
	var req TestNotificationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid test notification body")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	result := h.notificationUC.Dispatch(c.Request().Context(), &usecase.DispatchRequest{
		Email:   req.Email,
		Title:   req.Title,
		Body:    req.Body,
		Data:    req.Data,
		Trigger: "admin_test",
	})

	return response.Success(c, http.StatusOK, result)
}
