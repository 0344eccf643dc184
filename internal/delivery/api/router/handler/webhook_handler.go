package handler

import (
	"io"
	"log/slog"
	"net/http"

	"clubrelay/internal/delivery/api/response"
	"clubrelay/internal/domain/entity"
	"clubrelay/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WooCommerce delivery headers
const (
	HeaderWCSignature   = "X-WC-Webhook-Signature"
	HeaderWCTopic       = "X-WC-Webhook-Topic"
	HeaderWebhookSecret = "X-Webhook-Secret"
)

// WebhookHandlerParams holds dependencies for WebhookHandler, injected by Fx.
type WebhookHandlerParams struct {
	fx.In

	WebhookUC usecase.WebhookUsecase
	Logger    *slog.Logger
}

// WebhookHandler receives shop webhooks.
type WebhookHandler struct {
	webhookUC usecase.WebhookUsecase
	logger    *slog.Logger
}

// NewWebhookHandler is the constructor for WebhookHandler
func NewWebhookHandler(params WebhookHandlerParams) *WebhookHandler {
	return &WebhookHandler{
		webhookUC: params.WebhookUC,
		logger:    params.Logger,
	}
}

type webhookResponse struct {
	Success bool `json:"success"`
	*entity.IngestResult
}

// WooCommerce handles POST /webhooks/woocommerce
func (h *WebhookHandler) WooCommerce(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.BindingError(c, "Could not read webhook body")
	}

	result, err := h.webhookUC.Ingest(c.Request().Context(), &usecase.WebhookDelivery{
		Topic:     firstNonEmpty(c.Request().Header.Get(HeaderWCTopic), c.QueryParam("topic")),
		Body:      body,
		Signature: firstNonEmpty(c.Request().Header.Get(HeaderWCSignature), c.Request().Header.Get(HeaderWebhookSecret), c.QueryParam("secret")),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.JSON(http.StatusOK, webhookResponse{Success: true, IngestResult: result})
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
