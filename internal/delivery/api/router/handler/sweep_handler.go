package handler

import (
	"log/slog"
	"net/http"

	"clubrelay/internal/delivery/api/response"
	deliverycontext "clubrelay/internal/delivery/context"
	"clubrelay/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SweepHandlerParams holds dependencies for SweepHandler, injected by Fx.
type SweepHandlerParams struct {
	fx.In

	DeletionUC usecase.DeletionUsecase
	Logger     *slog.Logger
}

// SweepHandler runs the deletion sweep on behalf of the external scheduler.
type SweepHandler struct {
	deletionUC usecase.DeletionUsecase
	logger     *slog.Logger
}

// NewSweepHandler is the constructor for SweepHandler
func NewSweepHandler(params SweepHandlerParams) *SweepHandler {
	return &SweepHandler{
		deletionUC: params.DeletionUC,
		logger:     params.Logger,
	}
}

// SweepRequest toggles a dry run, from the query string or a JSON body.
type SweepRequest struct {
	DryRun bool `query:"dryRun" json:"dryRun"`
}

// Sweep handles POST /internal/deletion-sweep and replies with the bare report.
func (h *SweepHandler) Sweep(c echo.Context) error {
	var req SweepRequest
	if c.Request().ContentLength > 0 {
		if err := (&echo.DefaultBinder{}).BindBody(c, &req); err != nil {
			return response.BindingError(c, "dryRun must be a boolean")
		}
	}
	// Query wins over the body; POST bodies skip query binding in echo.
	if err := echo.QueryParamsBinder(c).Bool("dryRun", &req.DryRun).BindError(); err != nil {
		return response.BindingError(c, "dryRun must be a boolean")
	}

	ctx := c.Request().Context()
	report, err := h.deletionUC.Sweep(ctx, req.DryRun)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Error("Deletion sweep failed", slog.Any("error", err))

		return response.HandleAppError(c, err)
	}

	return c.JSON(http.StatusOK, report)
}
