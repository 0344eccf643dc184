// Package router contains route registration for the API server.
package router

import (
	"clubrelay/config"
	"clubrelay/internal/delivery/api/middleware"
	"clubrelay/internal/delivery/api/router/handler"
	"clubrelay/internal/domain/constants"
	"clubrelay/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DeviceHandler  *handler.DeviceHandler
	AdminHandler   *handler.AdminHandler
	SweepHandler   *handler.SweepHandler
	WebhookHandler *handler.WebhookHandler
	AuthMiddleware *middleware.AuthMiddleware
	APIKey         *middleware.APIKeyMiddleware
	SweepAuth      *middleware.SweepAuthMiddleware
	Metrics        *metrics.Metrics
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	deviceHandler  *handler.DeviceHandler
	adminHandler   *handler.AdminHandler
	sweepHandler   *handler.SweepHandler
	webhookHandler *handler.WebhookHandler
	authMiddleware *middleware.AuthMiddleware
	apiKey         *middleware.APIKeyMiddleware
	sweepAuth      *middleware.SweepAuthMiddleware
	metrics        *metrics.Metrics
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		deviceHandler:  params.DeviceHandler,
		adminHandler:   params.AdminHandler,
		sweepHandler:   params.SweepHandler,
		webhookHandler: params.WebhookHandler,
		authMiddleware: params.AuthMiddleware,
		apiKey:         params.APIKey,
		sweepAuth:      params.SweepAuth,
		metrics:        params.Metrics,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	// Mobile app, API key
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.apiKey.Authenticate)
	{
		apiV1.POST("/devices", r.deviceHandler.RegisterDevice)
		apiV1.GET("/devices", r.deviceHandler.ListDevices)
		apiV1.DELETE("/devices", r.deviceHandler.RemoveDevices)
		apiV1.DELETE("/account", r.deviceHandler.DeleteAccount)
	}

	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(constants.RoleAdmin))
	{
		adminGroup.GET("/deletion-requests/:id", r.adminHandler.GetDeletionRequest)
		adminGroup.PUT("/deletion-requests/:id", r.adminHandler.ApplyDeletionAction)
	}

	e.POST("/internal/deletion-sweep", r.sweepHandler.Sweep, r.sweepAuth.Authenticate)

	// Signature is checked by the webhook use case against the raw body
	e.POST("/webhooks/woocommerce", r.webhookHandler.WooCommerce)
}

// RegisterTestRoutes adds admin test endpoints when enabled in config.
func (r *router) RegisterTestRoutes(e *echo.Echo) {
	if r.config.TestRoutes == nil || !r.config.TestRoutes.Enabled {
		return
	}

	testGroup := e.Group("/admin/notifications")
	testGroup.Use(r.authMiddleware.Authenticate)
	testGroup.Use(r.authMiddleware.RequireRole(constants.RoleAdmin))
	{
		testGroup.POST("/test", r.adminHandler.SendTestNotification)
	}
}
