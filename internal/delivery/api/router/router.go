// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tidewise/config"
	"tidewise/internal/delivery/api/middleware"
	"tidewise/internal/delivery/api/router/handler"
	"tidewise/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	FleetHandler        *handler.FleetHandler
	DistressHandler     *handler.DistressHandler
	NotificationHandler *handler.NotificationHandler
	DeviceHandler       *handler.DeviceHandler
	ConditionsHandler   *handler.ConditionsHandler
	NavigationHandler   *handler.NavigationHandler
	VoiceHandler        *handler.VoiceHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	fleetHandler        *handler.FleetHandler
	distressHandler     *handler.DistressHandler
	notificationHandler *handler.NotificationHandler
	deviceHandler       *handler.DeviceHandler
	conditionsHandler   *handler.ConditionsHandler
	navigationHandler   *handler.NavigationHandler
	voiceHandler        *handler.VoiceHandler
	authMiddleware      *middleware.AuthMiddleware
	config              *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		fleetHandler:        params.FleetHandler,
		distressHandler:     params.DistressHandler,
		notificationHandler: params.NotificationHandler,
		deviceHandler:       params.DeviceHandler,
		conditionsHandler:   params.ConditionsHandler,
		navigationHandler:   params.NavigationHandler,
		voiceHandler:        params.VoiceHandler,
		authMiddleware:      params.AuthMiddleware,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	if r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(promhttp.Handler()))
	}

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
	}

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication
	apiV1.GET("/me", r.authHandler.Me)

	boatsGroup := apiV1.Group("/boats")
	{
		boatsGroup.GET("", r.fleetHandler.ListBoats)
		boatsGroup.PUT("/:id/position", r.fleetHandler.UpdatePosition)
	}

	sosGroup := apiV1.Group("/sos")
	{
		sosGroup.POST("", r.distressHandler.Submit)
		sosGroup.GET("", r.distressHandler.List)
		sosGroup.GET("/nearby", r.distressHandler.Nearby)

		// Rescue coordination (require authority role)
		requireAuthority := r.authMiddleware.RequireRole(entity.RoleAuthority)
		sosGroup.POST("/flush", r.distressHandler.Flush, requireAuthority)
		sosGroup.GET("/:id/qr", r.distressHandler.QRCode, requireAuthority)
	}

	notificationsGroup := apiV1.Group("/notifications")
	{
		notificationsGroup.GET("", r.notificationHandler.List)
		notificationsGroup.DELETE("", r.notificationHandler.Clear)
	}

	conditionsGroup := apiV1.Group("/conditions")
	{
		conditionsGroup.GET("", r.conditionsHandler.Current)
		conditionsGroup.GET("/heatmap", r.conditionsHandler.HeatMap)
		conditionsGroup.POST("/advisory", r.conditionsHandler.Advisory)
	}

	zonesGroup := apiV1.Group("/zones")
	{
		zonesGroup.GET("", r.navigationHandler.Zones)
		zonesGroup.GET("/check", r.navigationHandler.CheckPosition)
	}
	apiV1.GET("/harbors", r.navigationHandler.Harbors)
	apiV1.POST("/routes", r.navigationHandler.PlanRoute)

	apiV1.GET("/voice/:key", r.voiceHandler.Phrase)

	apiV1.POST("/devices", r.deviceHandler.RegisterDevice)

	// Authority dashboard (requires authority role)
	authorityGroup := apiV1.Group("/authority")
	authorityGroup.Use(r.authMiddleware.RequireRole(entity.RoleAuthority))
	{
		authorityGroup.GET("/stats", r.fleetHandler.Stats)
	}
}
