// Package router contains routing setup for the HTTP delivery.
package router

import (
	"lifeline/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	EmergencyHandler *handler.EmergencyHandler
	LocationHandler  *handler.LocationHandler
	CheckInHandler   *handler.CheckInHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	emergencyHandler *handler.EmergencyHandler
	locationHandler  *handler.LocationHandler
	checkInHandler   *handler.CheckInHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		emergencyHandler: params.EmergencyHandler,
		locationHandler:  params.LocationHandler,
		checkInHandler:   params.CheckInHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// API v1 routes
	apiV1 := e.Group("/api/v1")

	// Emergency alert routes
	alertsGroup := apiV1.Group("/alerts")
	{
		alertsGroup.POST("", r.emergencyHandler.CreateAlert)
		alertsGroup.GET("/active", r.emergencyHandler.GetActiveAlerts)
		alertsGroup.GET("/history", r.emergencyHandler.GetAlertHistory)
		alertsGroup.GET("/:id", r.emergencyHandler.GetAlert)
		alertsGroup.POST("/:id/acknowledge", r.emergencyHandler.AcknowledgeAlert)
		alertsGroup.POST("/:id/resolve", r.emergencyHandler.ResolveAlert)
		alertsGroup.POST("/:id/cancel", r.emergencyHandler.CancelAlert)
	}

	// Location ingestion routes
	locationGroup := apiV1.Group("/location")
	{
		locationGroup.POST("", r.locationHandler.UpdateLocation)
		locationGroup.GET("/latest", r.locationHandler.GetLatestLocation)
	}

	// Check-in schedule routes
	checkInGroup := apiV1.Group("/checkin")
	{
		checkInGroup.PUT("/schedule", r.checkInHandler.ConfigureSchedule)
		checkInGroup.GET("/schedule", r.checkInHandler.GetSchedule)
		checkInGroup.POST("", r.checkInHandler.CheckIn)
	}
}
