package handler

import (
	"log/slog"
	"net/http"
	"time"

	"lifeline/internal/delivery/http/response"
	"lifeline/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// LocationHandler holds dependencies for location-related handlers
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

// UpdateLocationRequest represents a position report from a device
type UpdateLocationRequest struct {
	Latitude     float64   `json:"latitude" validate:"min=-90,max=90"`
	Longitude    float64   `json:"longitude" validate:"min=-180,max=180"`
	Accuracy     float64   `json:"accuracy,omitempty" validate:"min=0"`
	Speed        *float64  `json:"speed,omitempty"`
	Heading      *float64  `json:"heading,omitempty"`
	Altitude     *float64  `json:"altitude,omitempty"`
	BatteryLevel *float64  `json:"battery_level,omitempty"`
	Source       string    `json:"source,omitempty" validate:"omitempty,oneof=gps network manual"`
	Timestamp    time.Time `json:"timestamp,omitempty"`
}

// UpdateLocation handles ingesting a location update
func (h *LocationHandler) UpdateLocation(c echo.Context) error {
	userID, ok := getUserID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_USER_ID", "Missing or invalid user ID header")
	}

	var req UpdateLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.UpdateLocationInput{
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Accuracy:     req.Accuracy,
		Speed:        req.Speed,
		Heading:      req.Heading,
		Altitude:     req.Altitude,
		BatteryLevel: req.BatteryLevel,
		Source:       req.Source,
		Timestamp:    req.Timestamp,
	}

	evaluation, err := h.locationUC.UpdateLocation(c.Request().Context(), userID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, evaluation)
}

// GetLatestLocation handles retrieving the user's most recent location
func (h *LocationHandler) GetLatestLocation(c echo.Context) error {
	userID, ok := getUserID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_USER_ID", "Missing or invalid user ID header")
	}

	sample, err := h.locationUC.GetLatestLocation(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, sample)
}
