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

// CheckInHandlerParams holds dependencies for CheckInHandler, injected by Fx.
type CheckInHandlerParams struct {
	fx.In

	CheckInUC usecase.CheckInUsecase
	Logger    *slog.Logger
}

// CheckInHandler holds dependencies for check-in schedule handlers
type CheckInHandler struct {
	checkInUC usecase.CheckInUsecase
	logger    *slog.Logger
}

// NewCheckInHandler is the constructor for CheckInHandler
func NewCheckInHandler(params CheckInHandlerParams) *CheckInHandler {
	return &CheckInHandler{
		checkInUC: params.CheckInUC,
		logger:    params.Logger,
	}
}

// ConfigureScheduleRequest represents the request body for configuring a
// check-in schedule. Durations are given in seconds.
type ConfigureScheduleRequest struct {
	IntervalSeconds    int64 `json:"interval_seconds" validate:"required,min=1"`
	GracePeriodSeconds int64 `json:"grace_period_seconds" validate:"min=0"`
	IsActive           bool  `json:"is_active"`
}

// ConfigureSchedule handles creating or replacing the user's check-in schedule
func (h *CheckInHandler) ConfigureSchedule(c echo.Context) error {
	userID, ok := getUserID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_USER_ID", "Missing or invalid user ID header")
	}

	var req ConfigureScheduleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid schedule input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.ConfigureScheduleInput{
		Interval:    time.Duration(req.IntervalSeconds) * time.Second,
		GracePeriod: time.Duration(req.GracePeriodSeconds) * time.Second,
		IsActive:    req.IsActive,
	}

	schedule, err := h.checkInUC.ConfigureSchedule(c.Request().Context(), userID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, schedule)
}

// CheckIn handles recording a successful check-in
func (h *CheckInHandler) CheckIn(c echo.Context) error {
	userID, ok := getUserID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_USER_ID", "Missing or invalid user ID header")
	}

	schedule, err := h.checkInUC.CheckIn(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, schedule)
}

// GetSchedule handles retrieving the user's check-in schedule
func (h *CheckInHandler) GetSchedule(c echo.Context) error {
	userID, ok := getUserID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_USER_ID", "Missing or invalid user ID header")
	}

	schedule, err := h.checkInUC.GetSchedule(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, schedule)
}
