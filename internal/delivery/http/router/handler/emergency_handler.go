package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"lifeline/internal/delivery/http/response"
	"lifeline/internal/domain/entity"
	"lifeline/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultHistoryLimit = 50

// EmergencyHandlerParams holds dependencies for EmergencyHandler, injected by Fx.
type EmergencyHandlerParams struct {
	fx.In

	EmergencyUC usecase.EmergencyUsecase
	Logger      *slog.Logger
}

// EmergencyHandler holds dependencies for emergency alert handlers
type EmergencyHandler struct {
	emergencyUC usecase.EmergencyUsecase
	logger      *slog.Logger
}

// NewEmergencyHandler is the constructor for EmergencyHandler
func NewEmergencyHandler(params EmergencyHandlerParams) *EmergencyHandler {
	return &EmergencyHandler{
		emergencyUC: params.EmergencyUC,
		logger:      params.Logger,
	}
}

// CreateAlertRequest represents the request body for opening an alert
type CreateAlertRequest struct {
	Type        string                `json:"type" validate:"required"`
	Location    *AlertLocationRequest `json:"location,omitempty"`
	Description string                `json:"description,omitempty" validate:"max=2000"`
}

// AlertLocationRequest represents the location attached to an alert
type AlertLocationRequest struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
	Accuracy  float64 `json:"accuracy,omitempty" validate:"min=0"`
	Address   string  `json:"address,omitempty"`
}

// ActionRequest carries the identity of whoever performed a lifecycle action,
// plus an optional note recorded on the alert timeline (the cancellation
// reason or the resolution summary).
type ActionRequest struct {
	PerformedBy string `json:"performed_by,omitempty" validate:"max=255"`
	Note        string `json:"note,omitempty" validate:"max=2000"`
}

// CreateAlert handles opening a new emergency alert
func (h *EmergencyHandler) CreateAlert(c echo.Context) error {
	userID, ok := getUserID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_USER_ID", "Missing or invalid user ID header")
	}

	var req CreateAlertRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid alert input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.CreateAlertInput{
		Type:        entity.AlertType(req.Type),
		Description: req.Description,
	}
	if req.Location != nil {
		input.Location = &entity.Location{
			Latitude:  req.Location.Latitude,
			Longitude: req.Location.Longitude,
			Accuracy:  req.Location.Accuracy,
			Address:   req.Location.Address,
		}
	}

	alert, err := h.emergencyUC.CreateAlert(c.Request().Context(), userID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, alert)
}

// GetAlert handles retrieving a single alert
func (h *EmergencyHandler) GetAlert(c echo.Context) error {
	alertID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid alert ID")
	}

	alert, err := h.emergencyUC.GetAlert(c.Request().Context(), alertID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, alert)
}

// AcknowledgeAlert handles marking an alert as seen by a responder
func (h *EmergencyHandler) AcknowledgeAlert(c echo.Context) error {
	alertID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid alert ID")
	}

	var req ActionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid action input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	alert, err := h.emergencyUC.AcknowledgeAlert(c.Request().Context(), alertID, h.actor(c, &req))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, alert)
}

// ResolveAlert handles closing an alert
func (h *EmergencyHandler) ResolveAlert(c echo.Context) error {
	alertID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid alert ID")
	}

	var req ActionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid action input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	alert, err := h.emergencyUC.ResolveAlert(c.Request().Context(), alertID, h.actor(c, &req), req.Note)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, alert)
}

// CancelAlert handles dismissing an alert as a false alarm
func (h *EmergencyHandler) CancelAlert(c echo.Context) error {
	alertID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid alert ID")
	}

	var req ActionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid action input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	alert, err := h.emergencyUC.CancelAlert(c.Request().Context(), alertID, h.actor(c, &req), req.Note)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, alert)
}

// GetActiveAlerts handles retrieving the user's alerts still requiring attention
func (h *EmergencyHandler) GetActiveAlerts(c echo.Context) error {
	userID, ok := getUserID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_USER_ID", "Missing or invalid user ID header")
	}

	alerts, err := h.emergencyUC.GetActiveAlerts(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, alerts)
}

// GetAlertHistory handles retrieving the user's alert history
func (h *EmergencyHandler) GetAlertHistory(c echo.Context) error {
	userID, ok := getUserID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_USER_ID", "Missing or invalid user ID header")
	}

	limit := defaultHistoryLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return response.BadRequest(c, "INVALID_LIMIT", "Limit must be a positive integer")
		}
		limit = parsed
	}

	alerts, err := h.emergencyUC.GetAlertHistory(c.Request().Context(), userID, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, alerts)
}

// actor picks the identity recorded on the alert timeline: the explicit
// performed_by from the body when given, otherwise the acting user's ID.
func (h *EmergencyHandler) actor(c echo.Context, req *ActionRequest) string {
	if req.PerformedBy != "" {
		return req.PerformedBy
	}

	return c.Request().Header.Get(HeaderXUserID)
}
