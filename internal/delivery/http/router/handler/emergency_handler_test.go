package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lifeline/internal/delivery/http/validator"
	"lifeline/internal/domain/entity"
	mockUsecase "lifeline/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func TestEmergencyHandler_CreateAlert(t *testing.T) {
	emergencyUC := mockUsecase.NewMockEmergencyUsecase(t)
	handler := &EmergencyHandler{
		emergencyUC: emergencyUC,
		logger:      slog.Default(),
	}

	userID := uuid.New()
	alert := &entity.Alert{
		ID:     uuid.New(),
		UserID: userID,
		Type:   entity.AlertTypePanic,
		Status: entity.AlertStatusActive,
	}

	emergencyUC.EXPECT().
		CreateAlert(mock.Anything, userID, mock.AnythingOfType("*usecase.CreateAlertInput")).
		Return(alert, nil)

	e := newTestEcho()
	body := `{"type":"panic","location":{"latitude":25.033,"longitude":121.5654}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/alerts", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(HeaderXUserID, userID.String())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.CreateAlert(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), alert.ID.String())
	assert.Contains(t, rec.Body.String(), "request_id")
}

func TestEmergencyHandler_CreateAlert_MissingUserHeader(t *testing.T) {
	emergencyUC := mockUsecase.NewMockEmergencyUsecase(t)
	handler := &EmergencyHandler{
		emergencyUC: emergencyUC,
		logger:      slog.Default(),
	}

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/alerts", strings.NewReader(`{"type":"panic"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.CreateAlert(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_USER_ID")
}

func TestEmergencyHandler_AcknowledgeAlert_InvalidID(t *testing.T) {
	emergencyUC := mockUsecase.NewMockEmergencyUsecase(t)
	handler := &EmergencyHandler{
		emergencyUC: emergencyUC,
		logger:      slog.Default(),
	}

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/alerts/not-a-uuid/acknowledge", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := handler.AcknowledgeAlert(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ID")
}
