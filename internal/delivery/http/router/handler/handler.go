// Package handler contains the HTTP request handlers for the API surface.
package handler

import (
	"net/http"

	"lifeline/internal/delivery/http/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXUserID identifies the acting user. The gateway in front of this
// service authenticates the device and forwards the user ID in this header.
const HeaderXUserID = "X-User-Id"

// HealthCheck reports service liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// getUserID extracts the acting user's ID from the request headers.
func getUserID(c echo.Context) (uuid.UUID, bool) {
	userID, err := uuid.Parse(c.Request().Header.Get(HeaderXUserID))
	if err != nil {
		return uuid.Nil, false
	}

	return userID, true
}
