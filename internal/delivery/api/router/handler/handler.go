// Package handler implements the HTTP handlers of the API server.
package handler

import (
	"net/http"

	"curator/internal/delivery/api/response"
	domainerrors "curator/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

const (
	errCodeInvalidInput = "INVALID_INPUT"
	errCodeInvalidID    = "INVALID_ID"
)

// HealthCheck reports that the server is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

func unauthorized(c echo.Context) error {
	return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), "Invalid account ID in token")
}

func invalidID(c echo.Context, what string) error {
	return response.BadRequest(c, errCodeInvalidID, "Invalid "+what+" ID")
}

func invalidBody(c echo.Context) error {
	return response.BindingError(c, errCodeInvalidInput, "Invalid request body")
}

func messageResponse(c echo.Context, message string) error {
	return response.Success(c, http.StatusOK, map[string]string{"message": message})
}
