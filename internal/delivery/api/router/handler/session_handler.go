package handler

import (
	"log/slog"
	"net/http"

	"curator/internal/delivery/api/response"
	"curator/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// SessionHandler signs accounts in and refreshes their tokens
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// GoogleSignIn exchanges a Google ID token for a session
func (h *SessionHandler) GoogleSignIn(c echo.Context) error {
	var req usecase.GoogleSignInInput
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}

	out, err := h.sessionUC.GoogleSignIn(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status := http.StatusOK
	if out.IsNewAccount {
		status = http.StatusCreated
	}

	return response.Success(c, status, out)
}

// Refresh issues a new token pair for a valid refresh token
func (h *SessionHandler) Refresh(c echo.Context) error {
	var req usecase.RefreshInput
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}

	tokens, err := h.sessionUC.Refresh(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tokens)
}
