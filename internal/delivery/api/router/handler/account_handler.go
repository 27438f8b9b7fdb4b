package handler

import (
	"log/slog"
	"net/http"

	"curator/internal/delivery/api/middleware"
	"curator/internal/delivery/api/response"
	"curator/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AccountHandler serves the signed-in account's profile and public branding
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// GetProfile returns the authenticated account
func (h *AccountHandler) GetProfile(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return unauthorized(c)
	}

	account, err := h.accountUC.GetProfile(c.Request().Context(), accountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, account)
}

// UpdateProfile patches the profile and branding of the authenticated account
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return unauthorized(c)
	}

	var req usecase.UpdateProfileInput
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}

	account, err := h.accountUC.UpdateProfile(c.Request().Context(), accountID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, account)
}

// GetPublicBranding returns the branding shown on a published questionnaire
func (h *AccountHandler) GetPublicBranding(c echo.Context) error {
	questionnaireID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID(c, "questionnaire")
	}

	branding, err := h.accountUC.GetPublicBranding(c.Request().Context(), questionnaireID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, branding)
}
