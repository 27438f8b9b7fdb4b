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

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler holds dependencies for device-related handlers
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// RegisterDevice handles device registration
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return unauthorized(c)
	}

	var req usecase.DeviceInfo
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, errCodeInvalidInput, "Invalid device input")
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), accountID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, device)
}

// GetAccountDevices handles retrieving the account's active devices
func (h *DeviceHandler) GetAccountDevices(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return unauthorized(c)
	}

	devices, err := h.deviceUC.GetAccountDevices(c.Request().Context(), accountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, devices)
}

// DeactivateDevice handles deactivating a device
func (h *DeviceHandler) DeactivateDevice(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return unauthorized(c)
	}

	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID(c, "device")
	}

	if err := h.deviceUC.DeactivateDevice(c.Request().Context(), accountID, deviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return messageResponse(c, "Device deactivated successfully")
}
