package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"curator/internal/delivery/api/response"
	deliverycontext "curator/internal/delivery/context"
	domainerrors "curator/internal/domain/errors"
	"curator/internal/domain/service"
	"curator/internal/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const imageCacheControl = "public, max-age=86400"

// ImageHandlerParams holds dependencies for ImageHandler, injected by Fx.
type ImageHandlerParams struct {
	fx.In

	ImageStorage service.ImageStorage
	Logger       *slog.Logger
}

// ImageHandler streams stored product images
type ImageHandler struct {
	imageStorage service.ImageStorage
	logger       *slog.Logger
}

// NewImageHandler is the constructor for ImageHandler
func NewImageHandler(params ImageHandlerParams) *ImageHandler {
	return &ImageHandler{
		imageStorage: params.ImageStorage,
		logger:       params.Logger,
	}
}

// ServeImage streams the object named by the wildcard path
func (h *ImageHandler) ServeImage(c echo.Context) error {
	key := c.Param("*")
	if key == "" || strings.Contains(key, "..") {
		return response.HandleAppError(c, domainerrors.ErrNotFound)
	}

	ctx := c.Request().Context()
	body, contentType, err := h.imageStorage.Open(ctx, key)
	if errors.Is(err, service.ErrImageNotFound) {
		return response.HandleAppError(c, domainerrors.ErrNotFound)
	}
	if err != nil {
		return errors.WithStack(err)
	}
	defer func() {
		if closeErr := body.Close(); closeErr != nil {
			deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Failed to close image reader",
				slog.String("key", key),
				slog.Any("error", closeErr),
			)
		}
	}()

	c.Response().Header().Set("Cache-Control", imageCacheControl)

	return c.Stream(http.StatusOK, contentType, body)
}
