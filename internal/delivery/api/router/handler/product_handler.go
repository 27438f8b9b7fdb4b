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

// ImageFormField is the multipart field carrying a product image.
const ImageFormField = "image"

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler serves the account's product catalog
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

// ListProducts lists the catalog, newest first
func (h *ProductHandler) ListProducts(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return unauthorized(c)
	}

	products, err := h.productUC.List(c.Request().Context(), accountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

// CreateProduct adds a product to the catalog
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return unauthorized(c)
	}

	var req usecase.CreateProductInput
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}

	product, err := h.productUC.Create(c.Request().Context(), accountID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, product)
}

// UpdateProduct patches a product
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID(c, "product")
	}

	var req usecase.UpdateProductInput
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}

	product, err := h.productUC.Update(c.Request().Context(), accountID, id, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// DeleteProduct removes a product and its stored image
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID(c, "product")
	}

	if err := h.productUC.Delete(c.Request().Context(), accountID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return messageResponse(c, "Product deleted successfully")
}

// UploadImage replaces the product image with the multipart "image" file
func (h *ProductHandler) UploadImage(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID(c, "product")
	}

	file, err := c.FormFile(ImageFormField)
	if err != nil {
		return response.BadRequest(c, errCodeInvalidInput, "Multipart field \"image\" is required")
	}

	src, err := file.Open()
	if err != nil {
		return response.BadRequest(c, errCodeInvalidInput, "Unreadable image upload")
	}
	defer src.Close()

	product, err := h.productUC.UploadImage(c.Request().Context(), accountID, id, &usecase.UploadImageInput{
		Filename:    file.Filename,
		ContentType: file.Header.Get(echo.HeaderContentType),
		Body:        src,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}
