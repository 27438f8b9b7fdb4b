package usecase

import (
	"context"
	"io"

	"curator/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProductInput is the payload for a new catalog product.
type CreateProductInput struct {
	Name        string   `json:"name" validate:"required,max=200"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	ImageURL    *string  `json:"image_url,omitempty" validate:"omitempty,max=2048"`
	Tags        []string `json:"tags" validate:"omitempty,dive,max=100"`
}

// UpdateProductInput patches a product. Nil fields are left unchanged, an empty ImageURL clears it.
type UpdateProductInput struct {
	Name        *string   `json:"name,omitempty" validate:"omitempty,max=200"`
	Description *string   `json:"description,omitempty" validate:"omitempty,max=2000"`
	ImageURL    *string   `json:"image_url,omitempty" validate:"omitempty,max=2048"`
	Tags        *[]string `json:"tags,omitempty" validate:"omitempty,dive,max=100"`
}

// UploadImageInput carries an uploaded product image.
type UploadImageInput struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// ProductUsecase manages an account's product catalog.
type ProductUsecase interface {
	List(ctx context.Context, accountID uuid.UUID) ([]*entity.Product, error)
	Create(ctx context.Context, accountID uuid.UUID, input *CreateProductInput) (*entity.Product, error)
	Update(ctx context.Context, accountID, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error)
	Delete(ctx context.Context, accountID, id uuid.UUID) error
	// UploadImage stores the image and points the product's ImageURL at it.
	UploadImage(ctx context.Context, accountID, id uuid.UUID, input *UploadImageInput) (*entity.Product, error)
}
