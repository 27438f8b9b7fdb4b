package repository

import (
	"context"
	"errors"

	"curator/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines persistence operations for an account's product catalog.
type ProductRepository interface {
	// CreateProduct persists a new product.
	CreateProduct(ctx context.Context, product *entity.Product) error

	// FindProductByID retrieves a product by its unique ID.
	FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindProductByIDForUpdate retrieves a product and locks it until the surrounding transaction ends.
	FindProductByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindProductsByAccount lists an account's whole catalog, newest first.
	FindProductsByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Product, error)

	// UpdateProduct saves name, description, image and tags.
	UpdateProduct(ctx context.Context, product *entity.Product) error

	// DeleteProduct removes a product by its ID.
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}
