package impl

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"curator/config"
	deliverycontext "curator/internal/delivery/context"
	"curator/internal/domain/entity"
	domainerrors "curator/internal/domain/errors"
	"curator/internal/domain/repository"
	"curator/internal/domain/service"
	"curator/internal/domain/tenant"
	"curator/internal/errors"
	"curator/internal/usecase"
	"curator/internal/util"

	"github.com/google/uuid"
	gommonbytes "github.com/labstack/gommon/bytes"
	"go.uber.org/fx"
)

const defaultMaxImageSize = 5 << 20

type productService struct {
	txManager    repository.TransactionManager
	productRepo  repository.ProductRepository
	imageStorage service.ImageStorage
	maxImageSize int64
	logger       *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	Config       *config.Config
	TxManager    repository.TransactionManager
	ProductRepo  repository.ProductRepository
	ImageStorage service.ImageStorage
	Logger       *slog.Logger
}

// NewProductService creates the product catalog service.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	maxImageSize := int64(defaultMaxImageSize)
	if params.Config != nil && params.Config.Storage != nil && params.Config.Storage.MaxImageSize != "" {
		if n, err := gommonbytes.Parse(params.Config.Storage.MaxImageSize); err == nil && n > 0 {
			maxImageSize = n
		} else {
			params.Logger.Warn("Invalid storage.maxImageSize, using default",
				slog.String("value", params.Config.Storage.MaxImageSize),
				slog.String("default", util.FormatBytes(maxImageSize)),
			)
		}
	}

	return &productService{
		txManager:    params.TxManager,
		productRepo:  params.ProductRepo,
		imageStorage: params.ImageStorage,
		maxImageSize: maxImageSize,
		logger:       params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns the account's whole catalog, newest first.
func (srv *productService) List(ctx context.Context, accountID uuid.UUID) ([]*entity.Product, error) {
	products, err := srv.productRepo.FindProductsByAccount(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

func (srv *productService) Create(ctx context.Context, accountID uuid.UUID, input *usecase.CreateProductInput) (*entity.Product, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, validationError("name must not be blank")
	}
	imageURL, err := optionalURL(input.ImageURL, "image_url")
	if err != nil {
		return nil, err
	}

	product := &entity.Product{
		ID:          uuid.New(),
		AccountID:   accountID,
		Name:        name,
		Description: trimmedOrNil(input.Description),
		ImageURL:    imageURL,
		Tags:        normalizeTags(input.Tags),
		CreatedAt:   time.Now(),
	}

	if err := srv.productRepo.CreateProduct(ctx, product); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created",
		slog.String("product_id", product.ID.String()),
		slog.Int("tags", len(product.Tags)),
	)

	return product, nil
}

func (srv *productService) Update(ctx context.Context, accountID, id uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	var name *string
	if input.Name != nil {
		n := strings.TrimSpace(*input.Name)
		if n == "" {
			return nil, validationError("name must not be blank")
		}
		name = &n
	}
	imageURL, err := optionalURL(input.ImageURL, "image_url")
	if err != nil {
		return nil, err
	}

	var updated *entity.Product
	err = srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		repo := txRepoFactory.NewProductRepository()

		product, err := findOwnedProduct(ctx, repo, accountID, id)
		if err != nil {
			return err
		}

		if name != nil {
			product.Name = *name
		}
		if input.Description != nil {
			product.Description = trimmedOrNil(input.Description)
		}
		if input.ImageURL != nil {
			product.ImageURL = imageURL
		}
		if input.Tags != nil {
			product.Tags = normalizeTags(*input.Tags)
		}

		if err := repo.UpdateProduct(ctx, product); err != nil {
			return errors.Wrap(err, "failed to update product")
		}
		updated = product

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes the product and, when it points at our storage, its image.
func (srv *productService) Delete(ctx context.Context, accountID, id uuid.UUID) error {
	var imageURL *string
	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		repo := txRepoFactory.NewProductRepository()

		product, err := findOwnedProduct(ctx, repo, accountID, id)
		if err != nil {
			return err
		}

		if err := repo.DeleteProduct(ctx, id); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to delete product")
		}
		imageURL = product.ImageURL

		return nil
	})
	if err != nil {
		return err
	}

	srv.removeStoredImage(ctx, imageURL)

	return nil
}

// UploadImage validates and stores an image, then points the product at it.
func (srv *productService) UploadImage(ctx context.Context, accountID, id uuid.UUID, input *usecase.UploadImageInput) (*entity.Product, error) {
	if input == nil || input.Body == nil {
		return nil, validationError("image file is required")
	}

	// Reject foreign products before reading the body.
	if _, err := findOwnedProduct(ctx, srv.productRepo, accountID, id); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(io.LimitReader(input.Body, srv.maxImageSize+1))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read image")
	}
	if len(data) == 0 {
		return nil, validationError("image file is empty")
	}
	if int64(len(data)) > srv.maxImageSize {
		return nil, validationError("image exceeds " + util.FormatBytes(srv.maxImageSize))
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return nil, validationError("file is not an image")
	}

	checksum := util.Checksum(data)
	key := "products/" + id.String() + "/" + checksum[:16] + util.ImageExtension(contentType, input.Filename)

	url, err := srv.imageStorage.Upload(ctx, key, contentType, bytes.NewReader(data))
	if err != nil {
		srv.log(ctx).Error("Failed to store product image",
			slog.String("product_id", id.String()),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(domainerrors.ErrImageUploadFailed, err.Error())
	}

	var (
		updated  *entity.Product
		previous *string
	)
	err = srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		repo := txRepoFactory.NewProductRepository()

		product, err := findOwnedProduct(ctx, repo, accountID, id)
		if err != nil {
			return err
		}

		previous = product.ImageURL
		product.ImageURL = &url

		if err := repo.UpdateProduct(ctx, product); err != nil {
			return errors.Wrap(err, "failed to update product image")
		}
		updated = product

		return nil
	})
	if err != nil {
		if delErr := srv.imageStorage.Delete(ctx, key); delErr != nil {
			srv.log(ctx).Warn("Failed to remove orphaned image", slog.String("key", key), slog.Any("error", delErr))
		}

		return nil, err
	}

	if previous != nil && *previous != url {
		srv.removeStoredImage(ctx, previous)
	}

	srv.log(ctx).Info("Product image stored",
		slog.String("product_id", id.String()),
		slog.String("key", key),
		slog.String("size", util.FormatBytes(int64(len(data)))),
	)

	return updated, nil
}

// removeStoredImage deletes an image we stored. External URLs are left alone.
func (srv *productService) removeStoredImage(ctx context.Context, imageURL *string) {
	if imageURL == nil {
		return
	}

	key, ok := srv.imageStorage.KeyFromURL(*imageURL)
	if !ok {
		return
	}

	if err := srv.imageStorage.Delete(ctx, key); err != nil {
		srv.log(ctx).Warn("Failed to delete product image", slog.String("key", key), slog.Any("error", err))
	}
}

// findOwnedProduct loads a product under a row lock and runs the tenant guard on it.
func findOwnedProduct(ctx context.Context, repo repository.ProductRepository, accountID, id uuid.UUID) (*entity.Product, error) {
	product, err := repo.FindProductByIDForUpdate(ctx, id)
	if err != nil && !errors.Is(err, repository.ErrProductNotFound) {
		return nil, errors.Wrap(err, "failed to find product")
	}

	owned, err := tenant.Authorize(accountID, product)
	if err != nil {
		return nil, guardError(err, domainerrors.ErrProductNotFound)
	}

	return owned, nil
}

// normalizeTags trims tags and drops blank ones. Case is kept as entered.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if t := strings.TrimSpace(tag); t != "" {
			out = append(out, t)
		}
	}

	return out
}
