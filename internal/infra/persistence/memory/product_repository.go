package memory

import (
	"context"

	"curator/internal/domain/entity"
	"curator/internal/domain/repository"

	"github.com/google/uuid"
)

type productRepository struct {
	a access
}

// NewProductRepository returns a ProductRepository backed by store.
func NewProductRepository(store *Store) repository.ProductRepository {
	return &productRepository{a: access{store: store}}
}

func (repo *productRepository) CreateProduct(ctx context.Context, product *entity.Product) error {
	return repo.a.write(ctx, func(st *state) error {
		if _, ok := st.accounts[product.AccountID]; !ok {
			return repository.ErrAccountNotFound
		}
		st.products[product.ID] = record[entity.Product]{seq: st.nextSeq(), value: *copyProduct(*product)}

		return nil
	})
}

func (repo *productRepository) FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var out *entity.Product
	err := repo.a.read(ctx, func(st *state) error {
		rec, ok := st.products[id]
		if !ok {
			return repository.ErrProductNotFound
		}
		out = copyProduct(rec.value)

		return nil
	})

	return out, err
}

// FindProductByIDForUpdate needs no row lock: transactions already hold the store's write lock.
func (repo *productRepository) FindProductByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return repo.FindProductByID(ctx, id)
}

func (repo *productRepository) FindProductsByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Product, error) {
	var out []*entity.Product
	err := repo.a.read(ctx, func(st *state) error {
		recs := make([]record[entity.Product], 0)
		for _, rec := range st.products {
			if rec.value.AccountID == accountID {
				recs = append(recs, rec)
			}
		}
		out = sortedValues(recs, newestFirst(func(p entity.Product) int64 { return p.CreatedAt.UnixNano() }), copyProduct)

		return nil
	})

	return out, err
}

func (repo *productRepository) UpdateProduct(ctx context.Context, product *entity.Product) error {
	return repo.a.write(ctx, func(st *state) error {
		rec, ok := st.products[product.ID]
		if !ok {
			return repository.ErrProductNotFound
		}

		updated := *copyProduct(*product)
		updated.AccountID = rec.value.AccountID
		updated.CreatedAt = rec.value.CreatedAt
		st.products[product.ID] = record[entity.Product]{seq: rec.seq, value: updated}

		return nil
	})
}

func (repo *productRepository) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return repo.a.write(ctx, func(st *state) error {
		if _, ok := st.products[id]; !ok {
			return repository.ErrProductNotFound
		}
		delete(st.products, id)

		return nil
	})
}
