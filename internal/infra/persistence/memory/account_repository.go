package memory

import (
	"context"
	"strings"

	"curator/internal/domain/entity"
	"curator/internal/domain/repository"

	"github.com/google/uuid"
)

type accountRepository struct {
	a access
}

// NewAccountRepository returns an AccountRepository backed by store.
func NewAccountRepository(store *Store) repository.AccountRepository {
	return &accountRepository{a: access{store: store}}
}

func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var out *entity.Account
	err := repo.a.read(ctx, func(st *state) error {
		rec, ok := st.accounts[id]
		if !ok {
			return repository.ErrAccountNotFound
		}
		out = copyAccount(rec.value)

		return nil
	})

	return out, err
}

func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var out *entity.Account
	err := repo.a.read(ctx, func(st *state) error {
		id, ok := st.accountEmails[strings.ToLower(email)]
		if !ok {
			return repository.ErrAccountNotFound
		}
		out = copyAccount(st.accounts[id].value)

		return nil
	})

	return out, err
}

func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	return repo.a.write(ctx, func(st *state) error {
		email := strings.ToLower(account.Email)
		if _, exists := st.accounts[account.ID]; exists {
			return repository.ErrDuplicateAccount
		}
		if _, exists := st.accountEmails[email]; exists {
			return repository.ErrDuplicateAccount
		}

		st.accounts[account.ID] = record[entity.Account]{seq: st.nextSeq(), value: *copyAccount(*account)}
		st.accountEmails[email] = account.ID

		return nil
	})
}

func (repo *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	return repo.a.write(ctx, func(st *state) error {
		rec, ok := st.accounts[account.ID]
		if !ok {
			return repository.ErrAccountNotFound
		}

		updated := rec.value
		updated.Name = account.Name
		updated.CompanyName = clonePtr(account.CompanyName)
		updated.LogoURL = clonePtr(account.LogoURL)
		updated.BrandColor = account.BrandColor
		updated.UpdatedAt = account.UpdatedAt
		st.accounts[account.ID] = record[entity.Account]{seq: rec.seq, value: updated}

		return nil
	})
}

type authRepository struct {
	a access
}

// NewAuthRepository returns an AuthRepository backed by store.
func NewAuthRepository(store *Store) repository.AuthRepository {
	return &authRepository{a: access{store: store}}
}

func (repo *authRepository) CreateAuthentication(ctx context.Context, auth *entity.Authentication) error {
	return repo.a.write(ctx, func(st *state) error {
		if _, ok := st.accounts[auth.AccountID]; !ok {
			return repository.ErrAccountNotFound
		}
		key := authKey{provider: auth.Provider, providerUserID: auth.ProviderUserID}
		if _, exists := st.auths[key]; exists {
			return repository.ErrDuplicateAuthentication
		}
		st.auths[key] = record[entity.Authentication]{seq: st.nextSeq(), value: *auth}

		return nil
	})
}

func (repo *authRepository) FindAuthentication(ctx context.Context, provider entity.ProviderType, providerUserID string) (*entity.Authentication, error) {
	var out *entity.Authentication
	err := repo.a.read(ctx, func(st *state) error {
		rec, ok := st.auths[authKey{provider: provider, providerUserID: providerUserID}]
		if !ok {
			return repository.ErrAuthNotFound
		}
		auth := rec.value
		out = &auth

		return nil
	})

	return out, err
}
