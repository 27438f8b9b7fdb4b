// Package memory is an in-process record store. It keeps every record in maps guarded by
// a single RWMutex and is meant for development, demos and tests.
package memory

import (
	"context"
	"maps"
	"slices"
	"sync"

	"curator/internal/domain/entity"
	"curator/internal/domain/repository"

	"github.com/google/uuid"
)

// record pairs a stored value with its insertion sequence, used to break ordering ties.
type record[T any] struct {
	seq   uint64
	value T
}

type authKey struct {
	provider       entity.ProviderType
	providerUserID string
}

// state is the full data set. Stored values are private copies and are replaced,
// never mutated, so a shallow clone of the maps is a consistent snapshot.
type state struct {
	seq            uint64
	accounts       map[uuid.UUID]record[entity.Account]
	accountEmails  map[string]uuid.UUID
	auths          map[authKey]record[entity.Authentication]
	questionnaires map[uuid.UUID]record[entity.Questionnaire]
	questions      map[uuid.UUID]record[entity.Question]
	products       map[uuid.UUID]record[entity.Product]
	responses      map[uuid.UUID]record[entity.Response]
	devices        map[uuid.UUID]record[entity.Device]
}

func newState() *state {
	return &state{
		accounts:       map[uuid.UUID]record[entity.Account]{},
		accountEmails:  map[string]uuid.UUID{},
		auths:          map[authKey]record[entity.Authentication]{},
		questionnaires: map[uuid.UUID]record[entity.Questionnaire]{},
		questions:      map[uuid.UUID]record[entity.Question]{},
		products:       map[uuid.UUID]record[entity.Product]{},
		responses:      map[uuid.UUID]record[entity.Response]{},
		devices:        map[uuid.UUID]record[entity.Device]{},
	}
}

func (st *state) clone() *state {
	return &state{
		seq:            st.seq,
		accounts:       maps.Clone(st.accounts),
		accountEmails:  maps.Clone(st.accountEmails),
		auths:          maps.Clone(st.auths),
		questionnaires: maps.Clone(st.questionnaires),
		questions:      maps.Clone(st.questions),
		products:       maps.Clone(st.products),
		responses:      maps.Clone(st.responses),
		devices:        maps.Clone(st.devices),
	}
}

func (st *state) nextSeq() uint64 {
	st.seq++

	return st.seq
}

// Store holds all records of the memory backend.
type Store struct {
	mu sync.RWMutex
	st *state
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{st: newState()}
}

// access runs fn against the store state. Repositories created inside a transaction
// already hold the write lock and skip locking.
type access struct {
	store *Store
	inTx  bool
}

func (a access) read(ctx context.Context, fn func(st *state) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !a.inTx {
		a.store.mu.RLock()
		defer a.store.mu.RUnlock()
	}

	return fn(a.store.st)
}

func (a access) write(ctx context.Context, fn func(st *state) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !a.inTx {
		a.store.mu.Lock()
		defer a.store.mu.Unlock()
	}

	return fn(a.store.st)
}

// transactionManager serializes transactions on the store's write lock and
// restores the pre-transaction snapshot when the callback fails.
type transactionManager struct {
	store *Store
}

// NewTransactionManager returns a TransactionManager backed by store.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

// Execute runs fn while holding the store's write lock.
func (tm *transactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tm.store.mu.Lock()
	defer tm.store.mu.Unlock()

	snapshot := tm.store.st.clone()
	committed := false
	defer func() {
		if !committed {
			tm.store.st = snapshot
		}
	}()

	if err := fn(&repositoryFactory{a: access{store: tm.store, inTx: true}}); err != nil {
		return err
	}
	committed = true

	return nil
}

type repositoryFactory struct {
	a access
}

func (f *repositoryFactory) NewAccountRepository() repository.AccountRepository {
	return &accountRepository{a: f.a}
}

func (f *repositoryFactory) NewAuthRepository() repository.AuthRepository {
	return &authRepository{a: f.a}
}

func (f *repositoryFactory) NewQuestionnaireRepository() repository.QuestionnaireRepository {
	return &questionnaireRepository{a: f.a}
}

func (f *repositoryFactory) NewQuestionRepository() repository.QuestionRepository {
	return &questionRepository{a: f.a}
}

func (f *repositoryFactory) NewProductRepository() repository.ProductRepository {
	return &productRepository{a: f.a}
}

func (f *repositoryFactory) NewResponseRepository() repository.ResponseRepository {
	return &responseRepository{a: f.a}
}

// sortedValues returns copies of the values in recs, ordered by less.
func sortedValues[T any](recs []record[T], less func(a, b record[T]) int, copyFn func(T) *T) []*T {
	slices.SortFunc(recs, less)

	out := make([]*T, 0, len(recs))
	for _, r := range recs {
		out = append(out, copyFn(r.value))
	}

	return out
}
