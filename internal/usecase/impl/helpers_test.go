package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"curator/internal/domain/entity"
	"curator/internal/domain/repository"
	"curator/internal/infra/persistence/memory"
	mockRepo "curator/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memoryBackend is a real in-process record store for service tests.
type memoryBackend struct {
	txManager      repository.TransactionManager
	accounts       repository.AccountRepository
	auths          repository.AuthRepository
	questionnaires repository.QuestionnaireRepository
	questions      repository.QuestionRepository
	products       repository.ProductRepository
	responses      repository.ResponseRepository
	devices        repository.DeviceRepository
}

func newMemoryBackend() memoryBackend {
	store := memory.NewStore()

	return memoryBackend{
		txManager:      memory.NewTransactionManager(store),
		accounts:       memory.NewAccountRepository(store),
		auths:          memory.NewAuthRepository(store),
		questionnaires: memory.NewQuestionnaireRepository(store),
		questions:      memory.NewQuestionRepository(store),
		products:       memory.NewProductRepository(store),
		responses:      memory.NewResponseRepository(store),
		devices:        memory.NewDeviceRepository(store),
	}
}

func (b memoryBackend) seedAccount(t *testing.T) *entity.Account {
	t.Helper()

	now := time.Now()
	account := &entity.Account{
		ID:         uuid.New(),
		Email:      uuid.NewString() + "@example.com",
		Name:       "Owner",
		BrandColor: entity.DefaultBrandColor,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	require.NoError(t, b.accounts.Create(context.Background(), account))

	return account
}

func (b memoryBackend) seedQuestionnaire(t *testing.T, accountID uuid.UUID, published bool) *entity.Questionnaire {
	t.Helper()

	now := time.Now()
	questionnaire := &entity.Questionnaire{
		ID:          uuid.New(),
		AccountID:   accountID,
		Title:       "Cheese finder",
		IsPublished: published,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, b.questionnaires.CreateQuestionnaire(context.Background(), questionnaire))

	return questionnaire
}

func (b memoryBackend) seedProduct(t *testing.T, accountID uuid.UUID, name string, tags ...string) *entity.Product {
	t.Helper()

	product := &entity.Product{
		ID:        uuid.New(),
		AccountID: accountID,
		Name:      name,
		Tags:      tags,
		CreatedAt: time.Now(),
	}
	require.NoError(t, b.products.CreateProduct(context.Background(), product))

	return product
}

// expectExecute runs the transaction callback against a mocked repository factory.
func expectExecute(t *testing.T, txManager *mockRepo.MockTransactionManager, setup func(factory *mockRepo.MockRepositoryFactory)) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		})
}

func strPtr(s string) *string {
	return &s
}

func boolPtr(b bool) *bool {
	return &b
}
