// Package persistence selects the record store backend configured by store.driver.
package persistence

import (
	"log/slog"

	"curator/config"
	"curator/internal/domain/constants"
	"curator/internal/domain/repository"
	"curator/internal/errors"
	"curator/internal/infra/persistence/memory"
	"curator/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Repositories exposes every repository of the selected backend to the container
type Repositories struct {
	fx.Out

	TxManager      repository.TransactionManager
	Accounts       repository.AccountRepository
	Auths          repository.AuthRepository
	Questionnaires repository.QuestionnaireRepository
	Questions      repository.QuestionRepository
	Products       repository.ProductRepository
	Responses      repository.ResponseRepository
	Devices        repository.DeviceRepository
}

// Provide builds the repositories for the configured store driver
func Provide(params Params) (Repositories, error) {
	switch params.Config.Store.Driver {
	case constants.StoreDriverMemory:
		params.Logger.Warn("Using in-memory record store, data is lost on restart")

		return newMemoryRepositories(memory.NewStore()), nil
	case constants.StoreDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			TxManager:      postgres.NewTransactionManager(db),
			Accounts:       postgres.NewAccountRepository(db),
			Auths:          postgres.NewAuthRepository(db),
			Questionnaires: postgres.NewQuestionnaireRepository(db),
			Questions:      postgres.NewQuestionRepository(db),
			Products:       postgres.NewProductRepository(db),
			Responses:      postgres.NewResponseRepository(db),
			Devices:        postgres.NewDeviceRepository(db),
		}, nil
	default:
		return Repositories{}, errors.Errorf("unsupported store driver %q", params.Config.Store.Driver)
	}
}

func newMemoryRepositories(store *memory.Store) Repositories {
	return Repositories{
		TxManager:      memory.NewTransactionManager(store),
		Accounts:       memory.NewAccountRepository(store),
		Auths:          memory.NewAuthRepository(store),
		Questionnaires: memory.NewQuestionnaireRepository(store),
		Questions:      memory.NewQuestionRepository(store),
		Products:       memory.NewProductRepository(store),
		Responses:      memory.NewResponseRepository(store),
		Devices:        memory.NewDeviceRepository(store),
	}
}
