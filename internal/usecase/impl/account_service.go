package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "curator/internal/delivery/context"
	"curator/internal/domain/entity"
	domainerrors "curator/internal/domain/errors"
	"curator/internal/domain/repository"
	"curator/internal/errors"
	"curator/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type accountService struct {
	txManager         repository.TransactionManager
	accountRepo       repository.AccountRepository
	questionnaireRepo repository.QuestionnaireRepository
	logger            *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager         repository.TransactionManager
	AccountRepo       repository.AccountRepository
	QuestionnaireRepo repository.QuestionnaireRepository
	Logger            *slog.Logger
}

// NewAccountService creates the account profile service.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:         params.TxManager,
		accountRepo:       params.AccountRepo,
		questionnaireRepo: params.QuestionnaireRepo,
		logger:            params.Logger,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *accountService) GetProfile(ctx context.Context, accountID uuid.UUID) (*entity.Account, error) {
	return findAccount(ctx, srv.accountRepo, accountID)
}

// UpdateProfile patches name and branding. Empty CompanyName or LogoURL clear them.
func (srv *accountService) UpdateProfile(ctx context.Context, accountID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.Account, error) {
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
	if input.BrandColor != nil && !entity.IsValidBrandColor(*input.BrandColor) {
		return nil, validationError("brand_color must be in #RRGGBB form")
	}
	logoURL, err := optionalURL(input.LogoURL, "logo_url")
	if err != nil {
		return nil, err
	}

	var updated *entity.Account
	err = srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		repo := txRepoFactory.NewAccountRepository()

		account, err := findAccount(ctx, repo, accountID)
		if err != nil {
			return err
		}

		if name != nil {
			account.Name = *name
		}
		if input.CompanyName != nil {
			account.CompanyName = trimmedOrNil(input.CompanyName)
		}
		if input.LogoURL != nil {
			account.LogoURL = logoURL
		}
		if input.BrandColor != nil {
			account.BrandColor = strings.ToUpper(*input.BrandColor)
		}
		account.UpdatedAt = time.Now()

		if err := repo.Update(ctx, account); err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrAccountNotFound
			}

			return errors.Wrap(err, "failed to update account")
		}
		updated = account

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Account profile updated", slog.String("account_id", accountID.String()))

	return updated, nil
}

// GetPublicBranding exposes the owner's branding without its identity.
func (srv *accountService) GetPublicBranding(ctx context.Context, questionnaireID uuid.UUID) (*usecase.Branding, error) {
	questionnaire, err := findPublishedQuestionnaire(ctx, srv.questionnaireRepo, questionnaireID)
	if err != nil {
		return nil, err
	}

	account, err := srv.accountRepo.FindByID(ctx, questionnaire.AccountID)
	if err != nil {
		// The owner is gone, so the questionnaire effectively is too.
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrQuestionnaireNotFound
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	return &usecase.Branding{
		CompanyName: account.CompanyName,
		LogoURL:     account.LogoURL,
		BrandColor:  account.BrandColor,
	}, nil
}

func findAccount(ctx context.Context, repo repository.AccountRepository, accountID uuid.UUID) (*entity.Account, error) {
	account, err := repo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	return account, nil
}
