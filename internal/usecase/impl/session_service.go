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
	"curator/internal/domain/service"
	"curator/internal/errors"
	"curator/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const tokenTypeBearer = "Bearer"

type sessionService struct {
	txManager         repository.TransactionManager
	accountRepo       repository.AccountRepository
	tokenService      service.TokenService
	googleAuthService service.IdentityVerifier
	logger            *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	TxManager         repository.TransactionManager
	AccountRepo       repository.AccountRepository
	TokenService      service.TokenService
	GoogleAuthService service.IdentityVerifier
	Logger            *slog.Logger
}

// NewSessionService creates the sign-in and token renewal service.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		txManager:         params.TxManager,
		accountRepo:       params.AccountRepo,
		tokenService:      params.TokenService,
		googleAuthService: params.GoogleAuthService,
		logger:            params.Logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GoogleSignIn handles account login or creation via Google Sign-In.
func (srv *sessionService) GoogleSignIn(ctx context.Context, input *usecase.GoogleSignInInput) (*usecase.SignInOutput, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Handling Google sign-in")

	// 1. Verify the ID token with Google.
	identity, err := srv.googleAuthService.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		srv.log(ctx).Warn("Google ID token rejected", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrOAuthTokenInvalid, err.Error())
	}

	// 2. Find or create the account.
	var (
		account *entity.Account
		created bool
	)
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		account, created, err = srv.findOrCreateGoogleAccount(ctx, repoFactory, identity)

		return err
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute Google sign-in transaction", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute Google sign-in transaction")
	}

	// 3. Issue tokens.
	tokens, err := srv.issueTokens(account.ID)
	if err != nil {
		return nil, err
	}

	return &usecase.SignInOutput{
		Account:      account,
		Tokens:       tokens,
		IsNewAccount: created,
	}, nil
}

// findOrCreateGoogleAccount resolves the provider identity to an account. An account that
// already uses the same email is linked instead of duplicated.
func (srv *sessionService) findOrCreateGoogleAccount(ctx context.Context, repoFactory repository.RepositoryFactory, identity *service.VerifiedIdentity) (*entity.Account, bool, error) {
	authRepo := repoFactory.NewAuthRepository()
	accountRepo := repoFactory.NewAccountRepository()

	authRecord, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeGoogle, identity.Subject)
	if err != nil && !errors.Is(err, repository.ErrAuthNotFound) {
		return nil, false, errors.Wrap(err, "failed to find authentication")
	}

	if err == nil {
		srv.log(ctx).Info("Found existing Google account", slog.String("account_id", authRecord.AccountID.String()))

		account, err := accountRepo.FindByID(ctx, authRecord.AccountID)
		if err != nil {
			return nil, false, errors.Wrap(err, "failed to find account by id for google auth")
		}

		return account, false, nil
	}

	account, err := accountRepo.FindByEmail(ctx, identity.Email)
	switch {
	case err == nil:
		srv.log(ctx).Info("Linking Google identity to existing account", slog.String("account_id", account.ID.String()))
	case errors.Is(err, repository.ErrAccountNotFound):
		account, err = srv.createGoogleAccount(ctx, accountRepo, identity)
		if err != nil {
			return nil, false, err
		}
	default:
		return nil, false, errors.Wrap(err, "failed to find account by email")
	}

	newAuth := &entity.Authentication{
		ID:             uuid.New(),
		AccountID:      account.ID,
		Provider:       entity.ProviderTypeGoogle,
		ProviderUserID: identity.Subject,
		CreatedAt:      time.Now(),
	}
	if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
		return nil, false, errors.Wrap(err, "failed to create Google authentication")
	}

	return account, true, nil
}

func (srv *sessionService) createGoogleAccount(ctx context.Context, accountRepo repository.AccountRepository, identity *service.VerifiedIdentity) (*entity.Account, error) {
	srv.log(ctx).Info("Google account not found, creating new account", slog.String("email", identity.Email))

	name := strings.TrimSpace(identity.Name)
	if name == "" {
		name, _, _ = strings.Cut(identity.Email, "@")
	}

	now := time.Now()
	account := &entity.Account{
		ID:         uuid.New(),
		Email:      strings.ToLower(identity.Email),
		Name:       name,
		BrandColor: entity.DefaultBrandColor,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if identity.PictureURL != "" {
		logo := identity.PictureURL
		account.LogoURL = &logo
	}

	if err := accountRepo.Create(ctx, account); err != nil {
		return nil, errors.Wrap(domainerrors.ErrAccountCreationFailed, err.Error())
	}

	return account, nil
}

// Refresh validates a refresh token and issues a fresh token pair.
func (srv *sessionService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.SessionTokens, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		srv.log(ctx).Warn("Refresh token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	// Tokens of deleted accounts stay signed but must stop working.
	if _, err := srv.accountRepo.FindByID(ctx, claims.AccountID); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	return srv.issueTokens(claims.AccountID)
}

func (srv *sessionService) issueTokens(accountID uuid.UUID) (*usecase.SessionTokens, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(accountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.SessionTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    tokenTypeBearer,
		ExpiresIn:    int64(srv.tokenService.GetAccessTokenDuration().Seconds()),
	}, nil
}
