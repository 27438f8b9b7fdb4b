package impl

import (
	"context"
	"testing"

	domainerrors "curator/internal/domain/errors"
	"curator/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestAccountService(backend memoryBackend) usecase.AccountUsecase {
	return NewAccountService(AccountServiceParams{
		TxManager:         backend.txManager,
		AccountRepo:       backend.accounts,
		QuestionnaireRepo: backend.questionnaires,
		Logger:            newDiscardLogger(),
	})
}

func TestAccountService_UpdateProfile(t *testing.T) {
	backend := newMemoryBackend()
	service := createTestAccountService(backend)
	ctx := context.Background()
	account := backend.seedAccount(t)

	updated, err := service.UpdateProfile(ctx, account.ID, &usecase.UpdateProfileInput{
		Name:        strPtr(" Jane "),
		CompanyName: strPtr("Fromagerie"),
		LogoURL:     strPtr("https://example.com/logo.png"),
		BrandColor:  strPtr("#10b981"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane", updated.Name)
	assert.Equal(t, "#10B981", updated.BrandColor)
	require.NotNil(t, updated.CompanyName)
	assert.Equal(t, "Fromagerie", *updated.CompanyName)

	profile, err := service.GetProfile(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane", profile.Name)
	assert.Equal(t, account.Email, profile.Email)

	t.Run("empty strings clear branding", func(t *testing.T) {
		cleared, err := service.UpdateProfile(ctx, account.ID, &usecase.UpdateProfileInput{
			CompanyName: strPtr(""),
			LogoURL:     strPtr(""),
		})
		require.NoError(t, err)
		assert.Nil(t, cleared.CompanyName)
		assert.Nil(t, cleared.LogoURL)
		assert.Equal(t, "#10B981", cleared.BrandColor)
	})

	t.Run("invalid input", func(t *testing.T) {
		inputs := []*usecase.UpdateProfileInput{
			{BrandColor: strPtr("#FFF")},
			{BrandColor: strPtr("orange")},
			{Name: strPtr("   ")},
			{LogoURL: strPtr("not a url")},
		}
		for _, input := range inputs {
			_, err := service.UpdateProfile(ctx, account.ID, input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		}
	})

	t.Run("unknown account", func(t *testing.T) {
		_, err := service.UpdateProfile(ctx, uuid.New(), &usecase.UpdateProfileInput{Name: strPtr("Ghost")})
		assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)

		_, err = service.GetProfile(ctx, uuid.New())
		assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
	})
}

func TestAccountService_GetPublicBranding(t *testing.T) {
	backend := newMemoryBackend()
	service := createTestAccountService(backend)
	ctx := context.Background()
	account := backend.seedAccount(t)
	draft := backend.seedQuestionnaire(t, account.ID, false)
	live := backend.seedQuestionnaire(t, account.ID, true)

	_, err := service.UpdateProfile(ctx, account.ID, &usecase.UpdateProfileInput{CompanyName: strPtr("Fromagerie")})
	require.NoError(t, err)

	branding, err := service.GetPublicBranding(ctx, live.ID)
	require.NoError(t, err)
	assert.Equal(t, "#F59E0B", branding.BrandColor)
	require.NotNil(t, branding.CompanyName)
	assert.Equal(t, "Fromagerie", *branding.CompanyName)
	assert.Nil(t, branding.LogoURL)

	_, err = service.GetPublicBranding(ctx, draft.ID)
	assert.ErrorIs(t, err, domainerrors.ErrQuestionnaireNotFound)
}
