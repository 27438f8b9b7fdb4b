package impl

import (
	"context"
	"testing"

	"curator/internal/domain/entity"
	domainerrors "curator/internal/domain/errors"
	"curator/internal/domain/repository"
	"curator/internal/domain/service"
	mockService "curator/internal/mocks/service"
	"curator/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// submissionServiceFixtures holds all test dependencies for submission service tests.
type submissionServiceFixtures struct {
	service   usecase.SubmissionUsecase
	backend   memoryBackend
	publisher *mockService.MockEventPublisher
}

func createTestSubmissionService(t *testing.T) submissionServiceFixtures {
	backend := newMemoryBackend()
	publisher := mockService.NewMockEventPublisher(t)

	service := NewSubmissionService(SubmissionServiceParams{
		TxManager:         backend.txManager,
		QuestionnaireRepo: backend.questionnaires,
		ResponseRepo:      backend.responses,
		EventPublisher:    publisher,
		Logger:            newDiscardLogger(),
	})

	return submissionServiceFixtures{
		service:   service,
		backend:   backend,
		publisher: publisher,
	}
}

// seedCheeses stores Feta, Cheddar, Brie and Gouda in that order, so the catalog reads Gouda first.
func (fx submissionServiceFixtures) seedCheeses(t *testing.T, accountID uuid.UUID) (feta, cheddar, brie, gouda *entity.Product) {
	t.Helper()

	feta = fx.backend.seedProduct(t, accountID, "Feta", "salty")
	cheddar = fx.backend.seedProduct(t, accountID, "Cheddar", "sharp", "aged")
	brie = fx.backend.seedProduct(t, accountID, "Brie", "Creamy", "soft")
	gouda = fx.backend.seedProduct(t, accountID, "Gouda", "smoky", "aged")

	return feta, cheddar, brie, gouda
}

func productNames(products []*entity.Product) []string {
	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.Name)
	}

	return names
}

func TestSubmissionService_Submit_Recommends(t *testing.T) {
	fx := createTestSubmissionService(t)
	ctx := context.Background()
	account := fx.backend.seedAccount(t)
	q := fx.backend.seedQuestionnaire(t, account.ID, true)
	fx.seedCheeses(t, account.ID)

	fx.publisher.EXPECT().
		PublishResponseSubmitted(mock.Anything, mock.MatchedBy(func(event *service.ResponseSubmittedEvent) bool {
			return event.QuestionnaireID == q.ID.String() &&
				event.AccountID == account.ID.String() &&
				event.QuestionnaireTitle == q.Title &&
				event.CustomerEmail == "fan@example.com" &&
				event.RecommendationCount == 3
		})).
		Return(nil).
		Once()

	out, err := fx.service.Submit(ctx, q.ID, &usecase.SubmitInput{
		CustomerEmail: strPtr(" fan@example.com "),
		Answers: map[string]string{
			"q1": "Something CREAMY and soft",
			"q2": "aged please",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Brie", "Gouda", "Cheddar"}, productNames(out.Recommendations))
	require.NotNil(t, out.Response.CustomerEmail)
	assert.Equal(t, "fan@example.com", *out.Response.CustomerEmail)
	assert.Equal(t, q.ID, out.Response.QuestionnaireID)

	page, err := fx.service.ListResponses(ctx, account.ID, q.ID, 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, out.Response.ID, page.Items[0].ID)
	assert.Equal(t, "aged please", page.Items[0].Answers["q2"])
}

func TestSubmissionService_Submit_FallbackWhenNothingMatches(t *testing.T) {
	fx := createTestSubmissionService(t)
	ctx := context.Background()
	account := fx.backend.seedAccount(t)
	q := fx.backend.seedQuestionnaire(t, account.ID, true)
	fx.seedCheeses(t, account.ID)

	fx.publisher.EXPECT().PublishResponseSubmitted(mock.Anything, mock.Anything).Return(nil).Once()

	out, err := fx.service.Submit(ctx, q.ID, &usecase.SubmitInput{
		Answers: map[string]string{"q1": "surprise me"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Gouda", "Brie", "Cheddar"}, productNames(out.Recommendations))
	assert.Nil(t, out.Response.CustomerEmail)
}

func TestSubmissionService_Submit_OnlyOwnerCatalog(t *testing.T) {
	fx := createTestSubmissionService(t)
	ctx := context.Background()
	owner := fx.backend.seedAccount(t)
	other := fx.backend.seedAccount(t)
	q := fx.backend.seedQuestionnaire(t, owner.ID, true)

	fx.backend.seedProduct(t, owner.ID, "Feta", "salty")
	fx.backend.seedProduct(t, owner.ID, "Cheddar", "sharp")
	// Newest product overall, and the only one tagged creamy.
	fx.backend.seedProduct(t, other.ID, "Stilton", "creamy", "sharp")

	fx.publisher.EXPECT().PublishResponseSubmitted(mock.Anything, mock.Anything).Return(nil).Twice()

	t.Run("foreign match is not recommended", func(t *testing.T) {
		out, err := fx.service.Submit(ctx, q.ID, &usecase.SubmitInput{
			Answers: map[string]string{"q1": "creamy and sharp"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"Cheddar"}, productNames(out.Recommendations))
	})

	t.Run("fallback head comes from the owner's catalog", func(t *testing.T) {
		out, err := fx.service.Submit(ctx, q.ID, &usecase.SubmitInput{
			Answers: map[string]string{"q1": "creamy"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"Cheddar", "Feta"}, productNames(out.Recommendations))
		for _, p := range out.Recommendations {
			assert.Equal(t, owner.ID, p.AccountID)
		}
	})
}

func TestSubmissionService_Submit_EmptyCatalog(t *testing.T) {
	fx := createTestSubmissionService(t)
	ctx := context.Background()
	account := fx.backend.seedAccount(t)
	q := fx.backend.seedQuestionnaire(t, account.ID, true)

	fx.publisher.EXPECT().PublishResponseSubmitted(mock.Anything, mock.Anything).Return(nil).Once()

	out, err := fx.service.Submit(ctx, q.ID, &usecase.SubmitInput{CustomerEmail: strPtr("  ")})
	require.NoError(t, err)
	assert.NotNil(t, out.Recommendations)
	assert.Empty(t, out.Recommendations)
	assert.NotNil(t, out.Response.Answers)
	assert.Nil(t, out.Response.CustomerEmail)
}

func TestSubmissionService_Submit_PublishFailureIsNotFatal(t *testing.T) {
	fx := createTestSubmissionService(t)
	ctx := context.Background()
	account := fx.backend.seedAccount(t)
	q := fx.backend.seedQuestionnaire(t, account.ID, true)

	fx.publisher.EXPECT().
		PublishResponseSubmitted(mock.Anything, mock.Anything).
		Return(errors.New("broker down")).
		Once()

	out, err := fx.service.Submit(ctx, q.ID, &usecase.SubmitInput{Answers: map[string]string{"q1": "x"}})
	require.NoError(t, err)

	page, err := fx.service.ListResponses(ctx, account.ID, q.ID, 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, out.Response.ID, page.Items[0].ID)
}

func TestSubmissionService_Submit_Rejections(t *testing.T) {
	fx := createTestSubmissionService(t)
	ctx := context.Background()
	account := fx.backend.seedAccount(t)
	draft := fx.backend.seedQuestionnaire(t, account.ID, false)
	live := fx.backend.seedQuestionnaire(t, account.ID, true)

	_, err := fx.service.Submit(ctx, draft.ID, &usecase.SubmitInput{})
	assert.ErrorIs(t, err, domainerrors.ErrQuestionnaireNotFound)

	_, err = fx.service.Submit(ctx, uuid.New(), &usecase.SubmitInput{})
	assert.ErrorIs(t, err, domainerrors.ErrQuestionnaireNotFound)

	_, err = fx.service.Submit(ctx, live.ID, &usecase.SubmitInput{CustomerEmail: strPtr("not-an-email")})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.Submit(ctx, live.ID, nil)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, total, err := fx.backend.responses.FindResponsesByAccount(ctx, account.ID, repository.NewPageRequest(1, 10))
	require.NoError(t, err)
	assert.Zero(t, total, "rejected submissions must not store a response")
}

func TestSubmissionService_ListResponses(t *testing.T) {
	fx := createTestSubmissionService(t)
	ctx := context.Background()
	owner := fx.backend.seedAccount(t)
	intruder := fx.backend.seedAccount(t)
	first := fx.backend.seedQuestionnaire(t, owner.ID, true)
	second := fx.backend.seedQuestionnaire(t, owner.ID, true)
	foreign := fx.backend.seedQuestionnaire(t, intruder.ID, true)

	fx.publisher.EXPECT().PublishResponseSubmitted(mock.Anything, mock.Anything).Return(nil)

	var ids []uuid.UUID
	for _, qid := range []uuid.UUID{first.ID, first.ID, first.ID, second.ID, foreign.ID} {
		out, err := fx.service.Submit(ctx, qid, &usecase.SubmitInput{Answers: map[string]string{"q": "a"}})
		require.NoError(t, err)
		ids = append(ids, out.Response.ID)
	}

	page, err := fx.service.ListResponses(ctx, owner.ID, first.ID, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, page.TotalItems)
	assert.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Items, 2)
	assert.Equal(t, ids[2], page.Items[0].ID)
	assert.Equal(t, ids[1], page.Items[1].ID)
	require.NotNil(t, page.NextPage)
	assert.Equal(t, 2, *page.NextPage)
	assert.Nil(t, page.PrevPage)

	_, err = fx.service.ListResponses(ctx, intruder.ID, first.ID, 1, 10)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	all, err := fx.service.ListAccountResponses(ctx, owner.ID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 4, all.TotalItems)
	assert.Equal(t, ids[3], all.Items[0].ID)
	for _, r := range all.Items {
		assert.NotEqual(t, foreign.ID, r.QuestionnaireID)
	}
}
