package impl

import (
	"context"
	"testing"
	"time"

	"curator/internal/domain/entity"
	domainerrors "curator/internal/domain/errors"
	"curator/internal/domain/repository"
	mockRepo "curator/internal/mocks/repository"
	mockService "curator/internal/mocks/service"
	"curator/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// questionnaireServiceFixtures holds all test dependencies for questionnaire service tests.
type questionnaireServiceFixtures struct {
	service usecase.QuestionnaireUsecase
	backend memoryBackend
	qrCode  *mockService.MockQRCodeService
}

func createTestQuestionnaireService(t *testing.T) questionnaireServiceFixtures {
	backend := newMemoryBackend()
	qrCode := mockService.NewMockQRCodeService(t)

	service := NewQuestionnaireService(QuestionnaireServiceParams{
		TxManager:         backend.txManager,
		QuestionnaireRepo: backend.questionnaires,
		QuestionRepo:      backend.questions,
		QRCodeService:     qrCode,
		Logger:            newDiscardLogger(),
	})

	return questionnaireServiceFixtures{
		service: service,
		backend: backend,
		qrCode:  qrCode,
	}
}

func TestQuestionnaireService_Create(t *testing.T) {
	fx := createTestQuestionnaireService(t)
	ctx := context.Background()
	account := fx.backend.seedAccount(t)

	t.Run("trims title and starts unpublished", func(t *testing.T) {
		q, err := fx.service.Create(ctx, account.ID, &usecase.CreateQuestionnaireInput{
			Title:       "  Cheese finder  ",
			Description: strPtr("Find your cheese"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Cheese finder", q.Title)
		assert.Equal(t, account.ID, q.AccountID)
		assert.False(t, q.IsPublished)
		require.NotNil(t, q.Description)
		assert.Equal(t, "Find your cheese", *q.Description)

		stored, err := fx.backend.questionnaires.FindQuestionnaireByID(ctx, q.ID)
		require.NoError(t, err)
		assert.Equal(t, q.Title, stored.Title)
	})

	t.Run("blank title is a validation error", func(t *testing.T) {
		for _, title := range []string{"", "   "} {
			_, err := fx.service.Create(ctx, account.ID, &usecase.CreateQuestionnaireInput{Title: title})
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed, "title %q", title)
		}
	})

	t.Run("nil input is a validation error", func(t *testing.T) {
		_, err := fx.service.Create(ctx, account.ID, nil)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestQuestionnaireService_List_NewestFirst(t *testing.T) {
	fx := createTestQuestionnaireService(t)
	ctx := context.Background()
	account := fx.backend.seedAccount(t)
	other := fx.backend.seedAccount(t)

	first := fx.backend.seedQuestionnaire(t, account.ID, false)
	second := fx.backend.seedQuestionnaire(t, account.ID, true)
	fx.backend.seedQuestionnaire(t, other.ID, true)

	list, err := fx.service.List(ctx, account.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestQuestionnaireService_TenantIsolation(t *testing.T) {
	fx := createTestQuestionnaireService(t)
	ctx := context.Background()
	owner := fx.backend.seedAccount(t)
	intruder := fx.backend.seedAccount(t)
	q := fx.backend.seedQuestionnaire(t, owner.ID, true)

	_, err := fx.service.Get(ctx, intruder.ID, q.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = fx.service.Update(ctx, intruder.ID, q.ID, &usecase.UpdateQuestionnaireInput{Title: strPtr("Hijacked")})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = fx.service.AddQuestion(ctx, intruder.ID, q.ID, &usecase.AddQuestionInput{Text: "Why?", Type: entity.QuestionTypeText})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = fx.service.ListQuestions(ctx, intruder.ID, q.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = fx.service.ShareQR(ctx, intruder.ID, q.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	err = fx.service.Delete(ctx, intruder.ID, q.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	stored, err := fx.backend.questionnaires.FindQuestionnaireByID(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cheese finder", stored.Title)

	_, err = fx.service.Get(ctx, owner.ID, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrQuestionnaireNotFound)
}

func TestQuestionnaireService_Update(t *testing.T) {
	fx := createTestQuestionnaireService(t)
	ctx := context.Background()
	account := fx.backend.seedAccount(t)
	q := fx.backend.seedQuestionnaire(t, account.ID, false)
	before := q.UpdatedAt

	time.Sleep(time.Millisecond)

	updated, err := fx.service.Update(ctx, account.ID, q.ID, &usecase.UpdateQuestionnaireInput{
		Title:       strPtr(" Wine finder "),
		Description: strPtr("Pairings"),
		IsPublished: boolPtr(true),
	})
	require.NoError(t, err)
	assert.Equal(t, "Wine finder", updated.Title)
	assert.True(t, updated.IsPublished)
	assert.True(t, updated.UpdatedAt.After(before))

	t.Run("empty description clears it", func(t *testing.T) {
		cleared, err := fx.service.Update(ctx, account.ID, q.ID, &usecase.UpdateQuestionnaireInput{Description: strPtr("")})
		require.NoError(t, err)
		assert.Nil(t, cleared.Description)
		assert.Equal(t, "Wine finder", cleared.Title)
	})

	t.Run("blank title is rejected", func(t *testing.T) {
		_, err := fx.service.Update(ctx, account.ID, q.ID, &usecase.UpdateQuestionnaireInput{Title: strPtr("  ")})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("missing questionnaire", func(t *testing.T) {
		_, err := fx.service.Update(ctx, account.ID, uuid.New(), &usecase.UpdateQuestionnaireInput{IsPublished: boolPtr(false)})
		assert.ErrorIs(t, err, domainerrors.ErrQuestionnaireNotFound)
	})
}

func TestQuestionnaireService_AddQuestion(t *testing.T) {
	fx := createTestQuestionnaireService(t)
	ctx := context.Background()
	account := fx.backend.seedAccount(t)
	q := fx.backend.seedQuestionnaire(t, account.ID, false)

	first, err := fx.service.AddQuestion(ctx, account.ID, q.ID, &usecase.AddQuestionInput{
		Text:    "Pick a texture",
		Type:    entity.QuestionTypeMultipleChoice,
		Options: []string{" Creamy ", "", "Crumbly"},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, first.Order)
	assert.Equal(t, []string{"Creamy", "Crumbly"}, first.Options)

	second, err := fx.service.AddQuestion(ctx, account.ID, q.ID, &usecase.AddQuestionInput{
		Text:    "How strong?",
		Type:    entity.QuestionTypeRating,
		Options: []string{"ignored"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, second.Order)
	assert.Empty(t, second.Options)
	assert.NotNil(t, second.Options)

	questions, err := fx.service.ListQuestions(ctx, account.ID, q.ID)
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, first.ID, questions[0].ID)
	assert.Equal(t, second.ID, questions[1].ID)

	tests := []struct {
		name  string
		input *usecase.AddQuestionInput
	}{
		{name: "multiple choice without options", input: &usecase.AddQuestionInput{Text: "Pick", Type: entity.QuestionTypeMultipleChoice}},
		{name: "multiple choice with blank options", input: &usecase.AddQuestionInput{Text: "Pick", Type: entity.QuestionTypeMultipleChoice, Options: []string{" ", ""}}},
		{name: "unknown type", input: &usecase.AddQuestionInput{Text: "Slide", Type: entity.QuestionType("slider")}},
		{name: "missing type", input: &usecase.AddQuestionInput{Text: "Slide"}},
		{name: "blank text", input: &usecase.AddQuestionInput{Text: "  ", Type: entity.QuestionTypeText}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.service.AddQuestion(ctx, account.ID, q.ID, tt.input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}

	count, err := fx.backend.questions.CountQuestionsByQuestionnaire(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestQuestionnaireService_DeleteQuestion(t *testing.T) {
	fx := createTestQuestionnaireService(t)
	ctx := context.Background()
	owner := fx.backend.seedAccount(t)
	intruder := fx.backend.seedAccount(t)
	q := fx.backend.seedQuestionnaire(t, owner.ID, false)

	question, err := fx.service.AddQuestion(ctx, owner.ID, q.ID, &usecase.AddQuestionInput{Text: "Why?", Type: entity.QuestionTypeText})
	require.NoError(t, err)

	err = fx.service.DeleteQuestion(ctx, intruder.ID, question.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = fx.backend.questions.FindQuestionByID(ctx, question.ID)
	require.NoError(t, err, "a forbidden delete must leave the question in place")

	require.NoError(t, fx.service.DeleteQuestion(ctx, owner.ID, question.ID))

	err = fx.service.DeleteQuestion(ctx, owner.ID, question.ID)
	assert.ErrorIs(t, err, domainerrors.ErrQuestionNotFound)
}

func TestQuestionnaireService_Delete_Cascades(t *testing.T) {
	fx := createTestQuestionnaireService(t)
	ctx := context.Background()
	account := fx.backend.seedAccount(t)
	q := fx.backend.seedQuestionnaire(t, account.ID, true)

	_, err := fx.service.AddQuestion(ctx, account.ID, q.ID, &usecase.AddQuestionInput{Text: "Why?", Type: entity.QuestionTypeText})
	require.NoError(t, err)
	require.NoError(t, fx.backend.responses.CreateResponse(ctx, &entity.Response{
		ID:              uuid.New(),
		QuestionnaireID: q.ID,
		Answers:         map[string]string{},
		CreatedAt:       time.Now(),
	}))

	require.NoError(t, fx.service.Delete(ctx, account.ID, q.ID))

	_, err = fx.service.Get(ctx, account.ID, q.ID)
	assert.ErrorIs(t, err, domainerrors.ErrQuestionnaireNotFound)

	count, err := fx.backend.questions.CountQuestionsByQuestionnaire(ctx, q.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	_, total, err := fx.backend.responses.FindResponsesByAccount(ctx, account.ID, repository.NewPageRequest(1, 10))
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestQuestionnaireService_PublicReads(t *testing.T) {
	fx := createTestQuestionnaireService(t)
	ctx := context.Background()
	account := fx.backend.seedAccount(t)
	draft := fx.backend.seedQuestionnaire(t, account.ID, false)
	live := fx.backend.seedQuestionnaire(t, account.ID, true)

	_, err := fx.service.GetPublic(ctx, draft.ID)
	assert.ErrorIs(t, err, domainerrors.ErrQuestionnaireNotFound)

	_, err = fx.service.ListPublicQuestions(ctx, draft.ID)
	assert.ErrorIs(t, err, domainerrors.ErrQuestionnaireNotFound)

	_, err = fx.service.GetPublic(ctx, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrQuestionnaireNotFound)

	got, err := fx.service.GetPublic(ctx, live.ID)
	require.NoError(t, err)
	assert.Equal(t, live.ID, got.ID)

	questions, err := fx.service.ListPublicQuestions(ctx, live.ID)
	require.NoError(t, err)
	assert.Empty(t, questions)
}

func TestQuestionnaireService_ShareQR(t *testing.T) {
	fx := createTestQuestionnaireService(t)
	ctx := context.Background()
	account := fx.backend.seedAccount(t)
	q := fx.backend.seedQuestionnaire(t, account.ID, false)

	fx.qrCode.EXPECT().GenerateShareQR(q.ID).Return([]byte("png"), nil).Once()

	png, err := fx.service.ShareQR(ctx, account.ID, q.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

func TestQuestionnaireService_Update_FindError(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewQuestionnaireService(QuestionnaireServiceParams{
		TxManager: txManager,
		Logger:    newDiscardLogger(),
	})

	ctx := context.Background()
	id := uuid.New()
	dbErr := errors.New("db error")

	expectExecute(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockQuestionnaireRepository(t)
		factory.EXPECT().NewQuestionnaireRepository().Return(repo)
		repo.EXPECT().FindQuestionnaireByIDForUpdate(ctx, id).Return(nil, dbErr)
	})

	_, err := service.Update(ctx, uuid.New(), id, &usecase.UpdateQuestionnaireInput{IsPublished: boolPtr(true)})
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.Contains(t, err.Error(), "failed to find questionnaire")
}
