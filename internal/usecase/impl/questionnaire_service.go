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
	"curator/internal/domain/tenant"
	"curator/internal/errors"
	"curator/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type questionnaireService struct {
	txManager         repository.TransactionManager
	questionnaireRepo repository.QuestionnaireRepository
	questionRepo      repository.QuestionRepository
	qrCodeService     service.QRCodeService
	logger            *slog.Logger
}

// QuestionnaireServiceParams holds dependencies for QuestionnaireService, injected by Fx.
type QuestionnaireServiceParams struct {
	fx.In

	TxManager         repository.TransactionManager
	QuestionnaireRepo repository.QuestionnaireRepository
	QuestionRepo      repository.QuestionRepository
	QRCodeService     service.QRCodeService
	Logger            *slog.Logger
}

// NewQuestionnaireService creates the questionnaire lifecycle service.
func NewQuestionnaireService(params QuestionnaireServiceParams) usecase.QuestionnaireUsecase {
	return &questionnaireService{
		txManager:         params.TxManager,
		questionnaireRepo: params.QuestionnaireRepo,
		questionRepo:      params.QuestionRepo,
		qrCodeService:     params.QRCodeService,
		logger:            params.Logger,
	}
}

func (srv *questionnaireService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create stores a new, unpublished questionnaire.
func (srv *questionnaireService) Create(ctx context.Context, accountID uuid.UUID, input *usecase.CreateQuestionnaireInput) (*entity.Questionnaire, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, validationError("title must not be blank")
	}

	now := time.Now()
	questionnaire := &entity.Questionnaire{
		ID:          uuid.New(),
		AccountID:   accountID,
		Title:       title,
		Description: trimmedOrNil(input.Description),
		IsPublished: false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := srv.questionnaireRepo.CreateQuestionnaire(ctx, questionnaire); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to create questionnaire")
	}

	srv.log(ctx).Info("Questionnaire created",
		slog.String("questionnaire_id", questionnaire.ID.String()),
		slog.String("account_id", accountID.String()),
	)

	return questionnaire, nil
}

// List returns the account's questionnaires, newest first.
func (srv *questionnaireService) List(ctx context.Context, accountID uuid.UUID) ([]*entity.Questionnaire, error) {
	questionnaires, err := srv.questionnaireRepo.FindQuestionnairesByAccount(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list questionnaires")
	}

	return questionnaires, nil
}

func (srv *questionnaireService) Get(ctx context.Context, accountID, id uuid.UUID) (*entity.Questionnaire, error) {
	return findOwnedQuestionnaire(ctx, srv.questionnaireRepo, accountID, id, false)
}

// Update patches title, description and publish state under a row lock.
func (srv *questionnaireService) Update(ctx context.Context, accountID, id uuid.UUID, input *usecase.UpdateQuestionnaireInput) (*entity.Questionnaire, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	var title *string
	if input.Title != nil {
		t := strings.TrimSpace(*input.Title)
		if t == "" {
			return nil, validationError("title must not be blank")
		}
		title = &t
	}

	var updated *entity.Questionnaire
	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		repo := txRepoFactory.NewQuestionnaireRepository()

		questionnaire, err := findOwnedQuestionnaire(ctx, repo, accountID, id, true)
		if err != nil {
			return err
		}

		if title != nil {
			questionnaire.Title = *title
		}
		if input.Description != nil {
			questionnaire.Description = trimmedOrNil(input.Description)
		}
		if input.IsPublished != nil {
			questionnaire.IsPublished = *input.IsPublished
		}
		questionnaire.UpdatedAt = time.Now()

		if err := repo.UpdateQuestionnaire(ctx, questionnaire); err != nil {
			return errors.Wrap(err, "failed to update questionnaire")
		}
		updated = questionnaire

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes the questionnaire. Questions and responses go with it.
func (srv *questionnaireService) Delete(ctx context.Context, accountID, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		repo := txRepoFactory.NewQuestionnaireRepository()

		if _, err := findOwnedQuestionnaire(ctx, repo, accountID, id, true); err != nil {
			return err
		}

		if err := repo.DeleteQuestionnaire(ctx, id); err != nil {
			if errors.Is(err, repository.ErrQuestionnaireNotFound) {
				return domainerrors.ErrQuestionnaireNotFound
			}

			return errors.Wrap(err, "failed to delete questionnaire")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Questionnaire deleted", slog.String("questionnaire_id", id.String()))

	return nil
}

// AddQuestion appends a question. Its Order is the number of questions already present.
func (srv *questionnaireService) AddQuestion(ctx context.Context, accountID, questionnaireID uuid.UUID, input *usecase.AddQuestionInput) (*entity.Question, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, validationError("text must not be blank")
	}
	if !input.Type.IsValid() {
		return nil, validationError("unknown question type " + input.Type.String())
	}

	options := []string{}
	if input.Type.HasOptions() {
		for _, option := range input.Options {
			if o := strings.TrimSpace(option); o != "" {
				options = append(options, o)
			}
		}
		if len(options) == 0 {
			return nil, validationError("multiple-choice questions need at least one option")
		}
	}

	var question *entity.Question
	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		questionRepo := txRepoFactory.NewQuestionRepository()

		// The parent row lock serializes concurrent appends so Order stays unique.
		if _, err := findOwnedQuestionnaire(ctx, txRepoFactory.NewQuestionnaireRepository(), accountID, questionnaireID, true); err != nil {
			return err
		}

		count, err := questionRepo.CountQuestionsByQuestionnaire(ctx, questionnaireID)
		if err != nil {
			return errors.Wrap(err, "failed to count questions")
		}

		question = &entity.Question{
			ID:              uuid.New(),
			QuestionnaireID: questionnaireID,
			Text:            text,
			Type:            input.Type,
			Options:         options,
			Order:           count,
			CreatedAt:       time.Now(),
		}

		if err := questionRepo.CreateQuestion(ctx, question); err != nil {
			return errors.Wrap(err, "failed to create question")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return question, nil
}

func (srv *questionnaireService) ListQuestions(ctx context.Context, accountID, questionnaireID uuid.UUID) ([]*entity.Question, error) {
	if _, err := findOwnedQuestionnaire(ctx, srv.questionnaireRepo, accountID, questionnaireID, false); err != nil {
		return nil, err
	}

	questions, err := srv.questionRepo.FindQuestionsByQuestionnaire(ctx, questionnaireID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list questions")
	}

	return questions, nil
}

// DeleteQuestion authorizes the question through its questionnaire before removing it.
func (srv *questionnaireService) DeleteQuestion(ctx context.Context, accountID, questionID uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		questionRepo := txRepoFactory.NewQuestionRepository()

		question, err := questionRepo.FindQuestionByID(ctx, questionID)
		if err != nil {
			if errors.Is(err, repository.ErrQuestionNotFound) {
				return domainerrors.ErrQuestionNotFound
			}

			return errors.Wrap(err, "failed to find question")
		}

		parent, err := txRepoFactory.NewQuestionnaireRepository().FindQuestionnaireByIDForUpdate(ctx, question.QuestionnaireID)
		if err != nil && !errors.Is(err, repository.ErrQuestionnaireNotFound) {
			return errors.Wrap(err, "failed to find questionnaire")
		}

		if _, err := tenant.AuthorizeChild(accountID, parent, question); err != nil {
			return guardError(err, domainerrors.ErrQuestionNotFound)
		}

		if err := questionRepo.DeleteQuestion(ctx, questionID); err != nil {
			if errors.Is(err, repository.ErrQuestionNotFound) {
				return domainerrors.ErrQuestionNotFound
			}

			return errors.Wrap(err, "failed to delete question")
		}

		return nil
	})
}

func (srv *questionnaireService) ShareQR(ctx context.Context, accountID, id uuid.UUID) ([]byte, error) {
	if _, err := findOwnedQuestionnaire(ctx, srv.questionnaireRepo, accountID, id, false); err != nil {
		return nil, err
	}

	png, err := srv.qrCodeService.GenerateShareQR(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate share QR code")
	}

	return png, nil
}

// GetPublic hides unpublished questionnaires behind NotFound.
func (srv *questionnaireService) GetPublic(ctx context.Context, id uuid.UUID) (*entity.Questionnaire, error) {
	return findPublishedQuestionnaire(ctx, srv.questionnaireRepo, id)
}

func (srv *questionnaireService) ListPublicQuestions(ctx context.Context, id uuid.UUID) ([]*entity.Question, error) {
	if _, err := findPublishedQuestionnaire(ctx, srv.questionnaireRepo, id); err != nil {
		return nil, err
	}

	questions, err := srv.questionRepo.FindQuestionsByQuestionnaire(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list questions")
	}

	return questions, nil
}

// findOwnedQuestionnaire loads a questionnaire and runs the tenant guard on it.
// forUpdate locks the row for the rest of the surrounding transaction.
func findOwnedQuestionnaire(ctx context.Context, repo repository.QuestionnaireRepository, accountID, id uuid.UUID, forUpdate bool) (*entity.Questionnaire, error) {
	find := repo.FindQuestionnaireByID
	if forUpdate {
		find = repo.FindQuestionnaireByIDForUpdate
	}

	questionnaire, err := find(ctx, id)
	if err != nil && !errors.Is(err, repository.ErrQuestionnaireNotFound) {
		return nil, errors.Wrap(err, "failed to find questionnaire")
	}

	owned, err := tenant.Authorize(accountID, questionnaire)
	if err != nil {
		return nil, guardError(err, domainerrors.ErrQuestionnaireNotFound)
	}

	return owned, nil
}

// findPublishedQuestionnaire loads a questionnaire for anonymous callers. Unpublished ones are NotFound.
func findPublishedQuestionnaire(ctx context.Context, repo repository.QuestionnaireRepository, id uuid.UUID) (*entity.Questionnaire, error) {
	questionnaire, err := repo.FindQuestionnaireByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrQuestionnaireNotFound) {
			return nil, domainerrors.ErrQuestionnaireNotFound
		}

		return nil, errors.Wrap(err, "failed to find questionnaire")
	}

	if !questionnaire.IsPublished {
		return nil, domainerrors.ErrQuestionnaireNotFound
	}

	return questionnaire, nil
}
