package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "curator/internal/delivery/context"
	"curator/internal/domain/entity"
	"curator/internal/domain/recommend"
	"curator/internal/domain/repository"
	"curator/internal/domain/service"
	"curator/internal/errors"
	"curator/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type submissionService struct {
	txManager         repository.TransactionManager
	questionnaireRepo repository.QuestionnaireRepository
	responseRepo      repository.ResponseRepository
	eventPublisher    service.EventPublisher
	logger            *slog.Logger
}

// SubmissionServiceParams holds dependencies for SubmissionService, injected by Fx.
type SubmissionServiceParams struct {
	fx.In

	TxManager         repository.TransactionManager
	QuestionnaireRepo repository.QuestionnaireRepository
	ResponseRepo      repository.ResponseRepository
	EventPublisher    service.EventPublisher
	Logger            *slog.Logger
}

// NewSubmissionService creates the response recorder.
func NewSubmissionService(params SubmissionServiceParams) usecase.SubmissionUsecase {
	return &submissionService{
		txManager:         params.TxManager,
		questionnaireRepo: params.QuestionnaireRepo,
		responseRepo:      params.ResponseRepo,
		eventPublisher:    params.EventPublisher,
		logger:            params.Logger,
	}
}

func (srv *submissionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Submit stores the customer's answers and recommends products from the owner's catalog.
func (srv *submissionService) Submit(ctx context.Context, questionnaireID uuid.UUID, input *usecase.SubmitInput) (*usecase.SubmitOutput, error) {
	if input == nil {
		return nil, validationError("request body is required")
	}

	email := trimmedOrNil(input.CustomerEmail)
	if email != nil {
		if err := validate.Var(*email, "email"); err != nil {
			return nil, validationError("customer_email must be a valid email address")
		}
	}

	answers := make(map[string]string, len(input.Answers))
	for questionID, value := range input.Answers {
		answers[questionID] = value
	}

	var (
		questionnaire *entity.Questionnaire
		response      *entity.Response
		catalog       []*entity.Product
	)
	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		var err error
		questionnaire, err = findPublishedQuestionnaire(ctx, txRepoFactory.NewQuestionnaireRepository(), questionnaireID)
		if err != nil {
			return err
		}

		response = &entity.Response{
			ID:              uuid.New(),
			QuestionnaireID: questionnaire.ID,
			CustomerEmail:   email,
			Answers:         answers,
			CreatedAt:       time.Now(),
		}
		if err := txRepoFactory.NewResponseRepository().CreateResponse(ctx, response); err != nil {
			return errors.Wrap(err, "failed to store response")
		}

		catalog, err = txRepoFactory.NewProductRepository().FindProductsByAccount(ctx, questionnaire.AccountID)
		if err != nil {
			return errors.Wrap(err, "failed to load product catalog")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	recommendations := recommend.Recommend(response.Answers, catalog)

	srv.log(ctx).Info("Response recorded",
		slog.String("response_id", response.ID.String()),
		slog.String("questionnaire_id", questionnaire.ID.String()),
		slog.Int("catalog_size", len(catalog)),
		slog.Int("recommendations", len(recommendations)),
	)

	srv.publishSubmitted(ctx, questionnaire, response, len(recommendations))

	return &usecase.SubmitOutput{
		Response:        response,
		Recommendations: recommendations,
	}, nil
}

// publishSubmitted announces the response. The response is already stored, so failures are only logged.
func (srv *submissionService) publishSubmitted(ctx context.Context, questionnaire *entity.Questionnaire, response *entity.Response, recommendationCount int) {
	event := &service.ResponseSubmittedEvent{
		RequestID:           deliverycontext.GetRequestIDFromContext(ctx),
		ResponseID:          response.ID.String(),
		QuestionnaireID:     questionnaire.ID.String(),
		QuestionnaireTitle:  questionnaire.Title,
		AccountID:           questionnaire.AccountID.String(),
		RecommendationCount: recommendationCount,
		SubmittedAt:         response.CreatedAt,
	}
	if response.CustomerEmail != nil {
		event.CustomerEmail = *response.CustomerEmail
	}

	if err := srv.eventPublisher.PublishResponseSubmitted(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish response submitted event",
			slog.String("response_id", event.ResponseID),
			slog.Any("error", err),
		)
	}
}

// ListResponses pages through one questionnaire's responses, newest first.
func (srv *submissionService) ListResponses(ctx context.Context, accountID, questionnaireID uuid.UUID, page, limit int) (*repository.Page[*entity.Response], error) {
	if _, err := findOwnedQuestionnaire(ctx, srv.questionnaireRepo, accountID, questionnaireID, false); err != nil {
		return nil, err
	}

	req := repository.NewPageRequest(page, limit)
	responses, total, err := srv.responseRepo.FindResponsesByQuestionnaire(ctx, questionnaireID, req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list responses")
	}

	return repository.NewPage(responses, req, total), nil
}

func (srv *submissionService) ListAccountResponses(ctx context.Context, accountID uuid.UUID, page, limit int) (*repository.Page[*entity.Response], error) {
	req := repository.NewPageRequest(page, limit)
	responses, total, err := srv.responseRepo.FindResponsesByAccount(ctx, accountID, req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list responses")
	}

	return repository.NewPage(responses, req, total), nil
}
