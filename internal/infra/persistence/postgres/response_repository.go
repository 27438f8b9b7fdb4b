package postgres

import (
	"context"

	"curator/internal/domain/entity"
	domainerrors "curator/internal/domain/errors"
	"curator/internal/domain/repository"
	"curator/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// responseRepository implements the repository.ResponseRepository interface using GORM.
type responseRepository struct {
	db *gorm.DB
}

// NewResponseRepository is the constructor for responseRepository.
func NewResponseRepository(db *gorm.DB) repository.ResponseRepository {
	return &responseRepository{db: db}
}

// CreateResponse persists a new response.
func (repo *responseRepository) CreateResponse(ctx context.Context, response *entity.Response) error {
	responseM := fromResponseDomain(response)

	if err := repo.db.WithContext(ctx).Create(responseM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrQuestionnaireNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create response")
	}

	response.CreatedAt = responseM.CreatedAt

	return nil
}

// FindResponsesByQuestionnaire returns one page of a questionnaire's responses, newest first.
func (repo *responseRepository) FindResponsesByQuestionnaire(ctx context.Context, questionnaireID uuid.UUID, page repository.PageRequest) ([]*entity.Response, int, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.ResponseModel{}).
		Where("questionnaire_id = ?", questionnaireID)

	return repo.findPage(query, page)
}

// FindResponsesByAccount returns one page of responses across all of an account's questionnaires.
func (repo *responseRepository) FindResponsesByAccount(ctx context.Context, accountID uuid.UUID, page repository.PageRequest) ([]*entity.Response, int, error) {
	owned := repo.db.Model(&model.QuestionnaireModel{}).Select("id").Where("account_id = ?", accountID)

	query := repo.db.WithContext(ctx).
		Model(&model.ResponseModel{}).
		Where("questionnaire_id IN (?)", owned)

	return repo.findPage(query, page)
}

func (repo *responseRepository) findPage(query *gorm.DB, page repository.PageRequest) ([]*entity.Response, int, error) {
	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count responses")
	}

	var responseModels []*model.ResponseModel
	if err := query.Session(&gorm.Session{}).
		Scopes(newestFirst).
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&responseModels).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to find responses")
	}

	responses := make([]*entity.Response, 0, len(responseModels))
	for _, responseM := range responseModels {
		responses = append(responses, toResponseDomain(responseM))
	}

	return responses, int(total), nil
}

// --- Mapper Functions ---

func toResponseDomain(data *model.ResponseModel) *entity.Response {
	if data == nil {
		return nil
	}

	answers := make(map[string]string, len(data.Answers))
	for k, v := range data.Answers {
		if s, ok := v.(string); ok {
			answers[k] = s
		}
	}

	return &entity.Response{
		ID:              data.ID,
		QuestionnaireID: data.QuestionnaireID,
		CustomerEmail:   data.CustomerEmail,
		Answers:         answers,
		CreatedAt:       data.CreatedAt,
	}
}

func fromResponseDomain(data *entity.Response) *model.ResponseModel {
	if data == nil {
		return nil
	}

	answers := make(datatypes.JSONMap, len(data.Answers))
	for k, v := range data.Answers {
		answers[k] = v
	}

	return &model.ResponseModel{
		ID:              data.ID,
		QuestionnaireID: data.QuestionnaireID,
		CustomerEmail:   data.CustomerEmail,
		Answers:         answers,
		CreatedAt:       data.CreatedAt,
	}
}
