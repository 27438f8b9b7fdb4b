package postgres

import (
	"context"

	"curator/internal/domain/entity"
	domainerrors "curator/internal/domain/errors"
	"curator/internal/domain/repository"
	"curator/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// questionnaireRepository implements the repository.QuestionnaireRepository interface using GORM.
type questionnaireRepository struct {
	db *gorm.DB
}

// NewQuestionnaireRepository is the constructor for questionnaireRepository.
func NewQuestionnaireRepository(db *gorm.DB) repository.QuestionnaireRepository {
	return &questionnaireRepository{db: db}
}

// CreateQuestionnaire persists a new questionnaire.
func (repo *questionnaireRepository) CreateQuestionnaire(ctx context.Context, questionnaire *entity.Questionnaire) error {
	questionnaireM := fromQuestionnaireDomain(questionnaire)

	if err := repo.db.WithContext(ctx).Create(questionnaireM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAccountNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create questionnaire")
	}

	questionnaire.CreatedAt = questionnaireM.CreatedAt
	questionnaire.UpdatedAt = questionnaireM.UpdatedAt

	return nil
}

// FindQuestionnaireByID retrieves a questionnaire by its unique ID.
func (repo *questionnaireRepository) FindQuestionnaireByID(ctx context.Context, id uuid.UUID) (*entity.Questionnaire, error) {
	return repo.findByID(repo.db.WithContext(ctx), id)
}

// FindQuestionnaireByIDForUpdate retrieves a questionnaire with SELECT ... FOR UPDATE.
func (repo *questionnaireRepository) FindQuestionnaireByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Questionnaire, error) {
	return repo.findByID(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), id)
}

func (repo *questionnaireRepository) findByID(db *gorm.DB, id uuid.UUID) (*entity.Questionnaire, error) {
	var questionnaireM model.QuestionnaireModel
	if err := db.Where("id = ?", id).First(&questionnaireM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrQuestionnaireNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find questionnaire by id")
	}

	return toQuestionnaireDomain(&questionnaireM), nil
}

// FindQuestionnairesByAccount lists an account's questionnaires, newest first.
func (repo *questionnaireRepository) FindQuestionnairesByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Questionnaire, error) {
	var questionnaireModels []*model.QuestionnaireModel
	if err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Scopes(newestFirst).
		Find(&questionnaireModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find questionnaires by account")
	}

	questionnaires := make([]*entity.Questionnaire, 0, len(questionnaireModels))
	for _, questionnaireM := range questionnaireModels {
		questionnaires = append(questionnaires, toQuestionnaireDomain(questionnaireM))
	}

	return questionnaires, nil
}

// UpdateQuestionnaire saves title, description, publish state and UpdatedAt.
func (repo *questionnaireRepository) UpdateQuestionnaire(ctx context.Context, questionnaire *entity.Questionnaire) error {
	result := repo.db.WithContext(ctx).
		Model(&model.QuestionnaireModel{}).
		Where("id = ?", questionnaire.ID).
		Updates(map[string]any{
			"title":        questionnaire.Title,
			"description":  questionnaire.Description,
			"is_published": questionnaire.IsPublished,
			"updated_at":   questionnaire.UpdatedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update questionnaire")
	}
	if result.RowsAffected == 0 {
		return repository.ErrQuestionnaireNotFound
	}

	return nil
}

// DeleteQuestionnaire removes a questionnaire; questions and responses go with it through ON DELETE CASCADE.
func (repo *questionnaireRepository) DeleteQuestionnaire(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.QuestionnaireModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete questionnaire")
	}
	if result.RowsAffected == 0 {
		return repository.ErrQuestionnaireNotFound
	}

	return nil
}

// questionRepository implements the repository.QuestionRepository interface using GORM.
type questionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository is the constructor for questionRepository.
func NewQuestionRepository(db *gorm.DB) repository.QuestionRepository {
	return &questionRepository{db: db}
}

// CreateQuestion persists a new question.
func (repo *questionRepository) CreateQuestion(ctx context.Context, question *entity.Question) error {
	questionM := fromQuestionDomain(question)

	if err := repo.db.WithContext(ctx).Create(questionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrQuestionnaireNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create question")
	}

	question.CreatedAt = questionM.CreatedAt

	return nil
}

// FindQuestionByID retrieves a question by its unique ID.
func (repo *questionRepository) FindQuestionByID(ctx context.Context, id uuid.UUID) (*entity.Question, error) {
	var questionM model.QuestionModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&questionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrQuestionNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find question by id")
	}

	return toQuestionDomain(&questionM), nil
}

// FindQuestionsByQuestionnaire lists questions by ascending sort order, oldest first within equal orders.
func (repo *questionRepository) FindQuestionsByQuestionnaire(ctx context.Context, questionnaireID uuid.UUID) ([]*entity.Question, error) {
	var questionModels []*model.QuestionModel
	if err := repo.db.WithContext(ctx).
		Where("questionnaire_id = ?", questionnaireID).
		Scopes(byQuestionOrder).
		Find(&questionModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find questions by questionnaire")
	}

	questions := make([]*entity.Question, 0, len(questionModels))
	for _, questionM := range questionModels {
		questions = append(questions, toQuestionDomain(questionM))
	}

	return questions, nil
}

// CountQuestionsByQuestionnaire returns how many questions a questionnaire has.
func (repo *questionRepository) CountQuestionsByQuestionnaire(ctx context.Context, questionnaireID uuid.UUID) (int, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.QuestionModel{}).
		Where("questionnaire_id = ?", questionnaireID).
		Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count questions")
	}

	return int(count), nil
}

// DeleteQuestion removes a question by its ID.
func (repo *questionRepository) DeleteQuestion(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.QuestionModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete question")
	}
	if result.RowsAffected == 0 {
		return repository.ErrQuestionNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toQuestionnaireDomain(data *model.QuestionnaireModel) *entity.Questionnaire {
	if data == nil {
		return nil
	}

	return &entity.Questionnaire{
		ID:          data.ID,
		AccountID:   data.AccountID,
		Title:       data.Title,
		Description: data.Description,
		IsPublished: data.IsPublished,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromQuestionnaireDomain(data *entity.Questionnaire) *model.QuestionnaireModel {
	if data == nil {
		return nil
	}

	return &model.QuestionnaireModel{
		ID:          data.ID,
		AccountID:   data.AccountID,
		Title:       data.Title,
		Description: data.Description,
		IsPublished: data.IsPublished,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toQuestionDomain(data *model.QuestionModel) *entity.Question {
	if data == nil {
		return nil
	}

	var options []string
	if len(data.Options) > 0 {
		options = []string(data.Options)
	}

	return &entity.Question{
		ID:              data.ID,
		QuestionnaireID: data.QuestionnaireID,
		Text:            data.Text,
		Type:            entity.QuestionType(data.Type),
		Options:         options,
		Order:           data.SortOrder,
		CreatedAt:       data.CreatedAt,
	}
}

func fromQuestionDomain(data *entity.Question) *model.QuestionModel {
	if data == nil {
		return nil
	}

	return &model.QuestionModel{
		ID:              data.ID,
		QuestionnaireID: data.QuestionnaireID,
		Text:            data.Text,
		Type:            data.Type.String(),
		Options:         pq.StringArray(data.Options),
		SortOrder:       data.Order,
		CreatedAt:       data.CreatedAt,
	}
}
