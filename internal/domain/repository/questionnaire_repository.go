package repository

import (
	"context"
	"errors"

	"curator/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for questionnaire persistence.
var (
	// ErrQuestionnaireNotFound is returned when a questionnaire is not found.
	ErrQuestionnaireNotFound = errors.New("questionnaire not found")
	// ErrQuestionNotFound is returned when a question is not found.
	ErrQuestionNotFound = errors.New("question not found")
)

// QuestionnaireRepository defines persistence operations for questionnaires.
type QuestionnaireRepository interface {
	// CreateQuestionnaire persists a new questionnaire.
	CreateQuestionnaire(ctx context.Context, questionnaire *entity.Questionnaire) error

	// FindQuestionnaireByID retrieves a questionnaire by its unique ID.
	FindQuestionnaireByID(ctx context.Context, id uuid.UUID) (*entity.Questionnaire, error)

	// FindQuestionnaireByIDForUpdate retrieves a questionnaire and locks it until the
	// surrounding transaction ends. Outside a transaction it behaves like FindQuestionnaireByID.
	FindQuestionnaireByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Questionnaire, error)

	// FindQuestionnairesByAccount lists an account's questionnaires, newest first.
	FindQuestionnairesByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Questionnaire, error)

	// UpdateQuestionnaire saves title, description, publish state and UpdatedAt.
	UpdateQuestionnaire(ctx context.Context, questionnaire *entity.Questionnaire) error

	// DeleteQuestionnaire removes a questionnaire together with its questions and responses.
	DeleteQuestionnaire(ctx context.Context, id uuid.UUID) error
}

// QuestionRepository defines persistence operations for questions.
type QuestionRepository interface {
	// CreateQuestion persists a new question.
	CreateQuestion(ctx context.Context, question *entity.Question) error

	// FindQuestionByID retrieves a question by its unique ID.
	FindQuestionByID(ctx context.Context, id uuid.UUID) (*entity.Question, error)

	// FindQuestionsByQuestionnaire lists a questionnaire's questions by ascending Order.
	// Questions sharing an Order keep their insertion order.
	FindQuestionsByQuestionnaire(ctx context.Context, questionnaireID uuid.UUID) ([]*entity.Question, error)

	// CountQuestionsByQuestionnaire returns how many questions a questionnaire has.
	CountQuestionsByQuestionnaire(ctx context.Context, questionnaireID uuid.UUID) (int, error)

	// DeleteQuestion removes a question by its ID.
	DeleteQuestion(ctx context.Context, id uuid.UUID) error
}
