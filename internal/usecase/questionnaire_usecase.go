// Package usecase declares the application operations exposed to the delivery layer.
package usecase

import (
	"context"

	"curator/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateQuestionnaireInput is the payload for a new questionnaire.
type CreateQuestionnaireInput struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
}

// UpdateQuestionnaireInput patches a questionnaire. Nil fields are left unchanged
// and an empty Description clears it.
type UpdateQuestionnaireInput struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	IsPublished *bool   `json:"is_published,omitempty"`
}

// AddQuestionInput is the payload for a new question. The questionnaire comes from the path.
type AddQuestionInput struct {
	Text    string              `json:"text" validate:"required,max=500"`
	Type    entity.QuestionType `json:"type" validate:"required"`
	Options []string            `json:"options,omitempty" validate:"omitempty,dive,max=200"`
}

// QuestionnaireUsecase manages questionnaires and their questions.
type QuestionnaireUsecase interface {
	Create(ctx context.Context, accountID uuid.UUID, input *CreateQuestionnaireInput) (*entity.Questionnaire, error)
	List(ctx context.Context, accountID uuid.UUID) ([]*entity.Questionnaire, error)
	Get(ctx context.Context, accountID, id uuid.UUID) (*entity.Questionnaire, error)
	Update(ctx context.Context, accountID, id uuid.UUID, input *UpdateQuestionnaireInput) (*entity.Questionnaire, error)
	// Delete removes the questionnaire with its questions and responses.
	Delete(ctx context.Context, accountID, id uuid.UUID) error

	AddQuestion(ctx context.Context, accountID, questionnaireID uuid.UUID, input *AddQuestionInput) (*entity.Question, error)
	ListQuestions(ctx context.Context, accountID, questionnaireID uuid.UUID) ([]*entity.Question, error)
	DeleteQuestion(ctx context.Context, accountID, questionID uuid.UUID) error

	// ShareQR renders the questionnaire's public link as a PNG QR code.
	ShareQR(ctx context.Context, accountID, id uuid.UUID) ([]byte, error)

	// GetPublic returns a published questionnaire to anonymous callers.
	GetPublic(ctx context.Context, id uuid.UUID) (*entity.Questionnaire, error)
	ListPublicQuestions(ctx context.Context, id uuid.UUID) ([]*entity.Question, error)
}
