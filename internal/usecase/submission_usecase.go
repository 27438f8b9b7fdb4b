package usecase

import (
	"context"

	"curator/internal/domain/entity"
	"curator/internal/domain/repository"

	"github.com/google/uuid"
)

// SubmitInput is a customer's answers to a published questionnaire.
type SubmitInput struct {
	CustomerEmail *string           `json:"customer_email,omitempty" validate:"omitempty,email"`
	Answers       map[string]string `json:"answers"`
}

// SubmitOutput is the stored response and the products recommended for it.
type SubmitOutput struct {
	Response        *entity.Response  `json:"response"`
	Recommendations []*entity.Product `json:"recommendations"`
}

// SubmissionUsecase records customer responses and lists them for the owning account.
type SubmissionUsecase interface {
	Submit(ctx context.Context, questionnaireID uuid.UUID, input *SubmitInput) (*SubmitOutput, error)
	ListResponses(ctx context.Context, accountID, questionnaireID uuid.UUID, page, limit int) (*repository.Page[*entity.Response], error)
	// ListAccountResponses pages through the responses of every questionnaire of the account.
	ListAccountResponses(ctx context.Context, accountID uuid.UUID, page, limit int) (*repository.Page[*entity.Response], error)
}
