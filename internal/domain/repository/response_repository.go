package repository

import (
	"context"

	"curator/internal/domain/entity"

	"github.com/google/uuid"
)

// ResponseRepository defines persistence operations for submitted responses.
// Responses are append-only.
type ResponseRepository interface {
	// CreateResponse persists a new response.
	CreateResponse(ctx context.Context, response *entity.Response) error

	// FindResponsesByQuestionnaire returns one page of a questionnaire's responses, newest first,
	// together with the total number of responses.
	FindResponsesByQuestionnaire(ctx context.Context, questionnaireID uuid.UUID, page PageRequest) ([]*entity.Response, int, error)

	// FindResponsesByAccount returns one page of responses across every questionnaire
	// the account owns, newest first, together with the total.
	FindResponsesByAccount(ctx context.Context, accountID uuid.UUID, page PageRequest) ([]*entity.Response, int, error)
}
