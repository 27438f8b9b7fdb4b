package entity

import (
	"time"

	"github.com/google/uuid"
)

// Questionnaire is an ordered set of questions owned by an account.
// Only published questionnaires are reachable through the public surface.
type Questionnaire struct {
	ID          uuid.UUID `json:"id"`
	AccountID   uuid.UUID `json:"account_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// OwnerAccountID returns the owning account.
func (q *Questionnaire) OwnerAccountID() uuid.UUID {
	return q.AccountID
}

// Question belongs to a questionnaire and is shown in ascending Order.
type Question struct {
	ID              uuid.UUID    `json:"id"`
	QuestionnaireID uuid.UUID    `json:"questionnaire_id"`
	Text            string       `json:"text"`
	Type            QuestionType `json:"type"`
	Options         []string     `json:"options"` // Only populated for multiple-choice questions.
	Order           int          `json:"order"`
	CreatedAt       time.Time    `json:"created_at"`
}
