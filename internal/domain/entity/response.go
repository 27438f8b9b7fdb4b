package entity

import (
	"time"

	"github.com/google/uuid"
)

// Response is a customer's submitted answers to a questionnaire. Responses are never modified.
type Response struct {
	ID              uuid.UUID         `json:"id"`
	QuestionnaireID uuid.UUID         `json:"questionnaire_id"`
	CustomerEmail   *string           `json:"customer_email,omitempty"`
	Answers         map[string]string `json:"answers"` // Question ID to answer value.
	CreatedAt       time.Time         `json:"created_at"`
}
