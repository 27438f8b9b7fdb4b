package service

import (
	"context"
	"time"
)

// ResponseSubmittedEvent is published after a customer response has been stored.
type ResponseSubmittedEvent struct {
	RequestID           string    `json:"request_id,omitempty"` // For distributed tracing
	ResponseID          string    `json:"response_id"`
	QuestionnaireID     string    `json:"questionnaire_id"`
	QuestionnaireTitle  string    `json:"questionnaire_title"`
	AccountID           string    `json:"account_id"`
	CustomerEmail       string    `json:"customer_email,omitempty"`
	RecommendationCount int       `json:"recommendation_count"`
	SubmittedAt         time.Time `json:"submitted_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishResponseSubmitted publishes a response event for async processing
	PublishResponseSubmitted(ctx context.Context, event *ResponseSubmittedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
