package usecase

import (
	"context"
	"errors"

	"curator/internal/domain/service"
)

// ErrInvalidEvent marks events that can never be processed and must not be retried.
var ErrInvalidEvent = errors.New("invalid event")

// NotificationUsecase turns domain events into push notifications.
type NotificationUsecase interface {
	// NotifyResponseSubmitted pushes a notification to every active device of the questionnaire owner.
	NotifyResponseSubmitted(ctx context.Context, event *service.ResponseSubmittedEvent) error
}
