package service

import (
	"context"
)

// MaxBatchTokens is the largest token set a single SendMulticast call accepts.
const MaxBatchTokens = 500

// PushMessage is the notification shown on the owner's devices.
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

// PushResult counts per-token outcomes. InvalidTokens lists tokens the provider will never
// deliver to again; their devices should be deactivated.
type PushResult struct {
	Sent          int
	Failed        int
	InvalidTokens []string
}

// NotificationService delivers push notifications to device tokens.
type NotificationService interface {
	// SendMulticast fails as a whole only when the provider rejects the request itself.
	SendMulticast(ctx context.Context, tokens []string, msg *PushMessage) (*PushResult, error)
}
