package notification

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"curator/config"
	"curator/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	got      *messaging.MulticastMessage
	response *messaging.BatchResponse
	err      error
}

func (f *fakeSender) SendEachForMulticast(_ context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	f.got = message

	return f.response, f.err
}

func TestFirebaseService_SendMulticast(t *testing.T) {
	ctx := context.Background()

	t.Run("empty tokens", func(t *testing.T) {
		svc := &firebaseService{client: &fakeSender{}}
		result, err := svc.SendMulticast(ctx, nil, &service.PushMessage{Title: "t"})
		require.NoError(t, err)
		assert.Equal(t, &service.PushResult{}, result)
	})

	t.Run("too many tokens", func(t *testing.T) {
		svc := &firebaseService{client: &fakeSender{}}
		_, err := svc.SendMulticast(ctx, make([]string, service.MaxBatchTokens+1), &service.PushMessage{Title: "t"})
		assert.Error(t, err)
	})

	t.Run("counts responses", func(t *testing.T) {
		sender := &fakeSender{response: &messaging.BatchResponse{
			SuccessCount: 1,
			FailureCount: 1,
			Responses: []*messaging.SendResponse{
				{Success: true},
				{Success: false, Error: errors.New("transient")},
			},
		}}
		svc := &firebaseService{client: sender}

		result, err := svc.SendMulticast(ctx, []string{"a", "b"}, &service.PushMessage{
			Title: "New response",
			Body:  "body",
			Data:  map[string]string{"k": "v"},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Sent)
		assert.Equal(t, 1, result.Failed)
		assert.Empty(t, result.InvalidTokens)
		assert.Equal(t, "New response", sender.got.Notification.Title)
		assert.Equal(t, "v", sender.got.Data["k"])
		assert.Equal(t, []string{"a", "b"}, sender.got.Tokens)
	})

	t.Run("client failure", func(t *testing.T) {
		svc := &firebaseService{client: &fakeSender{err: errors.New("unavailable")}}
		_, err := svc.SendMulticast(ctx, []string{"a"}, &service.PushMessage{Title: "t"})
		assert.ErrorContains(t, err, "unavailable")
	})
}

func TestNew_WithoutFirebaseConfig(t *testing.T) {
	svc, err := New(context.Background(), &config.Config{}, slog.Default())
	require.NoError(t, err)

	result, err := svc.SendMulticast(context.Background(), []string{"a", "b"}, &service.PushMessage{Title: "t"})
	require.NoError(t, err)
	assert.Zero(t, result.Sent)
	assert.Equal(t, 2, result.Failed)
}
