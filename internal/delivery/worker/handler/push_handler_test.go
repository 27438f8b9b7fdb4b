package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"curator/config"
	deliverycontext "curator/internal/delivery/context"
	"curator/internal/domain/constants"
	"curator/internal/domain/service"
	"curator/internal/errors"
	mockusecase "curator/internal/mocks/usecase"
	"curator/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockusecase.MockNotificationUsecase) {
	t.Helper()

	notificationUC := mockusecase.NewMockNotificationUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config:         cfg,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		NotificationUC: notificationUC,
	})

	return h, notificationUC
}

func pushBody(t *testing.T, event *service.ResponseSubmittedEvent, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "m-1"
	msg.Subscription = "projects/p/subscriptions/response-notifier"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string, header map[string]string) *httptest.ResponseRecorder {
	e := echo.New()
	e.POST("/push", h.HandlePush)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	event := &service.ResponseSubmittedEvent{
		RequestID:          "req-from-event",
		ResponseID:         uuid.NewString(),
		QuestionnaireID:    uuid.NewString(),
		QuestionnaireTitle: "Cheese quiz",
		AccountID:          uuid.NewString(),
	}

	t.Run("delivers event with request id from attributes", func(t *testing.T) {
		h, notificationUC := newTestPushHandler(t, &config.Config{})
		notificationUC.EXPECT().
			NotifyResponseSubmitted(mock.Anything, mock.AnythingOfType("*service.ResponseSubmittedEvent")).
			RunAndReturn(func(ctx context.Context, got *service.ResponseSubmittedEvent) error {
				assert.Equal(t, event.ResponseID, got.ResponseID)
				assert.Equal(t, "Cheese quiz", got.QuestionnaireTitle)
				assert.Equal(t, "req-from-attributes", deliverycontext.GetRequestIDFromContext(ctx))
				assert.NotNil(t, deliverycontext.GetLogger(ctx))

				return nil
			})

		rec := servePush(h, pushBody(t, event, map[string]string{"request_id": "req-from-attributes"}), nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("falls back to event request id", func(t *testing.T) {
		h, notificationUC := newTestPushHandler(t, &config.Config{})
		notificationUC.EXPECT().
			NotifyResponseSubmitted(mock.Anything, mock.Anything).
			RunAndReturn(func(ctx context.Context, _ *service.ResponseSubmittedEvent) error {
				assert.Equal(t, "req-from-event", deliverycontext.GetRequestIDFromContext(ctx))

				return nil
			})

		rec := servePush(h, pushBody(t, event, nil), nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("transient failure asks for redelivery", func(t *testing.T) {
		h, notificationUC := newTestPushHandler(t, &config.Config{})
		notificationUC.EXPECT().NotifyResponseSubmitted(mock.Anything, mock.Anything).
			Return(errors.New("all notification batches failed"))

		rec := servePush(h, pushBody(t, event, nil), nil)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("invalid event is acknowledged", func(t *testing.T) {
		h, notificationUC := newTestPushHandler(t, &config.Config{})
		notificationUC.EXPECT().NotifyResponseSubmitted(mock.Anything, mock.Anything).
			Return(errors.Wrap(usecase.ErrInvalidEvent, "invalid account id"))

		rec := servePush(h, pushBody(t, event, nil), nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("malformed envelope", func(t *testing.T) {
		h, _ := newTestPushHandler(t, &config.Config{})

		assert.Equal(t, http.StatusBadRequest, servePush(h, `{"message":{"data":"%%%"}}`, nil).Code)
		assert.Equal(t, http.StatusBadRequest, servePush(h, `{"message":{"data":"`+base64.StdEncoding.EncodeToString([]byte("not json"))+`"}}`, nil).Code)
	})
}

func TestPushHandler_VerifiesGoogleToken(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = "production"

	event := &service.ResponseSubmittedEvent{ResponseID: uuid.NewString(), AccountID: uuid.NewString()}

	t.Run("missing token", func(t *testing.T) {
		h, _ := newTestPushHandler(t, cfg)
		require.True(t, h.verifyPushAuth)

		assert.Equal(t, http.StatusUnauthorized, servePush(h, pushBody(t, event, nil), nil).Code)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		h, _ := newTestPushHandler(t, cfg)
		h.validateToken = func(_ context.Context, _, _ string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "https://evil.example.com"}, nil
		}

		rec := servePush(h, pushBody(t, event, nil), map[string]string{echo.HeaderAuthorization: "Bearer oidc"})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		h, notificationUC := newTestPushHandler(t, cfg)
		h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
			assert.Equal(t, "oidc", token)
			assert.Equal(t, "http://example.com/push", audience)

			return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
		}
		notificationUC.EXPECT().NotifyResponseSubmitted(mock.Anything, mock.Anything).Return(nil)

		rec := servePush(h, pushBody(t, event, nil), map[string]string{echo.HeaderAuthorization: "Bearer oidc"})

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("development skips verification", func(t *testing.T) {
		devCfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
		devCfg.Env.Env = constants.EnvDevelop
		h, _ := newTestPushHandler(t, devCfg)

		assert.False(t, h.verifyPushAuth)
	})
}
