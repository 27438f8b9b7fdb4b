package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"curator/config"
	"curator/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func testEvent() *service.ResponseSubmittedEvent {
	return &service.ResponseSubmittedEvent{
		RequestID:           "req-1",
		ResponseID:          "resp-1",
		QuestionnaireID:     "q-1",
		QuestionnaireTitle:  "Cheese finder",
		AccountID:           "acc-1",
		RecommendationCount: 2,
		SubmittedAt:         time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PublishResponseSubmitted(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.Default())
	require.NoError(t, publisher.PublishResponseSubmitted(context.Background(), testEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "resp-1", received.Message.MessageID)
	assert.Equal(t, "acc-1", received.Message.Attributes["account_id"])
	assert.Equal(t, EventTypeResponseSubmitted, received.Message.Attributes["event_type"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var event service.ResponseSubmittedEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, *testEvent(), event)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.Default())
	err := publisher.PublishResponseSubmitted(context.Background(), testEvent())
	assert.ErrorContains(t, err, "503")
}

func TestEventAttributes_KeepEmailOutOfAttributes(t *testing.T) {
	event := testEvent()
	event.CustomerEmail = "fan@example.com"

	attrs := eventAttributes(event)

	assert.Equal(t, "q-1", attrs["questionnaire_id"])
	assert.Equal(t, "req-1", attrs["request_id"])
	for _, v := range attrs {
		assert.NotEqual(t, "fan@example.com", v)
	}

	event.RequestID = ""
	assert.NotContains(t, eventAttributes(event), "request_id")
}

func TestNewEventPublisher(t *testing.T) {
	newParams := func(cfg *config.PubSubConfig) PublisherParams {
		return PublisherParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: &config.Config{PubSub: cfg},
			Logger: slog.Default(),
		}
	}

	t.Run("unconfigured drops events", func(t *testing.T) {
		publisher, err := NewEventPublisher(newParams(nil))
		require.NoError(t, err)
		assert.IsType(t, &disabledPublisher{}, publisher)
		assert.NoError(t, publisher.PublishResponseSubmitted(context.Background(), testEvent()))
	})

	t.Run("local requires endpoint", func(t *testing.T) {
		_, err := NewEventPublisher(newParams(&config.PubSubConfig{Provider: "local"}))
		assert.Error(t, err)
	})

	t.Run("google requires project and topic", func(t *testing.T) {
		_, err := NewEventPublisher(newParams(&config.PubSubConfig{Provider: "google", TopicID: "t"}))
		assert.ErrorContains(t, err, "pubsub.projectId")

		_, err = NewEventPublisher(newParams(&config.PubSubConfig{Provider: "google", ProjectID: "p"}))
		assert.ErrorContains(t, err, "pubsub.topicId")
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := NewEventPublisher(newParams(&config.PubSubConfig{Provider: "kafka"}))
		assert.Error(t, err)
	})

	t.Run("local", func(t *testing.T) {
		publisher, err := NewEventPublisher(newParams(&config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:1/push"}))
		require.NoError(t, err)
		assert.IsType(t, &localHTTPPublisher{}, publisher)
	})
}
