// Package pubsub publishes response-submitted events to Google Pub/Sub or, in development,
// straight to the notifier's push endpoint.
package pubsub

import (
	"context"
	"log/slog"

	"curator/config"
	"curator/internal/domain/constants"
	"curator/internal/domain/service"
	"curator/internal/errors"

	"go.uber.org/fx"
)

// EventTypeResponseSubmitted is set as the event_type attribute on every message.
const EventTypeResponseSubmitted = "response.submitted"

// disabledPublisher drops events when no provider is configured. Submissions still succeed.
type disabledPublisher struct {
	logger *slog.Logger
}

func (p *disabledPublisher) PublishResponseSubmitted(ctx context.Context, event *service.ResponseSubmittedEvent) error {
	p.logger.DebugContext(ctx, "Event publishing disabled, response not forwarded",
		slog.String("response_id", event.ResponseID),
	)

	return nil
}

func (p *disabledPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the publisher for pubsub.provider and closes it on shutdown.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("Pub/Sub not configured, response events are dropped")

		return &disabledPublisher{logger: logger}, nil
	}
	if err := checkPubSubConfig(cfg); err != nil {
		return nil, err
	}

	var (
		publisher service.EventPublisher
		err       error
	)
	if cfg.Provider == constants.PubSubProviderLocal {
		logger.Info("Publishing response events to local notifier", slog.String("endpoint", cfg.LocalEndpoint))
		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)
	} else {
		logger.Info("Publishing response events to Google Pub/Sub",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)
		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			logger.Info("Closing response event publisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// checkPubSubConfig reports the first setting the chosen provider is missing.
func checkPubSubConfig(cfg *config.PubSubConfig) error {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return errors.New("pubsub.localEndpoint is required for the local provider")
		}
	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return errors.New("pubsub.projectId is required for the google provider")
		}
		if cfg.TopicID == "" {
			return errors.New("pubsub.topicId is required for the google provider")
		}
	default:
		return errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	return nil
}

// eventAttributes are the message attributes the notifier and subscriptions filter on.
// The customer email stays in the payload only.
func eventAttributes(event *service.ResponseSubmittedEvent) map[string]string {
	attributes := map[string]string{
		"event_type":       EventTypeResponseSubmitted,
		"response_id":      event.ResponseID,
		"questionnaire_id": event.QuestionnaireID,
		"account_id":       event.AccountID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
