package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"curator/internal/domain/service"
	"curator/internal/errors"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
)

// publishAckTimeout bounds how long a public submission waits for the Pub/Sub ack.
const publishAckTimeout = 5 * time.Second

type googlePubSubPublisher struct {
	client     *pubsub.Client
	publisher  *pubsub.Publisher
	logger     *slog.Logger
	ackTimeout time.Duration
}

// NewGooglePubSubPublisher connects to the project and fails fast when the topic does not exist.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Pub/Sub client")
	}

	topic := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "response event topic %s is not reachable", topic)
	}

	return &googlePubSubPublisher{
		client:     client,
		publisher:  client.Publisher(topicID),
		logger:     logger,
		ackTimeout: publishAckTimeout,
	}, nil
}

// PublishResponseSubmitted sends the event and waits for the server ack.
func (p *googlePubSubPublisher) PublishResponseSubmitted(ctx context.Context, event *service.ResponseSubmittedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "failed to encode response event")
	}

	ackCtx, cancel := context.WithTimeout(ctx, p.ackTimeout)
	defer cancel()

	result := p.publisher.Publish(ackCtx, &pubsub.Message{
		Data:       data,
		Attributes: eventAttributes(event),
	})
	serverID, err := result.Get(ackCtx)
	if err != nil {
		return errors.Wrapf(err, "response event %s not acknowledged", event.ResponseID)
	}

	p.logger.DebugContext(ctx, "Response event published",
		slog.String("response_id", event.ResponseID),
		slog.String("message_id", serverID),
	)

	return nil
}

// Close flushes pending messages, then closes the client.
func (p *googlePubSubPublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
