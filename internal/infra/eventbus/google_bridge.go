package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"lifeline/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googleBridge mirrors domain events onto a Google Pub/Sub topic so external
// observers (dashboards, audit pipelines) can consume them. Publishing is
// best-effort: a Pub/Sub outage never affects in-process subscribers.
type googleBridge struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// bridgedEvent is the wire envelope published to the topic.
type bridgedEvent struct {
	Event   string `json:"event"`
	Payload any    `json:"payload"`
}

// NewGoogleBridge creates the Pub/Sub bridge and verifies the topic exists.
func NewGoogleBridge(ctx context.Context, projectID, topicID string, logger *slog.Logger) (*googleBridge, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: topicPath,
	}); err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	logger.Info("Google Pub/Sub event bridge initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &googleBridge{
		client:    client,
		publisher: client.Publisher(topicID),
		logger:    logger,
	}, nil
}

// Attach subscribes the bridge to every named event on the bus.
func (b *googleBridge) Attach(eventBus service.EventBus, events ...string) {
	for _, name := range events {
		eventBus.Subscribe(name, b.handlerFor(name))
	}
}

func (b *googleBridge) handlerFor(name string) service.EventHandler {
	return func(ctx context.Context, payload any) {
		data, err := json.Marshal(bridgedEvent{Event: name, Payload: payload})
		if err != nil {
			b.logger.Error("failed to encode bridged event",
				slog.String("event", name),
				slog.Any("error", err),
			)

			return
		}

		result := b.publisher.Publish(ctx, &pubsub.Message{
			Data: data,
			Attributes: map[string]string{
				"event": name,
			},
		})

		if _, err := result.Get(ctx); err != nil {
			b.logger.Error("failed to publish bridged event",
				slog.String("event", name),
				slog.Any("error", err),
			)
		}
	}
}

// Close releases Pub/Sub client resources.
func (b *googleBridge) Close() error {
	if b.publisher != nil {
		b.publisher.Stop()
	}
	if b.client != nil {
		return errors.WithStack(b.client.Close())
	}

	return nil
}
