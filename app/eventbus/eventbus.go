package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	nc "github.com/nats-io/nats.go"
)

// Publisher publishes domain events after a mutation has committed.
type Publisher interface {
	Publish(ctx context.Context, topic string, payload any) error
	Close() error
}

// EventBus adapts a watermill publisher to JSON domain events.
type EventBus struct {
	publisher  message.Publisher
	subscriber message.Subscriber
	logger     *slog.Logger
}

// NewEventBus connects to NATS when natsURL is set and falls back to an
// in-memory gochannel pub/sub otherwise.
func NewEventBus(natsURL string, logger *slog.Logger) (*EventBus, error) {
	if natsURL == "" {
		return NewInMemoryEventBus(logger), nil
	}

	wmLogger := watermill.NewSlogLogger(logger)
	marshaler := &nats.NATSMarshaler{}

	publisher, err := nats.NewPublisher(
		nats.PublisherConfig{
			URL:       natsURL,
			Marshaler: marshaler,
			NatsOptions: []nc.Option{
				nc.RetryOnFailedConnect(true),
				nc.Name("golf-league publisher"),
			},
		},
		wmLogger,
	)
	if err != nil {
		logger.Error("Failed to create Watermill NATS publisher", slog.Any("error", err))
		return nil, fmt.Errorf("failed to create NATS publisher: %w", err)
	}

	logger.Info("Event bus connected to NATS", slog.String("url", natsURL))
	return &EventBus{publisher: publisher, logger: logger}, nil
}

// NewInMemoryEventBus returns a bus backed by a watermill gochannel pub/sub.
func NewInMemoryEventBus(logger *slog.Logger) *EventBus {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewSlogLogger(logger))
	return &EventBus{publisher: pubSub, subscriber: pubSub, logger: logger}
}

// Publish marshals payload to JSON and sends it on topic.
func (b *EventBus) Publish(ctx context.Context, topic string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("eventbus.Publish: marshal %s: %w", topic, err)
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	msg.Metadata.Set("topic", topic)
	msg.Metadata.Set("content_type", "application/json")
	msg.SetContext(ctx)

	if err := b.publisher.Publish(topic, msg); err != nil {
		return fmt.Errorf("eventbus.Publish: %s: %w", topic, err)
	}

	b.logger.DebugContext(ctx, "Event published",
		slog.String("topic", topic),
		slog.String("message_id", msg.UUID),
	)
	return nil
}

// Subscribe is only available on the in-memory bus; it is used by tests and
// local tooling that want to observe published events.
func (b *EventBus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	if b.subscriber == nil {
		return nil, fmt.Errorf("eventbus.Subscribe: no subscriber configured")
	}
	return b.subscriber.Subscribe(ctx, topic)
}

// Close releases the underlying publisher.
func (b *EventBus) Close() error {
	return b.publisher.Close()
}
