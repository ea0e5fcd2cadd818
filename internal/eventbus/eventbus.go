package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	wmnats "github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	nc "github.com/nats-io/nats.go"

	"github.com/Dancing-Rabbit-Club/golf-bot/internal/observability/attr"
)

// EventBus publishes domain events and hands out a subscriber for the
// message router.
type EventBus interface {
	Publish(ctx context.Context, topic string, payload any) error
	Subscriber() message.Subscriber
	Close() error
}

// JetStreamEventBus implements EventBus on NATS JetStream via watermill.
type JetStreamEventBus struct {
	logger     *slog.Logger
	publisher  *wmnats.Publisher
	subscriber *wmnats.Subscriber
}

var _ EventBus = (*JetStreamEventBus)(nil)

// New connects to NATS and builds the JetStream publisher/subscriber pair.
func New(natsURL string, logger *slog.Logger, wmLogger watermill.LoggerAdapter) (*JetStreamEventBus, error) {
	options := []nc.Option{
		nc.RetryOnFailedConnect(true),
		nc.Timeout(30 * time.Second),
		nc.ReconnectWait(1 * time.Second),
	}

	jsConfig := wmnats.JetStreamConfig{
		Disabled:      false,
		AutoProvision: true,
	}

	publisher, err := wmnats.NewPublisher(
		wmnats.PublisherConfig{
			URL:               natsURL,
			NatsOptions:       options,
			Marshaler:         &wmnats.NATSMarshaler{},
			JetStream:         jsConfig,
			SubjectCalculator: wmnats.DefaultSubjectCalculator,
		},
		wmLogger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create NATS publisher: %w", err)
	}

	subscriber, err := wmnats.NewSubscriber(
		wmnats.SubscriberConfig{
			URL:               natsURL,
			NatsOptions:       options,
			Unmarshaler:       &wmnats.NATSMarshaler{},
			JetStream:         jsConfig,
			SubjectCalculator: wmnats.DefaultSubjectCalculator,
		},
		wmLogger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create NATS subscriber: %w", err)
	}

	return &JetStreamEventBus{
		logger:     logger,
		publisher:  publisher,
		subscriber: subscriber,
	}, nil
}

// Publish marshals the payload to JSON and publishes it on the topic,
// stamping a fresh message id and carrying the correlation id forward.
func (b *JetStreamEventBus) Publish(ctx context.Context, topic string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload for topic %s: %w", topic, err)
	}

	msg := message.NewMessage(uuid.New().String(), data)
	msg.SetContext(ctx)

	b.logger.DebugContext(ctx, "Publishing event",
		attr.String("topic", topic),
		attr.String("message_id", msg.UUID),
		attr.ExtractCorrelationID(ctx),
	)

	if err := b.publisher.Publish(topic, msg); err != nil {
		return fmt.Errorf("failed to publish to topic %s: %w", topic, err)
	}
	return nil
}

// Subscriber exposes the watermill subscriber for router wiring.
func (b *JetStreamEventBus) Subscriber() message.Subscriber {
	return b.subscriber
}

// Close shuts down both halves of the bus.
func (b *JetStreamEventBus) Close() error {
	if err := b.publisher.Close(); err != nil {
		return fmt.Errorf("failed to close publisher: %w", err)
	}
	return b.subscriber.Close()
}
