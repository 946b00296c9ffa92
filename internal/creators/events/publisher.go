package events

import (
	"context"
	"fmt"

	"creatorverse/pkg/kafka"
	"creatorverse/pkg/middleware"
	"creatorverse/pkg/model"
)

const source = "creators-service"

// Sink is satisfied by *kafka.Producer.
type Sink interface {
	Publish(ctx context.Context, msg kafka.Message) error
}

// KafkaPublisher emits creator change events keyed by creator id, so all
// events for one creator land on the same partition in order.
type KafkaPublisher struct {
	sink Sink
}

func NewKafkaPublisher(sink Sink) *KafkaPublisher {
	return &KafkaPublisher{sink: sink}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event model.CreatorEvent) error {
	msg, err := kafka.NewMessage().
		WithKey(event.CreatorID).
		WithJSON(event).
		WithEventType(event.Type).
		WithSource(source).
		WithCorrelationID(middleware.RequestID(ctx)).
		WithTimestamp(event.OccurredAt).
		Build()
	if err != nil {
		return fmt.Errorf("failed to build %s event: %w", event.Type, err)
	}
	return p.sink.Publish(ctx, msg)
}

// NopPublisher drops events; used when Kafka is disabled.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, model.CreatorEvent) error { return nil }
