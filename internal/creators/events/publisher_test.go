package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"creatorverse/pkg/kafka"
	"creatorverse/pkg/middleware"
	"creatorverse/pkg/model"
)

type captureSink struct {
	msgs []kafka.Message
	err  error
}

func (s *captureSink) Publish(ctx context.Context, msg kafka.Message) error {
	s.msgs = append(s.msgs, msg)
	return s.err
}

func TestKafkaPublisher_Publish(t *testing.T) {
	sink := &captureSink{}
	pub := NewKafkaPublisher(sink)

	occurred := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	event := model.CreatorEvent{
		Type:       model.EventCreatorCreated,
		CreatorID:  "507f1f77bcf86cd799439011",
		Creator:    &model.Creator{ID: "507f1f77bcf86cd799439011", Name: "Ada", Twitter: "Foo"},
		OccurredAt: occurred,
	}

	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "req-1")
	if err := pub.Publish(ctx, event); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	if len(sink.msgs) != 1 {
		t.Fatalf("expected one message, got %d", len(sink.msgs))
	}
	msg := sink.msgs[0]
	if msg.Key != event.CreatorID {
		t.Errorf("expected key %q, got %q", event.CreatorID, msg.Key)
	}
	if msg.EventType() != model.EventCreatorCreated || msg.CorrelationID() != "req-1" {
		t.Errorf("unexpected headers %v", msg.Headers)
	}
	if !msg.Timestamp.Equal(occurred) {
		t.Errorf("expected event time on message, got %s", msg.Timestamp)
	}

	var decoded model.CreatorEvent
	if err := msg.Decode(&decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Creator == nil || decoded.Creator.Twitter != "Foo" {
		t.Errorf("unexpected payload %+v", decoded)
	}
}

func TestKafkaPublisher_PropagatesSinkError(t *testing.T) {
	cause := errors.New("broker down")
	pub := NewKafkaPublisher(&captureSink{err: cause})

	err := pub.Publish(context.Background(), model.CreatorEvent{Type: model.EventCreatorDeleted, CreatorID: "x"})
	if !errors.Is(err, cause) {
		t.Errorf("expected sink error, got %v", err)
	}
}

func TestNopPublisher(t *testing.T) {
	if err := (NopPublisher{}).Publish(context.Background(), model.CreatorEvent{}); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}
