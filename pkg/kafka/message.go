package kafka

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type Message struct {
	Key       string
	Value     []byte
	Headers   map[string]string
	Timestamp time.Time
}

const (
	HeaderEventID       = "event-id"
	HeaderEventType     = "event-type"
	HeaderCorrelationID = "correlation-id"
	HeaderSchemaVersion = "schema-version"
	HeaderSource        = "source"
	HeaderTimestamp     = "timestamp"
	HeaderOriginalTopic = "original-topic"
	HeaderDLQError      = "dlq-error"
	HeaderDLQTimestamp  = "dlq-timestamp"
)

type MessageBuilder struct {
	msg Message
	err error
}

func NewMessage() *MessageBuilder {
	return &MessageBuilder{
		msg: Message{
			Headers:   make(map[string]string),
			Timestamp: time.Now().UTC(),
		},
	}
}

func (mb *MessageBuilder) WithKey(key string) *MessageBuilder {
	mb.msg.Key = key
	return mb
}

// WithJSON encodes value as the payload. Encoding failures surface from Build.
func (mb *MessageBuilder) WithJSON(value any) *MessageBuilder {
	data, err := json.Marshal(value)
	if err != nil {
		mb.err = ErrEncodeValue
		return mb
	}
	mb.msg.Value = data
	return mb
}

func (mb *MessageBuilder) WithHeader(key, value string) *MessageBuilder {
	if value != "" {
		mb.msg.Headers[key] = value
	}
	return mb
}

func (mb *MessageBuilder) WithEventType(eventType string) *MessageBuilder {
	return mb.WithHeader(HeaderEventType, eventType)
}

func (mb *MessageBuilder) WithCorrelationID(id string) *MessageBuilder {
	return mb.WithHeader(HeaderCorrelationID, id)
}

func (mb *MessageBuilder) WithSource(source string) *MessageBuilder {
	return mb.WithHeader(HeaderSource, source)
}

func (mb *MessageBuilder) WithTimestamp(ts time.Time) *MessageBuilder {
	if !ts.IsZero() {
		mb.msg.Timestamp = ts.UTC()
	}
	return mb
}

// Build fills the event id and timestamp headers when missing.
func (mb *MessageBuilder) Build() (Message, error) {
	if mb.err != nil {
		return Message{}, mb.err
	}
	if mb.msg.Headers[HeaderEventID] == "" {
		mb.msg.Headers[HeaderEventID] = uuid.NewString()
	}
	if mb.msg.Headers[HeaderTimestamp] == "" {
		mb.msg.Headers[HeaderTimestamp] = mb.msg.Timestamp.Format(time.RFC3339)
	}
	if mb.msg.Headers[HeaderSchemaVersion] == "" {
		mb.msg.Headers[HeaderSchemaVersion] = "1"
	}
	return mb.msg, nil
}

func (m Message) EventID() string       { return m.Headers[HeaderEventID] }
func (m Message) EventType() string     { return m.Headers[HeaderEventType] }
func (m Message) CorrelationID() string { return m.Headers[HeaderCorrelationID] }

func (m Message) Decode(v any) error {
	return json.Unmarshal(m.Value, v)
}
