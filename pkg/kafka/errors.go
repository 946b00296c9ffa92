package kafka

import (
	"errors"
	"fmt"
)

var (
	ErrProducerClosed = errors.New("kafka producer is closed")
	ErrEmptyKey       = errors.New("message key cannot be empty")
	ErrEmptyValue     = errors.New("message value cannot be empty")
	ErrEncodeValue    = errors.New("message value could not be encoded")
)

// PublishError reports a write that failed, and whether the dead letter copy made it.
type PublishError struct {
	Topic     string
	Key       string
	Err       error
	DLQErr    error
	SentToDLQ bool
}

func (e *PublishError) Error() string {
	switch {
	case e.SentToDLQ:
		return fmt.Sprintf("publish to %s failed (copied to DLQ): %v", e.Topic, e.Err)
	case e.DLQErr != nil:
		return fmt.Sprintf("publish to %s failed: %v (DLQ write also failed: %v)", e.Topic, e.Err, e.DLQErr)
	default:
		return fmt.Sprintf("publish to %s failed: %v", e.Topic, e.Err)
	}
}

func (e *PublishError) Unwrap() error {
	return e.Err
}
