package kafka_middleware

import (
	"context"
	"time"

	"creatorverse/pkg/kafka"
	"creatorverse/pkg/logger"
)

func LoggingProducerMiddleware(log *logger.Logger, topic string) kafka.ProducerMiddleware {
	return func(ctx context.Context, msg kafka.Message, next kafka.PublishFunc) error {
		start := time.Now()
		err := next(ctx, msg)

		attrs := []any{
			"topic", topic,
			"key", msg.Key,
			"event_id", msg.EventID(),
			"event_type", msg.EventType(),
			"correlation_id", msg.CorrelationID(),
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if err != nil {
			log.Error("Failed to publish message", append(attrs, "error", err)...)
			return err
		}
		log.Debug("Published message", attrs...)
		return nil
	}
}
