package kafka

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/compress"

	kafka_config "creatorverse/pkg/kafka/config"
	"creatorverse/pkg/logger"
)

// Writer is the subset of *kafka.Writer the producer needs.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type PublishFunc func(ctx context.Context, msg Message) error

// ProducerMiddleware wraps a publish; it sees the message before and the error after.
type ProducerMiddleware func(ctx context.Context, msg Message, next PublishFunc) error

type Producer struct {
	writer     Writer
	dlqWriter  Writer
	topic      string
	middleware []ProducerMiddleware
	closed     bool
	mu         sync.RWMutex
}

func NewProducer(cfg *kafka_config.Config, log *logger.Logger, topic, dlqTopic string) (*Producer, error) {
	if cfg == nil {
		return nil, errors.New("kafka config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if topic == "" {
		return nil, errors.New("topic cannot be empty")
	}

	errorLogger := kafka.LoggerFunc(func(msg string, args ...any) {
		log.Error("kafka writer error", "topic", topic, "detail", fmt.Sprintf(msg, args...))
	})

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: requiredAcks(cfg.ProducerRequireAcks),
		Compression:  compression(cfg.ProducerCompression),
		MaxAttempts:  cfg.ProducerMaxAttempts,
		BatchTimeout: cfg.ProducerBatchTimeout,
		WriteTimeout: cfg.ProducerWriteTimeout,
		ErrorLogger:  errorLogger,
	}

	var dlqWriter Writer
	if dlqTopic != "" {
		dlqWriter = &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        dlqTopic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			Compression:  compression(cfg.ProducerCompression),
			MaxAttempts:  3,
			ErrorLogger:  errorLogger,
		}
	}

	return NewProducerWithWriters(topic, writer, dlqWriter), nil
}

// NewProducerWithWriters builds a producer over caller-supplied writers. dlq may be nil.
func NewProducerWithWriters(topic string, writer, dlq Writer) *Producer {
	return &Producer{
		writer:    writer,
		dlqWriter: dlq,
		topic:     topic,
	}
}

func requiredAcks(acks int) kafka.RequiredAcks {
	switch acks {
	case 0:
		return kafka.RequireNone
	case 1:
		return kafka.RequireOne
	default:
		return kafka.RequireAll
	}
}

func compression(name string) compress.Compression {
	switch name {
	case "gzip":
		return compress.Gzip
	case "lz4":
		return compress.Lz4
	case "zstd":
		return compress.Zstd
	case "none":
		return 0
	default:
		return compress.Snappy
	}
}

func (p *Producer) Use(mw ProducerMiddleware) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.middleware = append(p.middleware, mw)
}

func (p *Producer) Topic() string {
	return p.topic
}

func (p *Producer) Publish(ctx context.Context, msg Message) error {
	p.mu.RLock()
	closed := p.closed
	chain := p.middleware
	p.mu.RUnlock()

	if closed {
		return ErrProducerClosed
	}
	if msg.Key == "" {
		return ErrEmptyKey
	}
	if len(msg.Value) == 0 {
		return ErrEmptyValue
	}

	handler := PublishFunc(p.write)
	for i := len(chain) - 1; i >= 0; i-- {
		mw, next := chain[i], handler
		handler = func(ctx context.Context, m Message) error {
			return mw(ctx, m, next)
		}
	}
	return handler(ctx, msg)
}

func (p *Producer) write(ctx context.Context, msg Message) error {
	err := p.writer.WriteMessages(ctx, toKafka(msg))
	if err == nil {
		return nil
	}

	pubErr := &PublishError{Topic: p.topic, Key: msg.Key, Err: err}
	if p.dlqWriter != nil {
		pubErr.DLQErr = p.sendToDLQ(ctx, msg, err)
		pubErr.SentToDLQ = pubErr.DLQErr == nil
	}
	return pubErr
}

func (p *Producer) sendToDLQ(ctx context.Context, msg Message, cause error) error {
	dead := msg
	dead.Headers = maps.Clone(msg.Headers)
	if dead.Headers == nil {
		dead.Headers = make(map[string]string)
	}
	dead.Headers[HeaderOriginalTopic] = p.topic
	dead.Headers[HeaderDLQError] = cause.Error()
	dead.Headers[HeaderDLQTimestamp] = time.Now().UTC().Format(time.RFC3339)
	dead.Timestamp = time.Now().UTC()

	return p.dlqWriter.WriteMessages(ctx, toKafka(dead))
}

func toKafka(msg Message) kafka.Message {
	km := kafka.Message{
		Key:   []byte(msg.Key),
		Value: msg.Value,
		Time:  msg.Timestamp,
	}
	for k, v := range msg.Headers {
		km.Headers = append(km.Headers, kafka.Header{Key: k, Value: []byte(v)})
	}
	return km
}

func (p *Producer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	var errs []error
	if p.writer != nil {
		errs = append(errs, p.writer.Close())
	}
	if p.dlqWriter != nil {
		errs = append(errs, p.dlqWriter.Close())
	}
	return errors.Join(errs...)
}
