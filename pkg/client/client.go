package client

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"creatorverse/pkg/kafka"
	kafka_config "creatorverse/pkg/kafka/config"
	kafka_middleware "creatorverse/pkg/kafka/middleware"
	"creatorverse/pkg/logger"
)

// Client holds the connections shared by a service process.
type Client struct {
	Mongo *mongo.Client
	Kafka *kafka.Producer
}

func NewClient() *Client {
	return &Client{}
}

func (c *Client) SetMongo(log *logger.Logger, mongoURI string, mongoConnTimeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), mongoConnTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB", "error", err)
	}

	log.Info("Successfully connected to MongoDB")
	c.Mongo = client
}

func (c *Client) SetKafka(log *logger.Logger, cfg *kafka_config.Config, topic, dlqTopic string) {
	producer, err := kafka.NewProducer(cfg, log, topic, dlqTopic)
	if err != nil {
		log.Fatal("Failed to create Kafka producer", "topic", topic, "error", err)
	}
	producer.Use(kafka_middleware.LoggingProducerMiddleware(log, producer.Topic()))

	cfg.LogConfiguration(log.Info)
	log.Info("Kafka producer ready", "topic", producer.Topic(), "dlq_topic", dlqTopic)
	c.Kafka = producer
}

func (c *Client) GracefulShutdown(log *logger.Logger) {
	if c.Kafka != nil {
		if err := c.Kafka.Close(); err != nil {
			log.Error("Failed to close Kafka producer", "error", err)
		} else {
			log.Info("Kafka producer closed")
		}
	}
	if c.Mongo == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := c.Mongo.Disconnect(ctx); err != nil {
		log.Error("Failed to disconnect from MongoDB", "error", err)
		return
	}
	log.Info("Disconnected from MongoDB")
}
