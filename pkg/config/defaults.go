package config

import "time"

const (
	DefaultEnvFile = ".env"

	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "creatorverse"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultRateLimitRequests = 30
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultPaginationLimit = 100
	DefaultPageSize        = 10

	DefaultKafkaEnabled   = false
	DefaultKafkaTopic     = "creators.events"
	DefaultKafkaDLQTopic  = "creators.events.dlq"
	DefaultPublishTimeout = 10 * time.Second
)
