package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"creatorverse/pkg/client"
	kafka_config "creatorverse/pkg/kafka/config"
	"creatorverse/pkg/logger"
)

var (
	reMongoScheme     = regexp.MustCompile(`^mongodb(\+srv)?://`)
	reMongoCredential = regexp.MustCompile(`(mongodb(\+srv)?://)[^:]+:[^@]+@`)
)

type Config struct {
	EnvFile string

	MongoURI          string
	MongoDatabaseName string
	MongoConnTimeout  time.Duration

	Port     string
	LogLevel string

	RateLimitRequests int
	RateLimitWindow   time.Duration

	RequestTimeout time.Duration
	IdempotencyTTL time.Duration
	MaxRequestSize int

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	KafkaEnabled  bool
	KafkaTopic    string
	KafkaDLQTopic string
	// PublishTimeout bounds one background event publish, independent of the request.
	PublishTimeout time.Duration

	Log    *logger.Logger
	Client *client.Client
}

// Load reads the optional env file and then the process environment. Variables already
// set in the environment win over the file.
func Load(serviceName string) *Config {
	envFile := getEnvStr(EnvEnvFile, DefaultEnvFile)
	envFileErr := loadEnvFile(envFile)

	cfg := FromEnv()
	cfg.EnvFile = envFile
	cfg.Log = logger.New(logger.Config{
		Level:     cfg.LogLevel,
		Format:    logger.JSON,
		AddSource: true,
		Service:   serviceName,
	})
	cfg.Client = client.NewClient()

	if envFileErr != nil {
		cfg.Log.Warn("Failed to load env file", "path", envFile, "error", envFileErr)
	}

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal(err.Error())
	}
	cfg.LogConfiguration()
	return cfg
}

// FromEnv builds a Config from the environment alone, without logger or clients.
func FromEnv() *Config {
	return &Config{
		MongoURI:          getEnvStr(EnvMongoURI, DefaultMongoURI),
		MongoDatabaseName: getEnvStr(EnvMongoDatabaseName, DefaultMongoDatabaseName),
		MongoConnTimeout:  getEnvDuration(EnvMongoConnTimeout, DefaultMongoConnTimeout),

		Port:     getEnvStr(EnvPort, DefaultPort),
		LogLevel: getEnvStr(EnvLogLevel, DefaultLogLevel),

		RateLimitRequests: getEnvNum(EnvRateLimitRequests, DefaultRateLimitRequests),
		RateLimitWindow:   getEnvDuration(EnvRateLimitWindow, DefaultRateLimitWindow),

		RequestTimeout: getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),
		IdempotencyTTL: getEnvDuration(EnvIdempotencyTTL, DefaultIdempotencyTTL),
		MaxRequestSize: getEnvNum(EnvMaxRequestSize, DefaultMaxRequestSize),

		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),

		KafkaEnabled:   getEnvBool(EnvKafkaEnabled, DefaultKafkaEnabled),
		KafkaTopic:     getEnvStr(EnvKafkaTopic, DefaultKafkaTopic),
		KafkaDLQTopic:  getEnvStr(EnvKafkaDLQTopic, DefaultKafkaDLQTopic),
		PublishTimeout: getEnvDuration(EnvPublishTimeout, DefaultPublishTimeout),
	}
}

// a missing env file is normal outside local development
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (cfg *Config) SetMongo() {
	cfg.Client.SetMongo(cfg.Log, cfg.MongoURI, cfg.MongoConnTimeout)
}

// SetKafka builds the event producer from the KAFKA_* environment. It is a
// no-op when Kafka is disabled.
func (cfg *Config) SetKafka() {
	if !cfg.KafkaEnabled {
		cfg.Log.Info("Kafka disabled, creator events will not be published")
		return
	}
	cfg.Client.SetKafka(cfg.Log, kafka_config.Load(), cfg.KafkaTopic, cfg.KafkaDLQTopic)
}

func (cfg *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}

	if cfg.MongoURI == "" {
		problems = append(problems, "MongoURI cannot be empty")
	} else if !reMongoScheme.MatchString(cfg.MongoURI) {
		problems = append(problems, fmt.Sprintf("MongoURI must start with 'mongodb://' or 'mongodb+srv://', got: %s", redactMongoURI(cfg.MongoURI)))
	}
	if cfg.MongoDatabaseName == "" {
		problems = append(problems, "MongoDatabaseName cannot be empty")
	}

	durations := []struct {
		name  string
		value time.Duration
	}{
		{"MongoConnTimeout", cfg.MongoConnTimeout},
		{"RateLimitWindow", cfg.RateLimitWindow},
		{"RequestTimeout", cfg.RequestTimeout},
		{"IdempotencyTTL", cfg.IdempotencyTTL},
		{"ReadTimeout", cfg.ReadTimeout},
		{"WriteTimeout", cfg.WriteTimeout},
		{"IdleTimeout", cfg.IdleTimeout},
		{"ShutdownTimeout", cfg.ShutdownTimeout},
		{"PublishTimeout", cfg.PublishTimeout},
	}
	for _, d := range durations {
		if d.value <= 0 {
			problems = append(problems, fmt.Sprintf("%s must be positive, got: %s", d.name, d.value))
		}
	}

	if cfg.RateLimitRequests <= 0 {
		problems = append(problems, fmt.Sprintf("RateLimitRequests must be positive, got: %d", cfg.RateLimitRequests))
	}
	if cfg.MaxRequestSize <= 0 {
		problems = append(problems, fmt.Sprintf("MaxRequestSize must be positive, got: %d", cfg.MaxRequestSize))
	}

	if cfg.KafkaEnabled && strings.TrimSpace(cfg.KafkaTopic) == "" {
		problems = append(problems, "KafkaTopic cannot be empty when Kafka is enabled")
	}

	if len(problems) > 0 {
		var b strings.Builder
		b.WriteString("Configuration validation failed:\n")
		for i, p := range problems {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, p)
		}
		return errors.New(b.String())
	}

	return nil
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded successfully",
		"env_file", cfg.EnvFile,
		"mongo_uri", redactMongoURI(cfg.MongoURI),
		"mongo_database", cfg.MongoDatabaseName,
		"mongo_conn_timeout", cfg.MongoConnTimeout,
		"port", cfg.Port,
		"log_level", cfg.LogLevel,
		"rate_limit_requests", cfg.RateLimitRequests,
		"rate_limit_window", cfg.RateLimitWindow,
		"request_timeout", cfg.RequestTimeout,
		"idempotency_ttl", cfg.IdempotencyTTL,
		"max_request_size", cfg.MaxRequestSize,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"idle_timeout", cfg.IdleTimeout,
		"shutdown_timeout", cfg.ShutdownTimeout,
		"kafka_enabled", cfg.KafkaEnabled,
		"kafka_topic", cfg.KafkaTopic,
		"publish_timeout", cfg.PublishTimeout,
	)
}

func redactMongoURI(uri string) string {
	return reMongoCredential.ReplaceAllString(uri, "${1}***:***@")
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func (cfg *Config) GracefulShutdown() {
	cfg.Client.GracefulShutdown(cfg.Log)
}

func NormalizePaginationLimit(limit int) int {
	if limit <= 0 {
		return DefaultPageSize
	}
	if limit > DefaultPaginationLimit {
		return DefaultPaginationLimit
	}
	return limit
}

func NormalizeOffset(offset int64) int64 {
	return max(0, offset)
}
