package kafka_config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds producer-side Kafka settings.
type Config struct {
	Brokers []string

	ProducerMaxAttempts  int
	ProducerBatchTimeout time.Duration
	ProducerWriteTimeout time.Duration
	ProducerRequireAcks  int    // -1 = all, 0 = none, 1 = leader only
	ProducerCompression  string // "none", "gzip", "snappy", "lz4", "zstd"
}

func Load() *Config {
	var brokers []string
	for _, b := range strings.Split(getEnvStr(EnvKafkaBrokers, DefaultKafkaBrokers), ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}

	return &Config{
		Brokers:              brokers,
		ProducerMaxAttempts:  getEnvInt(EnvKafkaProducerMaxAttempts, DefaultProducerMaxAttempts),
		ProducerBatchTimeout: getEnvDuration(EnvKafkaProducerBatchTimeout, DefaultProducerBatchTimeout),
		ProducerWriteTimeout: getEnvDuration(EnvKafkaProducerWriteTimeout, DefaultProducerWriteTimeout),
		ProducerRequireAcks:  getEnvInt(EnvKafkaProducerRequireAcks, DefaultProducerRequireAcks),
		ProducerCompression:  strings.ToLower(getEnvStr(EnvKafkaProducerCompression, DefaultProducerCompression)),
	}
}

var validCompressions = map[string]bool{
	"none": true, "gzip": true, "snappy": true, "lz4": true, "zstd": true,
}

func (cfg *Config) Validate() error {
	var problems []string

	if len(cfg.Brokers) == 0 {
		problems = append(problems, "At least one Kafka broker is required")
	}
	if cfg.ProducerMaxAttempts <= 0 {
		problems = append(problems, fmt.Sprintf("ProducerMaxAttempts must be positive, got: %d", cfg.ProducerMaxAttempts))
	}
	if cfg.ProducerBatchTimeout <= 0 {
		problems = append(problems, fmt.Sprintf("ProducerBatchTimeout must be positive, got: %s", cfg.ProducerBatchTimeout))
	}
	if cfg.ProducerWriteTimeout <= 0 {
		problems = append(problems, fmt.Sprintf("ProducerWriteTimeout must be positive, got: %s", cfg.ProducerWriteTimeout))
	}
	if !validCompressions[cfg.ProducerCompression] {
		problems = append(problems, fmt.Sprintf("ProducerCompression must be one of [none, gzip, snappy, lz4, zstd], got: %s", cfg.ProducerCompression))
	}
	if cfg.ProducerRequireAcks < -1 || cfg.ProducerRequireAcks > 1 {
		problems = append(problems, fmt.Sprintf("ProducerRequireAcks must be -1, 0, or 1, got: %d", cfg.ProducerRequireAcks))
	}

	if len(problems) == 0 {
		return nil
	}
	var b strings.Builder
	b.WriteString("Kafka configuration validation failed:\n")
	for i, p := range problems {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, p)
	}
	return errors.New(b.String())
}

func (cfg *Config) LogConfiguration(logFunc func(msg string, args ...any)) {
	logFunc("Kafka configuration loaded",
		"brokers", cfg.Brokers,
		"producer_max_attempts", cfg.ProducerMaxAttempts,
		"producer_batch_timeout", cfg.ProducerBatchTimeout,
		"producer_write_timeout", cfg.ProducerWriteTimeout,
		"producer_require_acks", cfg.ProducerRequireAcks,
		"producer_compression", cfg.ProducerCompression,
	)
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
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
