package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Sink kinds accepted by SINK_KIND.
const (
	SinkKafka    = "kafka"
	SinkPostgres = "postgres"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	KafkaBrokers     []string
	KafkaSourceTopic string
	KafkaSinkTopic   string
	KafkaGroupID     string
	HTTPAddr         string
	LogLevel         string
	LogFormat        string
	ShutdownTimeout  time.Duration

	BatchSize          int
	BatchFlushInterval time.Duration

	// Sink selection: normalized readings go to the sink Kafka topic or to
	// a Postgres table.
	SinkKind    string
	PostgresURL string

	// KakaoMap region enrichment configuration.
	RegionEnabled   bool
	RegionTimeout   time.Duration
	RegionCacheSize int
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := envDuration("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	batchSize, err := envInt("BATCH_SIZE", 50)
	if err != nil {
		return nil, err
	}

	flushInterval, err := envDuration("BATCH_FLUSH_INTERVAL", 500*time.Millisecond)
	if err != nil {
		return nil, err
	}

	regionTimeout, err := envDuration("REGION_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, err
	}

	regionCacheSize, err := envInt("REGION_CACHE_SIZE", 1000)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		KafkaBrokers:       splitBrokers(envOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaSourceTopic:   envOrDefault("KAFKA_SOURCE_TOPIC", "raw-korea-readings"),
		KafkaSinkTopic:     envOrDefault("KAFKA_SINK_TOPIC", "normalized-korea-readings"),
		KafkaGroupID:       envOrDefault("KAFKA_GROUP_ID", "korea-sensor-etl"),
		HTTPAddr:           envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:           envOrDefault("LOG_LEVEL", "info"),
		LogFormat:          envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout:    shutdownTimeout,
		BatchSize:          batchSize,
		BatchFlushInterval: flushInterval,

		SinkKind:    envOrDefault("SINK_KIND", SinkKafka),
		PostgresURL: os.Getenv("POSTGRES_URL"),

		RegionEnabled:   os.Getenv("REGION_ENABLED") == "true",
		RegionTimeout:   regionTimeout,
		RegionCacheSize: regionCacheSize,
	}

	if len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_BROKERS is required")
	}
	if cfg.KafkaSourceTopic == "" {
		return nil, errors.New("KAFKA_SOURCE_TOPIC is required")
	}
	switch cfg.SinkKind {
	case SinkKafka:
		if cfg.KafkaSinkTopic == "" {
			return nil, errors.New("KAFKA_SINK_TOPIC is required")
		}
	case SinkPostgres:
		if cfg.PostgresURL == "" {
			return nil, errors.New("SINK_KIND is postgres but POSTGRES_URL is not set")
		}
	default:
		return nil, fmt.Errorf("invalid SINK_KIND %q", cfg.SinkKind)
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return d, nil
}

func envInt(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return n, nil
}

func splitBrokers(s string) []string {
	var brokers []string
	for _, b := range strings.Split(s, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
