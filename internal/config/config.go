package config

import (
	"fmt"
	"time"

	"github.com/courseloop/veritas/internal/configs/env"
)

// Config holds all configuration for the application
type Config struct {
	// MongoDB
	MongoURI    string
	MongoDBName string

	// Redis
	RedisHost               string
	RedisPassword           string
	RedisStreamKey          string
	RedisConsumerGroup      string
	RedisDeadLetterKey      string
	StreamRetentionDuration time.Duration

	// JWT
	JWTSecret string
	JWTIssuer string

	// Rate Limiting
	RateLimitRPS float64

	// Concurrency
	MaxConcurrentReports int

	// Computation
	ComputationTimeout time.Duration

	// Similarity engine
	NGramSize        int
	MinSimilarity    float64
	MinWordCount     int
	MaxExcerptLength int
	MaxExcerpts      int

	// Logging
	LogLevel string

	// Server
	ServerPort  string
	MetricsPort string
}

func Load() (*Config, error) {
	cfg := &Config{}

	// MongoDB
	cfg.MongoURI = env.GetEnv("MONGO_URI", "")
	cfg.MongoDBName = env.GetEnv("MONGO_DB_NAME", "")

	// Redis
	cfg.RedisHost = env.GetEnv("REDIS_HOST", "localhost:6379")
	cfg.RedisPassword = env.GetEnv("REDIS_PASSWORD", "")
	cfg.RedisStreamKey = env.GetEnv("REDIS_STREAM_KEY", "submissions:stream")
	cfg.RedisConsumerGroup = env.GetEnv("REDIS_CONSUMER_GROUP", "submissions:group")
	cfg.RedisDeadLetterKey = env.GetEnv("REDIS_DEAD_LETTER_KEY", "submissions:dlq")
	retentionHours := env.GetEnvInt("STREAM_RETENTION_HOURS", 24)
	cfg.StreamRetentionDuration = time.Duration(retentionHours) * time.Hour

	// JWT
	cfg.JWTSecret = env.GetEnv("JWT_SECRET", "")
	cfg.JWTIssuer = env.GetEnv("JWT_ISSUER", "veritas")

	// Rate Limiting
	cfg.RateLimitRPS = env.GetEnvFloat("RATE_LIMIT_RPS", 10.0)

	// Concurrency
	cfg.MaxConcurrentReports = env.GetEnvInt("MAX_CONCURRENT_REPORTS", 5)

	// Computation
	timeoutMinutes := env.GetEnvInt("COMPUTATION_TIMEOUT_MINUTES", 10)
	cfg.ComputationTimeout = time.Duration(timeoutMinutes) * time.Minute

	// Similarity engine
	cfg.NGramSize = env.GetEnvInt("NGRAM_SIZE", 3)
	cfg.MinSimilarity = env.GetEnvFloat("MIN_SIMILARITY_PERCENT", 50.0)
	cfg.MinWordCount = env.GetEnvInt("MIN_WORD_COUNT", 10)
	cfg.MaxExcerptLength = env.GetEnvInt("MAX_EXCERPT_LENGTH", 200)
	cfg.MaxExcerpts = env.GetEnvInt("MAX_EXCERPTS", 3)

	// Logging
	cfg.LogLevel = env.GetEnv("LOG_LEVEL", "info")

	// Server
	cfg.ServerPort = env.GetEnv("SERVER_PORT", "8080")
	cfg.MetricsPort = env.GetEnv("METRICS_PORT", "2112")

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.MongoURI == "" {
		return fmt.Errorf("MONGO_URI is required")
	}
	if c.MongoDBName == "" {
		return fmt.Errorf("MONGO_DB_NAME is required")
	}
	if c.RedisHost == "" {
		return fmt.Errorf("REDIS_HOST is required")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.MaxConcurrentReports <= 0 {
		return fmt.Errorf("MAX_CONCURRENT_REPORTS must be greater than 0")
	}
	if c.StreamRetentionDuration <= 0 {
		return fmt.Errorf("STREAM_RETENTION_HOURS must be greater than 0")
	}
	if c.NGramSize <= 0 {
		return fmt.Errorf("NGRAM_SIZE must be greater than 0")
	}
	if c.MinSimilarity < 0 || c.MinSimilarity > 100 {
		return fmt.Errorf("MIN_SIMILARITY_PERCENT must be within [0, 100]")
	}
	if c.MinWordCount < 0 {
		return fmt.Errorf("MIN_WORD_COUNT must not be negative")
	}
	if c.MaxExcerptLength <= 0 {
		return fmt.Errorf("MAX_EXCERPT_LENGTH must be greater than 0")
	}
	if c.MaxExcerpts <= 0 {
		return fmt.Errorf("MAX_EXCERPTS must be greater than 0")
	}
	return nil
}
