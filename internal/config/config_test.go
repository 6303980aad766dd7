package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg, _ := Load()
	cfg.MongoURI = "mongodb://localhost:27017"
	cfg.MongoDBName = "veritas"
	cfg.JWTSecret = "secret"
	return cfg
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.NGramSize)
	assert.Equal(t, 50.0, cfg.MinSimilarity)
	assert.Equal(t, 10, cfg.MinWordCount)
	assert.Equal(t, 200, cfg.MaxExcerptLength)
	assert.Equal(t, 3, cfg.MaxExcerpts)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("NGRAM_SIZE", "4")
	t.Setenv("MIN_SIMILARITY_PERCENT", "60.5")
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.NGramSize)
	assert.Equal(t, 60.5, cfg.MinSimilarity)
	assert.Equal(t, "9090", cfg.ServerPort)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"missing mongo uri", func(c *Config) { c.MongoURI = "" }, true},
		{"missing db name", func(c *Config) { c.MongoDBName = "" }, true},
		{"missing jwt secret", func(c *Config) { c.JWTSecret = "" }, true},
		{"zero concurrent reports", func(c *Config) { c.MaxConcurrentReports = 0 }, true},
		{"zero ngram size", func(c *Config) { c.NGramSize = 0 }, true},
		{"similarity out of range", func(c *Config) { c.MinSimilarity = 120 }, true},
		{"negative word count", func(c *Config) { c.MinWordCount = -1 }, true},
		{"zero excerpt length", func(c *Config) { c.MaxExcerptLength = 0 }, true},
		{"zero excerpt cap", func(c *Config) { c.MaxExcerpts = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
