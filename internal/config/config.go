// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/jonathan/resume-fit/internal/scoring"
)

// Environment variable names.
const (
	EnvAPIKey      = "GEMINI_API_KEY"
	EnvDatabaseURL = "DATABASE_URL"
	EnvPort        = "PORT"
	EnvJWTSecret   = "JWT_SECRET"
)

// Config is the application configuration. All fields are optional; missing
// values use defaults. Environment variables override file values.
type Config struct {
	APIKey           string `json:"api_key,omitempty"`           // Gemini API key
	Model            string `json:"model,omitempty"`             // Gemini model name
	DatabaseURL      string `json:"database_url,omitempty"`      // PostgreSQL URL for report history
	JWTSecret        string `json:"jwt_secret,omitempty"`        // Enables bearer-token auth when set
	Port             int    `json:"port,omitempty"`              // HTTP listen port
	BatchConcurrency int    `json:"batch_concurrency,omitempty"` // Concurrent semantic calls in batch mode
	Verbose          bool   `json:"verbose,omitempty"`           // Debug logging

	// Signal weights. Either all three full weights are set and sum to 1, or
	// none are; same for the two quick weights.
	KeywordWeight      float64 `json:"keyword_weight,omitempty"`
	FormatWeight       float64 `json:"format_weight,omitempty"`
	SemanticWeight     float64 `json:"semantic_weight,omitempty"`
	QuickKeywordWeight float64 `json:"quick_keyword_weight,omitempty"`
	QuickFormatWeight  float64 `json:"quick_format_weight,omitempty"`
}

// Load reads configuration from a JSON file. An empty path yields an empty
// config rather than an error.
func Load(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// ApplyEnv overrides config values from the process environment.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvAPIKey); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv(EnvDatabaseURL); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv(EnvJWTSecret); v != "" {
		c.JWTSecret = v
	}
	if v := os.Getenv(EnvPort); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.BatchConcurrency < 0 {
		return fmt.Errorf("config error: 'batch_concurrency' must be non-negative")
	}

	fullSet := c.KeywordWeight != 0 || c.FormatWeight != 0 || c.SemanticWeight != 0
	if fullSet {
		sum := c.KeywordWeight + c.FormatWeight + c.SemanticWeight
		if math.Abs(sum-1.0) > 0.001 {
			return fmt.Errorf("config error: full signal weights must sum to 1, got %.3f", sum)
		}
	}

	quickSet := c.QuickKeywordWeight != 0 || c.QuickFormatWeight != 0
	if quickSet {
		sum := c.QuickKeywordWeight + c.QuickFormatWeight
		if math.Abs(sum-1.0) > 0.001 {
			return fmt.Errorf("config error: quick signal weights must sum to 1, got %.3f", sum)
		}
	}

	return nil
}

// EngineConfig converts the tunable fields into the scoring engine's config.
// Unset weights keep the engine defaults.
func (c *Config) EngineConfig() scoring.Config {
	cfg := scoring.Config{BatchConcurrency: c.BatchConcurrency}

	weights := scoring.DefaultWeights()
	if c.KeywordWeight != 0 || c.FormatWeight != 0 || c.SemanticWeight != 0 {
		weights.FullKeywords = c.KeywordWeight
		weights.FullFormat = c.FormatWeight
		weights.FullSemantic = c.SemanticWeight
	}
	if c.QuickKeywordWeight != 0 || c.QuickFormatWeight != 0 {
		weights.QuickKeywords = c.QuickKeywordWeight
		weights.QuickFormat = c.QuickFormatWeight
	}
	cfg.Weights = weights

	return cfg
}
