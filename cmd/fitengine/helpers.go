package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/jonathan/resume-fit/internal/config"
	"github.com/jonathan/resume-fit/internal/llm"
	"github.com/jonathan/resume-fit/internal/logger"
	"github.com/jonathan/resume-fit/internal/scoring"
	"github.com/jonathan/resume-fit/internal/semantic"
	"github.com/jonathan/resume-fit/internal/taxonomy"
)

// loadConfig reads the config file, applies environment overrides, and
// validates the result.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds the shared logger. CLI commands log human-readable lines;
// the server logs JSON.
func newLogger(json bool, cfg *config.Config) (*zap.Logger, error) {
	return logger.New(json, verbose || cfg.Verbose)
}

// buildEngine wires the taxonomy, the semantic analyzer, and the scoring
// engine. Without an API key the analyzer runs with a nil client and every
// semantic signal falls back to neutral; scoring still works.
func buildEngine(ctx context.Context, cfg *config.Config, log *zap.Logger) (*scoring.Engine, func(), error) {
	tax, err := taxonomy.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load keyword taxonomy: %w", err)
	}

	var client llm.Client
	cleanup := func() {}
	if cfg.APIKey != "" {
		gemini, err := llm.NewGeminiClient(ctx, cfg.APIKey, cfg.Model)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		client = gemini
		cleanup = func() { _ = gemini.Close() }
	}

	analyzer := semantic.NewAnalyzer(client, log)
	engine := scoring.NewEngine(tax, analyzer, log, cfg.EngineConfig())
	return engine, cleanup, nil
}

// readTextFile reads a resume or job posting file.
func readTextFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}
