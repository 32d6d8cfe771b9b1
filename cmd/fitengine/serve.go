package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-fit/internal/db"
	"github.com/jonathan/resume-fit/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  "Start an HTTP server that exposes REST endpoints for scoring resumes against job postings. Report history endpoints are enabled when DATABASE_URL is set; bearer-token auth when JWT_SECRET is set.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	if cfg.Port == 0 {
		cfg.Port = 8080
	}

	log, err := newLogger(true, cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	engine, cleanup, err := buildEngine(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	if cfg.APIKey == "" {
		log.Warn("GEMINI_API_KEY not set; semantic analysis uses neutral fallback")
	}

	var history *db.DB
	if cfg.DatabaseURL != "" {
		history, err = db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := history.EnsureSchema(ctx); err != nil {
			history.Close()
			return fmt.Errorf("failed to ensure database schema: %w", err)
		}
		log.Info("report history enabled")
	} else {
		log.Info("DATABASE_URL not set; report history disabled")
	}

	srv := server.New(server.Config{
		Port:      cfg.Port,
		JWTSecret: cfg.JWTSecret,
	}, engine, history, log)

	log.Info("starting server", zap.Int("port", cfg.Port))
	return srv.Start()
}
