package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/jonathan/resume-fit/internal/db"
	"github.com/jonathan/resume-fit/internal/scoring"
	"github.com/jonathan/resume-fit/internal/server/middleware"
)

// Config holds server configuration.
type Config struct {
	Port      int
	JWTSecret string
}

// Server is the HTTP API around the scoring engine.
type Server struct {
	httpServer *http.Server
	engine     *scoring.Engine
	history    *db.DB
	validate   *validator.Validate
	logger     *zap.Logger
}

// New creates a server. The history store may be nil, which disables the
// report-history endpoints.
func New(cfg Config, engine *scoring.Engine, history *db.DB, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Port == 0 {
		cfg.Port = 8080
	}

	s := &Server{
		engine:   engine,
		history:  history,
		validate: validator.New(),
		logger:   logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /score", s.handleScore)
	mux.HandleFunc("POST /score/quick", s.handleQuickScore)
	mux.HandleFunc("POST /score/batch", s.handleScoreBatch)
	mux.HandleFunc("GET /taxonomy", s.handleTaxonomy)
	mux.HandleFunc("GET /reports", s.handleListReports)
	mux.HandleFunc("GET /reports/{id}", s.handleGetReport)
	mux.HandleFunc("GET /health", s.handleHealth)

	var handler http.Handler = mux
	if cfg.JWTSecret != "" {
		handler = middleware.Auth(cfg.JWTSecret, []string{"/health"})(handler)
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(handler),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // batch runs hold several semantic calls
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start begins listening and blocks until an interrupt or termination signal
// arrives, then shuts down gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}

	s.logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.history != nil {
		s.history.Close()
	}
	s.logger.Info("server stopped")
	return nil
}

// Handler exposes the configured HTTP handler for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// withLogging logs one line per request.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("failed to encode response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
