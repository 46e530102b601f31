// Package main is the entrypoint for the devsecops-app API server.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/devsecops/devsecops-app/internal/auth"
	"github.com/devsecops/devsecops-app/internal/config"
	"github.com/devsecops/devsecops-app/internal/handler"
	"github.com/devsecops/devsecops-app/internal/metrics"
	"github.com/devsecops/devsecops-app/internal/middleware"
	"github.com/devsecops/devsecops-app/internal/server"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := initLogger(cfg)
	warnInsecureConfig(cfg, logger)

	credential, err := auth.NewCredential(cfg.APIKey)
	if err != nil {
		logger.Error("failed to configure API key", "error", err)
		os.Exit(1)
	}

	recorder := metrics.NewInMemory()

	// Setup router
	r := setupRouter(cfg, credential, recorder, logger)

	// Create and run server
	srv := server.New(r, server.Options{
		Addr:            cfg.Addr(),
		ReadTimeout:     cfg.ReadTimeout,
		WriteTimeout:    cfg.WriteTimeout,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}, logger)

	srv.OnShutdown("metrics", func(ctx context.Context) error {
		logger.Info("request metrics", slog.Any("metrics", recorder.Snapshot()))
		return nil
	})

	logger.Info("starting server",
		"addr", cfg.Addr(),
		"version", cfg.AppVersion,
		"env", cfg.Environment,
		"debug", cfg.Debug,
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// initLogger initializes the slog logger based on configuration.
// Debug mode forces the debug level and adds source locations.
func initLogger(cfg *config.Config) *slog.Logger {
	var h slog.Handler

	level := parseLogLevel(cfg.LogLevel)
	if cfg.Debug {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: cfg.Debug,
	}

	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// warnInsecureConfig logs settings that are unsafe outside development.
func warnInsecureConfig(cfg *config.Config, logger *slog.Logger) {
	if cfg.Debug && !cfg.IsDevelopment() {
		logger.Warn("debug mode enabled outside development", "env", cfg.Environment)
	}
	if cfg.UsesDefaultAPIKey() && !cfg.IsDevelopment() {
		logger.Warn("default API key in use; set API_KEY", "env", cfg.Environment)
	}
}

// setupRouter configures the chi router with all routes and middleware.
func setupRouter(
	cfg *config.Config,
	credential *auth.Credential,
	recorder metrics.Recorder,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware. Security wraps Recoverer so 500s carry the headers.
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.GetHead)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Security())
	r.Use(middleware.Recoverer(logger, recorder))
	r.Use(middleware.MaxBodySize(cfg.MaxRequestBodySize))

	// 404 handlers
	h := handler.New()
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	healthHandler := handler.NewHealthHandler()
	infoHandler := handler.NewInfoHandler(handler.ServiceInfo{
		Name:        cfg.AppName,
		Version:     cfg.AppVersion,
		Environment: cfg.Environment,
	})
	userHandler := handler.NewUserHandler(logger, recorder)

	requireAPIKey := middleware.RequireAPIKey(middleware.AuthConfig{
		Logger:     logger,
		Credential: credential,
		Metrics:    recorder,
	})

	// Health endpoint (no auth required)
	r.Get("/health", healthHandler.Health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/info", infoHandler.Info)

		// User resources require the API key
		r.With(requireAPIKey).Get("/users", userHandler.List)
		r.With(requireAPIKey).Post("/users", userHandler.Create)
	})

	return r
}
