package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/viper"

	"portfolio/backend/internal/api"
	"portfolio/backend/internal/config"
	"portfolio/backend/internal/gateway"
	"portfolio/backend/internal/knowledge"
	"portfolio/backend/internal/llm"
	"portfolio/backend/internal/projects"
	"portfolio/backend/internal/service"
)

func Run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		// slog is not yet configured, so use the default logger for this critical error.
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	setupLogger(cfg.LogLevel)

	logConfigSource()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	generator, err := llm.NewGeminiProvider(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		slog.Error("Failed to initialize generation backend", "error", err)
		return 1
	}
	if cfg.GeminiAPIKey == "" {
		slog.Warn("No Gemini API key configured, running in free-tier mode")
	}

	store := knowledge.NewStore()
	retriever := knowledge.NewRetriever(store)
	projectService := projects.NewService(projects.NewGitHubFetcher(cfg.GitHubOwner, cfg.GitHubToken))
	chatService := service.NewChatService(retriever, generator, projectService)

	limiter := gateway.NewRateLimiter(cfg.RateLimitMax, cfg.RateLimitWindow())
	limiter.StartSweeper(ctx)

	chatHandler := api.NewChatHandler(chatService, limiter)
	projectHandler := api.NewProjectHandler(projectService)
	router := api.NewRouter(chatHandler, projectHandler, cfg.StaticDir)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "port", cfg.AppPort)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			return 1
		}
	case <-ctx.Done():
		slog.Info("Shutdown signal received, draining connections")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Graceful shutdown failed", "error", err)
			return 1
		}
	}

	return 0
}

func logConfigSource() {
	configFileUsed := viper.ConfigFileUsed()
	if configFileUsed != "" {
		slog.Info("Successfully loaded configuration from file.", "file", configFileUsed)
	} else {
		slog.Info("Configuration file not found. Using environment variables and defaults.")
	}
}

func setupLogger(logLevel string) {
	var level slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
