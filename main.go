package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Thecodingpm/calories-counterr/internal/config"
	"github.com/Thecodingpm/calories-counterr/internal/logger"
	"github.com/Thecodingpm/calories-counterr/internal/server"
	"github.com/Thecodingpm/calories-counterr/internal/services"
	"github.com/Thecodingpm/calories-counterr/internal/session"
	"github.com/Thecodingpm/calories-counterr/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Warn(".env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.InitWithConfig(logger.Config{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	}); err != nil {
		logger.Fatalf("Failed to init logger: %v", err)
	}
	logger.Info("Configuration loaded", "storage_backend", cfg.Storage.Backend)

	store, err := newStore(cfg)
	if err != nil {
		logger.Fatalf("Failed to init storage: %v", err)
	}

	ctx := context.Background()
	aiService, err := services.NewAIService(ctx, cfg.GeminiAPIKey)
	if err != nil {
		logger.Fatalf("Failed to init AI service: %v", err)
	}

	authService := services.NewAuthService(store, cfg.JWTSecret)
	foodService := services.NewFoodService(store)
	entryService := services.NewEntryService(store)
	sessions := session.NewManager(store, authService)
	logger.Info("Services initialized")

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: server.New(sessions, foodService, entryService, aiService, cfg.JWTSecret).Router(),
	}

	go func() {
		logger.Info("HTTP server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown failed", "error", err)
	}
}

func newStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.Storage.Backend {
	case config.BackendRedis:
		return storage.NewRedisStore(cfg.Redis)
	case config.BackendPostgres:
		return storage.NewPostgresStore(cfg.DB)
	default:
		if cfg.Storage.SimulatedLatencyMS > 0 {
			return storage.NewMemoryStoreWithLatency(time.Duration(cfg.Storage.SimulatedLatencyMS) * time.Millisecond), nil
		}
		return storage.NewMemoryStore(), nil
	}
}
