package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/yt-insights/channel-report/internal/api"
	"github.com/yt-insights/channel-report/internal/config"
	"github.com/yt-insights/channel-report/internal/logging"
	"go.uber.org/zap"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.NewLogger(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// Requests answer with an "unconfigured" error until a key is provided
	if err := cfg.Validate(); err != nil {
		logger.Warn("Configuration incomplete", zap.Error(err))
	}

	// Initialize YouTube lookup
	lookup, err := api.NewYouTubeLookup(context.Background(), cfg.YouTubeAPIKey, logger)
	if err != nil {
		logger.Fatal("Failed to initialize YouTube API", zap.Error(err))
	}

	server := api.NewServer(cfg, lookup, logger)

	logger.Info("Server starting",
		zap.String("port", cfg.Port),
		zap.String("staticDir", cfg.StaticDir),
		zap.Duration("requestTimeout", cfg.RequestTimeout))
	if err := server.Start(cfg.Port); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
