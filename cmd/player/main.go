package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/vuongmanhnghia/video-player/internal/app"
	"github.com/vuongmanhnghia/video-player/internal/config"
	"github.com/vuongmanhnghia/video-player/pkg/logger"
)

func main() {
	// Startup logger until configuration is known
	bootLog, _ := logger.New(logger.Config{
		Level:  "info",
		Format: "text",
	})

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		bootLog.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	log, err := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
	})
	if err != nil {
		bootLog.Fatalf("Failed to initialize logger: %v", err)
	}
	defer log.Close()

	log.Info("Starting video player")

	player, err := app.New(cfg, log)
	if err != nil {
		log.Fatalf("Failed to create player: %v", err)
	}

	// Stop between commands on interrupt
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := player.Start(ctx); err != nil {
		log.Fatalf("Failed to start player: %v", err)
	}

	runErr := player.Run(ctx, os.Stdin, os.Stdout)

	log.Info("Shutting down gracefully...")
	player.Stop()

	if runErr != nil {
		log.WithError(runErr).Error("Session failed")
		log.Close()
		os.Exit(1)
	}
	log.Info("Player stopped successfully")
}
