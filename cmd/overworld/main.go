// Package main is the entry point for the overworld.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/overworld/internal/game"
	"github.com/samdwyer/overworld/internal/gamedata"
	"github.com/samdwyer/overworld/internal/logger"
	"github.com/samdwyer/overworld/internal/spectate"
	"github.com/samdwyer/overworld/internal/telemetry"
	"github.com/samdwyer/overworld/internal/ui"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := game.ConfigFromEnv()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	setupOTelEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sessionID := uuid.NewString()

	logs, closer, err := logger.Open(cfg.LogFile)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer closer.Close()
	entry := logs.WithField("session", sessionID)

	shutdown, err := telemetry.Setup(ctx, sessionID)
	if err != nil {
		entry.WithError(err).Warn("telemetry setup failed, running without observability")
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				entry.WithError(err).Warn("telemetry shutdown failed")
			}
		}()
	}

	if err := run(ctx, cfg, entry); err != nil {
		entry.WithError(err).Error("game exited")
		log.Fatalf("Game error: %v", err)
	}
}

func run(ctx context.Context, cfg game.Config, log *logrus.Entry) error {
	var (
		bundle *gamedata.Bundle
		err    error
	)
	if cfg.WorldFile != "" {
		bundle, err = gamedata.LoadWorldFile(ctx, cfg.WorldFile, cfg.Seed)
	} else {
		bundle, err = gamedata.LoadWorld(ctx, cfg.Seed)
	}
	if err != nil {
		return err
	}
	log.WithField("maps", len(bundle.Data.Maps)).Info("world loaded")

	var hub *spectate.Hub
	if cfg.SpectateAddr != "" {
		hub = spectate.NewHub(log)
		go func() {
			if err := spectate.ListenAndServe(ctx, cfg.SpectateAddr, hub); err != nil {
				log.WithError(err).Error("spectator server stopped")
			}
		}()
		log.WithField("addr", cfg.SpectateAddr).Info("spectator stream listening")
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}

	g := game.New(cfg, screen, bundle, log, hub)
	return g.Run(ctx)
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_OVERWORLD_API_KEY")
	if apiKey == "" {
		return
	}
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}
	dataset := os.Getenv("HONEYCOMB_OVERWORLD_DATASET")
	if dataset == "" {
		dataset = "overworld" // default dataset name
	}
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
