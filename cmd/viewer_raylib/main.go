// cmd/viewer_raylib/main.go
package main

import (
	"os"

	"space-war/internal/config"
	"space-war/internal/event"
	"space-war/internal/logging"
	"space-war/internal/rlview"
	"space-war/internal/telemetry"
)

// Отдельный бинарник: raylib и ebiten не уживаются в одном процессе.
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		boot := logging.New("info", os.Stderr, true)
		boot.Fatal().Err(err).Msg("Failed to load config")
	}
	logger := logging.New(cfg.Log.Level, os.Stderr, true)

	dispatcher := event.NewDispatcher()
	logging.NewEventLogger(logger).Subscribe(dispatcher)

	metrics, err := telemetry.New(nil)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create metrics")
	}
	metrics.Subscribe(dispatcher)

	logger.Info().Msg("Starting raylib viewer")
	rlview.NewApp(cfg, dispatcher, logger).Run()
}
