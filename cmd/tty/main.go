// cmd/tty/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"space-war/internal/config"
	"space-war/internal/event"
	"space-war/internal/logging"
	"space-war/internal/telemetry"
	"space-war/internal/term"

	"github.com/gdamore/tcell/v2"
)

// logFile: терминал занят игрой, поэтому лог пишется в файл
const logFile = "space_war_tty.log"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(".")
	if err != nil {
		return err
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer f.Close()
	logger := logging.New(cfg.Log.Level, f, false)

	dispatcher := event.NewDispatcher()
	logging.NewEventLogger(logger).Subscribe(dispatcher)
	metrics, err := telemetry.New(nil)
	if err != nil {
		return err
	}
	metrics.Subscribe(dispatcher)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info().Msg("Starting terminal front-end")
	err = term.NewApp(screen, cfg, dispatcher, logger).Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
