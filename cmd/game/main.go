// cmd/game/main.go
package main

import (
	"net/http"
	_ "net/http/pprof"
	"os"
	"path/filepath"
	"time"

	"space-war/internal/assets"
	"space-war/internal/audio"
	"space-war/internal/config"
	"space-war/internal/event"
	"space-war/internal/input/ebitensrc"
	"space-war/internal/logging"
	"space-war/internal/state"
	"space-war/internal/telemetry"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

const startFromGame = false // true — начинать с игры, false — с меню

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		// логгер ещё не настроен
		boot := logging.New("info", os.Stderr, true)
		boot.Fatal().Err(err).Msg("Failed to load config")
	}
	logger := logging.New(cfg.Log.Level, os.Stderr, true)

	if cfg.Debug.PprofAddr != "" {
		go func() {
			logger.Info().Str("addr", cfg.Debug.PprofAddr).Msg("pprof listening")
			if err := http.ListenAndServe(cfg.Debug.PprofAddr, nil); err != nil {
				logger.Error().Err(err).Msg("pprof stopped")
			}
		}()
	}

	dispatcher := event.NewDispatcher()
	logging.NewEventLogger(logger).Subscribe(dispatcher)

	metrics, err := telemetry.New(nil)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create metrics")
	}
	metrics.Subscribe(dispatcher)

	sound := setupAudio(cfg, dispatcher, logger)
	defer sound.Cleanup()

	source, err := ebitensrc.NewSource(cfg.Input.Mode)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create input source")
	}

	images := assets.NewImageManager(filepath.Join("assets", "images"), logger)
	defer images.Cleanup()

	deps := state.Deps{
		Config:     cfg,
		Source:     source,
		Dispatcher: dispatcher,
		Logger:     logger,
		Images:     images,
	}
	sm := state.NewStateMachine() // Создаём машину состояний
	if startFromGame {
		sm.SetState(state.NewGameState(sm, deps))
	} else {
		sm.SetState(state.NewMenuState(sm, deps))
	}
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetTPS(config.TicksPerSecond)
	logger.Info().Str("input", cfg.Input.Mode).Msg("Starting")
	if err := ebiten.RunGame(app); err != nil {
		logger.Fatal().Err(err).Msg("Game stopped")
	}
}

// setupAudio включает звук, если он разрешён и устройство доступно
func setupAudio(cfg config.Config, dispatcher *event.Dispatcher, logger zerolog.Logger) *audio.SoundManager {
	sound := audio.NewSoundManager(cfg.Audio.Volume)
	if !cfg.Audio.Enabled {
		return sound
	}
	if err := sound.Initialize(); err != nil {
		logger.Warn().Err(err).Msg("Audio unavailable, running silent")
		return sound
	}
	dispatcher.SubscribeAll(sound, event.ProjectileFired, event.CraftDestroyed, event.RoundEnded)
	return sound
}
