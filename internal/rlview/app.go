// internal/rlview/app.go
package rlview

import (
	"space-war/internal/app"
	"space-war/internal/config"
	"space-war/internal/event"
	"space-war/pkg/vec2"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
)

// App is the raylib front-end: the same match as the ebiten window, in a
// separate binary because both libraries bundle their own GLFW.
type App struct {
	match  *app.Match
	view   *View
	width  int32
	height int32
	logger zerolog.Logger
}

func NewApp(cfg config.Config, dispatcher *event.Dispatcher, logger zerolog.Logger) *App {
	arena := vec2.New(cfg.Arena.Width, cfg.Arena.Height)
	return &App{
		match:  app.NewMatch(cfg.Tuning, NewKeySource(DefaultKeyBindings()), dispatcher, logger),
		view:   NewView(arena, cfg.Debug.DrawRects),
		width:  int32(arena.X),
		height: int32(arena.Y),
		logger: logger,
	}
}

// Run opens the window and drives one tick per frame until it is closed.
func (a *App) Run() {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(a.width, a.height, config.WindowTitle)
	defer rl.CloseWindow()
	rl.SetTargetFPS(config.TicksPerSecond)

	a.logger.Info().Int32("width", a.width).Int32("height", a.height).Msg("raylib window opened")
	for !rl.WindowShouldClose() { // Esc или крестик окна
		a.match.Update()

		rl.BeginDrawing()
		a.view.Draw(a.match)
		rl.EndDrawing()
	}
}

// Match exposes the running match.
func (a *App) Match() *app.Match {
	return a.match
}
