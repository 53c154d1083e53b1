// internal/term/app.go
package term

import (
	"context"
	"time"

	"space-war/internal/app"
	"space-war/internal/component"
	"space-war/internal/config"
	"space-war/internal/event"
	"space-war/internal/ui/label"
	"space-war/pkg/vec2"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
)

// App is the terminal front-end: the same match as the window, drawn in characters.
type App struct {
	screen tcell.Screen
	keys   *KeySource
	match  *app.Match
	canvas *Canvas
	arena  vec2.Vec
	logger zerolog.Logger
}

func NewApp(screen tcell.Screen, cfg config.Config, dispatcher *event.Dispatcher, logger zerolog.Logger) *App {
	keys := NewKeySource()
	arena := vec2.New(cfg.Arena.Width, cfg.Arena.Height)
	return &App{
		screen: screen,
		keys:   keys,
		match:  app.NewMatch(cfg.Tuning, keys, dispatcher, logger),
		canvas: NewCanvas(screen, arena),
		arena:  arena,
		logger: logger,
	}
}

// Run drives the match at a fixed rate until ctx is cancelled or the player quits.
func (a *App) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / config.TicksPerSecond)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go a.pollEvents(ctx, events)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok || !a.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			a.Step()
		}
	}
}

// pollEvents перекладывает события экрана в канал, пока экран открыт и ctx жив.
// После отмены ctx горутина не блокируется на полном канале.
func (a *App) pollEvents(ctx context.Context, events chan<- tcell.Event) {
	defer close(events)
	for {
		ev := a.screen.PollEvent()
		if ev == nil { // экран закрыт
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// HandleEvent обрабатывает событие терминала. false: пользователь вышел.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
		a.keys.HandleKey(ev)
	case *tcell.EventResize:
		a.canvas.Resize(a.arena)
		a.screen.Sync()
	}
	return true
}

// Step advances the match one tick and redraws.
func (a *App) Step() {
	a.match.Update()
	a.Draw()
}

func (a *App) Draw() {
	a.screen.Clear()
	arena := a.match.Arena()
	a.canvas.Draw(arena.Drawables())

	sb := a.match.Scoreboard()
	status := label.Status(sb.Scores, sb.Rounds+1, sb.Draws)
	a.canvas.Text(0, status, textStyle)

	if st := arena.State(); st.Phase == component.PhaseResolving {
		a.canvas.Text(len([]rune(status))+3, label.Outcome(st.Outcome)+", "+label.Countdown(st.Countdown), dimStyle)
	}
	a.screen.Show()
}

// Match exposes the running match.
func (a *App) Match() *app.Match {
	return a.match
}
