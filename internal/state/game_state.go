// internal/state/game_state.go
package state

import (
	"space-war/internal/app"
	"space-war/internal/component"
	"space-war/internal/config"
	"space-war/internal/ui"
	"space-war/internal/ui/label"
	"space-war/internal/utils"
	"space-war/pkg/render"
	"space-war/pkg/vec2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameState ведёт матч. Один Update ebiten равен одному тику раунда.
type GameState struct {
	sm       *StateMachine
	deps     Deps
	match    *app.Match
	renderer *render.ArenaRenderer
	hud      *ui.ScoreHUD
	banner   *ui.Banner
}

func NewGameState(sm *StateMachine, deps Deps) *GameState {
	cfg := deps.Config
	bounds := vec2.New(cfg.Arena.Width, cfg.Arena.Height)

	palette := render.Palette{
		BackgroundColor: config.BackgroundColor,
		StarColor:       config.StarColor,
		DebugRectColor:  config.DebugRectColor,
		StrokeWidth:     1,
	}
	stars := utils.Starfield(config.StarCount, config.StarSeed, bounds)

	return &GameState{
		sm:       sm,
		deps:     deps,
		match:    app.NewMatch(cfg.Tuning, deps.Source, deps.Dispatcher, deps.Logger),
		renderer: render.NewArenaRenderer(deps.Images, palette, bounds, stars, cfg.Debug.DrawRects),
		hud:      ui.NewScoreHUD(ui.DefaultFace),
		banner:   ui.NewBanner(ui.DefaultFace),
	}
}

func (g *GameState) Enter() {
	// Ничего не делаем при входе
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) || inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	g.match.Update()
}

func (g *GameState) Draw(screen *ebiten.Image) {
	arena := g.match.Arena()
	g.renderer.Draw(screen, arena.Drawables())

	sb := g.match.Scoreboard()
	g.hud.Draw(screen, sb.Scores, sb.Rounds+1, sb.Draws)

	state := arena.State()
	switch {
	case g.match.Paused():
		g.banner.Draw(screen, "WAITING FOR CONTROLLERS", "connect two gamepads", config.TextLightColor)
	case state.Phase == component.PhaseResolving:
		clr := config.TextLightColor
		if winner, ok := state.Outcome.Winner(); ok {
			clr = config.SideColors[winner]
		}
		g.banner.Draw(screen, label.Outcome(state.Outcome), label.Countdown(state.Countdown), clr)
	}
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}

// Match exposes the running match.
func (g *GameState) Match() *app.Match {
	return g.match
}
