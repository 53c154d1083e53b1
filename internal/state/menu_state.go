// internal/state/menu_state.go
package state

import (
	"space-war/internal/config"
	"space-war/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState: заставка до начала матча
type MenuState struct {
	sm     *StateMachine
	deps   Deps
	banner *ui.Banner
}

func NewMenuState(sm *StateMachine, deps Deps) *MenuState {
	return &MenuState{sm: sm, deps: deps, banner: ui.NewBanner(ui.DefaultFace)}
}

func (m *MenuState) Enter() {
	m.deps.Logger.Debug().Msg("Menu")
}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) || startPressed() {
		m.sm.SetState(NewGameState(m.sm, m.deps))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	m.banner.Draw(screen, config.WindowTitle, "press SPACE or START", config.TextLightColor)
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}

// startPressed проверяет кнопку Start на любом стандартном геймпаде
func startPressed() bool {
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight) {
			return true
		}
	}
	return false
}
