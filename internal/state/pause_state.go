// internal/state/pause_state.go
package state

import (
	"image/color"

	"space-war/internal/config"
	"space-war/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает раунд: предыдущее состояние рисуется, но не обновляется.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	banner        *ui.Banner
}

func NewPauseState(sm *StateMachine, prevState State) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		banner:        ui.NewBanner(ui.DefaultFace),
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		s.Resume()
	}
}

// Resume возвращает предыдущее состояние
func (s *PauseState) Resume() {
	s.stateMachine.SetState(s.previousState)
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	vector.DrawFilledRect(screen, 0, 0, float32(config.ScreenWidth), float32(config.ScreenHeight), color.RGBA{0, 0, 0, 128}, false)
	s.banner.Draw(screen, "PAUSED", "press P to resume", config.TextLightColor)
}

func (s *PauseState) Exit() {}
