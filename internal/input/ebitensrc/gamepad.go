// internal/input/ebitensrc/gamepad.go
package ebitensrc

import (
	"space-war/internal/input"
	"space-war/internal/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// StickDeadZone: отклонение стика, ниже которого поворот не засчитывается
const StickDeadZone = 0.35

// GamepadSource сопоставляет первые два подключённых геймпада сторонам по
// порядку подключения. Пока геймпада нет, его сторона отсутствует и
// контроллер ставит раунд на паузу.
type GamepadSource struct {
	ids []ebiten.GamepadID
}

func NewGamepadSource() *GamepadSource {
	return &GamepadSource{}
}

func (g *GamepadSource) Poll() input.Intents {
	g.ids = ebiten.AppendGamepadIDs(g.ids[:0])

	var intents input.Intents
	n := 0
	for _, id := range g.ids {
		if n == types.SideCount {
			break
		}
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		intents[types.Sides[n]] = pollGamepad(id)
		n++
	}
	return intents
}

func pollGamepad(id ebiten.GamepadID) *input.Intent {
	axis := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
	clockwise := axis > StickDeadZone || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight)
	anticlockwise := axis < -StickDeadZone || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft)

	return &input.Intent{
		Rotate: input.RotationFrom(clockwise, anticlockwise),
		Thrust: ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontBottomRight) ||
			ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightRight),
		Fire: inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom),
	}
}
