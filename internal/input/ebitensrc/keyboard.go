// internal/input/ebitensrc/keyboard.go
package ebitensrc

import (
	"space-war/internal/input"
	"space-war/internal/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyBindings: клавиши одной стороны. Огонь срабатывает только по нажатию, не по удержанию.
type KeyBindings struct {
	Clockwise     ebiten.Key
	Anticlockwise ebiten.Key
	Thrust        ebiten.Key
	Fire          []ebiten.Key
}

// DefaultKeyBindings: Alliance на WASD + Space, Federation на стрелках + Enter.
func DefaultKeyBindings() [types.SideCount]KeyBindings {
	return [types.SideCount]KeyBindings{
		types.Alliance: {
			Clockwise:     ebiten.KeyD,
			Anticlockwise: ebiten.KeyA,
			Thrust:        ebiten.KeyW,
			Fire:          []ebiten.Key{ebiten.KeySpace},
		},
		types.Federation: {
			Clockwise:     ebiten.KeyArrowRight,
			Anticlockwise: ebiten.KeyArrowLeft,
			Thrust:        ebiten.KeyArrowUp,
			Fire:          []ebiten.Key{ebiten.KeyEnter, ebiten.KeyShiftRight},
		},
	}
}

// KeyboardSource: обе стороны за одной клавиатурой, поэтому обе всегда присутствуют.
type KeyboardSource struct {
	bindings [types.SideCount]KeyBindings
}

func NewKeyboardSource(bindings [types.SideCount]KeyBindings) *KeyboardSource {
	return &KeyboardSource{bindings: bindings}
}

func (k *KeyboardSource) Poll() input.Intents {
	var intents input.Intents
	for _, side := range types.Sides {
		b := k.bindings[side]
		fire := false
		for _, key := range b.Fire {
			if inpututil.IsKeyJustPressed(key) {
				fire = true
				break
			}
		}
		intents[side] = &input.Intent{
			Rotate: input.RotationFrom(ebiten.IsKeyPressed(b.Clockwise), ebiten.IsKeyPressed(b.Anticlockwise)),
			Thrust: ebiten.IsKeyPressed(b.Thrust),
			Fire:   fire,
		}
	}
	return intents
}
