// internal/rlview/keys.go
package rlview

import (
	"space-war/internal/input"
	"space-war/internal/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// KeyBindings: клавиши одной стороны в кодах raylib
type KeyBindings struct {
	Clockwise     int32
	Anticlockwise int32
	Thrust        int32
	Fire          []int32
}

// DefaultKeyBindings повторяет раскладку окна ebiten: WASD + Space и стрелки + Enter.
func DefaultKeyBindings() [types.SideCount]KeyBindings {
	return [types.SideCount]KeyBindings{
		types.Alliance: {
			Clockwise:     rl.KeyD,
			Anticlockwise: rl.KeyA,
			Thrust:        rl.KeyW,
			Fire:          []int32{rl.KeySpace},
		},
		types.Federation: {
			Clockwise:     rl.KeyRight,
			Anticlockwise: rl.KeyLeft,
			Thrust:        rl.KeyUp,
			Fire:          []int32{rl.KeyEnter, rl.KeyRightShift},
		},
	}
}

// KeySource опрашивает клавиатуру raylib. Вызывать только из потока окна.
type KeySource struct {
	bindings [types.SideCount]KeyBindings
}

func NewKeySource(bindings [types.SideCount]KeyBindings) *KeySource {
	return &KeySource{bindings: bindings}
}

func (k *KeySource) Poll() input.Intents {
	var intents input.Intents
	for _, side := range types.Sides {
		b := k.bindings[side]
		fire := false
		for _, key := range b.Fire {
			if rl.IsKeyPressed(key) {
				fire = true
				break
			}
		}
		intents[side] = &input.Intent{
			Rotate: input.RotationFrom(rl.IsKeyDown(b.Clockwise), rl.IsKeyDown(b.Anticlockwise)),
			Thrust: rl.IsKeyDown(b.Thrust),
			Fire:   fire,
		}
	}
	return intents
}
