// internal/input/input.go
package input

//go:generate go tool mockgen -destination=./mocks/source_mock.go -package=mocks . Source

import "space-war/internal/types"

// Intent: решение игрока на один тик
type Intent struct {
	Rotate types.Rotation
	Thrust bool
	Fire   bool
}

// Intents holds one intent per side. A nil entry means that side has no
// active input source this tick.
type Intents [types.SideCount]*Intent

// Complete reports whether both sides are present.
func (in Intents) Complete() bool {
	for _, i := range in {
		if i == nil {
			return false
		}
	}
	return true
}

// Source опрашивается контроллером раз в тик. Опрос устройств живёт в
// отдельных пакетах (ebitensrc, term, rlview), ядро видит только намерения.
type Source interface {
	Poll() Intents
}

// RotationFrom разрешает одновременное нажатие обеих клавиш поворота в RotateNone
func RotationFrom(clockwise, anticlockwise bool) types.Rotation {
	switch {
	case clockwise && !anticlockwise:
		return types.RotateClockwise
	case anticlockwise && !clockwise:
		return types.RotateAnticlockwise
	}
	return types.RotateNone
}
