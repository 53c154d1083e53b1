// internal/input/ebitensrc/source.go
package ebitensrc

import (
	"fmt"

	"space-war/internal/config"
	"space-war/internal/input"
)

// NewSource выбирает источник ввода по режиму из конфигурации
func NewSource(mode string) (input.Source, error) {
	switch mode {
	case config.InputModeKeyboard:
		return NewKeyboardSource(DefaultKeyBindings()), nil
	case config.InputModeGamepad:
		return NewGamepadSource(), nil
	}
	return nil, fmt.Errorf("unknown input mode %q", mode)
}
