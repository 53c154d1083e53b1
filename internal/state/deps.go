// internal/state/deps.go
package state

import (
	"space-war/internal/config"
	"space-war/internal/event"
	"space-war/internal/input"
	"space-war/pkg/render"

	"github.com/rs/zerolog"
)

// Deps: всё, что нужно состояниям для запуска матча
type Deps struct {
	Config     config.Config
	Source     input.Source
	Dispatcher *event.Dispatcher
	Logger     zerolog.Logger
	Images     render.ImageProvider
}
