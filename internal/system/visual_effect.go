// internal/system/visual_effect.go
package system

import (
	"space-war/internal/component"
	"space-war/internal/entity"
)

// VisualEffectSystem управляет взрывами: они только стареют и исчезают.
type VisualEffectSystem struct {
	world *entity.World
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(world *entity.World) *VisualEffectSystem {
	return &VisualEffectSystem{world: world}
}

// Update ages every active effect.
func (s *VisualEffectSystem) Update() {
	for _, e := range s.world.Effects {
		e.Tick()
	}
}

// Expire removes effects older than their maximum age.
func (s *VisualEffectSystem) Expire() []*component.Effect {
	return s.world.RemoveEffects(func(e *component.Effect) bool {
		return e.Expired()
	})
}
