// internal/system/gravity.go
package system

import "space-war/internal/entity"

// GravitySystem притягивает все подвижные тела к планете. Эффекты не затрагиваются.
type GravitySystem struct {
	world *entity.World
}

func NewGravitySystem(world *entity.World) *GravitySystem {
	return &GravitySystem{world: world}
}

func (s *GravitySystem) Update() {
	if s.world.Gravity == nil {
		return
	}
	for _, m := range s.world.Moveables() {
		s.world.Gravity.Apply(m)
	}
}
