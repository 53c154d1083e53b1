// internal/system/movement.go
package system

import "space-war/internal/entity"

// MovementSystem интегрирует корабли и снаряды
type MovementSystem struct {
	world   *entity.World
	confine bool // удерживать корабли внутри арены
}

func NewMovementSystem(world *entity.World, confine bool) *MovementSystem {
	return &MovementSystem{world: world, confine: confine}
}

func (s *MovementSystem) Update() {
	for _, c := range s.world.LiveCrafts() {
		c.Integrate()
		if s.confine {
			c.Confine(s.world.Bounds)
		}
	}

	for _, side := range s.world.Sides {
		if side == nil {
			continue
		}
		for _, p := range side.Projectiles {
			p.Integrate()
			p.Tick()
		}
	}
}
