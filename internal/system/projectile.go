// internal/system/projectile.go
package system

import (
	"space-war/internal/component"
	"space-war/internal/entity"
)

// ProjectileSystem убирает снаряды, чьё время жизни истекло или которые
// целиком вылетели за пределы арены.
type ProjectileSystem struct {
	world *entity.World
}

func NewProjectileSystem(world *entity.World) *ProjectileSystem {
	return &ProjectileSystem{world: world}
}

// Expire removes stale projectiles from their owning side's pool.
func (s *ProjectileSystem) Expire() []*component.Projectile {
	arena := s.world.Arena()
	var removed []*component.Projectile
	for _, side := range s.world.Sides {
		if side == nil {
			continue
		}
		removed = append(removed, side.RemoveProjectiles(func(p *component.Projectile) bool {
			return p.Expired() || !p.Bounds().Intersects(arena)
		})...)
	}
	return removed
}
