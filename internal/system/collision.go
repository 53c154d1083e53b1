// internal/system/collision.go
package system

import (
	"space-war/internal/component"
	"space-war/internal/entity"
	"space-war/internal/types"
)

// Cause: с чем столкнулся корабль. На итог раунда не влияет.
type Cause int

const (
	CauseGravity Cause = iota
	CauseCraft
	CauseProjectile
)

func (c Cause) String() string {
	switch c {
	case CauseGravity:
		return "gravity"
	case CauseCraft:
		return "craft"
	case CauseProjectile:
		return "projectile"
	}
	return "unknown"
}

// Contact: одно столкновение корабля стороны Side
type Contact struct {
	Side       types.SideID
	Cause      Cause
	Projectile types.EntityID // только для CauseProjectile
}

// Contacts: все столкновения одного тика
type Contacts struct {
	Collided [types.SideCount]bool
	List     []Contact
	Removed  []*component.Projectile // попавшие в корабль или поглощённые планетой
}

// Any reports whether any craft collided this tick.
func (c Contacts) Any() bool {
	for _, hit := range c.Collided {
		if hit {
			return true
		}
	}
	return false
}

// Outcome переводит набор столкнувшихся сторон в итог.
// Обе стороны: ничья; важна только сторона, а не причина.
func (c Contacts) Outcome() types.Outcome {
	a, f := c.Collided[types.Alliance], c.Collided[types.Federation]
	switch {
	case a && f:
		return types.OutcomeDraw
	case a:
		return types.OutcomeFederationWin
	case f:
		return types.OutcomeAllianceWin
	}
	return types.OutcomeNone
}

func (c *Contacts) add(side types.SideID, cause Cause, projectile types.EntityID) {
	c.Collided[side] = true
	c.List = append(c.List, Contact{Side: side, Cause: cause, Projectile: projectile})
}

// CollisionSystem проверяет пересечения прямоугольников в фиксированном наборе пар:
// корабль–планета, корабль–корабль, корабль–снаряды противника.
// Свои снаряды никогда не поражают свой корабль.
type CollisionSystem struct {
	world             *entity.World
	absorbProjectiles bool
}

func NewCollisionSystem(world *entity.World, absorbProjectiles bool) *CollisionSystem {
	return &CollisionSystem{world: world, absorbProjectiles: absorbProjectiles}
}

// Update detects this tick's contacts and removes every projectile that hit
// something. Craft state is left to the round system.
func (s *CollisionSystem) Update() Contacts {
	contacts := s.Detect()
	for _, p := range contacts.Removed {
		s.world.RemoveProjectile(p)
	}
	return contacts
}

// Detect only reads the world.
func (s *CollisionSystem) Detect() Contacts {
	var contacts Contacts
	w := s.world
	hit := make(map[types.EntityID]bool)

	var crafts [types.SideCount]*component.Craft
	for _, id := range types.Sides {
		if side := w.Side(id); side != nil && side.Craft != nil && !side.Craft.Destroyed() {
			crafts[id] = side.Craft
		}
	}

	if w.Gravity != nil {
		planet := w.Gravity.Bounds()
		for _, id := range types.Sides {
			if c := crafts[id]; c != nil && c.Bounds().Intersects(planet) {
				contacts.add(id, CauseGravity, 0)
			}
		}
	}

	a, f := crafts[types.Alliance], crafts[types.Federation]
	if a != nil && f != nil && a.Bounds().Intersects(f.Bounds()) {
		contacts.add(types.Alliance, CauseCraft, 0)
		contacts.add(types.Federation, CauseCraft, 0)
	}

	for _, id := range types.Sides {
		c := crafts[id]
		opponent := w.Side(id.Opponent())
		if c == nil || opponent == nil {
			continue
		}
		bounds := c.Bounds()
		for _, p := range opponent.Projectiles {
			if p.Bounds().Intersects(bounds) {
				contacts.add(id, CauseProjectile, p.ID)
				if !hit[p.ID] {
					hit[p.ID] = true
					contacts.Removed = append(contacts.Removed, p)
				}
			}
		}
	}

	if s.absorbProjectiles && w.Gravity != nil {
		planet := w.Gravity.Bounds()
		for _, side := range w.Sides {
			if side == nil {
				continue
			}
			for _, p := range side.Projectiles {
				if !hit[p.ID] && p.Bounds().Intersects(planet) {
					hit[p.ID] = true
					contacts.Removed = append(contacts.Removed, p)
				}
			}
		}
	}
	return contacts
}
