// internal/component/side.go
package component

import "space-war/internal/types"

// Side хранит состояние одной стороны. Корабль, упорядоченный пул снарядов и счёт.
type Side struct {
	ID          types.SideID
	Craft       *Craft
	Projectiles []*Projectile // порядок выстрелов
	Score       int
	Cap         int
}

func NewSide(id types.SideID, craft *Craft, score, projectileCap int) *Side {
	return &Side{
		ID:          id,
		Craft:       craft,
		Projectiles: make([]*Projectile, 0, projectileCap),
		Score:       score,
		Cap:         projectileCap,
	}
}

// CanFire reports whether the side may launch another projectile right now.
func (s *Side) CanFire() bool {
	return s.Craft != nil && !s.Craft.Destroyed() && len(s.Projectiles) < s.Cap
}

// Fire запускает снаряд, если пул не заполнен и корабль цел.
// Иначе ничего не происходит и возвращается false.
func (s *Side) Fire(id types.EntityID) (*Projectile, bool) {
	if !s.CanFire() {
		return nil, false
	}
	p := s.Craft.FireBullet(id)
	s.Projectiles = append(s.Projectiles, p)
	return p, true
}

// RemoveProjectile удаляет снаряд по ID. Если его нет, ничего не делает.
func (s *Side) RemoveProjectile(id types.EntityID) bool {
	for i, p := range s.Projectiles {
		if p.ID == id {
			last := len(s.Projectiles) - 1
			copy(s.Projectiles[i:], s.Projectiles[i+1:])
			s.Projectiles[last] = nil // не держим снаряд в хвосте массива
			s.Projectiles = s.Projectiles[:last]
			return true
		}
	}
	return false
}

// RemoveProjectiles drops every projectile matching fn, keeping firing order,
// and returns the removed ones.
func (s *Side) RemoveProjectiles(fn func(*Projectile) bool) []*Projectile {
	var removed []*Projectile
	kept := s.Projectiles[:0]
	for _, p := range s.Projectiles {
		if fn(p) {
			removed = append(removed, p)
			continue
		}
		kept = append(kept, p)
	}
	for i := len(kept); i < len(s.Projectiles); i++ {
		s.Projectiles[i] = nil
	}
	s.Projectiles = kept
	return removed
}
