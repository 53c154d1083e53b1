// internal/entity/ecs.go
package entity

import (
	"space-war/internal/component"
	"space-war/internal/types"
	"space-war/pkg/vec2"
)

// World: всё состояние одного раунда. Раунд владеет обеими сторонами,
// планетой и пулом эффектов; сущности никогда не разделяются между владельцами.
type World struct {
	NextID    types.EntityID
	Sides     [types.SideCount]*component.Side
	Gravity   *component.GravitySource
	Effects   []*component.Effect
	EffectCap int
	Bounds    vec2.Vec // размер арены
	Round     component.RoundState
}

// NewWorld creates an empty world; sides and gravity are attached by Spawn.
func NewWorld(bounds vec2.Vec, effectCap int) *World {
	return &World{
		NextID:    1,
		Effects:   make([]*component.Effect, 0, effectCap),
		EffectCap: effectCap,
		Bounds:    bounds,
		Round:     component.RoundState{Phase: component.PhaseContested},
	}
}

// NewEntity выдаёт следующий ID
func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// Side returns the side with the given id.
func (w *World) Side(id types.SideID) *component.Side {
	if !id.Valid() {
		return nil
	}
	return w.Sides[id]
}

// Arena returns the arena rectangle.
func (w *World) Arena() vec2.Rect {
	return vec2.NewRect(vec2.Zero, w.Bounds)
}

// AddEffect добавляет эффект, если пул не заполнен
func (w *World) AddEffect(e *component.Effect) bool {
	if e == nil || len(w.Effects) >= w.EffectCap {
		return false
	}
	w.Effects = append(w.Effects, e)
	return true
}

// RemoveEffects drops every effect matching fn and returns the removed ones.
func (w *World) RemoveEffects(fn func(*component.Effect) bool) []*component.Effect {
	var removed []*component.Effect
	kept := w.Effects[:0]
	for _, e := range w.Effects {
		if fn(e) {
			removed = append(removed, e)
			continue
		}
		kept = append(kept, e)
	}
	for i := len(kept); i < len(w.Effects); i++ {
		w.Effects[i] = nil
	}
	w.Effects = kept
	return removed
}

// RemoveProjectile удаляет снаряд из пула его стороны-владельца.
// Повторное удаление ничего не делает.
func (w *World) RemoveProjectile(p *component.Projectile) bool {
	side := w.Side(p.Owner)
	if side == nil {
		return false
	}
	return side.RemoveProjectile(p.ID)
}

// LiveCrafts returns the crafts that are not destroyed, in side order.
func (w *World) LiveCrafts() []*component.Craft {
	crafts := make([]*component.Craft, 0, types.SideCount)
	for _, s := range w.Sides {
		if s != nil && s.Craft != nil && !s.Craft.Destroyed() {
			crafts = append(crafts, s.Craft)
		}
	}
	return crafts
}

// Moveables returns every body gravity acts on: live crafts and all projectiles.
func (w *World) Moveables() []component.Movable {
	var out []component.Movable
	for _, c := range w.LiveCrafts() {
		out = append(out, c)
	}
	for _, s := range w.Sides {
		if s == nil {
			continue
		}
		for _, p := range s.Projectiles {
			out = append(out, p)
		}
	}
	return out
}

// Drawables returns every visible entity in draw order: well, projectiles, crafts, effects.
func (w *World) Drawables() []component.Drawable {
	var out []component.Drawable
	if w.Gravity != nil {
		out = append(out, w.Gravity)
	}
	for _, s := range w.Sides {
		if s == nil {
			continue
		}
		for _, p := range s.Projectiles {
			out = append(out, p)
		}
	}
	for _, c := range w.LiveCrafts() {
		out = append(out, c)
	}
	for _, e := range w.Effects {
		out = append(out, e)
	}
	return out
}
