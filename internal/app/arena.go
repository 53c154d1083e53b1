// internal/app/arena.go
package app

import (
	"space-war/internal/component"
	"space-war/internal/config"
	"space-war/internal/entity"
	"space-war/internal/event"
	"space-war/internal/system"
	"space-war/internal/types"
	"space-war/pkg/vec2"

	"github.com/rs/zerolog"
)

// Arena владеет всеми сущностями одного раунда и прогоняет конвейер тика:
// гравитация → движение → устаревание → столкновения → судейство → отсчёт.
// Только Arena изменяет мир; всё остальное читает его через аксессоры.
type Arena struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	logger          zerolog.Logger

	GravitySystem      *system.GravitySystem
	MovementSystem     *system.MovementSystem
	ProjectileSystem   *system.ProjectileSystem
	VisualEffectSystem *system.VisualEffectSystem
	CollisionSystem    *system.CollisionSystem
	RoundSystem        *system.RoundSystem
}

// NewArena spawns a fresh round. scores carries the running scoreboard in.
func NewArena(tuning config.Tuning, scores [types.SideCount]int, eventDispatcher *event.Dispatcher, logger zerolog.Logger) *Arena {
	world := entity.Spawn(tuning, scores)
	return &Arena{
		world:              world,
		eventDispatcher:    eventDispatcher,
		logger:             logger,
		GravitySystem:      system.NewGravitySystem(world),
		MovementSystem:     system.NewMovementSystem(world, tuning.Arena.ConfineCrafts),
		ProjectileSystem:   system.NewProjectileSystem(world),
		VisualEffectSystem: system.NewVisualEffectSystem(world),
		CollisionSystem:    system.NewCollisionSystem(world, tuning.Planet.AbsorbProjectiles),
		RoundSystem:        system.NewRoundSystem(world, tuning.Round.CountdownTicks, eventDispatcher, logger),
	}
}

// Tick advances the round by one step. It does nothing once the round has ended.
func (a *Arena) Tick() {
	if a.world.Round.Phase == component.PhaseEnded {
		return
	}
	a.world.Round.Tick++

	a.GravitySystem.Update()
	a.MovementSystem.Update()
	a.VisualEffectSystem.Update()

	if expired := a.ProjectileSystem.Expire(); len(expired) > 0 {
		a.logger.Trace().Int("count", len(expired)).Msg("Projectiles expired")
	}
	a.VisualEffectSystem.Expire()

	contacts := a.CollisionSystem.Update()
	for _, c := range contacts.List {
		a.logger.Debug().
			Uint64("tick", a.world.Round.Tick).
			Stringer("side", c.Side).
			Stringer("cause", c.Cause).
			Msg("Collision")
	}

	// Отсчёт не уменьшается на тике перехода: сразу после него Countdown равен настройке.
	if !a.RoundSystem.Adjudicate(contacts) {
		a.RoundSystem.Countdown()
	}
}

// IsAlive reports whether the round still needs ticking.
func (a *Arena) IsAlive() bool {
	return a.world.Round.Alive()
}

// State возвращает копию состояния раунда
func (a *Arena) State() component.RoundState {
	return a.world.Round
}

func (a *Arena) Outcome() types.Outcome {
	return a.world.Round.Outcome
}

func (a *Arena) Scores() [types.SideCount]int {
	return a.RoundSystem.Scores()
}

// Steer применяет поворот и тягу к кораблю стороны. Уничтоженный корабль не реагирует.
func (a *Arena) Steer(side types.SideID, rotation types.Rotation, thrust bool) {
	s := a.world.Side(side)
	if s == nil || a.world.Round.Phase == component.PhaseEnded {
		return
	}
	s.Craft.Rotate(rotation)
	s.Craft.SetThrusters(thrust)
}

// Fire выпускает снаряд, если лимит стороны позволяет
func (a *Arena) Fire(side types.SideID) bool {
	s := a.world.Side(side)
	if s == nil || a.world.Round.Phase == component.PhaseEnded {
		return false
	}
	p, ok := s.Fire(a.world.NewEntity())
	if !ok {
		return false
	}
	a.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileFired, Data: event.ProjectileFiredData{
		Tick:       a.world.Round.Tick,
		Side:       side,
		Projectile: p.ID,
		Active:     len(s.Projectiles),
	}})
	return true
}

// --- Read-only accessors for rendering and tests ---

func (a *Arena) Bounds() vec2.Vec {
	return a.world.Bounds
}

func (a *Arena) Drawables() []component.Drawable {
	return a.world.Drawables()
}

// Craft returns the side's craft. Callers must not mutate it.
func (a *Arena) Craft(side types.SideID) *component.Craft {
	if s := a.world.Side(side); s != nil {
		return s.Craft
	}
	return nil
}

// Projectiles returns a copy of the side's projectile pool in firing order.
func (a *Arena) Projectiles(side types.SideID) []*component.Projectile {
	s := a.world.Side(side)
	if s == nil {
		return nil
	}
	out := make([]*component.Projectile, len(s.Projectiles))
	copy(out, s.Projectiles)
	return out
}

func (a *Arena) Effects() []*component.Effect {
	out := make([]*component.Effect, len(a.world.Effects))
	copy(out, a.world.Effects)
	return out
}

func (a *Arena) Gravity() *component.GravitySource {
	return a.world.Gravity
}
