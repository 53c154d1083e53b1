// internal/app/controller.go
package app

import (
	"space-war/internal/input"
	"space-war/internal/types"

	"github.com/rs/zerolog"
)

// Controller применяет намерения игроков и двигает раунд.
// Пока у какой-либо стороны нет источника ввода, симуляция стоит на паузе.
type Controller struct {
	arena  *Arena
	source input.Source
	logger zerolog.Logger
	paused bool
}

func NewController(arena *Arena, source input.Source, logger zerolog.Logger) *Controller {
	return &Controller{arena: arena, source: source, logger: logger}
}

// Step polls the source once and, unless paused or ended, applies the
// intents and ticks the arena. It reports whether the arena was ticked.
func (c *Controller) Step() bool {
	if !c.arena.IsAlive() {
		return false
	}

	intents := c.source.Poll()
	paused := !intents.Complete()
	if paused != c.paused {
		c.paused = paused
		c.logger.Info().Bool("paused", paused).Msg("Waiting for input sources")
	}
	if paused {
		return false
	}

	for _, side := range types.Sides {
		in := intents[side]
		c.arena.Steer(side, in.Rotate, in.Thrust)
		if in.Fire {
			c.arena.Fire(side)
		}
	}
	c.arena.Tick()
	return true
}

func (c *Controller) Paused() bool {
	return c.paused
}

func (c *Controller) IsAlive() bool {
	return c.arena.IsAlive()
}

func (c *Controller) Arena() *Arena {
	return c.arena
}

// Scoreboard: итоговый счёт; окончателен только после завершения раунда.
func (c *Controller) Scoreboard() [types.SideCount]int {
	return c.arena.Scores()
}
