// internal/system/state.go
package system

import (
	"space-war/internal/component"
	"space-war/internal/entity"
	"space-war/internal/event"
	"space-war/internal/types"

	"github.com/rs/zerolog"
)

// RoundSystem судит раунд. Уничтожает столкнувшиеся корабли, один раз
// начисляет очки на переходе Contested → Resolving и ведёт обратный отсчёт.
type RoundSystem struct {
	world           *entity.World
	countdownTicks  int
	eventDispatcher *event.Dispatcher
	logger          zerolog.Logger
}

func NewRoundSystem(world *entity.World, countdownTicks int, eventDispatcher *event.Dispatcher, logger zerolog.Logger) *RoundSystem {
	return &RoundSystem{
		world:           world,
		countdownTicks:  countdownTicks,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

// Adjudicate applies this tick's contacts. It reports whether the round
// entered PhaseResolving on this tick.
func (s *RoundSystem) Adjudicate(contacts Contacts) bool {
	round := &s.world.Round
	if round.Phase == component.PhaseEnded {
		return false
	}

	// Уничтожение не зависит от фазы: корабль может разбиться и во время отсчёта.
	for _, id := range types.Sides {
		if !contacts.Collided[id] {
			continue
		}
		s.destroy(id)
	}

	if round.Phase != component.PhaseContested || !contacts.Any() {
		return false
	}

	outcome := contacts.Outcome()
	if winner, ok := outcome.Winner(); ok {
		s.world.Side(winner).Score++
	}
	round.Phase = component.PhaseResolving
	round.Outcome = outcome
	round.Countdown = s.countdownTicks
	round.ResolvedAt = round.Tick

	scores := s.Scores()
	s.logger.Info().
		Uint64("tick", round.Tick).
		Stringer("outcome", outcome).
		Ints("scores", scores[:]).
		Msg("Round resolved")
	s.eventDispatcher.Dispatch(event.Event{Type: event.RoundResolved, Data: event.RoundResolvedData{
		Tick:      round.Tick,
		Outcome:   outcome,
		Scores:    scores,
		Countdown: round.Countdown,
	}})

	if round.Countdown <= 0 {
		s.end()
	}
	return true
}

// Countdown decrements the post-collision countdown and ends the round at zero.
func (s *RoundSystem) Countdown() {
	round := &s.world.Round
	if round.Phase != component.PhaseResolving {
		return
	}
	if round.Countdown > 0 {
		round.Countdown--
	}
	if round.Countdown == 0 {
		s.end()
	}
}

// Scores returns each side's running score.
func (s *RoundSystem) Scores() [types.SideCount]int {
	var scores [types.SideCount]int
	for _, id := range types.Sides {
		if side := s.world.Side(id); side != nil {
			scores[id] = side.Score
		}
	}
	return scores
}

func (s *RoundSystem) destroy(id types.SideID) {
	side := s.world.Side(id)
	if side == nil || side.Craft == nil {
		return
	}
	effect := side.Craft.Destroy(s.world.NewEntity())
	if effect == nil {
		return
	}
	if !s.world.AddEffect(effect) {
		s.logger.Debug().Stringer("side", id).Msg("Effect pool full, explosion dropped")
	}
	s.logger.Info().Uint64("tick", s.world.Round.Tick).Stringer("side", id).Msg("Craft destroyed")
	s.eventDispatcher.Dispatch(event.Event{Type: event.CraftDestroyed, Data: event.CraftDestroyedData{
		Tick:   s.world.Round.Tick,
		Side:   id,
		Effect: effect,
	}})
}

func (s *RoundSystem) end() {
	round := &s.world.Round
	round.Phase = component.PhaseEnded
	round.Countdown = 0
	scores := s.Scores()
	s.logger.Info().Uint64("tick", round.Tick).Stringer("outcome", round.Outcome).Msg("Round ended")
	s.eventDispatcher.Dispatch(event.Event{Type: event.RoundEnded, Data: event.RoundEndedData{
		Tick:    round.Tick,
		Outcome: round.Outcome,
		Scores:  scores,
	}})
}
