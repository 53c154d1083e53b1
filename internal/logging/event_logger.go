// internal/logging/event_logger.go
package logging

import (
	"space-war/internal/event"

	"github.com/rs/zerolog"
)

// EventLogger пишет события раунда в лог: переходы раунда на info,
// выстрелы и уничтожения на debug.
type EventLogger struct {
	logger zerolog.Logger
}

func NewEventLogger(logger zerolog.Logger) *EventLogger {
	return &EventLogger{logger: logger.With().Str("component", "events").Logger()}
}

// Subscribe registers the logger for every round event.
func (l *EventLogger) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(l, event.ProjectileFired, event.CraftDestroyed, event.RoundResolved, event.RoundEnded)
}

func (l *EventLogger) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.ProjectileFiredData:
		l.logger.Debug().
			Uint64("tick", data.Tick).
			Stringer("side", data.Side).
			Uint64("projectile", uint64(data.Projectile)).
			Int("active", data.Active).
			Msg("Projectile fired")
	case event.CraftDestroyedData:
		l.logger.Debug().
			Uint64("tick", data.Tick).
			Stringer("side", data.Side).
			Msg("Craft destroyed")
	case event.RoundResolvedData:
		l.logger.Info().
			Uint64("tick", data.Tick).
			Stringer("outcome", data.Outcome).
			Ints("scores", data.Scores[:]).
			Int("countdown", data.Countdown).
			Msg("Round resolved")
	case event.RoundEndedData:
		l.logger.Info().
			Uint64("tick", data.Tick).
			Stringer("outcome", data.Outcome).
			Ints("scores", data.Scores[:]).
			Msg("Round ended")
	default:
		l.logger.Warn().Str("type", string(e.Type)).Msg("Unexpected event payload")
	}
}
