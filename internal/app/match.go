// internal/app/match.go
package app

import (
	"space-war/internal/config"
	"space-war/internal/event"
	"space-war/internal/input"
	"space-war/internal/types"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Scoreboard переживает раунды. Это единственное состояние, которое
// передаётся из одного раунда в следующий.
type Scoreboard struct {
	Scores [types.SideCount]int
	Draws  int
	Rounds int // завершённых раундов
}

// Match ведёт серию раундов. Когда текущий раунд закончился, запускается новый
// со счётом из Scoreboard.
type Match struct {
	tuning          config.Tuning
	source          input.Source
	eventDispatcher *event.Dispatcher
	logger          zerolog.Logger

	scoreboard Scoreboard
	roundID    uuid.UUID
	controller *Controller
}

func NewMatch(tuning config.Tuning, source input.Source, eventDispatcher *event.Dispatcher, logger zerolog.Logger) *Match {
	m := &Match{
		tuning:          tuning,
		source:          source,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
	m.startRound()
	return m
}

// Update steps the current round, rolling over to a new one once it has ended.
func (m *Match) Update() {
	if !m.controller.IsAlive() {
		m.finishRound()
		m.startRound()
	}
	m.controller.Step()
}

func (m *Match) startRound() {
	m.roundID = uuid.New()
	logger := m.logger.With().
		Str("round_id", m.roundID.String()).
		Int("round", m.scoreboard.Rounds+1).
		Logger()
	arena := NewArena(m.tuning, m.scoreboard.Scores, m.eventDispatcher, logger)
	m.controller = NewController(arena, m.source, logger)
	logger.Info().Ints("scores", m.scoreboard.Scores[:]).Msg("Round started")
}

func (m *Match) finishRound() {
	arena := m.controller.Arena()
	m.scoreboard.Scores = arena.Scores()
	m.scoreboard.Rounds++
	if arena.Outcome() == types.OutcomeDraw {
		m.scoreboard.Draws++
	}
}

func (m *Match) Arena() *Arena {
	return m.controller.Arena()
}

func (m *Match) Paused() bool {
	return m.controller.Paused()
}

func (m *Match) RoundID() uuid.UUID {
	return m.roundID
}

// Scoreboard returns the running scoreboard, including the current round's score.
func (m *Match) Scoreboard() Scoreboard {
	sb := m.scoreboard
	sb.Scores = m.controller.Scoreboard()
	return sb
}
