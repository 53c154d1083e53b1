// internal/component/game_state.go
package component

import "space-war/internal/types"

// RoundPhase: фаза раунда
type RoundPhase int

const (
	PhaseContested RoundPhase = iota // никто ещё не столкнулся
	PhaseResolving                   // итог известен, идёт обратный отсчёт
	PhaseEnded
)

func (p RoundPhase) String() string {
	switch p {
	case PhaseContested:
		return "contested"
	case PhaseResolving:
		return "resolving"
	case PhaseEnded:
		return "ended"
	}
	return "unknown"
}

// RoundState хранит состояние раунда. Countdown имеет смысл только в PhaseResolving.
type RoundState struct {
	Phase      RoundPhase
	Countdown  int
	Outcome    types.Outcome
	Tick       uint64 // номер текущего тика, начиная с 1
	ResolvedAt uint64 // тик, на котором раунд перешёл в PhaseResolving
}

// Alive reports whether the round still needs ticking.
func (s RoundState) Alive() bool {
	switch s.Phase {
	case PhaseContested:
		return true
	case PhaseResolving:
		return s.Countdown > 0
	}
	return false
}
