// internal/types/types.go
package types

// EntityID: уникальный идентификатор сущности в пределах раунда
type EntityID uint64

// SideID: одна из двух сторон
type SideID int

const (
	Alliance SideID = iota
	Federation
)

// SideCount: количество сторон в раунде
const SideCount = 2

// Sides перечисляет стороны в фиксированном порядке
var Sides = [SideCount]SideID{Alliance, Federation}

func (s SideID) String() string {
	switch s {
	case Alliance:
		return "alliance"
	case Federation:
		return "federation"
	}
	return "unknown"
}

// Opponent returns the other side.
func (s SideID) Opponent() SideID {
	if s == Alliance {
		return Federation
	}
	return Alliance
}

// Valid reports whether s names one of the two sides.
func (s SideID) Valid() bool {
	return s == Alliance || s == Federation
}

// Outcome: итог раунда
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeAllianceWin
	OutcomeFederationWin
	OutcomeDraw
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAllianceWin:
		return "alliance_win"
	case OutcomeFederationWin:
		return "federation_win"
	case OutcomeDraw:
		return "draw"
	}
	return "none"
}

// Winner returns the winning side, if there is one.
func (o Outcome) Winner() (SideID, bool) {
	switch o {
	case OutcomeAllianceWin:
		return Alliance, true
	case OutcomeFederationWin:
		return Federation, true
	}
	return 0, false
}

// Rotation: направление поворота из намерения игрока
type Rotation int

const (
	RotateNone Rotation = iota
	RotateClockwise
	RotateAnticlockwise
)
