// internal/term/keys.go
package term

import (
	"sync"

	"space-war/internal/input"
	"space-war/internal/types"

	"github.com/gdamore/tcell/v2"
)

// HoldTicks: сколько тиков действует нажатие. Терминал не сообщает об
// отпускании клавиши, поэтому удержание эмулируется автоповтором.
const HoldTicks = 8

type action int

const (
	actionClockwise action = iota
	actionAnticlockwise
	actionThrust
	actionFire
)

type binding struct {
	side   types.SideID
	action action
}

var runeBindings = map[rune]binding{
	'd': {types.Alliance, actionClockwise},
	'a': {types.Alliance, actionAnticlockwise},
	'w': {types.Alliance, actionThrust},
	' ': {types.Alliance, actionFire},
}

var keyBindings = map[tcell.Key]binding{
	tcell.KeyRight: {types.Federation, actionClockwise},
	tcell.KeyLeft:  {types.Federation, actionAnticlockwise},
	tcell.KeyUp:    {types.Federation, actionThrust},
	tcell.KeyEnter: {types.Federation, actionFire},
}

type held struct {
	clockwise, anticlockwise, thrust int
	fire                             bool
}

// KeySource: input.Source для терминала. Клавиши приходят из горутины
// чтения событий, Poll вызывается из игрового цикла.
type KeySource struct {
	mu    sync.Mutex
	sides [types.SideCount]held
}

func NewKeySource() *KeySource {
	return &KeySource{}
}

// HandleKey records a key press. It reports whether the key is bound.
func (k *KeySource) HandleKey(ev *tcell.EventKey) bool {
	var (
		b  binding
		ok bool
	)
	if ev.Key() == tcell.KeyRune {
		b, ok = runeBindings[ev.Rune()]
	} else {
		b, ok = keyBindings[ev.Key()]
	}
	if !ok {
		return false
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	h := &k.sides[b.side]
	switch b.action {
	case actionClockwise:
		h.clockwise, h.anticlockwise = HoldTicks, 0
	case actionAnticlockwise:
		h.anticlockwise, h.clockwise = HoldTicks, 0
	case actionThrust:
		h.thrust = HoldTicks
	case actionFire:
		h.fire = true
	}
	return true
}

// Poll implements input.Source. Both sides share the keyboard, so both are
// always present.
func (k *KeySource) Poll() input.Intents {
	k.mu.Lock()
	defer k.mu.Unlock()

	var intents input.Intents
	for _, side := range types.Sides {
		h := &k.sides[side]
		intents[side] = &input.Intent{
			Rotate: input.RotationFrom(h.clockwise > 0, h.anticlockwise > 0),
			Thrust: h.thrust > 0,
			Fire:   h.fire,
		}

		h.clockwise = max(0, h.clockwise-1)
		h.anticlockwise = max(0, h.anticlockwise-1)
		h.thrust = max(0, h.thrust-1)
		h.fire = false
	}
	return intents
}
