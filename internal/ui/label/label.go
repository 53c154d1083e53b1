// internal/ui/label/label.go
package label

import (
	"fmt"
	"strings"

	"space-war/internal/config"
	"space-war/internal/types"
)

// Тексты HUD без привязки к графике: их используют окно ebiten,
// терминал и окно raylib.

// Outcome: заголовок баннера для итога раунда
func Outcome(o types.Outcome) string {
	if winner, ok := o.Winner(); ok {
		return strings.ToUpper(winner.String()) + " WINS"
	}
	if o == types.OutcomeDraw {
		return "DRAW"
	}
	return ""
}

// Countdown переводит оставшиеся тики в секунды, округляя вверх.
func Countdown(ticks int) string {
	secs := (ticks + config.TicksPerSecond - 1) / config.TicksPerSecond
	return fmt.Sprintf("next round in %d", secs)
}

// Side: подпись стороны со счётом
func Side(side types.SideID, score int) string {
	return fmt.Sprintf("%s %d", strings.ToUpper(side.String()), score)
}

// Round: номер текущего раунда и число ничьих
func Round(round, draws int) string {
	if draws == 0 {
		return fmt.Sprintf("ROUND %d", round)
	}
	return fmt.Sprintf("ROUND %d  DRAWS %d", round, draws)
}

// Status: однострочная сводка матча для терминала и окна raylib
func Status(scores [types.SideCount]int, round, draws int) string {
	return fmt.Sprintf("%s | %s | %s",
		Side(types.Alliance, scores[types.Alliance]),
		Side(types.Federation, scores[types.Federation]),
		Round(round, draws))
}
