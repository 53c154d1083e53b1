// internal/ui/scoreboard.go
package ui

import (
	"space-war/internal/config"
	"space-war/internal/types"
	"space-war/internal/ui/label"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// ScoreHUD рисует счёт сторон в верхних углах и номер раунда по центру.
type ScoreHUD struct {
	face font.Face
}

func NewScoreHUD(face font.Face) *ScoreHUD {
	return &ScoreHUD{face: face}
}

func (h *ScoreHUD) Draw(screen *ebiten.Image, scores [types.SideCount]int, round, draws int) {
	w := screen.Bounds().Dx()

	left := label.Side(types.Alliance, scores[types.Alliance])
	text.Draw(screen, left, h.face, config.HUDMarginX, config.HUDMarginY, config.SideColors[types.Alliance])

	right := label.Side(types.Federation, scores[types.Federation])
	rb := text.BoundString(h.face, right)
	text.Draw(screen, right, h.face, w-config.HUDMarginX-rb.Dx(), config.HUDMarginY, config.SideColors[types.Federation])

	drawCentered(screen, h.face, label.Round(round, draws), w/2, config.HUDMarginY, config.TextDimColor)
}
