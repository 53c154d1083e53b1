// internal/ui/text.go
package ui

import (
	"image/color"

	"space-war/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// DefaultFace: встроенный моноширинный шрифт, файлы шрифтов не нужны
var DefaultFace font.Face = basicfont.Face7x13

// drawCentered рисует строку по центру относительно x
func drawCentered(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color) {
	b := text.BoundString(face, s)
	text.Draw(screen, s, face, x-b.Dx()/2, y, clr)
}

// Banner: полупрозрачная плашка с заголовком и подзаголовком по центру экрана
type Banner struct {
	face font.Face
}

func NewBanner(face font.Face) *Banner {
	return &Banner{face: face}
}

func (b *Banner) Draw(screen *ebiten.Image, title, subtitle string, titleColor color.Color) {
	if title == "" {
		return
	}
	w := screen.Bounds().Dx()
	cy := screen.Bounds().Dy()/2 - config.BannerOffsetY
	vector.DrawFilledRect(screen, 0, float32(cy-config.HUDLineHeight), float32(w), float32(3*config.HUDLineHeight), config.BannerColor, false)
	drawCentered(screen, b.face, title, w/2, cy, titleColor)
	if subtitle != "" {
		drawCentered(screen, b.face, subtitle, w/2, cy+config.HUDLineHeight, config.TextDimColor)
	}
}
