// internal/rlview/view.go
package rlview

import (
	"image/color"

	"space-war/internal/app"
	"space-war/internal/component"
	"space-war/internal/config"
	"space-war/internal/ui/label"
	"space-war/internal/utils"
	"space-war/pkg/vec2"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	hudFontSize    = 20
	bannerFontSize = 40
)

var dimStarColor = color.RGBA{90, 90, 100, 255}

// View рисует матч примитивами raylib. Вызывать между BeginDrawing и EndDrawing.
type View struct {
	stars     []utils.Star
	width     int32
	height    int32
	drawRects bool
}

func NewView(arena vec2.Vec, drawRects bool) *View {
	return &View{
		stars:     utils.Starfield(config.StarCount, config.StarSeed, arena),
		width:     int32(arena.X),
		height:    int32(arena.Y),
		drawRects: drawRects,
	}
}

func (v *View) Draw(match *app.Match) {
	rl.ClearBackground(config.BackgroundColor)
	for _, s := range v.stars {
		c := dimStarColor
		if s.Bright {
			c = config.StarColor
		}
		rl.DrawPixelV(toRL(s.Position), c)
	}

	arena := match.Arena()
	for _, d := range arena.Drawables() {
		v.drawSprite(d.Sprite())
	}

	sb := match.Scoreboard()
	rl.DrawText(label.Status(sb.Scores, sb.Rounds+1, sb.Draws), config.HUDMarginX, config.HUDMarginY, hudFontSize, config.TextLightColor)

	state := arena.State()
	if state.Phase == component.PhaseResolving {
		clr := config.TextLightColor
		if winner, ok := state.Outcome.Winner(); ok {
			clr = config.SideColors[winner]
		}
		v.drawCentered(label.Outcome(state.Outcome), v.height/2-config.BannerOffsetY, bannerFontSize, clr)
		v.drawCentered(label.Countdown(state.Countdown), v.height/2, hudFontSize, config.TextDimColor)
	}
}

func (v *View) drawSprite(s component.Sprite) {
	if !s.Visible || s.Scale <= 0 {
		return
	}
	center := toRL(s.Bounds.Center())
	r := float32(Radius(s.Bounds))

	switch s.Key {
	case component.SpritePlanet:
		rl.DrawCircleV(center, r, config.PlanetHaloColor)
		rl.DrawCircleV(center, r*0.85, config.PlanetColor)
	case component.SpriteExplosion:
		rl.DrawCircleV(center, r, config.EffectColor)
	case component.BulletSprite(s.Side):
		rl.DrawCircleV(center, r, config.SideColors[s.Side])
	case component.FighterSprite(s.Side):
		p := FighterOutline(s.Bounds, Heading(s))
		rl.DrawTriangle(toRL(p[0]), toRL(p[1]), toRL(p[2]), config.SideColors[s.Side])
	}

	if v.drawRects {
		rect := rl.NewRectangle(float32(s.Bounds.Min.X), float32(s.Bounds.Min.Y), float32(s.Bounds.Size.X), float32(s.Bounds.Size.Y))
		rl.DrawRectangleLinesEx(rect, 1, config.DebugRectColor)
	}
}

func (v *View) drawCentered(s string, y, size int32, clr color.RGBA) {
	w := rl.MeasureText(s, size)
	rl.DrawText(s, (v.width-w)/2, y, size, clr)
}
