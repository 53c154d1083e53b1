// pkg/render/arena_renderer.go
package render

import (
	"space-war/internal/component"
	"space-war/internal/utils"
	"space-war/pkg/vec2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ImageProvider: источник изображений спрайтов
type ImageProvider interface {
	Image(key string, size vec2.Vec) *ebiten.Image
	Rotated(key string, size vec2.Vec, degrees float64) *ebiten.Image
}

// ArenaRenderer рисует арену: фон, планету, снаряды, корабли и взрывы.
type ArenaRenderer struct {
	images     ImageProvider
	palette    Palette
	bounds     vec2.Vec
	stars      []utils.Star
	background *ebiten.Image // предрендеренный звёздный фон
	drawRects  bool
}

func NewArenaRenderer(images ImageProvider, palette Palette, bounds vec2.Vec, stars []utils.Star, drawRects bool) *ArenaRenderer {
	return &ArenaRenderer{
		images:    images,
		palette:   palette,
		bounds:    bounds,
		stars:     stars,
		drawRects: drawRects,
	}
}

// Draw renders drawables in the order given.
func (r *ArenaRenderer) Draw(screen *ebiten.Image, drawables []component.Drawable) {
	screen.DrawImage(r.backgroundImage(), nil)
	for _, d := range drawables {
		r.drawSprite(screen, d.Sprite())
	}
}

func (r *ArenaRenderer) drawSprite(screen *ebiten.Image, s component.Sprite) {
	if !s.Visible || s.Scale <= 0 {
		return
	}

	// Изображение кэшируется в исходном размере и масштабируется при выводе,
	// иначе пульсирующий взрыв создавал бы новый кэш на каждом тике.
	base := s.Bounds.Size.Div(s.Scale)
	var img *ebiten.Image
	if s.Orientation != 0 {
		img = r.images.Rotated(s.Key, base, s.Orientation)
	} else {
		img = r.images.Image(s.Key, base)
	}

	op := &ebiten.DrawImageOptions{}
	b := img.Bounds()
	op.GeoM.Scale(s.Bounds.Size.X/float64(b.Dx()), s.Bounds.Size.Y/float64(b.Dy()))
	op.GeoM.Translate(s.Bounds.Min.X, s.Bounds.Min.Y)
	screen.DrawImage(img, op)

	if r.drawRects {
		vector.StrokeRect(screen,
			float32(s.Bounds.Min.X), float32(s.Bounds.Min.Y),
			float32(s.Bounds.Size.X), float32(s.Bounds.Size.Y),
			r.palette.StrokeWidth, r.palette.DebugRectColor, false)
	}
}

func (r *ArenaRenderer) backgroundImage() *ebiten.Image {
	if r.background != nil {
		return r.background
	}
	w, h := int(r.bounds.X), int(r.bounds.Y)
	bg := ebiten.NewImage(w, h)
	bg.Fill(r.palette.BackgroundColor)
	dim := DarkenColor(r.palette.StarColor)
	for _, s := range r.stars {
		c := dim
		if s.Bright {
			c = r.palette.StarColor
		}
		vector.DrawFilledRect(bg, float32(s.Position.X), float32(s.Position.Y), 1, 1, c, false)
	}
	r.background = bg
	return bg
}
