// internal/assets/image_manager.go
package assets

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"space-war/internal/component"
	"space-war/internal/config"
	"space-war/internal/types"
	"space-war/pkg/vec2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog"
)

// ImageManager загружает, масштабирует и кэширует изображения спрайтов.
// Если файла assets/images/<key>.png нет, рисуется процедурная заглушка.
type ImageManager struct {
	dir     string
	logger  zerolog.Logger
	sources map[string]*ebiten.Image // исходники из файлов; nil: файла нет
	scaled  map[string]*ebiten.Image
	rotated map[string]*ebiten.Image
}

// NewImageManager создает новый экземпляр ImageManager.
func NewImageManager(dir string, logger zerolog.Logger) *ImageManager {
	return &ImageManager{
		dir:     dir,
		logger:  logger,
		sources: make(map[string]*ebiten.Image),
		scaled:  make(map[string]*ebiten.Image),
		rotated: make(map[string]*ebiten.Image),
	}
}

// Image returns the image for key scaled to size.
func (m *ImageManager) Image(key string, size vec2.Vec) *ebiten.Image {
	w, h := pixelSize(size)
	ck := scaledKey(key, w, h)
	if img, ok := m.scaled[ck]; ok {
		return img
	}

	img := ebiten.NewImage(w, h)
	if src := m.source(key); src != nil {
		b := src.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(w)/float64(b.Dx()), float64(h)/float64(b.Dy()))
		op.Filter = ebiten.FilterLinear
		img.DrawImage(src, op)
	} else {
		drawPlaceholder(img, key)
	}
	m.scaled[ck] = img
	return img
}

// Rotated returns the scaled image rotated anticlockwise by degrees around
// its centre. The canvas keeps the unrotated size, so corners are clipped.
func (m *ImageManager) Rotated(key string, size vec2.Vec, degrees float64) *ebiten.Image {
	w, h := pixelSize(size)
	deg := wholeDegrees(degrees)
	ck := rotatedKey(key, w, h, deg)
	if img, ok := m.rotated[ck]; ok {
		return img
	}

	base := m.Image(key, size)
	img := ebiten.NewImage(w, h)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	// GeoM.Rotate поворачивает по часовой стрелке на экране с осью Y вниз
	op.GeoM.Rotate(-float64(deg) * math.Pi / 180)
	op.GeoM.Translate(float64(w)/2, float64(h)/2)
	op.Filter = ebiten.FilterLinear
	img.DrawImage(base, op)

	m.rotated[ck] = img
	return img
}

// Cleanup освобождает все изображения
func (m *ImageManager) Cleanup() {
	for _, cache := range []map[string]*ebiten.Image{m.sources, m.scaled, m.rotated} {
		for k, img := range cache {
			if img != nil {
				img.Deallocate()
			}
			delete(cache, k)
		}
	}
}

func (m *ImageManager) source(key string) *ebiten.Image {
	if img, ok := m.sources[key]; ok {
		return img
	}
	path := filepath.Join(m.dir, key+".png")
	if _, err := os.Stat(path); err != nil {
		m.logger.Debug().Str("key", key).Msg("No image file, using placeholder")
		m.sources[key] = nil
		return nil
	}
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		m.logger.Warn().Err(err).Str("path", path).Msg("Failed to load image, using placeholder")
		m.sources[key] = nil
		return nil
	}
	m.logger.Debug().Str("path", path).Msg("Image loaded")
	m.sources[key] = img
	return img
}

// drawPlaceholder рисует фигуру по ключу. Истребитель смотрит вверх, как и
// исходные спрайты, поэтому к нему применяется тот же поворотный сдвиг.
func drawPlaceholder(img *ebiten.Image, key string) {
	b := img.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())
	cx, cy := w/2, h/2
	r := min(w, h) / 2

	switch {
	case key == component.SpritePlanet:
		vector.DrawFilledCircle(img, cx, cy, r, config.PlanetHaloColor, true)
		vector.DrawFilledCircle(img, cx, cy, r*0.85, config.PlanetColor, true)
	case key == component.SpriteExplosion:
		vector.DrawFilledCircle(img, cx, cy, r, config.EffectColor, true)
		vector.DrawFilledCircle(img, cx, cy, r*0.5, color.RGBA{255, 240, 180, 255}, true)
	case strings.HasPrefix(key, "fighter_"):
		var path vector.Path
		path.MoveTo(cx, 0)
		path.LineTo(w, h)
		path.LineTo(cx, h*0.75)
		path.LineTo(0, h)
		path.Close()
		vertices, indices := path.AppendVerticesAndIndicesForFilling(nil, nil)
		c := sideColor(key)
		for i := range vertices {
			vertices[i].ColorR = float32(c.R) / 255
			vertices[i].ColorG = float32(c.G) / 255
			vertices[i].ColorB = float32(c.B) / 255
			vertices[i].ColorA = float32(c.A) / 255
		}
		img.DrawTriangles(vertices, indices, whitePixel(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
	case strings.HasPrefix(key, "bullet_"):
		vector.DrawFilledCircle(img, cx, cy, r, sideColor(key), true)
	default:
		vector.StrokeRect(img, 0, 0, w, h, 1, config.DebugRectColor, false)
	}
}

var whiteImage *ebiten.Image

func whitePixel() *ebiten.Image {
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
	}
	return whiteImage.SubImage(whiteImage.Bounds().Inset(1)).(*ebiten.Image)
}

// sideColor выбирает цвет стороны по суффиксу ключа
func sideColor(key string) color.RGBA {
	for _, side := range types.Sides {
		if strings.HasSuffix(key, "_"+side.String()) {
			return config.SideColors[side]
		}
	}
	return config.TextLightColor
}

func pixelSize(size vec2.Vec) (int, int) {
	w := max(1, int(math.Round(size.X)))
	h := max(1, int(math.Round(size.Y)))
	return w, h
}

// wholeDegrees округляет угол до целого градуса в [0, 360)
func wholeDegrees(deg float64) int {
	d := int(math.Round(vec2.NormalizeDegrees(deg)))
	return d % 360
}

func scaledKey(key string, w, h int) string {
	return fmt.Sprintf("%s@%dx%d", key, w, h)
}

func rotatedKey(key string, w, h, deg int) string {
	return fmt.Sprintf("%s@%dx%d/%d", key, w, h, deg)
}
