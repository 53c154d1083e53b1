// internal/component/render.go
package component

import (
	"space-war/internal/types"
	"space-war/pkg/vec2"
)

// Ключи изображений, которые запрашиваются у поставщика ассетов
const (
	SpritePlanet    = "planet"
	SpriteExplosion = "explosion"
)

// FighterSprite returns the image key of a side's craft.
func FighterSprite(side types.SideID) string {
	return "fighter_" + side.String()
}

// BulletSprite returns the image key of a side's projectile.
func BulletSprite(side types.SideID) string {
	return "bullet_" + side.String()
}

// Sprite: всё, что нужно рендереру, чтобы нарисовать сущность. Только для чтения.
type Sprite struct {
	Key         string
	Bounds      vec2.Rect // прямоугольник на экране с учётом масштаба
	Orientation float64   // градусы, против часовой стрелки
	Scale       float64
	Side        types.SideID
	Visible     bool
}

// Drawable: сущность, которую можно нарисовать
type Drawable interface {
	Sprite() Sprite
}
