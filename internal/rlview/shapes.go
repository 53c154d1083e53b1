// internal/rlview/shapes.go
package rlview

import (
	"math"

	"space-war/internal/component"
	"space-war/internal/config"
	"space-war/pkg/vec2"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// fighterWing: угол между носом и задними углами треугольника
const fighterWing = 140.0

// Radius: радиус круга, вписанного в прямоугольник спрайта
func Radius(r vec2.Rect) float64 {
	return math.Min(r.Size.X, r.Size.Y) / 2
}

// Heading переводит ориентацию спрайта обратно в направление полёта.
func Heading(s component.Sprite) float64 {
	return vec2.NormalizeDegrees(s.Orientation - config.CraftRotOffset)
}

// FighterOutline returns the craft triangle: nose first, then the two rear
// corners, anticlockwise on screen as raylib expects.
func FighterOutline(bounds vec2.Rect, heading float64) [3]vec2.Vec {
	c := bounds.Center()
	r := Radius(bounds)
	return [3]vec2.Vec{
		c.Add(vec2.NormalFromAngle(heading).Scale(r)),
		c.Add(vec2.NormalFromAngle(heading + fighterWing).Scale(r)),
		c.Add(vec2.NormalFromAngle(heading - fighterWing).Scale(r)),
	}
}

func toRL(v vec2.Vec) rl.Vector2 {
	return rl.NewVector2(float32(v.X), float32(v.Y))
}
