// internal/component/visual.go
package component

import (
	"math"

	"space-war/internal/types"
	"space-war/pkg/easing"
	"space-war/pkg/vec2"
)

// Effect: визуальный взрыв на месте уничтоженного корабля. Не участвует в физике.
type Effect struct {
	ID     types.EntityID
	Owner  types.SideID
	Target vec2.Rect
	Age    int
	MaxAge int
}

func NewEffect(id types.EntityID, owner types.SideID, target vec2.Rect, maxAge int) *Effect {
	return &Effect{ID: id, Owner: owner, Target: target, MaxAge: maxAge}
}

// Tick увеличивает возраст эффекта
func (e *Effect) Tick() {
	e.Age++
}

// Expired reports whether the effect outlived its maximum age.
func (e *Effect) Expired() bool {
	return e.Age > e.MaxAge
}

// Scale: текущий масштаб, никогда не отрицательный
func (e *Effect) Scale() float64 {
	if e.MaxAge <= 0 {
		return 1
	}
	return math.Max(0, easing.EaseInOutBounce(float64(e.Age)/float64(e.MaxAge)))
}

// Sprite implements Drawable. The image is scaled around the target's centre.
func (e *Effect) Sprite() Sprite {
	scale := e.Scale()
	size := e.Target.Size.Scale(scale)
	min := e.Target.Center().Sub(size.Scale(0.5))
	return Sprite{
		Key:     SpriteExplosion,
		Bounds:  vec2.NewRect(min, size),
		Scale:   scale,
		Side:    e.Owner,
		Visible: !e.Expired(),
	}
}
