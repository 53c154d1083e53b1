// internal/component/projectile.go
package component

import (
	"space-war/internal/types"
	"space-war/pkg/vec2"
)

// Projectile представляет летящий снаряд. Owner: сторона, которой он принадлежит.
type Projectile struct {
	Body
	ID     types.EntityID
	Owner  types.SideID
	Age    int // тиков с момента выстрела
	MaxAge int
}

func NewProjectile(id types.EntityID, owner types.SideID, position, velocity vec2.Vec, direction float64, size vec2.Vec, maxAge int, rotationOffset float64) *Projectile {
	return &Projectile{
		Body:   NewBody(position, velocity, direction, size, rotationOffset),
		ID:     id,
		Owner:  owner,
		MaxAge: maxAge,
	}
}

// Tick увеличивает возраст снаряда
func (p *Projectile) Tick() {
	p.Age++
}

// Expired reports whether the projectile outlived its maximum age.
func (p *Projectile) Expired() bool {
	return p.Age > p.MaxAge
}

// Sprite implements Drawable.
func (p *Projectile) Sprite() Sprite {
	return Sprite{
		Key:         BulletSprite(p.Owner),
		Bounds:      p.Bounds(),
		Orientation: p.Orientation(),
		Scale:       1,
		Side:        p.Owner,
		Visible:     true,
	}
}
