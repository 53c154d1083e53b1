// internal/component/gravity.go
package component

import "space-war/pkg/vec2"

// GravitySource: неподвижная планета, притягивающая все подвижные тела
// с постоянной силой Strength (не зависит от расстояния).
type GravitySource struct {
	Position vec2.Vec // левый верхний угол
	Size     vec2.Vec
	Strength float64
}

// Bounds returns the collision rectangle of the well.
func (g *GravitySource) Bounds() vec2.Rect {
	return vec2.NewRect(g.Position, g.Size)
}

// Center возвращает центр планеты
func (g *GravitySource) Center() vec2.Vec {
	return g.Bounds().Center()
}

// Force возвращает силу притяжения для точки p.
// Если p совпадает с центром планеты, сила нулевая.
func (g *GravitySource) Force(p vec2.Vec) vec2.Vec {
	d := g.Center().Sub(p)
	if d.IsZero() {
		return vec2.Zero
	}
	return d.Normalize().Scale(g.Strength)
}

// Apply pulls m toward the centre of the well.
func (g *GravitySource) Apply(m Movable) {
	f := g.Force(m.Bounds().Center())
	if f.IsZero() {
		return
	}
	m.Accelerate(f)
}

// Sprite implements Drawable.
func (g *GravitySource) Sprite() Sprite {
	return Sprite{
		Key:     SpritePlanet,
		Bounds:  g.Bounds(),
		Scale:   1,
		Visible: true,
	}
}
