// internal/component/craft.go
package component

import (
	"space-war/internal/types"
	"space-war/pkg/vec2"
)

// CraftSpec: неизменяемые параметры истребителя и того, что он порождает
type CraftSpec struct {
	RotationSpeed    float64
	ThrustPower      float64
	MuzzleOffset     float64
	LaunchSpeed      float64
	ProjectileSize   vec2.Vec
	ProjectileMaxAge int
	EffectMaxAge     int
	RotationOffset   float64
}

// Craft: управляемый истребитель.
// destroyed защёлкивается: после уничтожения корабль не двигается, не рисуется,
// не сталкивается и не стреляет, а эффект взрыва создаётся ровно один раз.
type Craft struct {
	Body
	ID        types.EntityID
	Side      types.SideID
	Thrusters bool
	spec      CraftSpec
	destroyed bool
}

// NewCraft creates a craft at rest.
func NewCraft(id types.EntityID, side types.SideID, position vec2.Vec, direction float64, size vec2.Vec, spec CraftSpec) *Craft {
	return &Craft{
		Body: NewBody(position, vec2.Zero, direction, size, spec.RotationOffset),
		ID:   id,
		Side: side,
		spec: spec,
	}
}

// Spec returns the craft's fixed parameters.
func (c *Craft) Spec() CraftSpec {
	return c.spec
}

// Destroyed reports whether the craft has been destroyed.
func (c *Craft) Destroyed() bool {
	return c.destroyed
}

// RotateClockwise поворачивает по часовой стрелке на RotationSpeed
func (c *Craft) RotateClockwise() {
	if c.destroyed {
		return
	}
	c.Direction = vec2.NormalizeDegrees(c.Direction - c.spec.RotationSpeed)
}

// RotateAnticlockwise поворачивает против часовой стрелки на RotationSpeed
func (c *Craft) RotateAnticlockwise() {
	if c.destroyed {
		return
	}
	c.Direction = vec2.NormalizeDegrees(c.Direction + c.spec.RotationSpeed)
}

// Rotate applies a decoded rotation intent.
func (c *Craft) Rotate(r types.Rotation) {
	switch r {
	case types.RotateClockwise:
		c.RotateClockwise()
	case types.RotateAnticlockwise:
		c.RotateAnticlockwise()
	}
}

// SetThrusters только переключает состояние; тяга применяется в Integrate
func (c *Craft) SetThrusters(on bool) {
	if c.destroyed {
		return
	}
	c.Thrusters = on
}

// Accelerate ignores forces once the craft is destroyed.
func (c *Craft) Accelerate(force vec2.Vec) {
	if c.destroyed {
		return
	}
	c.Body.Accelerate(force)
}

// Integrate применяет тягу (если двигатели включены) и сдвигает корабль
func (c *Craft) Integrate() {
	if c.destroyed {
		return
	}
	if c.Thrusters {
		c.Body.Accelerate(c.Heading().Scale(c.spec.ThrustPower))
	}
	c.Body.Integrate()
}

// Confine keeps the craft inside the arena, zeroing the velocity component
// along any axis on which it was pushed back.
func (c *Craft) Confine(arena vec2.Vec) {
	clamped := vec2.Clamp(c.Position, c.Size, arena)
	if clamped.X != c.Position.X {
		c.Velocity.X = 0
	}
	if clamped.Y != c.Position.Y {
		c.Velocity.Y = 0
	}
	c.Position = clamped
}

// FireBullet создаёт снаряд перед носом корабля. Лимит стороны проверяет Side.Fire.
func (c *Craft) FireBullet(id types.EntityID) *Projectile {
	heading := c.Heading()
	center := c.Center().Add(heading.Scale(c.spec.MuzzleOffset))
	position := center.Sub(c.spec.ProjectileSize.Scale(0.5))
	velocity := c.Velocity.Add(heading.Scale(c.spec.LaunchSpeed))
	return NewProjectile(id, c.Side, position, velocity, c.Direction, c.spec.ProjectileSize, c.spec.ProjectileMaxAge, c.spec.RotationOffset)
}

// Destroy защёлкивает уничтожение и возвращает эффект взрыва.
// Повторный вызов ничего не делает и возвращает nil.
func (c *Craft) Destroy(effectID types.EntityID) *Effect {
	if c.destroyed {
		return nil
	}
	c.destroyed = true
	c.Thrusters = false
	return NewEffect(effectID, c.Side, c.Bounds(), c.spec.EffectMaxAge)
}

// Sprite implements Drawable.
func (c *Craft) Sprite() Sprite {
	return Sprite{
		Key:         FighterSprite(c.Side),
		Bounds:      c.Bounds(),
		Orientation: c.Orientation(),
		Scale:       1,
		Side:        c.Side,
		Visible:     !c.destroyed,
	}
}
