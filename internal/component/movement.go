// internal/component/movement.go
package component

import "space-war/pkg/vec2"

// Movable: сущность, на которую действуют силы и которая интегрируется каждый тик
type Movable interface {
	Bounds() vec2.Rect
	Accelerate(force vec2.Vec)
	Integrate()
}

// Expirable: сущность с ограниченным временем жизни
type Expirable interface {
	Tick()
	Expired() bool
}

// Collidable: сущность, участвующая в проверке столкновений
type Collidable interface {
	Bounds() vec2.Rect
}

// Body хранит общее подвижное состояние. Позиция (левый верхний угол),
// скорость, направление в градусах и размер ограничивающего прямоугольника.
type Body struct {
	Position       vec2.Vec
	Velocity       vec2.Vec
	Direction      float64 // всегда в [0, 360)
	Size           vec2.Vec
	RotationOffset float64 // только для отрисовки
}

// NewBody creates a body with its direction already wrapped into [0, 360).
func NewBody(position, velocity vec2.Vec, direction float64, size vec2.Vec, rotationOffset float64) Body {
	return Body{
		Position:       position,
		Velocity:       velocity,
		Direction:      vec2.NormalizeDegrees(direction),
		Size:           size,
		RotationOffset: rotationOffset,
	}
}

// Bounds возвращает ограничивающий прямоугольник
func (b *Body) Bounds() vec2.Rect {
	return vec2.NewRect(b.Position, b.Size)
}

// Center возвращает центр тела
func (b *Body) Center() vec2.Vec {
	return b.Bounds().Center()
}

// Accelerate прибавляет силу к скорости. Масса не моделируется.
func (b *Body) Accelerate(force vec2.Vec) {
	b.Velocity = b.Velocity.Add(force)
}

// Integrate сдвигает позицию на скорость за один тик
func (b *Body) Integrate() {
	b.Position = b.Position.Add(b.Velocity)
}

// Heading returns the unit vector of the current direction.
func (b *Body) Heading() vec2.Vec {
	return vec2.NormalFromAngle(b.Direction)
}

// Orientation is the angle the sprite is drawn at. It never feeds back into physics.
func (b *Body) Orientation() float64 {
	return vec2.NormalizeDegrees(b.Direction + b.RotationOffset)
}
