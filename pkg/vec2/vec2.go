// pkg/vec2/vec2.go
package vec2

import "math"

// Vec: двумерный вектор. Значимый тип: все операции возвращают новое значение.
type Vec struct {
	X, Y float64
}

// Zero: нулевой вектор
var Zero = Vec{}

// New creates a vector from its components.
func New(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add возвращает сумму векторов
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub возвращает разность векторов
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale умножает вектор на скаляр
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Mul умножает покомпонентно
func (v Vec) Mul(o Vec) Vec {
	return Vec{X: v.X * o.X, Y: v.Y * o.Y}
}

// Div делит на скаляр
func (v Vec) Div(s float64) Vec {
	return Vec{X: v.X / s, Y: v.Y / s}
}

// DivVec делит покомпонентно
func (v Vec) DivVec(o Vec) Vec {
	return Vec{X: v.X / o.X, Y: v.Y / o.Y}
}

// Len returns the magnitude of the vector.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the distance between two points.
func (v Vec) Distance(o Vec) float64 {
	return v.Sub(o).Len()
}

// Normalize возвращает единичный вектор того же направления.
// Для нулевого вектора возвращается нулевой вектор.
func (v Vec) Normalize() Vec {
	l := v.Len()
	if l == 0 {
		return Zero
	}
	return Vec{X: v.X / l, Y: v.Y / l}
}

// IsZero reports whether both components are exactly zero.
func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Midpoint возвращает середину отрезка
func Midpoint(a, b Vec) Vec {
	return Vec{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// Floor округляет компоненты вниз
func (v Vec) Floor() Vec {
	return Vec{X: math.Floor(v.X), Y: math.Floor(v.Y)}
}

// Clamp удерживает прямоугольник размера size с левым верхним углом position
// внутри области [0, boundary]. Если объект больше области, он прижимается к нулю.
func Clamp(position, size, boundary Vec) Vec {
	x, y := position.X, position.Y
	if x > boundary.X-size.X {
		x = boundary.X - size.X
	}
	if x < 0 {
		x = 0
	}
	if y > boundary.Y-size.Y {
		y = boundary.Y - size.Y
	}
	if y < 0 {
		y = 0
	}
	return Vec{X: x, Y: y}
}

// AngleFromNormal переводит единичный вектор в азимут в градусах.
// (1,0) → 0°, (1,1) → -45°; положительные углы идут против часовой стрелки
// на экране, где ось Y направлена вниз. Результат в диапазоне (-180, 180].
func AngleFromNormal(n Vec) float64 {
	return -math.Atan2(n.Y, n.X) * 180 / math.Pi
}

// NormalFromAngle: точная обратная функция к AngleFromNormal.
func NormalFromAngle(degrees float64) Vec {
	rad := degrees * math.Pi / 180
	return Vec{X: math.Cos(rad), Y: -math.Sin(rad)}
}

// NormalizeDegrees wraps an angle into [0, 360).
func NormalizeDegrees(degrees float64) float64 {
	d := math.Mod(degrees, 360)
	if d < 0 {
		d += 360
	}
	// math.Mod(-1e-18, 360)+360 rounds to 360
	if d >= 360 {
		d = 0
	}
	return d
}
