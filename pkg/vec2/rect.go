// pkg/vec2/rect.go
package vec2

// Rect is an axis-aligned rectangle. Min is the top-left corner.
type Rect struct {
	Min  Vec
	Size Vec
}

// NewRect creates a rectangle from its top-left corner and size.
func NewRect(min, size Vec) Rect {
	return Rect{Min: min, Size: size}
}

// Max возвращает правый нижний угол
func (r Rect) Max() Vec {
	return r.Min.Add(r.Size)
}

// Center возвращает центр прямоугольника
func (r Rect) Center() Vec {
	return r.Min.Add(r.Size.Scale(0.5))
}

// Translate сдвигает прямоугольник
func (r Rect) Translate(d Vec) Rect {
	return Rect{Min: r.Min.Add(d), Size: r.Size}
}

// Intersects reports whether the two rectangles overlap with a non-zero area.
// Rectangles that only share an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	rMax, oMax := r.Max(), o.Max()
	return r.Min.X < oMax.X && o.Min.X < rMax.X &&
		r.Min.Y < oMax.Y && o.Min.Y < rMax.Y
}

// Contains reports whether the point lies inside the rectangle (max edges exclusive).
func (r Rect) Contains(p Vec) bool {
	max := r.Max()
	return p.X >= r.Min.X && p.X < max.X && p.Y >= r.Min.Y && p.Y < max.Y
}
