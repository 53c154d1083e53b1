// internal/utils/starfield.go
package utils

import "space-war/pkg/vec2"

// Star: точка фона
type Star struct {
	Position vec2.Vec
	Bright   bool
}

// Starfield раскладывает n звёзд по арене. Одинаковый seed даёт одинаковый фон.
func Starfield(n int, seed int64, bounds vec2.Vec) []Star {
	rng := NewPRNGService(seed)
	stars := make([]Star, n)
	for i := range stars {
		stars[i] = Star{
			Position: vec2.New(rng.Range(0, bounds.X), rng.Range(0, bounds.Y)).Floor(),
			Bright:   rng.Intn(4) == 0,
		}
	}
	return stars
}
