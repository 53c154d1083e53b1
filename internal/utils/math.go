// internal/utils/math.go
package utils

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to float64, t float64) float64 {
	return from + (to-from)*t
}

// Clamp01 ограничивает t отрезком [0, 1]
func Clamp01(t float64) float64 {
	switch {
	case t < 0:
		return 0
	case t > 1:
		return 1
	}
	return t
}
