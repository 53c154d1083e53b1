// pkg/easing/easing.go
package easing

// Func is an easing curve [0,1] → [0,1]
type Func func(x float64) float64

const (
	bounceN = 7.5625
	bounceD = 2.75
)

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Linear returns x clamped into [0,1].
func Linear(x float64) float64 {
	return clamp01(x)
}

// EaseOutBounce: отскок в конце (https://easings.net/#easeOutBounce)
func EaseOutBounce(x float64) float64 {
	x = clamp01(x)
	switch {
	case x < 1/bounceD:
		return bounceN * x * x
	case x < 2/bounceD:
		x -= 1.5 / bounceD
		return bounceN*x*x + 0.75
	case x < 2.5/bounceD:
		x -= 2.25 / bounceD
		return bounceN*x*x + 0.9375
	default:
		x -= 2.625 / bounceD
		return bounceN*x*x + 0.984375
	}
}

// EaseInBounce: отскок в начале
func EaseInBounce(x float64) float64 {
	return 1 - EaseOutBounce(1-clamp01(x))
}

// EaseInOutBounce: отскок с обеих сторон
func EaseInOutBounce(x float64) float64 {
	x = clamp01(x)
	if x < 0.5 {
		return (1 - EaseOutBounce(1-2*x)) / 2
	}
	return (1 + EaseOutBounce(2*x-1)) / 2
}

// Invert returns x ↦ 1 - f(x).
func Invert(f Func) Func {
	return func(x float64) float64 {
		return 1 - f(x)
	}
}

// Reverse returns x ↦ f(1 - x).
func Reverse(f Func) Func {
	return func(x float64) float64 {
		return f(1 - x)
	}
}
