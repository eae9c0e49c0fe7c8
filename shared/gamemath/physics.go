package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Lerp interpolates between a and b. t is clamped to [0, 1].
func Lerp(a, b, t float64) float64 {
	t = Clamp(t, 0, 1)
	return a + (b-a)*t
}

// LerpVec interpolates both components with the same clamped t.
func LerpVec(a, b dmath.Vec2, t float64) dmath.Vec2 {
	return dmath.Vec2{X: Lerp(a.X, b.X, t), Y: Lerp(a.Y, b.Y, t)}
}

// Distance returns the euclidean distance between a and b.
func Distance(a, b dmath.Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// ApplyDeadzone zeroes stick values whose magnitude is below deadzone and
// passes the rest through unchanged.
func ApplyDeadzone(v, deadzone float64) float64 {
	if math.Abs(v) < deadzone {
		return 0
	}
	return v
}
