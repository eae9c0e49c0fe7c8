package gamemath

import dmath "github.com/yohamta/donburi/features/math"

// FollowStep moves current toward target by the smoothing fraction.
func FollowStep(current, target dmath.Vec2, smoothing float64) dmath.Vec2 {
	return LerpVec(current, target, smoothing)
}

// Midpoint returns the average of the given points. ok is false when there are
// none, in which case the camera should hold still.
func Midpoint(points ...dmath.Vec2) (mid dmath.Vec2, ok bool) {
	if len(points) == 0 {
		return dmath.Vec2{}, false
	}
	for _, p := range points {
		mid.X += p.X
		mid.Y += p.Y
	}
	n := float64(len(points))
	return dmath.Vec2{X: mid.X / n, Y: mid.Y / n}, true
}

// ZoomForDistance returns the zoom that keeps two players in view: it grows
// with their distance and is clamped to [minZoom, maxZoom].
func ZoomForDistance(distance, factor, padding, minZoom, maxZoom float64) float64 {
	return Clamp(distance*factor+padding, minZoom, maxZoom)
}

// ClampToBounds keeps p inside [min, max] on both axes. An inverted range on an
// axis (level smaller than the view) pins that axis to the range centre.
func ClampToBounds(p, min, max dmath.Vec2) dmath.Vec2 {
	clampAxis := func(v, lo, hi float64) float64 {
		if lo > hi {
			return (lo + hi) / 2
		}
		return Clamp(v, lo, hi)
	}
	return dmath.Vec2{X: clampAxis(p.X, min.X, max.X), Y: clampAxis(p.Y, min.Y, max.Y)}
}

// ConstrainPair pulls two players back on the X axis when they are further
// apart than maxDistance. Each returned position is either unchanged or moved
// onto the constrained position; moved reports which ones changed.
func ConstrainPair(a, b dmath.Vec2, maxDistance float64) (na, nb dmath.Vec2, movedA, movedB bool) {
	na, nb = a, b
	if maxDistance <= 0 {
		return
	}
	dist := Distance(a, b)
	if dist <= maxDistance {
		return
	}

	dir := dmath.Vec2{X: (b.X - a.X) / dist, Y: (b.Y - a.Y) / dist}
	mid, _ := Midpoint(a, b)
	half := maxDistance / 2

	ax := mid.X - dir.X*half
	bx := mid.X + dir.X*half

	const tolerance = 0.1
	if abs(a.X-ax) > tolerance {
		na.X = ax
		movedA = true
	}
	if abs(b.X-bx) > tolerance {
		nb.X = bx
		movedB = true
	}
	return
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
