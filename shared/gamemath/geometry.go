package gamemath

import dmath "github.com/yohamta/donburi/features/math"

// Rect is an axis-aligned rectangle given by its minimum corner and size.
type Rect struct {
	X, Y, W, H float64
}

// RectFromCenter builds a Rect around center.
func RectFromCenter(center, size dmath.Vec2) Rect {
	return Rect{X: center.X - size.X/2, Y: center.Y - size.Y/2, W: size.X, H: size.Y}
}

// Center returns the midpoint of r.
func (r Rect) Center() dmath.Vec2 {
	return dmath.Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Contains reports whether p lies inside r (edges included).
func (r Rect) Contains(p dmath.Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// RectsOverlap reports a strict overlap; rectangles that only share an edge
// do not overlap.
func RectsOverlap(a, b Rect) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X && a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

// CircleIntersectsRect reports whether the circle touches or enters r.
func CircleIntersectsRect(center dmath.Vec2, radius float64, r Rect) bool {
	nx := Clamp(center.X, r.X, r.X+r.W)
	ny := Clamp(center.Y, r.Y, r.Y+r.H)
	dx := center.X - nx
	dy := center.Y - ny
	return dx*dx+dy*dy <= radius*radius
}
