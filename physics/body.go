package physics

import (
	stdmath "math"

	"github.com/automoto/swamp-preachers/controller"
	"github.com/automoto/swamp-preachers/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/features/math"
)

// Body is a dynamic box moved by velocity and gravity and stopped by solid
// geometry. It implements controller.Body.
type Body struct {
	space *Space
	obj   *resolv.Object

	pos      math.Vec2
	vel      math.Vec2
	collider controller.Collider

	gravity   bool
	collision bool
}

var _ controller.Body = (*Body)(nil)

func (b *Body) Position() math.Vec2 { return b.pos }

func (b *Body) SetPosition(p math.Vec2) {
	b.pos = p
	b.sync()
}

func (b *Body) Velocity() math.Vec2 { return b.vel }

func (b *Body) SetVelocity(v math.Vec2) { b.vel = v }

// AddImpulse changes velocity immediately; bodies have unit mass.
func (b *Body) AddImpulse(i math.Vec2) {
	b.vel.X += i.X
	b.vel.Y += i.Y
}

func (b *Body) SetGravityEnabled(on bool) { b.gravity = on }

func (b *Body) GravityEnabled() bool { return b.gravity }

func (b *Body) SetCollisionEnabled(on bool) { b.collision = on }

func (b *Body) CollisionEnabled() bool { return b.collision }

func (b *Body) SetCollider(c controller.Collider) {
	b.collider = c
	b.sync()
}

// Bounds returns the collider rectangle in world units.
func (b *Body) Bounds() gamemath.Rect {
	center := math.Vec2{X: b.pos.X + b.collider.Offset.X, Y: b.pos.Y + b.collider.Offset.Y}
	return gamemath.RectFromCenter(center, b.collider.Size)
}

// Overlaps reports whether the collider overlaps an area added with tag.
func (b *Body) Overlaps(tag string) bool {
	check := b.obj.Check(0, 0, tag)
	if check == nil {
		return false
	}
	box := b.Bounds()
	for _, o := range check.Objects {
		if r, ok := o.Data.(gamemath.Rect); ok && gamemath.RectsOverlap(box, r) {
			return true
		}
	}
	return false
}

// Step applies gravity, then moves along X and Y separately, stopping at
// solid geometry. Velocity on a blocked axis is zeroed.
func (b *Body) Step(dt float64) {
	cfg := b.space.cfg
	if b.gravity {
		b.vel.Y += cfg.Gravity * dt
		if cfg.MaxFallSpeed > 0 && b.vel.Y < -cfg.MaxFallSpeed {
			b.vel.Y = -cfg.MaxFallSpeed
		}
	}

	dx := b.vel.X * dt
	dy := b.vel.Y * dt
	if !b.collision {
		b.pos.X += dx
		b.pos.Y += dy
		b.sync()
		return
	}

	if dx != 0 {
		if moved := b.sweepX(dx); moved != dx {
			b.vel.X = 0
			dx = moved
		}
		b.pos.X += dx
		b.sync()
	}
	if dy != 0 {
		if moved := b.sweepY(dy); moved != dy {
			b.vel.Y = 0
			dy = moved
		}
		b.pos.Y += dy
		b.sync()
	}
}

// sweepX returns how far the body can move along X before touching a solid.
func (b *Body) sweepX(dx float64) float64 {
	ppu := b.space.ppu
	skin := 1 / ppu
	check := b.obj.Check((dx+gamemath.Sign(dx)*skin)*ppu, 0, TagSolid)
	if check == nil {
		return dx
	}

	allowed := dx
	for _, solid := range check.Objects {
		// resolv only filters by cell, so skip solids beside the path
		if b.obj.Y >= solid.Y+solid.H || b.obj.Y+b.obj.H <= solid.Y {
			continue
		}
		gap := check.ContactWithObject(solid).X() / ppu
		if dx > 0 && gap >= -skin {
			allowed = stdmath.Min(allowed, stdmath.Max(gap, 0))
		} else if dx < 0 && gap <= skin {
			allowed = stdmath.Max(allowed, stdmath.Min(gap, 0))
		}
	}
	return allowed
}

// sweepY is sweepX for the vertical axis; positive dy is up while resolv's
// y points down.
func (b *Body) sweepY(dy float64) float64 {
	ppu := b.space.ppu
	skin := 1 / ppu
	check := b.obj.Check(0, -(dy+gamemath.Sign(dy)*skin)*ppu, TagSolid)
	if check == nil {
		return dy
	}

	allowed := dy
	for _, solid := range check.Objects {
		if b.obj.X >= solid.X+solid.W || b.obj.X+b.obj.W <= solid.X {
			continue
		}
		gap := -check.ContactWithObject(solid).Y() / ppu
		if dy > 0 && gap >= -skin {
			allowed = stdmath.Min(allowed, stdmath.Max(gap, 0))
		} else if dy < 0 && gap <= skin {
			allowed = stdmath.Max(allowed, stdmath.Min(gap, 0))
		}
	}
	return allowed
}

func (b *Body) sync() {
	if b.obj == nil {
		return
	}
	b.obj.X, b.obj.Y, b.obj.W, b.obj.H = b.space.toPixels(b.Bounds())
	b.obj.Update()
}
