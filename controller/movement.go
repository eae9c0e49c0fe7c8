package controller

import "github.com/yohamta/donburi/features/math"

// updateCrouch enters, keeps or leaves the crouch and returns the horizontal
// input scaled for it. Crouching can only start on the ground, but it lasts
// as long as the button is held, even into the air. Standing up needs the
// button released and room overhead.
func (c *Controller) updateCrouch(move float64) float64 {
	held := c.input.Crouch
	switch {
	case held && c.contacts.Grounded && c.caps.Enabled(CapCrouch):
		c.setCrouched(true)
	case c.crouching && !held && c.canStand():
		c.setCrouched(false)
	}

	if c.crouching && c.cfg.CrouchSpeedDivisor > 0 {
		move /= c.cfg.CrouchSpeedDivisor
	}
	return move
}

func (c *Controller) setCrouched(crouched bool) {
	if c.crouching == crouched {
		return
	}
	c.crouching = crouched
	c.body.SetCollider(c.Collider())
}

// canStand checks the upper half of the standing collider, slightly shrunk.
func (c *Controller) canStand() bool {
	if c.sensor == nil {
		return true
	}
	size := c.standing.Size
	center := add(c.body.Position(), c.standing.Offset)
	center.Y += size.Y / 4
	scale := c.cfg.StandClearanceScale
	box := math.Vec2{X: size.X * scale, Y: size.Y / 2 * scale}
	return !c.sensor.OverlapBox(center, box, LayerGround|LayerWall)
}

// steer applies horizontal input. After a wall jump the velocity only eases
// toward the input so the jump reads visually.
func (c *Controller) steer(move, dt float64) {
	if c.state.attached() {
		return
	}
	v := c.body.Velocity()
	target := move * c.cfg.Speed
	if c.wallJumping {
		t := c.cfg.WallJumpLerp * dt
		if t > 1 {
			t = 1
		}
		v.X += (target - v.X) * t
	} else {
		v.X = target
	}
	c.body.SetVelocity(v)
}

// shapeGravity makes falls faster and cuts jumps short when the button is
// released early. Input is locked while hurt, so a knockback arc always gets
// the short-jump cut on the way up.
func (c *Controller) shapeGravity(dt float64) {
	if !c.state.gravityEnabled() {
		return
	}
	held := c.input.JumpHeld && c.state != Hurt
	v := c.body.Velocity()
	g := c.physics.Gravity
	switch {
	case v.Y < 0:
		v.Y += g * (c.cfg.FallMultiplier - 1) * dt
	case v.Y > 0 && !held:
		v.Y += g * (c.cfg.LowJumpMultiplier - 1) * dt
	default:
		return
	}
	c.body.SetVelocity(v)
}

func (c *Controller) updateFacing(move float64) {
	if (move > 0 && c.facing == FacingLeft) || (move < 0 && c.facing == FacingRight) {
		c.flip()
	}
}

// canDash checks every dash precondition. It is evaluated both when the
// trigger is latched and when it is consumed.
func (c *Controller) canDash() bool {
	if c.state != Grounded && c.state != Airborne {
		return false
	}
	return c.caps.Enabled(CapDash) &&
		!c.airDashUsed &&
		!c.dashCooldown.Active() &&
		!c.crouching
}

func (c *Controller) consumeDash() bool {
	if !c.dashTrigger {
		return false
	}
	c.dashTrigger = false
	if !c.canDash() {
		return false
	}

	if !c.contacts.Grounded {
		c.airDashUsed = true
	}
	c.dashTimer.Arm(c.cfg.DashTime)
	c.setState(Dashing)
	c.body.SetVelocity(math.Vec2{X: c.facing.Sign() * c.cfg.DashSpeed})
	c.spawn(EffectDash, c.body.Position())
	c.emit(EventDash)
	return true
}

// stepDash pins the velocity for the dash duration. The dash always runs to
// completion once started.
func (c *Controller) stepDash(dt float64) {
	c.dashTimer.Tick(dt)
	if c.dashTimer.Active() {
		c.body.SetVelocity(math.Vec2{X: c.facing.Sign() * c.cfg.DashSpeed})
		return
	}
	c.endDash()
}

func (c *Controller) endDash() {
	c.dashTimer.Clear()
	c.dashCooldown.Arm(c.cfg.DashCooldown)
	c.body.SetVelocity(math.Vec2{})
	if c.contacts.Grounded {
		c.setState(Grounded)
	} else {
		c.setState(Airborne)
	}
}
