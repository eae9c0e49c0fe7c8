package controller

import (
	"github.com/automoto/swamp-preachers/shared/gamemath"
	"github.com/yohamta/donburi/features/math"
)

// resolveJump fires at most one jump for a buffered press, in priority order:
// extra jump, grounded or coyote jump, wall-detach jump, wall-climb jump.
// Firing consumes the buffer.
func (c *Controller) resolveJump() bool {
	if !c.jumpBuffer.Active() {
		return false
	}

	attached := c.state.attached()
	grounded := c.contacts.Grounded
	side := c.contacts.WallSide.Sign()
	dir := gamemath.Sign(c.input.Horizontal)

	switch {
	case !grounded && !attached && c.caps.Enabled(CapDoubleJump) && c.jumpCharges > 0:
		c.jumpCharges--
		c.setVerticalVelocity(c.cfg.JumpForce * c.cfg.ExtraJumpForceScale)
		c.spawn(EffectJump, c.groundCheckPoint())
		c.emit(EventExtraJump)

	case grounded || c.coyote.Active():
		c.coyote.Clear()
		c.setVerticalVelocity(c.cfg.JumpForce)
		c.spawn(EffectJump, c.groundCheckPoint())
		c.emit(EventJump)

	case attached && dir != side:
		c.wallJump(side, c.cfg.WallJumpForce)

	case attached:
		c.wallJump(side, c.cfg.WallClimbForce)

	default:
		return false
	}

	c.jumpBuffer.Clear()
	c.setState(Airborne)
	return true
}

// wallJump pushes the character away from the wall on side and turns it
// around. Steering eases back in until the next ground or wall contact.
func (c *Controller) wallJump(side float64, force math.Vec2) {
	c.wallStick.Clear()
	c.wallJumping = true
	if c.facing.Sign() == side {
		c.flip()
	}
	c.body.AddImpulse(math.Vec2{X: -side * force.X, Y: force.Y})
	c.emit(EventWallJump)
}

func (c *Controller) setVerticalVelocity(vy float64) {
	v := c.body.Velocity()
	v.Y = vy
	c.body.SetVelocity(v)
}
