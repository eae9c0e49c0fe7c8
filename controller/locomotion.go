package controller

import "github.com/yohamta/donburi/features/math"

// stepLocomotion runs one physics tick for Grounded, Airborne, WallSliding and
// WallClimbing.
func (c *Controller) stepLocomotion(dt float64) {
	if c.wallJumping && (c.contacts.Grounded || c.state.attached()) {
		c.wallJumping = false
	}

	move := c.updateCrouch(c.input.Horizontal)
	if c.attackSlowdown.Active() && c.cfg.AttackSpeedDivisor > 0 {
		move /= c.cfg.AttackSpeedDivisor
	}

	c.updateFacing(move)
	if c.consumeDash() {
		return
	}
	jumped := c.resolveJump()

	c.steer(move, dt)
	c.shapeGravity(dt)
	if jumped {
		return
	}

	switch c.state {
	case WallSliding, WallClimbing:
		c.stepWall(move, dt)
	default:
		c.stepGroundAir(move)
	}
}

func (c *Controller) stepGroundAir(move float64) {
	switch {
	case c.contacts.Grounded:
		c.setState(Grounded)
	case c.canAttach():
		c.setState(WallSliding)
		c.wallStick.Arm(c.cfg.WallStickTime)
		c.body.SetVelocity(math.Vec2{X: move * c.cfg.Speed, Y: -c.cfg.SlideSpeed})
	default:
		c.setState(Airborne)
	}
}

// canAttach reports whether an airborne character grabs the wall it touches.
func (c *Controller) canAttach() bool {
	return !c.contacts.Grounded &&
		c.facesWall() &&
		c.body.Velocity().Y <= c.cfg.WallAttachMaxVelocity &&
		c.ledge == nil
}

// stepWall keeps an attached character on the wall. Turning away starts the
// wall-stick timer; the character stays put until it runs out so a detach
// jump can still be made.
func (c *Controller) stepWall(move, dt float64) {
	if c.contacts.Grounded {
		c.detach(Grounded)
		return
	}
	if !c.contacts.OnWall {
		c.detach(Airborne)
		return
	}

	holding := c.facesWall()
	if holding {
		c.wallStick.Arm(c.cfg.WallStickTime)
	} else {
		c.wallStick.Tick(dt)
		if !c.wallStick.Active() {
			c.detach(Airborne)
			return
		}
	}

	if c.contacts.Climbable {
		c.setState(WallClimbing)
		if holding && c.input.Vertical > 0 && c.contacts.LedgeClear && c.ledge == nil {
			c.startLedgeClimb()
			return
		}
		var vy float64
		if holding {
			vy = c.input.Vertical * c.cfg.ClimbSpeed
		}
		c.body.SetVelocity(math.Vec2{X: 0, Y: vy})
		return
	}

	c.setState(WallSliding)
	var vx float64
	if holding {
		vx = move * c.cfg.Speed
	}
	c.body.SetVelocity(math.Vec2{X: vx, Y: -c.cfg.SlideSpeed})
}

func (c *Controller) detach(to State) {
	c.wallStick.Clear()
	c.setState(to)
}
