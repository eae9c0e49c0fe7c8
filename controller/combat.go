package controller

import (
	stdmath "math"

	"github.com/automoto/swamp-preachers/shared/gamemath"
	"github.com/yohamta/donburi/features/math"
)

func (c *Controller) canAttack() bool {
	if !c.caps.Enabled(CapAttack) || c.crouching || c.state.attached() {
		return false
	}
	if !c.contacts.Grounded && !c.caps.Enabled(CapAirAttack) {
		return false
	}
	return true
}

// attack hits every target around the attack anchor at once and slows the
// attacker down for a moment.
func (c *Controller) attack() {
	c.attackTriggered = true
	c.attackSlowdown.Arm(c.cfg.AttackSlowdownDuration)
	c.emit(EventAttack)

	if c.targets == nil {
		return
	}
	pos := c.body.Position()
	anchor := math.Vec2{
		X: pos.X + c.facing.Sign()*c.cfg.AttackAnchor.X,
		Y: pos.Y + c.cfg.AttackAnchor.Y,
	}
	for _, t := range c.targets.TargetsInRadius(anchor, c.cfg.AttackRadius) {
		dir := gamemath.Sign(t.Position().X - pos.X)
		if dir == 0 {
			dir = c.facing.Sign()
		}
		t.ApplyHit(c.cfg.AttackDamage, math.Vec2{
			X: dir * c.cfg.AttackKnockback.X,
			Y: c.cfg.AttackKnockback.Y,
		})
	}
}

// TakeDamage applies one point of damage from source. It returns false and
// does nothing while the character is already hurt or has no health left.
//
// During a ledge climb the character cannot be knocked around: a non-lethal
// hit only costs health, a lethal one cancels the climb first.
func (c *Controller) TakeDamage(source math.Vec2) bool {
	if c.state == Hurt || c.state == Dead || c.health <= 0 {
		return false
	}
	c.health--

	if c.state == LedgeClimbing {
		if c.health > 0 {
			c.emit(EventHurt)
			return true
		}
		c.cancelLedgeClimb()
	}

	pos := c.body.Position()
	dx := source.X - pos.X
	if (dx > 0 && c.facing == FacingLeft) || (dx < 0 && c.facing == FacingRight) {
		c.flip()
	}

	c.dashTimer.Clear()
	c.dashTrigger = false
	c.wallStick.Clear()
	c.wallJumping = false
	c.jumpBuffer.Clear()
	c.body.SetVelocity(math.Vec2{})

	away := -gamemath.Sign(dx)
	if away == 0 {
		away = -c.facing.Sign()
	}
	knockback := math.Vec2{X: away * c.cfg.Knockback.X, Y: c.cfg.Knockback.Y}

	dy := source.Y - pos.Y
	switch {
	case dy > c.cfg.DamageVerticalThreshold:
		if c.caps.Enabled(CapCrouch) {
			c.setCrouched(true)
		}
		knockback.Y = c.cfg.KnockbackHop
	case dy < -c.cfg.DamageVerticalThreshold:
		knockback.Y *= c.cfg.KnockbackBelowMultiplier
	}

	c.hurt.Arm(c.cfg.HurtDuration)
	c.setState(Hurt)
	c.body.SetCollisionEnabled(true)
	c.body.AddImpulse(knockback)

	c.spawn(EffectHit, pos)
	c.emit(EventHurt)
	return true
}

// updateHurt ends the hurt lock or, for a lethal hit, waits until the body
// has landed before starting the death sequence.
func (c *Controller) updateHurt() {
	if c.health > 0 {
		if c.hurt.Active() {
			return
		}
		if c.contacts.Grounded {
			c.setState(Grounded)
		} else {
			c.setState(Airborne)
		}
		return
	}

	if c.contacts.Grounded && stdmath.Abs(c.body.Velocity().Y) <= c.cfg.DeathVelocityThreshold {
		c.die()
	}
}

func (c *Controller) die() {
	c.cancelLedgeClimb()
	c.setState(Dead)
	c.body.SetVelocity(math.Vec2{})
	c.dashTrigger = false
	c.jumpBuffer.Clear()
	c.deathDelay.Arm(c.cfg.DeathResetDelay)

	c.play(PoseDie)
	c.spawn(EffectDeath, c.body.Position())
	c.emit(EventDeath)
}

// Kill skips the hurt reaction and starts the death sequence at once, for
// hazards such as dead zones. It reports whether the character was alive.
func (c *Controller) Kill() bool {
	if c.state == Dead {
		return false
	}
	c.health = 0
	c.die()
	return true
}

// tickDeath requests exactly one level reset once the death delay ran out.
func (c *Controller) tickDeath(dt float64) {
	if c.resetIssued {
		return
	}
	c.deathDelay.Tick(dt)
	if c.deathDelay.Active() {
		return
	}
	c.resetIssued = true
	if c.resetter != nil {
		c.resetter.RequestLevelReset()
	}
	c.emit(EventLevelReset)
}

// Bounce is the stomp reaction: a fixed upward velocity and a full set of
// extra jumps.
func (c *Controller) Bounce() {
	switch c.state {
	case Hurt, Dead, LedgeClimbing:
		return
	case Dashing:
		c.dashTimer.Clear()
		c.dashCooldown.Arm(c.cfg.DashCooldown)
	}
	c.setVerticalVelocity(c.cfg.BounceVelocity)
	c.jumpCharges = c.cfg.ExtraJumpCount
	c.wallStick.Clear()
	c.setState(Airborne)
	c.emit(EventBounce)
}
