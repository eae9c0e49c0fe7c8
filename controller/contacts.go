package controller

import "github.com/yohamta/donburi/features/math"

// Contacts is what the character touches. It is recomputed every physics tick
// and never carried over.
type Contacts struct {
	Grounded  bool
	OnWall    bool
	WallSide  WallSide
	Climbable bool
	// LedgeClear is true when a wall is touched at grab height but not at the
	// ledge probe above it.
	LedgeClear bool
}

// SenseContacts probes the level around the body and stores the result. A
// controller without a sensor never touches anything.
func (c *Controller) SenseContacts() Contacts {
	c.contacts = Contacts{}
	if c.sensor == nil {
		return c.contacts
	}

	pos := c.body.Position()
	r := c.cfg.GrabRadius
	right := add(pos, c.cfg.GrabOffset)
	left := add(pos, math.Vec2{X: -c.cfg.GrabOffset.X, Y: c.cfg.GrabOffset.Y})

	c.contacts.Grounded = c.sensor.OverlapCircle(c.groundCheckPoint(), c.cfg.GroundCheckRadius, LayerGround)

	onRight := c.sensor.OverlapCircle(right, r, LayerWall)
	onLeft := c.sensor.OverlapCircle(left, r, LayerWall)

	var grab math.Vec2
	switch {
	case onRight && (!onLeft || c.facing == FacingRight):
		c.contacts.WallSide = WallRight
		grab = right
	case onLeft:
		c.contacts.WallSide = WallLeft
		grab = left
	default:
		return c.contacts
	}

	c.contacts.OnWall = true
	c.contacts.Climbable = c.sensor.OverlapCircle(grab, r, LayerClimbable)
	ledgeProbe := math.Vec2{X: grab.X, Y: grab.Y + c.cfg.LedgeCheckHeight}
	c.contacts.LedgeClear = !c.sensor.OverlapCircle(ledgeProbe, r, LayerWall)
	return c.contacts
}

// facesWall reports whether the character looks at the wall it touches.
func (c *Controller) facesWall() bool {
	return c.contacts.OnWall && c.contacts.WallSide.Sign() == c.facing.Sign()
}
