package controller

import "github.com/yohamta/donburi/features/math"

// EnemyContact describes an enemy touching the character.
type EnemyContact struct {
	Position  math.Vec2
	Stompable bool
	Attacking bool
}

// ContactResult is the outcome of ResolveEnemyContact.
type ContactResult int

const (
	ContactNone ContactResult = iota
	// ContactStomp means the character bounced off the enemy; the caller
	// damages the enemy.
	ContactStomp
	ContactDamage
)

func (r ContactResult) String() string {
	switch r {
	case ContactStomp:
		return "stomp"
	case ContactDamage:
		return "damage"
	}
	return "none"
}

// ResolveEnemyContact decides between a stomp and body damage when an enemy
// touches the character.
func (c *Controller) ResolveEnemyContact(e EnemyContact) ContactResult {
	if !c.interactive || c.state == Dead {
		return ContactNone
	}

	vy := c.body.Velocity().Y
	falling := vy < c.cfg.StompFallingVelocity
	rising := vy > c.cfg.StompFallingVelocity
	above := c.body.Position().Y > e.Position.Y+c.cfg.StompAboveOffset

	if above && rising {
		return ContactNone
	}

	if e.Stompable && falling && above && c.state != Hurt && !c.contacts.Grounded && c.state != Dashing {
		c.Bounce()
		return ContactStomp
	}

	if e.Attacking {
		return ContactNone
	}
	if c.TakeDamage(e.Position) {
		return ContactDamage
	}
	return ContactNone
}
