package components

import (
	stdmath "math"

	"github.com/automoto/swamp-preachers/shared/gamemath"
	"github.com/yohamta/donburi"
)

// patrolArrival is how close on X an enemy must get to a patrol point before
// it stops and waits.
const patrolArrival = 0.2

// flashDuration is how long an enemy shows its hit flash.
const flashDuration = 0.1

type EnemyData struct {
	// AI state management
	PatrolPoints [2]float64 // X coordinates it walks between
	Target       int        // index into PatrolPoints
	PatrolSpeed  float64
	WaitTime     float64
	waiting      bool
	waitTimer    float64

	// Combat
	Stompable  bool
	Attacking  bool
	StunTimer  float64
	FlashTimer float64
	Dying      bool
	DeathTimer float64 // seconds until a dying enemy is removed

	// Players touching the enemy on the last tick. Contact is resolved only
	// when a touch begins.
	Touching map[donburi.Entity]bool
}

// Patrol advances the patrol by dt for an enemy at x and returns the
// horizontal velocity to apply. steer is false while stunned so knockback
// is left alone.
func (e *EnemyData) Patrol(dt, x float64) (vx float64, steer bool) {
	if e.FlashTimer > 0 {
		e.FlashTimer = stdmath.Max(0, e.FlashTimer-dt)
	}
	if e.StunTimer > 0 {
		e.StunTimer -= dt
		return 0, false
	}
	if e.Dying {
		return 0, true
	}

	if e.waiting {
		e.waitTimer -= dt
		if e.waitTimer <= 0 {
			e.waiting = false
			e.Target = (e.Target + 1) % len(e.PatrolPoints)
		}
		return 0, true
	}

	target := e.PatrolPoints[e.Target]
	if stdmath.Abs(target-x) < patrolArrival {
		e.waiting = true
		e.waitTimer = e.WaitTime
		return 0, true
	}
	return gamemath.Sign(target-x) * e.PatrolSpeed, true
}

// BeginTouch records whether player overlaps the enemy on this tick and
// reports whether the touch just began. A player who stays inside is not hit
// again when their hurt lock ends; they must step off and touch again.
func (e *EnemyData) BeginTouch(player donburi.Entity, touching bool) bool {
	if !touching {
		delete(e.Touching, player)
		return false
	}
	if e.Touching == nil {
		e.Touching = make(map[donburi.Entity]bool)
	}
	began := !e.Touching[player]
	e.Touching[player] = true
	return began
}

// Waiting reports whether the enemy is paused at a patrol point.
func (e *EnemyData) Waiting() bool { return e.waiting }

// Hit starts the flash and, when stun > 0, the knockback stun.
func (e *EnemyData) Hit(stun float64) {
	e.FlashTimer = flashDuration
	if stun > 0 {
		e.StunTimer = stun
	}
}

var Enemy = donburi.NewComponentType[EnemyData]()
