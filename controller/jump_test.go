package controller

import (
	"testing"

	"github.com/automoto/swamp-preachers/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

func TestGroundedJumpFiresOnce(t *testing.T) {
	h := newHarness(t)
	h.standOnGround()

	h.tick(press)
	assert.Equal(t, h.cfg.JumpForce, h.body.vel.Y)
	assert.Equal(t, Airborne, h.c.State())
	assert.Equal(t, 1, h.obs.count(EventJump))
	assert.Equal(t, 1, h.effects.count(EffectJump))

	// still touching the ground on the next tick: no second jump
	h.ticks(4, hold)
	assert.Equal(t, 1, h.obs.count(EventJump))
	assert.Equal(t, Grounded, h.c.State())
}

func TestJumpNeedsCapability(t *testing.T) {
	h := newHarness(t)
	h.standOnGround()
	h.c.SetCapability(CapJump, false)

	h.tick(press)
	assert.Equal(t, 0, h.obs.count(EventJump))
	assert.Equal(t, 0.0, h.body.vel.Y)
}

func TestJumpBufferWindow(t *testing.T) {
	tests := []struct {
		name          string
		ticksToLand   int
		wantJumpCount int
	}{
		{name: "pressed just before landing", ticksToLand: 1, wantJumpCount: 1},
		{name: "last tick inside the window", ticksToLand: 7, wantJumpCount: 1},
		{name: "one tick past the window", ticksToLand: 8, wantJumpCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.fallFor(40)
			require.Equal(t, Airborne, h.c.State())

			h.tick(press)
			h.ticks(tt.ticksToLand-1, hold)
			assert.Equal(t, 0, h.obs.count(EventJump), "no jump while airborne")

			h.sensor.ground = true
			h.tick(hold)
			h.ticks(10, hold)
			assert.Equal(t, tt.wantJumpCount, h.obs.count(EventJump))
		})
	}
}

func TestCoyoteWindow(t *testing.T) {
	tests := []struct {
		name          string
		ticksAfter    int // physics ticks since the last grounded one
		wantJumpCount int
	}{
		{name: "right after leaving the ground", ticksAfter: 1, wantJumpCount: 1},
		{name: "last tick inside the window", ticksAfter: 15, wantJumpCount: 1},
		{name: "one tick past the window", ticksAfter: 16, wantJumpCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.standOnGround()

			h.sensor.ground = false
			h.ticks(tt.ticksAfter-1, hold)
			h.tick(press)

			assert.Equal(t, tt.wantJumpCount, h.obs.count(EventJump))
			if tt.wantJumpCount == 1 {
				assert.Equal(t, h.cfg.JumpForce, h.body.vel.Y)
			} else {
				assert.Equal(t, 0.0, h.body.vel.Y)
			}
		})
	}
}

func TestExtraJumpUsesChargesUntilLanding(t *testing.T) {
	h := newHarness(t, func(p *config.PlayerConfig) {
		p.Capabilities.DoubleJump = true
		p.ExtraJumpCount = 1
	})
	h.standOnGround()

	h.tick(press)
	require.Equal(t, 1, h.obs.count(EventJump))

	h.sensor.ground = false
	h.ticks(5, hold)
	h.tick(press)
	assert.Equal(t, 1, h.obs.count(EventExtraJump))
	assert.InDelta(t, h.cfg.JumpForce*0.7, h.body.vel.Y, 1e-9)
	assert.Equal(t, 0, h.c.JumpCharges())

	// no charges left
	h.ticks(20, hold)
	h.tick(press)
	assert.Equal(t, 1, h.obs.count(EventExtraJump))

	h.sensor.ground = true
	h.tick(hold)
	assert.Equal(t, 1, h.c.JumpCharges(), "charges reset on landing")
}

func TestExtraJumpNeedsCapability(t *testing.T) {
	h := newHarness(t)
	h.fallFor(40)

	h.tick(press)
	assert.Equal(t, 0, h.obs.count(EventExtraJump))
	assert.Equal(t, 1, h.c.JumpCharges())
}

func TestLowJumpCutsRiseWhenReleased(t *testing.T) {
	h := newHarness(t)
	h.fallFor(1)

	h.body.vel = math.Vec2{Y: 5}
	h.tick(hold)
	assert.Equal(t, 5.0, h.body.vel.Y, "held jump keeps full rise")

	h.tick(Input{})
	// -32 * (2 - 1) / 64
	assert.InDelta(t, 4.5, h.body.vel.Y, 1e-9)
}

func TestFallMultiplier(t *testing.T) {
	h := newHarness(t)
	h.fallFor(1)

	h.body.vel = math.Vec2{Y: -1}
	h.tick(Input{})
	// -32 * (2.5 - 1) / 64
	assert.InDelta(t, -1.75, h.body.vel.Y, 1e-9)
}
