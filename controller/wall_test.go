package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

// grabRightWall leaves the character sliding on a wall to its right.
func grabRightWall(t *testing.T, h *harness) {
	t.Helper()
	h.sensor.ground = false
	h.sensor.wallRight = true
	h.tick(hold)
	require.Equal(t, WallSliding, h.c.State())
}

func TestSenseContacts(t *testing.T) {
	h := newHarness(t)
	h.sensor.ground = true
	h.sensor.wallLeft = true
	h.sensor.climbable = true

	got := h.c.SenseContacts()
	assert.True(t, got.Grounded)
	assert.True(t, got.OnWall)
	assert.Equal(t, WallLeft, got.WallSide)
	assert.True(t, got.Climbable)
	assert.False(t, got.LedgeClear)

	h.sensor.wallLeft = false
	got = h.c.SenseContacts()
	assert.False(t, got.OnWall)
	assert.Equal(t, WallNone, got.WallSide)
	assert.False(t, got.Climbable, "climbable only counts on a touched wall")
}

func TestSenseContactsWithoutSensor(t *testing.T) {
	body := &fakeBody{}
	cfg, phys := testTuning()
	c := New(cfg, phys, Deps{Body: body})

	assert.Equal(t, Contacts{}, c.SenseContacts())
	c.PhysicsTick(dt)
	assert.Equal(t, Airborne, c.State())
}

func TestWallSlideAttachesOnlyWhenFacingTheWall(t *testing.T) {
	h := newHarness(t)
	h.sensor.wallLeft = true
	h.tick(hold)
	assert.Equal(t, Airborne, h.c.State(), "facing right, wall on the left")

	h.tick(Input{Horizontal: -1, JumpHeld: true})
	assert.Equal(t, WallSliding, h.c.State())
	assert.Equal(t, -h.cfg.SlideSpeed, h.body.vel.Y)
}

func TestWallSlideNeedsFalling(t *testing.T) {
	h := newHarness(t)
	h.sensor.wallRight = true
	h.body.vel = math.Vec2{Y: 3}
	h.tick(hold)
	assert.Equal(t, Airborne, h.c.State())
}

func TestWallSlideHoldsSlideSpeed(t *testing.T) {
	h := newHarness(t)
	grabRightWall(t, h)

	h.ticks(10, hold)
	assert.Equal(t, WallSliding, h.c.State())
	assert.Equal(t, -h.cfg.SlideSpeed, h.body.vel.Y)

	h.sensor.ground = true
	h.tick(hold)
	assert.Equal(t, Grounded, h.c.State())
}

func TestWallDetachJump(t *testing.T) {
	h := newHarness(t)
	grabRightWall(t, h)

	h.tick(Input{Horizontal: -1, Jump: true, JumpHeld: true})

	assert.Equal(t, Airborne, h.c.State())
	assert.Equal(t, FacingLeft, h.c.Facing())
	assert.Equal(t, math.Vec2{X: -10.5, Y: 18}, h.body.lastImpulse())
	assert.Equal(t, 1, h.obs.count(EventWallJump))
	// the impulse adds to the slide velocity and steering only eases in
	assert.InDelta(t, 18-h.cfg.SlideSpeed, h.body.vel.Y, 1e-9)
	assert.Less(t, h.body.vel.X, -10.0)
}

func TestWallDetachJumpWithoutInput(t *testing.T) {
	h := newHarness(t)
	grabRightWall(t, h)

	h.tick(press)
	assert.Equal(t, math.Vec2{X: -10.5, Y: 18}, h.body.lastImpulse())
	assert.Equal(t, FacingLeft, h.c.Facing(), "turned away from the wall")
	assert.Equal(t, []Facing{FacingLeft}, h.flipper.flips)
}

func TestWallClimbJump(t *testing.T) {
	h := newHarness(t)
	grabRightWall(t, h)

	h.tick(Input{Horizontal: 1, Jump: true, JumpHeld: true})
	assert.Equal(t, math.Vec2{X: -4, Y: 14}, h.body.lastImpulse())
	assert.Equal(t, FacingLeft, h.c.Facing())
	assert.Equal(t, Airborne, h.c.State())
}

func TestWallJumpSteeringEasesUntilContact(t *testing.T) {
	h := newHarness(t)
	grabRightWall(t, h)

	h.tick(press)
	h.sensor.wallRight = false
	before := h.body.vel.X
	h.tick(Input{Horizontal: 1, JumpHeld: true})
	assert.Greater(t, h.body.vel.X, before)
	assert.Less(t, h.body.vel.X, 0.0, "lerp, not an instant turn")

	h.sensor.ground = true
	h.tick(Input{Horizontal: 1, JumpHeld: true})
	h.tick(Input{Horizontal: 1, JumpHeld: true})
	assert.Equal(t, h.cfg.Speed, h.body.vel.X, "full control after landing")
}

func TestWallStickKeepsCharacterAttached(t *testing.T) {
	h := newHarness(t)
	grabRightWall(t, h)

	away := Input{Horizontal: -1, JumpHeld: true}
	h.ticks(15, away)
	assert.Equal(t, WallSliding, h.c.State())
	assert.Equal(t, 0.0, h.body.vel.X, "no steering while stuck")

	h.tick(away)
	assert.Equal(t, Airborne, h.c.State())
}

func TestWallClimbing(t *testing.T) {
	h := newHarness(t)
	h.sensor.climbable = true
	grabRightWall(t, h)

	h.tick(hold)
	assert.Equal(t, WallClimbing, h.c.State())
	assert.False(t, h.body.gravity)
	assert.Equal(t, math.Vec2{}, h.body.vel, "no input hangs in place")

	h.tick(Input{Vertical: 1, JumpHeld: true})
	assert.Equal(t, math.Vec2{Y: h.cfg.ClimbSpeed}, h.body.vel)

	h.tick(Input{Vertical: -0.5, JumpHeld: true})
	assert.Equal(t, math.Vec2{Y: -h.cfg.ClimbSpeed / 2}, h.body.vel)

	h.sensor.wallRight = false
	h.tick(hold)
	assert.Equal(t, Airborne, h.c.State())
	assert.True(t, h.body.gravity)
}

func TestCannotDashOrAttackOnWall(t *testing.T) {
	h := newHarness(t, withAirAttack)
	grabRightWall(t, h)

	h.tick(Input{Dash: true, Attack: true, JumpHeld: true})
	assert.Equal(t, WallSliding, h.c.State())
	assert.Equal(t, 0, h.obs.count(EventDash))
	assert.Equal(t, 0, h.obs.count(EventAttack))
}
