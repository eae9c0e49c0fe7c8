package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi/features/math"
)

func TestNewSpawnsGroundedWithFullHealth(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, Grounded, h.c.State())
	assert.Equal(t, FacingRight, h.c.Facing())
	assert.Equal(t, 3, h.c.Health())
	assert.Equal(t, 1.0, h.c.HealthFraction())
	assert.Equal(t, h.cfg.ExtraJumpCount, h.c.JumpCharges())
	assert.True(t, h.c.Interactive())
	assert.True(t, h.body.gravity)
	assert.True(t, h.body.collision)
	assert.Equal(t, Collider{Size: h.cfg.ColliderSize, Offset: h.cfg.ColliderOffset}, h.body.collider)
}

func TestNewRequiresBody(t *testing.T) {
	assert.Panics(t, func() { New(nil, nil, Deps{}) })
}

func TestNewFallsBackToLiveConfig(t *testing.T) {
	c := New(nil, nil, Deps{Body: &fakeBody{}})
	assert.Equal(t, c.cfg.MaxHealth, c.Health())
}

func TestObserverSeesTransitionsInOrder(t *testing.T) {
	h := newHarness(t)
	h.standOnGround()
	h.tick(press)
	h.sensor.ground = false
	h.tick(hold)

	assert.Equal(t, [][2]State{{Grounded, Airborne}}, h.obs.transitions)
	assert.Equal(t, []Event{EventJump}, h.obs.events)
}

func TestObserversFanOut(t *testing.T) {
	a, b := &recordingObserver{}, &recordingObserver{}
	obs := Observers{a, b}

	obs.OnTransition(Grounded, Dashing)
	obs.OnEvent(EventDash)

	for _, o := range []*recordingObserver{a, b} {
		assert.Equal(t, [][2]State{{Grounded, Dashing}}, o.transitions)
		assert.Equal(t, []Event{EventDash}, o.events)
	}
}

func TestEventNames(t *testing.T) {
	for _, e := range AllEvents() {
		assert.NotEqual(t, "unknown", e.String())
	}
	assert.Len(t, AllEvents(), 10)
}

func TestSnapshot(t *testing.T) {
	h := newHarness(t)
	h.standOnGround()
	h.body.pos = math.Vec2{X: 3, Y: 4}

	snap := h.c.Snapshot()
	assert.Equal(t, "grounded", snap.State)
	assert.Equal(t, "right", snap.Facing)
	assert.Equal(t, 3, snap.Health)
	assert.True(t, snap.Grounded)
	assert.Equal(t, math.Vec2{X: 3, Y: 4}, snap.Position)
}
