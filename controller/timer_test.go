package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimerCountsDownToZero(t *testing.T) {
	var timer Timer
	assert.False(t, timer.Active())

	timer.Arm(3 * dt)
	assert.True(t, timer.Active())

	timer.Tick(dt)
	timer.Tick(dt)
	assert.True(t, timer.Active())
	assert.Equal(t, dt, timer.Remaining())

	timer.Tick(dt)
	assert.False(t, timer.Active())

	timer.Tick(dt)
	assert.Equal(t, 0.0, timer.Remaining(), "never goes negative")
}

func TestTimerRearmAndClear(t *testing.T) {
	var timer Timer
	timer.Arm(1)
	timer.Tick(0.5)
	timer.Arm(1)
	assert.Equal(t, 1.0, timer.Remaining())

	timer.Clear()
	assert.False(t, timer.Active())

	timer.Arm(-1)
	assert.False(t, timer.Active())
}

func TestStateNames(t *testing.T) {
	for _, s := range AllStates() {
		assert.NotEqual(t, "unknown", s.String())
	}
	assert.Equal(t, "wall_climbing", WallClimbing.String())
	assert.Equal(t, "unknown", State(99).String())
}
