package assets

import (
	"testing"

	"github.com/automoto/swamp-preachers/controller"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoLevelLoads(t *testing.T) {
	level, err := GetLevel(DefaultLevel)
	require.NoError(t, err)

	assert.Equal(t, 40.0, level.Size.X)
	assert.Equal(t, 15.0, level.Size.Y)
	require.Len(t, level.Spawns, 2)
	assert.Equal(t, 0, level.Spawns[0].Index)
	assert.Equal(t, 2.0, level.Spawns[0].Position.Y, "players stand on the ground row")

	require.Len(t, level.Zones, 2)
	assert.Equal(t, controller.ModeEnable, level.Zones[0].Modes[controller.CapDoubleJump])
	assert.True(t, level.Zones[1].RevertOnExit)

	require.Len(t, level.Enemies, 2)
	assert.False(t, level.Enemies[1].Stompable)
	require.Len(t, level.DeadZones, 1)

	climbable := 0
	for _, tile := range level.Terrain {
		if tile.Climbable {
			climbable++
		}
	}
	assert.Equal(t, 6, climbable)
}

func TestGetLevelUnknown(t *testing.T) {
	_, err := GetLevel("nowhere")
	assert.Error(t, err)
}
