package leveldata

import (
	"os"
	"testing"

	"github.com/automoto/swamp-preachers/controller"
	"github.com/automoto/swamp-preachers/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

func loadTestLevel(t *testing.T) *Level {
	t.Helper()
	level, err := LoadLevel(os.DirFS("testdata"), "levels/test.tmx")
	require.NoError(t, err)
	return level
}

func TestLoadLevelTerrain(t *testing.T) {
	level := loadTestLevel(t)

	assert.Equal(t, "test", level.Name)
	assert.Equal(t, math.Vec2{X: 10, Y: 8}, level.Size)
	assert.Equal(t, 16, level.TileSize)
	require.Len(t, level.Terrain, 15)

	var climbable []gamemath.Rect
	for _, tile := range level.Terrain {
		if tile.Climbable {
			climbable = append(climbable, tile.Rect)
			assert.Equal(t, controller.LayerGround|controller.LayerWall|controller.LayerClimbable, tile.Layers())
		} else {
			assert.Equal(t, 0.0, tile.Rect.Y, "plain tiles only line the bottom row")
			assert.Equal(t, controller.LayerGround|controller.LayerWall, tile.Layers())
		}
	}
	require.Len(t, climbable, 5)
	assert.Equal(t, gamemath.Rect{X: 9, Y: 5, W: 1, H: 1}, climbable[0])
	assert.Equal(t, gamemath.Rect{X: 9, Y: 1, W: 1, H: 1}, climbable[4])
}

func TestLoadLevelSpawnsSortedByIndex(t *testing.T) {
	level := loadTestLevel(t)

	require.Len(t, level.Spawns, 2)
	assert.Equal(t, SpawnPoint{Position: math.Vec2{X: 2, Y: 1}, Index: 0}, level.Spawns[0])
	assert.Equal(t, SpawnPoint{Position: math.Vec2{X: 3, Y: 1}, Index: 1}, level.Spawns[1])
}

func TestLoadLevelZones(t *testing.T) {
	level := loadTestLevel(t)

	require.Len(t, level.Zones, 1)
	zone := level.Zones[0]
	assert.Equal(t, "no-dash", zone.Name)
	assert.Equal(t, gamemath.Rect{X: 4, Y: 1, W: 2, H: 4}, zone.Rect)
	assert.True(t, zone.RevertOnExit)
	assert.Equal(t, "No dashing here", zone.Message)
	assert.Equal(t, map[controller.Capability]controller.Mode{
		controller.CapDash:       controller.ModeDisable,
		controller.CapDoubleJump: controller.ModeToggle,
	}, zone.Modes)

	z := zone.Zone()
	assert.Equal(t, zone.Name, z.Name)
	assert.Equal(t, zone.Modes, z.Modes)
	z.Modes[controller.CapJump] = controller.ModeDisable
	assert.NotContains(t, zone.Modes, controller.CapJump, "runtime zones get their own mode map")
}

func TestLoadLevelEnemiesAndDeadZones(t *testing.T) {
	level := loadTestLevel(t)

	require.Len(t, level.Enemies, 2)
	assert.Equal(t, EnemySpawn{
		Position:       math.Vec2{X: 6, Y: 1},
		Stompable:      false,
		PatrolDistance: 2.5,
		Health:         2,
	}, level.Enemies[0])
	assert.Equal(t, EnemySpawn{Position: math.Vec2{X: 8, Y: 1}, Stompable: true}, level.Enemies[1])

	require.Len(t, level.DeadZones, 1)
	assert.Equal(t, gamemath.Rect{X: 0, Y: 0, W: 10, H: 0.5}, level.DeadZones[0])
}

func TestLoadLevelErrors(t *testing.T) {
	fsys := os.DirFS("testdata")

	tests := []struct {
		name    string
		path    string
		wantErr error
		wantMsg string
	}{
		{name: "missing file", path: "levels/missing.tmx", wantMsg: "load TMX levels/missing.tmx"},
		{name: "bad zone mode", path: "broken/zone.tmx", wantMsg: `unknown capability mode "sideways"`},
		{name: "no spawn", path: "broken/nospawn.tmx", wantErr: ErrNoSpawn},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadLevel(fsys, tt.path)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestLoadAllLevels(t *testing.T) {
	levels, names, err := LoadAllLevels(os.DirFS("testdata"), "levels")
	require.NoError(t, err)
	assert.Equal(t, []string{"test"}, names)
	assert.Contains(t, levels, "test")

	_, _, err = LoadAllLevels(os.DirFS("testdata"), "nowhere")
	assert.ErrorContains(t, err, "no .tmx files found in nowhere")

	_, _, err = LoadAllLevels(os.DirFS("testdata"), "broken")
	assert.Error(t, err)
}
