package systems

import (
	"github.com/automoto/swamp-preachers/components"
	"github.com/automoto/swamp-preachers/telemetry"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LevelResetRequested reports whether a controller asked for the level to
// restart. The scene checks it after every update.
func LevelResetRequested(ecs *ecs.ECS) bool {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return false
	}
	return components.Level.Get(entry).ResetRequested
}

func getRecorder(ecs *ecs.ECS) *telemetry.Recorder {
	entry, ok := components.Telemetry.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Telemetry.Get(entry).Recorder
}

// DrawLevel draws terrain, dead zones and capability zone outlines.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := currentView(ecs, screen)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).CurrentLevel
	if level == nil {
		return
	}

	for _, tile := range level.Terrain {
		clr := terrainColor
		if tile.Climbable {
			clr = climbableColor
		}
		v.fillRect(screen, tile.Rect, clr)
	}
	for _, dz := range level.DeadZones {
		v.fillRect(screen, dz, deadZoneColor)
	}
	components.Zone.Each(ecs.World, func(entry *donburi.Entry) {
		v.strokeRect(screen, components.Zone.Get(entry).Rect, zoneColor)
	})
}
