package factory

import (
	"github.com/automoto/swamp-preachers/archetypes"
	"github.com/automoto/swamp-preachers/components"
	"github.com/automoto/swamp-preachers/physics"
	"github.com/automoto/swamp-preachers/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel creates the level entity together with its physics space,
// terrain and dead zones.
func CreateLevel(ecs *ecs.ECS, level *leveldata.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)

	space := CreateSpace(level)
	CreateTerrain(space, level)
	for _, dz := range level.DeadZones {
		CreateDeadZone(space, dz)
	}

	components.Level.SetValue(entry, components.LevelData{
		CurrentLevel: level,
		Space:        space,
	})
	return entry
}

// LevelSpace returns the physics space of the current level.
func LevelSpace(ecs *ecs.ECS) (*physics.Space, bool) {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Level.Get(entry).Space, true
}
