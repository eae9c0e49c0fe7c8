// Package leveldata parses Tiled levels into world-unit geometry and spawn
// data. It does not depend on ebitengine or resolv.
package leveldata

import (
	"github.com/automoto/swamp-preachers/controller"
	"github.com/automoto/swamp-preachers/shared/gamemath"
	"github.com/yohamta/donburi/features/math"
)

// Level holds everything parsed from one TMX file. One tile is one world
// unit and y points up, so the bottom-left corner of the map is the origin.
type Level struct {
	Name      string
	Size      math.Vec2
	TileSize  int
	Terrain   []Terrain
	Spawns    []SpawnPoint
	Zones     []ZoneData
	Enemies   []EnemySpawn
	DeadZones []gamemath.Rect
}

// Terrain is one solid tile.
type Terrain struct {
	Rect      gamemath.Rect
	Climbable bool
}

// Layers returns the collision layers the tile belongs to.
func (t Terrain) Layers() controller.Layer {
	layers := controller.LayerGround | controller.LayerWall
	if t.Climbable {
		layers |= controller.LayerClimbable
	}
	return layers
}

// SpawnPoint is where a player's feet start.
type SpawnPoint struct {
	Position math.Vec2
	Index    int
}

// ZoneData describes a capability zone placed in the level.
type ZoneData struct {
	Name         string
	Rect         gamemath.Rect
	Modes        map[controller.Capability]controller.Mode
	RevertOnExit bool
	Message      string
}

// Zone builds the runtime trigger for z.
func (z ZoneData) Zone() *controller.Zone {
	modes := make(map[controller.Capability]controller.Mode, len(z.Modes))
	for c, m := range z.Modes {
		modes[c] = m
	}
	return &controller.Zone{
		Name:         z.Name,
		Modes:        modes,
		RevertOnExit: z.RevertOnExit,
		Message:      z.Message,
	}
}

// EnemySpawn is a patrolling enemy placed in the level. Zero values fall back
// to the enemy configuration.
type EnemySpawn struct {
	Position       math.Vec2
	Stompable      bool
	PatrolDistance float64
	Health         int
}
