package factory

import (
	"github.com/automoto/swamp-preachers/config"
	"github.com/automoto/swamp-preachers/physics"
	"github.com/automoto/swamp-preachers/shared/leveldata"
)

// CreateSpace builds the physics space for a level at the configured
// resolution.
func CreateSpace(level *leveldata.Level) *physics.Space {
	return physics.NewSpace(level.Size, config.World.PixelsPerUnit, config.World.CellSize, nil)
}
