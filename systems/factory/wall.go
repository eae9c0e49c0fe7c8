package factory

import (
	"github.com/automoto/swamp-preachers/physics"
	"github.com/automoto/swamp-preachers/shared/leveldata"
)

// CreateTerrain adds every terrain tile of the level to the space. Climbable
// tiles are solid too, so a wall climb always has something to stand on.
func CreateTerrain(space *physics.Space, level *leveldata.Level) {
	for _, tile := range level.Terrain {
		space.AddSolid(tile.Rect, tile.Layers())
	}
}
