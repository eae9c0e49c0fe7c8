package components

import (
	"github.com/automoto/swamp-preachers/physics"
	"github.com/automoto/swamp-preachers/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *leveldata.Level
	Space        *physics.Space

	// Accumulator holds frame time not yet consumed by fixed physics steps.
	Accumulator float64

	// ResetRequested is set by a dead player's controller; the scene
	// rebuilds the level on its next update.
	ResetRequested bool
}

var Level = donburi.NewComponentType[LevelData]()
