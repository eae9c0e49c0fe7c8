package components

import (
	"github.com/automoto/swamp-preachers/controller"
	"github.com/automoto/swamp-preachers/shared/gamemath"
	"github.com/yohamta/donburi"
)

// ZoneData places a capability zone in the level.
type ZoneData struct {
	*controller.Zone
	Rect gamemath.Rect
}

var Zone = donburi.NewComponentType[ZoneData]()
