package components

import (
	"github.com/automoto/swamp-preachers/physics"
	"github.com/yohamta/donburi"
)

// ObjectData links an entity to its body in the physics space.
type ObjectData struct {
	*physics.Body
}

var Object = donburi.NewComponentType[ObjectData]()
