package factory

import (
	"github.com/automoto/swamp-preachers/physics"
	"github.com/automoto/swamp-preachers/shared/gamemath"
	"github.com/solarlune/resolv"
)

// CreateDeadZone creates an invisible area that kills any character touching it
func CreateDeadZone(space *physics.Space, r gamemath.Rect) *resolv.Object {
	return space.AddArea(r, physics.TagDeadZone)
}
