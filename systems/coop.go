package systems

import (
	"github.com/automoto/swamp-preachers/components"
	cfg "github.com/automoto/swamp-preachers/config"
	"github.com/automoto/swamp-preachers/shared/gamemath"
	"github.com/automoto/swamp-preachers/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// constrainPlayers keeps the first two living players within
// Coop.MaxDistance of each other by pulling them back on X. A player that
// is moved loses its horizontal velocity.
func constrainPlayers(ecs *ecs.ECS) {
	if cfg.Coop.MaxDistance <= 0 {
		return
	}

	var pair []*donburi.Entry
	tags.Player.Each(ecs.World, func(entry *donburi.Entry) {
		if len(pair) < 2 && !components.Player.Get(entry).Controller.Dead() {
			pair = append(pair, entry)
		}
	})
	if len(pair) < 2 {
		return
	}

	a := components.Object.Get(pair[0])
	b := components.Object.Get(pair[1])
	na, nb, movedA, movedB := gamemath.ConstrainPair(a.Position(), b.Position(), cfg.Coop.MaxDistance)
	if movedA {
		pinX(a, na.X)
	}
	if movedB {
		pinX(b, nb.X)
	}
}

func pinX(obj *components.ObjectData, x float64) {
	pos := obj.Position()
	pos.X = x
	obj.SetPosition(pos)

	v := obj.Velocity()
	v.X = 0
	obj.SetVelocity(v)
}
