package systems

import (
	"github.com/automoto/swamp-preachers/components"
	"github.com/automoto/swamp-preachers/physics"
	"github.com/automoto/swamp-preachers/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// checkDeadZones kills every character touching a dead zone.
func checkDeadZones(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(entry *donburi.Entry) {
		if components.Object.Get(entry).Overlaps(physics.TagDeadZone) {
			components.Player.Get(entry).Controller.Kill()
		}
	})

	var fallen []*donburi.Entry
	tags.Enemy.Each(ecs.World, func(entry *donburi.Entry) {
		if components.Object.Get(entry).Overlaps(physics.TagDeadZone) {
			fallen = append(fallen, entry)
		}
	})
	for _, entry := range fallen {
		killEnemy(ecs, entry)
	}
}
