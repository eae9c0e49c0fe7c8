package factory

import (
	"github.com/automoto/swamp-preachers/archetypes"
	"github.com/automoto/swamp-preachers/components"
	"github.com/automoto/swamp-preachers/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateZone(ecs *ecs.ECS, data leveldata.ZoneData) *donburi.Entry {
	zone := archetypes.Zone.Spawn(ecs)
	components.Zone.SetValue(zone, components.ZoneData{
		Zone: data.Zone(),
		Rect: data.Rect,
	})
	return zone
}
