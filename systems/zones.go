package systems

import (
	"log"

	"github.com/automoto/swamp-preachers/components"
	cfg "github.com/automoto/swamp-preachers/config"
	"github.com/automoto/swamp-preachers/shared/gamemath"
	"github.com/automoto/swamp-preachers/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// zoneMessageDuration is how long a zone's popup stays on screen.
const zoneMessageDuration = 3.0

// UpdateZones applies capability zones to players entering them and reverts
// them on exit.
func UpdateZones(ecs *ecs.ECS) {
	var players []*donburi.Entry
	tags.Player.Each(ecs.World, func(entry *donburi.Entry) {
		players = append(players, entry)
	})

	components.Zone.Each(ecs.World, func(entry *donburi.Entry) {
		zone := components.Zone.Get(entry)
		for _, playerEntry := range players {
			player := components.Player.Get(playerEntry)
			ctrl := player.Controller
			inside := gamemath.RectsOverlap(components.Object.Get(playerEntry).Bounds(), zone.Rect)

			switch {
			case inside && !zone.Contains(ctrl):
				zone.Enter(ctrl)
				if cfg.Debug.LogTransitions {
					log.Printf("[zone] %s entered %q", player.Name, zone.Name)
				}
				if zone.Message != "" {
					showMessage(ecs, zone.Message, zoneMessageDuration)
				}
			case !inside && zone.Contains(ctrl):
				zone.Exit(ctrl)
				if cfg.Debug.LogTransitions {
					log.Printf("[zone] %s left %q", player.Name, zone.Name)
				}
			}
		}
	})
}
