package systems

import (
	"github.com/automoto/swamp-preachers/components"
	"github.com/automoto/swamp-preachers/controller"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Screen shake applied when a death effect appears
const (
	deathShakeIntensity = 0.25 // world units
	deathShakeDuration  = 0.4  // seconds
)

// UpdateEffects fades effects out and removes finished ones.
func UpdateEffects(ecs *ecs.ECS) {
	dt := frameDelta()
	var finished []donburi.Entity

	components.Effect.Each(ecs.World, func(entry *donburi.Entry) {
		effect := components.Effect.Get(entry)
		if !effect.Started {
			effect.Started = true
			if effect.Kind == controller.EffectDeath {
				TriggerScreenShake(ecs, deathShakeIntensity, deathShakeDuration)
			}
		}
		if effect.Update(dt) {
			finished = append(finished, entry.Entity())
		}
	})

	for _, e := range finished {
		ecs.World.Remove(e)
	}
}
