package factory

import (
	"github.com/automoto/swamp-preachers/archetypes"
	"github.com/automoto/swamp-preachers/components"
	"github.com/automoto/swamp-preachers/controller"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// effectSizes are the starting edge lengths of each effect in world units.
var effectSizes = map[controller.EffectKind]float64{
	controller.EffectJump:  0.5,
	controller.EffectDash:  0.75,
	controller.EffectHit:   0.5,
	controller.EffectDeath: 1.5,
}

// CreateEffect spawns a fading effect centered at the given position
func CreateEffect(ecs *ecs.ECS, kind controller.EffectKind, at math.Vec2) *donburi.Entry {
	effect := archetypes.Effect.Spawn(ecs)
	size, ok := effectSizes[kind]
	if !ok {
		size = 0.5
	}
	components.Effect.SetValue(effect, components.NewEffectData(kind, at, size))
	return effect
}
