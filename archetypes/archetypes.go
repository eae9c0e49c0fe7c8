package archetypes

import (
	"github.com/automoto/swamp-preachers/components"
	"github.com/automoto/swamp-preachers/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LayerDefault is the only render layer the game uses.
const LayerDefault ecs.LayerID = 0

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.PlayerInput,
		components.Object,
		components.Animation,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Health,
		components.DamageEvent,
	)
	Zone = newArchetype(
		tags.Zone,
		components.Zone,
	)
	Effect = newArchetype(
		tags.Effect,
		components.Effect,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Session = newArchetype(
		components.MessageState,
		components.Telemetry,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		LayerDefault,
		append(a.components, cs...)...,
	))
	return e
}
