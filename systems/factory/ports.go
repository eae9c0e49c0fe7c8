package factory

import (
	"github.com/automoto/swamp-preachers/components"
	"github.com/automoto/swamp-preachers/controller"
	"github.com/automoto/swamp-preachers/shared/gamemath"
	"github.com/automoto/swamp-preachers/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// Adapters between controller ports and the ECS world.

// playerCamera records what the camera should track for one player. The
// camera system reads it every frame.
type playerCamera struct {
	entry *donburi.Entry
}

func (c playerCamera) Follow(target controller.Followable) {
	if !c.entry.Valid() {
		return
	}
	components.Player.Get(c.entry).Follow = target
}

type effectSpawner struct {
	ecs *ecs.ECS
}

func (s effectSpawner) SpawnEffect(kind controller.EffectKind, at math.Vec2) {
	CreateEffect(s.ecs, kind, at)
}

type levelResetter struct {
	ecs *ecs.ECS
}

func (r levelResetter) RequestLevelReset() {
	if entry, ok := components.Level.First(r.ecs.World); ok {
		components.Level.Get(entry).ResetRequested = true
	}
}

// enemyTargets finds living enemies for player attacks.
type enemyTargets struct {
	ecs *ecs.ECS
}

func (q enemyTargets) TargetsInRadius(center math.Vec2, radius float64) []controller.Target {
	var targets []controller.Target
	tags.Enemy.Each(q.ecs.World, func(entry *donburi.Entry) {
		if components.Enemy.Get(entry).Dying {
			return
		}
		body := components.Object.Get(entry)
		if gamemath.CircleIntersectsRect(center, radius, body.Bounds()) {
			targets = append(targets, enemyTarget{entry: entry})
		}
	})
	return targets
}

// enemyTarget queues hits; the combat system applies them next tick.
type enemyTarget struct {
	entry *donburi.Entry
}

func (t enemyTarget) Position() math.Vec2 {
	return components.Object.Get(t.entry).Position()
}

func (t enemyTarget) ApplyHit(damage int, knockback math.Vec2) {
	if !t.entry.Valid() {
		return
	}
	components.DamageEvent.Get(t.entry).Add(damage, knockback)
}
