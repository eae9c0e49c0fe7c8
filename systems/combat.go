package systems

import (
	"github.com/automoto/swamp-preachers/components"
	cfg "github.com/automoto/swamp-preachers/config"
	"github.com/automoto/swamp-preachers/controller"
	"github.com/automoto/swamp-preachers/systems/factory"
	"github.com/automoto/swamp-preachers/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// enemyRemoveDelay is how long a dead enemy stays before it is removed.
const enemyRemoveDelay = 0.15

// applyDamageEvents lands the hits queued on enemies by player attacks and
// stomps. Knockback stuns the enemy.
func applyDamageEvents(ecs *ecs.ECS) {
	tags.Enemy.Each(ecs.World, func(entry *donburi.Entry) {
		hits := components.DamageEvent.Get(entry).Drain()
		enemy := components.Enemy.Get(entry)
		if len(hits) == 0 || enemy.Dying {
			return
		}

		health := components.Health.Get(entry)
		body := components.Object.Get(entry)
		for _, hit := range hits {
			var stun float64
			if hit.Knockback.X != 0 || hit.Knockback.Y != 0 {
				body.SetVelocity(math.Vec2{})
				body.AddImpulse(hit.Knockback)
				stun = cfg.Enemy.StunDuration
			}
			enemy.Hit(stun)
			factory.CreateEffect(ecs, controller.EffectHit, body.Position())

			if health.Apply(hit.Amount) {
				killEnemy(ecs, entry)
				return
			}
		}
	})
}

// killEnemy starts the short death sequence. The body stops and leaves
// contact resolution; updateEnemies removes it once the delay ran out.
func killEnemy(ecs *ecs.ECS, entry *donburi.Entry) {
	enemy := components.Enemy.Get(entry)
	if enemy.Dying {
		return
	}
	enemy.Dying = true
	enemy.DeathTimer = enemyRemoveDelay

	body := components.Object.Get(entry)
	body.SetVelocity(math.Vec2{})
	body.SetGravityEnabled(false)
	body.SetCollisionEnabled(false)
	factory.CreateEffect(ecs, controller.EffectDeath, body.Position())
}
