package systems

import (
	"github.com/automoto/swamp-preachers/components"
	cfg "github.com/automoto/swamp-preachers/config"
	"github.com/automoto/swamp-preachers/controller"
	"github.com/automoto/swamp-preachers/shared/gamemath"
	"github.com/automoto/swamp-preachers/systems/factory"
	"github.com/automoto/swamp-preachers/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// updateEnemies steers patrolling enemies and removes dead ones.
func updateEnemies(ecs *ecs.ECS, dt float64) {
	var removed []*donburi.Entry
	tags.Enemy.Each(ecs.World, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		body := components.Object.Get(entry)

		if enemy.Dying {
			enemy.DeathTimer -= dt
			if enemy.DeathTimer <= 0 {
				removed = append(removed, entry)
			}
			return
		}

		vx, steer := enemy.Patrol(dt, body.Position().X)
		if steer {
			v := body.Velocity()
			v.X = vx
			body.SetVelocity(v)
		}
	})

	for _, entry := range removed {
		removeEnemy(ecs, entry)
	}
}

// resolveEnemyContacts applies the stomp-or-damage rule when a player starts
// touching an enemy. A stomp hurts the enemy.
func resolveEnemyContacts(ecs *ecs.ECS) {
	var players []*donburi.Entry
	tags.Player.Each(ecs.World, func(entry *donburi.Entry) {
		players = append(players, entry)
	})

	tags.Enemy.Each(ecs.World, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		if enemy.Dying {
			return
		}
		enemyBody := components.Object.Get(entry)

		for _, playerEntry := range players {
			playerBody := components.Object.Get(playerEntry)
			touching := gamemath.RectsOverlap(playerBody.Bounds(), enemyBody.Bounds())
			// Only a new touch counts, so standing inside an enemy after the
			// hurt lock ends does not hurt again.
			if !enemy.BeginTouch(playerEntry.Entity(), touching) {
				continue
			}

			player := components.Player.Get(playerEntry)
			result := player.Controller.ResolveEnemyContact(controller.EnemyContact{
				Position:  enemyBody.Position(),
				Stompable: enemy.Stompable,
				Attacking: enemy.Attacking,
			})
			if result == controller.ContactStomp {
				components.DamageEvent.Get(entry).Add(cfg.Enemy.StompDamage, math.Vec2{})
			}
		}
	})
}

func removeEnemy(ecs *ecs.ECS, entry *donburi.Entry) {
	if space, ok := factory.LevelSpace(ecs); ok {
		space.Remove(components.Object.Get(entry).Body)
	}
	ecs.World.Remove(entry.Entity())
}
