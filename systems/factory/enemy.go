package factory

import (
	"github.com/automoto/swamp-preachers/archetypes"
	"github.com/automoto/swamp-preachers/components"
	cfg "github.com/automoto/swamp-preachers/config"
	"github.com/automoto/swamp-preachers/controller"
	"github.com/automoto/swamp-preachers/physics"
	"github.com/automoto/swamp-preachers/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateEnemy spawns a patrolling enemy standing on spawn.Position. Zero
// values in the spawn fall back to the enemy config.
func CreateEnemy(ecs *ecs.ECS, space *physics.Space, spawn leveldata.EnemySpawn) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	size := cfg.Enemy.Size
	pos := math.Vec2{X: spawn.Position.X, Y: spawn.Position.Y + size.Y/2}
	body := space.NewBody(pos, controller.Collider{Size: size})

	distance := spawn.PatrolDistance
	if distance <= 0 {
		distance = cfg.Enemy.PatrolDistance
	}
	health := spawn.Health
	if health <= 0 {
		health = cfg.Enemy.Health
	}

	components.Object.SetValue(enemy, components.ObjectData{Body: body})
	components.Enemy.SetValue(enemy, components.EnemyData{
		PatrolPoints: [2]float64{pos.X, pos.X + distance},
		Target:       1,
		PatrolSpeed:  cfg.Enemy.PatrolSpeed,
		WaitTime:     cfg.Enemy.WaitTime,
		Stompable:    spawn.Stompable,
		Touching:     make(map[donburi.Entity]bool),
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: health,
		Max:     health,
	})
	components.DamageEvent.SetValue(enemy, components.DamageEventData{})

	return enemy
}
