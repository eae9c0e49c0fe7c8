package systems

import (
	"time"

	"github.com/automoto/swamp-preachers/components"
	cfg "github.com/automoto/swamp-preachers/config"
	"github.com/automoto/swamp-preachers/physics"
	"github.com/yohamta/donburi/ecs"
)

// maxStepsPerFrame bounds the catch-up after a slow frame.
const maxStepsPerFrame = 5

// UpdatePhysics runs as many fixed steps as the frame time covers.
func UpdatePhysics(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	step := cfg.Physics.FixedTimestep
	if level.Space == nil || step <= 0 {
		return
	}

	rec := getRecorder(ecs)
	level.Accumulator += frameDelta()
	for steps := 0; level.Accumulator >= step; steps++ {
		if steps == maxStepsPerFrame {
			// Drop the backlog rather than spiral
			level.Accumulator = 0
			break
		}
		start := time.Now()
		fixedStep(ecs, level.Space, step)
		if rec != nil {
			rec.ObserveTick(time.Since(start))
		}
		level.Accumulator -= step
	}

	publishPlayers(ecs)
}

// fixedStep is one physics tick: controllers decide velocities, enemies
// steer, queued hits land, bodies move, then contacts are resolved.
func fixedStep(ecs *ecs.ECS, space *physics.Space, dt float64) {
	stepPlayers(ecs, dt)
	updateEnemies(ecs, dt)
	applyDamageEvents(ecs)
	space.Step(dt)
	resolveEnemyContacts(ecs)
	checkDeadZones(ecs)
	constrainPlayers(ecs)
}
