package systems

import (
	"github.com/automoto/swamp-preachers/components"
	"github.com/automoto/swamp-preachers/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayers runs the per-frame half of every controller: intent, timers
// and triggers. Movement happens later in the fixed physics steps.
// Must run AFTER UpdatePlayerInput.
func UpdatePlayers(ecs *ecs.ECS) {
	dt := frameDelta()
	tags.Player.Each(ecs.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		input := components.PlayerInput.Get(entry)
		player.Controller.InputTick(dt, input.Intent())
	})
}

// stepPlayers advances clips and runs one physics tick of every controller.
// Clips advance first so a ledge climb sees up-to-date progress.
func stepPlayers(ecs *ecs.ECS, dt float64) {
	tags.Player.Each(ecs.World, func(entry *donburi.Entry) {
		components.Animation.Get(entry).Update(dt)
		components.Player.Get(entry).Controller.PhysicsTick(dt)
	})
}

// publishPlayers hands the latest snapshots to telemetry.
func publishPlayers(ecs *ecs.ECS) {
	rec := getRecorder(ecs)
	if rec == nil {
		return
	}
	tags.Player.Each(ecs.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		rec.Publish(player.Name, player.Controller.Snapshot())
	})
}

// frameDelta is the duration of one game update in seconds.
func frameDelta() float64 {
	return 1 / float64(ebiten.TPS())
}
