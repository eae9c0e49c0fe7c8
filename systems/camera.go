package systems

import (
	"github.com/automoto/swamp-preachers/components"
	cfg "github.com/automoto/swamp-preachers/config"
	"github.com/automoto/swamp-preachers/shared/gamemath"
	"github.com/automoto/swamp-preachers/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateCamera follows the midpoint of the living players' follow targets,
// zooms out as they drift apart and keeps the view inside the level. With
// every player dead the camera holds still.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	dt := frameDelta()

	updateScreenShake(cameraEntry, dt)

	var points []math.Vec2
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		if player.Controller.Dead() || player.Follow == nil {
			return
		}
		points = append(points, player.Follow.Position())
	})
	mid, ok := gamemath.Midpoint(points...)
	if !ok {
		return
	}

	if camera.Zoom <= 0 {
		camera.Zoom = 1
	}
	targetZoom := 1.0
	if cfg.Camera.DynamicZoom && len(points) >= 2 {
		targetZoom = gamemath.ZoomForDistance(
			gamemath.Distance(points[0], points[1]),
			cfg.Camera.ZoomOutFactor,
			cfg.Camera.ZoomPadding,
			cfg.Camera.MinZoom,
			cfg.Camera.MaxZoom,
		)
	}
	camera.Zoom = gamemath.Lerp(camera.Zoom, targetZoom, cfg.Camera.ZoomSmoothing*dt)

	target := math.Vec2{X: mid.X + cfg.Camera.LookOffset.X, Y: mid.Y + cfg.Camera.LookOffset.Y}
	if levelEntry, ok := components.Level.First(e.World); ok {
		if level := components.Level.Get(levelEntry).CurrentLevel; level != nil {
			half := halfView(camera.Zoom)
			target = gamemath.ClampToBounds(target,
				half,
				math.Vec2{X: level.Size.X - half.X, Y: level.Size.Y - half.Y},
			)
		}
	}

	camera.Position = gamemath.FollowStep(camera.Position, target, cfg.Camera.FollowSmoothing)
}

// halfView returns half the visible area in world units at the given zoom.
func halfView(zoom float64) math.Vec2 {
	ppu := cfg.World.PixelsPerUnit
	return math.Vec2{
		X: float64(cfg.World.Width) / ppu * zoom / 2,
		Y: float64(cfg.World.Height) / ppu * zoom / 2,
	}
}

// updateScreenShake advances the shake and removes it once it is over
func updateScreenShake(cameraEntry *donburi.Entry, dt float64) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}
	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed += dt
	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake effect
func TriggerScreenShake(ecs *ecs.ECS, intensity, duration float64) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}

	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		// Only override if new shake is stronger
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
		return
	}
	cameraEntry.AddComponent(components.ScreenShake)
	components.ScreenShake.SetValue(cameraEntry, components.ScreenShakeData{
		Intensity: intensity,
		Duration:  duration,
	})
}
