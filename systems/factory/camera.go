package factory

import (
	"github.com/automoto/swamp-preachers/archetypes"
	"github.com/automoto/swamp-preachers/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera places the camera at start so it does not pan in from the
// origin on the first frame.
func CreateCamera(ecs *ecs.ECS, start math.Vec2) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{
		Position: start,
		Zoom:     1,
	})
	return camera
}
