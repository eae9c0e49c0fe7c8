package factory

import (
	"fmt"
	"image/color"

	"github.com/automoto/swamp-preachers/archetypes"
	"github.com/automoto/swamp-preachers/components"
	cfg "github.com/automoto/swamp-preachers/config"
	"github.com/automoto/swamp-preachers/controller"
	"github.com/automoto/swamp-preachers/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// PlayerInputConfig binds a player to its input devices.
type PlayerInputConfig struct {
	PlayerIndex  int
	Scheme       components.ControlSchemeID
	GamepadIndex int // -1 for keyboard only
}

var playerColors = []color.RGBA{
	{R: 0x4c, G: 0xaf, B: 0x50, A: 0xff},
	{R: 0x21, G: 0x96, B: 0xf3, A: 0xff},
	{R: 0xff, G: 0x98, B: 0x00, A: 0xff},
	{R: 0x9c, G: 0x27, B: 0xb0, A: 0xff},
}

// CreatePlayer spawns a character standing on spawn and wires its controller
// to the space, the camera, effects, enemies and telemetry.
func CreatePlayer(ecs *ecs.ECS, space *physics.Space, spawn math.Vec2, input PlayerInputConfig) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	size := cfg.Player.ColliderSize
	pos := math.Vec2{X: spawn.X, Y: spawn.Y + size.Y/2 - cfg.Player.ColliderOffset.Y}
	body := space.NewBody(pos, controller.Collider{Size: size, Offset: cfg.Player.ColliderOffset})
	anim := components.NewAnimationData("player")
	name := fmt.Sprintf("p%d", input.PlayerIndex+1)

	var observers controller.Observers
	if rec := recorder(ecs); rec != nil {
		observers = append(observers, rec)
	}
	if cfg.Debug.LogTransitions {
		observers = append(observers, controller.LogObserver{Name: name})
	}

	// nil tuning pointers keep the controller on the live, hot-reloadable config
	ctrl := controller.New(nil, nil, controller.Deps{
		Body:     body,
		Sensor:   space,
		Animator: anim,
		Camera:   playerCamera{entry: player},
		Effects:  effectSpawner{ecs: ecs},
		Resetter: levelResetter{ecs: ecs},
		Targets:  enemyTargets{ecs: ecs},
		Flipper:  anim,
		Observer: observers,
	})

	components.Object.SetValue(player, components.ObjectData{Body: body})
	components.Animation.Set(player, anim)
	components.PlayerInput.SetValue(player, components.PlayerInputData{
		PlayerIndex:  input.PlayerIndex,
		Scheme:       input.Scheme,
		GamepadIndex: input.GamepadIndex,
	})
	components.Player.SetValue(player, components.PlayerData{
		Index:      input.PlayerIndex,
		Name:       name,
		Controller: ctrl,
		Spawn:      spawn,
		Color:      playerColors[input.PlayerIndex%len(playerColors)],
		Follow:     body,
	})

	return player
}
