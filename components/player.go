package components

import (
	"image/color"

	"github.com/automoto/swamp-preachers/controller"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type PlayerData struct {
	Index      int
	Name       string // telemetry and HUD label, e.g. "p1"
	Controller *controller.Controller
	Spawn      math.Vec2
	Color      color.RGBA

	// Follow is what the camera tracks for this player: the body, or the
	// ledge anchor while a climb runs.
	Follow controller.Followable
}

var Player = donburi.NewComponentType[PlayerData]()
