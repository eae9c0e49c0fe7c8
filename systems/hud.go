package systems

import (
	"image/color"

	"github.com/automoto/swamp-preachers/components"
	"github.com/automoto/swamp-preachers/controller"
	"github.com/automoto/swamp-preachers/fonts"
	"github.com/automoto/swamp-preachers/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin    = 10
	hudPipSize   = 10
	hudPipGap    = 4
	hudRowHeight = 34
)

var (
	hudEmptyPip = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	hudCapOff   = color.RGBA{R: 90, G: 90, B: 90, A: 255}
)

// capabilityLabels are the short HUD names of each capability.
var capabilityLabels = map[controller.Capability]string{
	controller.CapJump:       "J",
	controller.CapDoubleJump: "2J",
	controller.CapDash:       "D",
	controller.CapCrouch:     "C",
	controller.CapAttack:     "A",
	controller.CapAirAttack:  "AA",
}

// DrawHUD renders every player's health pips and capability flags in the
// top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	face := fonts.Regular.Get()
	row := 0

	tags.Player.Each(ecs.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		ctrl := player.Controller
		y := hudMargin + row*hudRowHeight

		text.Draw(screen, player.Name, face, hudMargin, y+hudPipSize, player.Color)
		for i := 0; i < ctrl.MaxHealth(); i++ {
			var clr color.Color = hudEmptyPip
			if i < ctrl.Health() {
				clr = player.Color
			}
			x := hudMargin + 24 + i*(hudPipSize+hudPipGap)
			vector.FillRect(screen, float32(x), float32(y), hudPipSize, hudPipSize, clr, false)
		}

		x := hudMargin
		for _, c := range controller.AllCapabilities() {
			var clr color.Color = labelColor
			if !ctrl.Capability(c) {
				clr = hudCapOff
			}
			label := capabilityLabels[c]
			text.Draw(screen, label, face, x, y+hudPipSize+16, clr)
			x += 8*len(label) + 6
		}
		row++
	})
}
