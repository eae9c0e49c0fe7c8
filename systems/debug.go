package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/swamp-preachers/components"
	cfg "github.com/automoto/swamp-preachers/config"
	"github.com/automoto/swamp-preachers/fonts"
	"github.com/automoto/swamp-preachers/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

var (
	probeColor  = color.RGBA{R: 0x00, G: 0xe6, B: 0x76, A: 0xff}
	grabColor   = color.RGBA{R: 0x29, G: 0x79, B: 0xff, A: 0xff}
	attackColor = color.RGBA{R: 0xff, G: 0x3d, B: 0x00, A: 0xff}
)

// UpdateDebug toggles probe drawing with F1.
func UpdateDebug(ecs *ecs.ECS) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		cfg.Debug.DrawProbes = !cfg.Debug.DrawProbes
	}
}

// DrawDebug draws the controller's contact probes and attack radius, plus
// a state readout per player.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawProbes {
		return
	}
	v, ok := currentView(ecs, screen)
	if !ok {
		return
	}
	face := fonts.Small.Get()
	p := &cfg.Player

	line := 0
	tags.Player.Each(ecs.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		ctrl := player.Controller
		pos := ctrl.Position()
		facing := ctrl.Facing().Sign()

		v.strokeCircle(screen, math.Vec2{X: pos.X + p.GroundCheckOffset.X, Y: pos.Y + p.GroundCheckOffset.Y}, p.GroundCheckRadius, probeColor)
		v.strokeCircle(screen, math.Vec2{X: pos.X + p.GrabOffset.X, Y: pos.Y + p.GrabOffset.Y}, p.GrabRadius, grabColor)
		v.strokeCircle(screen, math.Vec2{X: pos.X - p.GrabOffset.X, Y: pos.Y + p.GrabOffset.Y}, p.GrabRadius, grabColor)
		if ctrl.Attacking() {
			v.strokeCircle(screen, math.Vec2{X: pos.X + facing*p.AttackAnchor.X, Y: pos.Y + p.AttackAnchor.Y}, p.AttackRadius, attackColor)
		}

		vel := ctrl.Velocity()
		readout := fmt.Sprintf("%s %-13s v=(%5.1f,%5.1f) jumps=%d", player.Name, ctrl.State(), vel.X, vel.Y, ctrl.JumpCharges())
		text.Draw(screen, readout, face, 8, screen.Bounds().Dy()-8-line*12, labelColor)
		line++
	})
}

func (v view) strokeCircle(screen *ebiten.Image, center math.Vec2, radius float64, clr color.Color) {
	x, y := v.point(center)
	vector.StrokeCircle(screen, x, y, float32(radius*v.scale), 1, clr, false)
}
