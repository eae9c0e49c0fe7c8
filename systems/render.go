package systems

import (
	"image/color"

	"github.com/automoto/swamp-preachers/components"
	cfg "github.com/automoto/swamp-preachers/config"
	"github.com/automoto/swamp-preachers/controller"
	"github.com/automoto/swamp-preachers/fonts"
	"github.com/automoto/swamp-preachers/shared/gamemath"
	"github.com/automoto/swamp-preachers/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

var (
	terrainColor   = color.RGBA{R: 0x5d, G: 0x40, B: 0x37, A: 0xff}
	climbableColor = color.RGBA{R: 0x33, G: 0x69, B: 0x1e, A: 0xff}
	deadZoneColor  = color.RGBA{R: 0xb7, G: 0x1c, B: 0x1c, A: 0x60}
	zoneColor      = color.RGBA{R: 0xff, G: 0xeb, B: 0x3b, A: 0xa0}
	enemyColor     = color.RGBA{R: 0xe5, G: 0x39, B: 0x35, A: 0xff}
	flashColor     = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	hurtColor      = color.RGBA{R: 0xff, G: 0x80, B: 0x80, A: 0xff}
	deadColor      = color.RGBA{R: 0x60, G: 0x60, B: 0x60, A: 0xff}
	labelColor     = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
)

var effectColors = map[controller.EffectKind]color.RGBA{
	controller.EffectJump:  {R: 0xcf, G: 0xd8, B: 0xdc, A: 0xff},
	controller.EffectDash:  {R: 0x80, G: 0xde, B: 0xea, A: 0xff},
	controller.EffectHit:   {R: 0xff, G: 0xf1, B: 0x76, A: 0xff},
	controller.EffectDeath: {R: 0xff, G: 0x52, B: 0x52, A: 0xff},
}

// view maps world units (y up) onto the screen (y down) around the camera.
type view struct {
	center        math.Vec2
	scale         float64 // pixels per world unit
	width, height float64
}

func currentView(ecs *ecs.ECS, screen *ebiten.Image) (view, bool) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return view{}, false
	}
	camera := components.Camera.Get(cameraEntry)

	// Safety check for zero zoom
	zoom := camera.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	center := camera.Position
	if cameraEntry.HasComponent(components.ScreenShake) {
		offset := components.ScreenShake.Get(cameraEntry).Offset()
		center.X += offset.X
		center.Y += offset.Y
	}

	return view{
		center: center,
		scale:  cfg.World.PixelsPerUnit / zoom,
		width:  float64(screen.Bounds().Dx()),
		height: float64(screen.Bounds().Dy()),
	}, true
}

func (v view) point(p math.Vec2) (x, y float32) {
	return float32((p.X-v.center.X)*v.scale + v.width/2),
		float32(v.height/2 - (p.Y-v.center.Y)*v.scale)
}

func (v view) rect(r gamemath.Rect) (x, y, w, h float32) {
	x, y = v.point(math.Vec2{X: r.X, Y: r.Y + r.H})
	return x, y, float32(r.W * v.scale), float32(r.H * v.scale)
}

func (v view) fillRect(screen *ebiten.Image, r gamemath.Rect, clr color.Color) {
	x, y, w, h := v.rect(r)
	vector.FillRect(screen, x, y, w, h, clr, false)
}

func (v view) strokeRect(screen *ebiten.Image, r gamemath.Rect, clr color.Color) {
	x, y, w, h := v.rect(r)
	vector.StrokeRect(screen, x, y, w, h, 1, clr, false)
}

// DrawCharacters draws every player as its collider box with a facing
// marker and the current pose.
func DrawCharacters(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := currentView(ecs, screen)
	if !ok {
		return
	}
	face := fonts.Small.Get()

	tags.Player.Each(ecs.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		anim := components.Animation.Get(entry)
		bounds := components.Object.Get(entry).Bounds()

		var body color.Color = player.Color
		switch {
		case player.Controller.Dead():
			body = deadColor
		case player.Controller.Hurt():
			body = hurtColor
		}
		v.fillRect(screen, bounds, body)

		// Eye on the facing side
		eye := gamemath.RectFromCenter(math.Vec2{
			X: bounds.Center().X + anim.Facing.Sign()*bounds.W/4,
			Y: bounds.Y + bounds.H*0.75,
		}, math.Vec2{X: 0.125, Y: 0.125})
		v.fillRect(screen, eye, labelColor)

		x, y := v.point(math.Vec2{X: bounds.X, Y: bounds.Y + bounds.H})
		text.Draw(screen, string(anim.Current), face, int(x), int(y)-3, labelColor)
	})
}

// DrawEnemies draws enemies as boxes, white while their hit flash runs.
func DrawEnemies(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := currentView(ecs, screen)
	if !ok {
		return
	}

	tags.Enemy.Each(ecs.World, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		bounds := components.Object.Get(entry).Bounds()

		var clr color.Color = enemyColor
		switch {
		case enemy.Dying:
			clr = deadColor
		case enemy.FlashTimer > 0:
			clr = flashColor
		}
		v.fillRect(screen, bounds, clr)
		if !enemy.Stompable {
			// Spikes on top mark enemies that cannot be stomped
			v.fillRect(screen, gamemath.Rect{X: bounds.X, Y: bounds.Y + bounds.H, W: bounds.W, H: 0.125}, labelColor)
		}
	})
}

// DrawEffects draws effects as fading squares that grow as they fade.
func DrawEffects(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := currentView(ecs, screen)
	if !ok {
		return
	}

	components.Effect.Each(ecs.World, func(entry *donburi.Entry) {
		effect := components.Effect.Get(entry)
		base, ok := effectColors[effect.Kind]
		if !ok {
			base = labelColor
		}
		size := effect.Size * float64(effect.Scale)
		r := gamemath.RectFromCenter(effect.Position, math.Vec2{X: size, Y: size})

		clr := color.NRGBA{R: base.R, G: base.G, B: base.B, A: uint8(float32(base.A) * effect.Alpha)}
		v.strokeRect(screen, r, clr)
	})
}
