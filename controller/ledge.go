package controller

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/features/math"
)

// Anchor is a stand-in camera target moved by the ledge climb so the camera
// glides while the real body stays frozen.
type Anchor struct {
	pos math.Vec2
}

func (a *Anchor) Position() math.Vec2 { return a.pos }

// ledgeTask is the suspended ledge-climb sequence. It resumes once per
// physics tick until the climb clip finishes or the timeout fires.
type ledgeTask struct {
	target  math.Vec2
	anchor  *Anchor
	x, y    *gween.Tween
	elapsed float64
}

// startLedgeClimb freezes the body and hands the camera to the anchor.
func (c *Controller) startLedgeClimb() {
	start := c.body.Position()
	target := math.Vec2{
		X: start.X + c.facing.Sign()*c.cfg.LedgeOffset.X,
		Y: start.Y + c.cfg.LedgeOffset.Y,
	}

	c.wallStick.Clear()
	c.body.SetVelocity(math.Vec2{})
	c.setState(LedgeClimbing)
	c.body.SetCollisionEnabled(false)
	c.interactive = false

	c.ledge = &ledgeTask{
		target: target,
		anchor: &Anchor{pos: start},
		// progress is normalized, so both tweens last one unit of "time"
		x: gween.New(float32(start.X), float32(target.X), 1, ease.Linear),
		y: gween.New(float32(start.Y), float32(target.Y), 1, ease.Linear),
	}
	if c.camera != nil {
		c.camera.Follow(c.ledge.anchor)
	}

	c.play(PoseLedgeClimb)
	c.emit(EventLedgeClimb)
}

// stepLedge moves the anchor in step with the climb clip. Without clip
// progress the timeout still ends the climb.
func (c *Controller) stepLedge(dt float64) {
	task := c.ledge
	if task == nil {
		c.setState(Airborne)
		return
	}
	task.elapsed += dt

	var progress float64
	var playing bool
	if c.animator != nil {
		progress, playing = c.animator.Progress(PoseLedgeClimb)
	}
	if playing {
		if progress > 1 {
			progress = 1
		} else if progress < 0 {
			progress = 0
		}
		x, _ := task.x.Set(float32(progress))
		y, _ := task.y.Set(float32(progress))
		task.anchor.pos = math.Vec2{X: float64(x), Y: float64(y)}
	}

	if (playing && progress >= 1) || task.elapsed >= c.cfg.LedgeTimeout {
		c.finishLedgeClimb()
	}
}

func (c *Controller) finishLedgeClimb() {
	task := c.ledge
	c.ledge = nil

	c.body.SetPosition(task.target)
	c.body.SetVelocity(math.Vec2{})
	c.play(PoseIdle)
	c.body.SetCollisionEnabled(true)
	c.setState(Grounded)
	if c.camera != nil {
		c.camera.Follow(c.body)
	}
	c.interactive = true
}

// cancelLedgeClimb aborts a running climb and gives gravity, collision and
// the camera back to the body. The caller picks the next state.
func (c *Controller) cancelLedgeClimb() {
	if c.ledge == nil {
		return
	}
	c.ledge = nil
	c.body.SetCollisionEnabled(true)
	c.body.SetGravityEnabled(true)
	if c.camera != nil {
		c.camera.Follow(c.body)
	}
	c.interactive = true
}

// LedgeAnchor returns the camera anchor of a running ledge climb.
func (c *Controller) LedgeAnchor() (*Anchor, bool) {
	if c.ledge == nil {
		return nil, false
	}
	return c.ledge.anchor, true
}
