package controller

import (
	"testing"

	"github.com/automoto/swamp-preachers/config"
	"github.com/yohamta/donburi/features/math"
)

// dt is a power of two so that timers count down without rounding error.
const dt = 1.0 / 64

type fakeBody struct {
	pos       math.Vec2
	vel       math.Vec2
	gravity   bool
	collision bool
	collider  Collider
	impulses  []math.Vec2
}

func (b *fakeBody) Position() math.Vec2         { return b.pos }
func (b *fakeBody) SetPosition(p math.Vec2)     { b.pos = p }
func (b *fakeBody) Velocity() math.Vec2         { return b.vel }
func (b *fakeBody) SetVelocity(v math.Vec2)     { b.vel = v }
func (b *fakeBody) SetGravityEnabled(on bool)   { b.gravity = on }
func (b *fakeBody) SetCollisionEnabled(on bool) { b.collision = on }
func (b *fakeBody) SetCollider(c Collider)      { b.collider = c }

func (b *fakeBody) AddImpulse(i math.Vec2) {
	b.impulses = append(b.impulses, i)
	b.vel = math.Vec2{X: b.vel.X + i.X, Y: b.vel.Y + i.Y}
}

func (b *fakeBody) lastImpulse() math.Vec2 {
	if len(b.impulses) == 0 {
		return math.Vec2{}
	}
	return b.impulses[len(b.impulses)-1]
}

// fakeSensor answers probes from flags. Wall probes are told apart by their
// position relative to the body: the ledge probe sits above it.
type fakeSensor struct {
	body *fakeBody

	ground     bool
	wallRight  bool
	wallLeft   bool
	climbable  bool
	ledgeClear bool
	overhead   bool

	lastBoxCenter math.Vec2
	lastBoxSize   math.Vec2
}

func (s *fakeSensor) OverlapCircle(center math.Vec2, _ float64, mask Layer) bool {
	pos := s.body.pos
	switch mask {
	case LayerGround:
		return s.ground
	case LayerClimbable:
		return s.climbable
	case LayerWall:
		if center.Y > pos.Y+0.25 {
			return (s.wallRight || s.wallLeft) && !s.ledgeClear
		}
		if center.X > pos.X {
			return s.wallRight
		}
		return s.wallLeft
	}
	return false
}

func (s *fakeSensor) OverlapBox(center, size math.Vec2, _ Layer) bool {
	s.lastBoxCenter = center
	s.lastBoxSize = size
	return s.overhead
}

type fakeAnimator struct {
	played   []Pose
	progress float64
	playing  bool
}

func (a *fakeAnimator) Play(p Pose) { a.played = append(a.played, p) }

func (a *fakeAnimator) Progress(Pose) (float64, bool) { return a.progress, a.playing }

func (a *fakeAnimator) last() Pose {
	if len(a.played) == 0 {
		return ""
	}
	return a.played[len(a.played)-1]
}

type fakeCamera struct {
	target Followable
}

func (c *fakeCamera) Follow(f Followable) { c.target = f }

type spawnedEffect struct {
	kind EffectKind
	at   math.Vec2
}

type fakeEffects struct {
	spawned []spawnedEffect
}

func (e *fakeEffects) SpawnEffect(kind EffectKind, at math.Vec2) {
	e.spawned = append(e.spawned, spawnedEffect{kind: kind, at: at})
}

func (e *fakeEffects) count(kind EffectKind) int {
	n := 0
	for _, s := range e.spawned {
		if s.kind == kind {
			n++
		}
	}
	return n
}

type fakeResetter struct {
	resets int
}

func (r *fakeResetter) RequestLevelReset() { r.resets++ }

type fakeTarget struct {
	pos       math.Vec2
	damage    int
	knockback math.Vec2
}

func (t *fakeTarget) Position() math.Vec2 { return t.pos }

func (t *fakeTarget) ApplyHit(damage int, knockback math.Vec2) {
	t.damage += damage
	t.knockback = knockback
}

type fakeTargets struct {
	targets    []*fakeTarget
	lastCenter math.Vec2
	lastRadius float64
	queries    int
}

func (q *fakeTargets) TargetsInRadius(center math.Vec2, radius float64) []Target {
	q.queries++
	q.lastCenter = center
	q.lastRadius = radius
	out := make([]Target, 0, len(q.targets))
	for _, t := range q.targets {
		out = append(out, t)
	}
	return out
}

type fakeFlipper struct {
	flips []Facing
}

func (f *fakeFlipper) Flip(to Facing) { f.flips = append(f.flips, to) }

type recordingObserver struct {
	transitions [][2]State
	events      []Event
}

func (o *recordingObserver) OnTransition(from, to State) {
	o.transitions = append(o.transitions, [2]State{from, to})
}

func (o *recordingObserver) OnEvent(e Event) { o.events = append(o.events, e) }

func (o *recordingObserver) count(e Event) int {
	n := 0
	for _, got := range o.events {
		if got == e {
			n++
		}
	}
	return n
}

type harness struct {
	c        *Controller
	cfg      *config.PlayerConfig
	body     *fakeBody
	sensor   *fakeSensor
	anim     *fakeAnimator
	camera   *fakeCamera
	effects  *fakeEffects
	resetter *fakeResetter
	targets  *fakeTargets
	flipper  *fakeFlipper
	obs      *recordingObserver
}

// testTuning returns the default tuning with durations that are exact
// multiples of dt.
func testTuning() (*config.PlayerConfig, *config.PhysicsConfig) {
	t := config.Defaults()
	p := t.Player
	p.CoyoteTime = 0.25      // 16 ticks
	p.JumpBufferTime = 0.125 // 8 ticks
	p.DashTime = 0.125       // 8 ticks
	p.DashCooldown = 0.25    // 16 ticks
	p.WallStickTime = 0.25   // 16 ticks
	p.HurtDuration = 0.5     // 32 ticks
	p.DeathResetDelay = 1    // 64 ticks
	p.LedgeTimeout = 1.5     // 96 ticks
	p.AttackSlowdownDuration = 0.375

	phys := t.Physics
	phys.Gravity = -32
	return &p, &phys
}

func newHarness(t *testing.T, tune ...func(*config.PlayerConfig)) *harness {
	t.Helper()
	cfg, phys := testTuning()
	for _, f := range tune {
		f(cfg)
	}

	h := &harness{
		cfg:      cfg,
		body:     &fakeBody{},
		anim:     &fakeAnimator{},
		camera:   &fakeCamera{},
		effects:  &fakeEffects{},
		resetter: &fakeResetter{},
		targets:  &fakeTargets{},
		flipper:  &fakeFlipper{},
		obs:      &recordingObserver{},
	}
	h.sensor = &fakeSensor{body: h.body}
	h.c = New(cfg, phys, Deps{
		Body:     h.body,
		Sensor:   h.sensor,
		Animator: h.anim,
		Camera:   h.camera,
		Effects:  h.effects,
		Resetter: h.resetter,
		Targets:  h.targets,
		Flipper:  h.flipper,
		Observer: h.obs,
	})
	return h
}

// tick runs one frame and one physics step with the same input.
func (h *harness) tick(in Input) {
	h.c.InputTick(dt, in)
	h.c.PhysicsTick(dt)
}

func (h *harness) ticks(n int, in Input) {
	for i := 0; i < n; i++ {
		h.tick(in)
	}
}

// standOnGround settles the character on the ground.
func (h *harness) standOnGround() {
	h.sensor.ground = true
	h.tick(Input{})
}

// fallFor leaves the character in the air long enough for coyote time to
// run out.
func (h *harness) fallFor(n int) {
	h.sensor.ground = false
	h.ticks(n, Input{JumpHeld: true})
}

var (
	press = Input{Jump: true, JumpHeld: true}
	hold  = Input{JumpHeld: true}
)
