package controller

import (
	stdmath "math"

	"github.com/automoto/swamp-preachers/config"
	"github.com/yohamta/donburi/features/math"
)

// Controller turns per-frame input and per-tick contact signals into movement,
// combat and survival behavior for one character.
//
// InputTick runs once per rendered frame; PhysicsTick runs at the fixed
// physics rate. Neither is safe for concurrent use.
type Controller struct {
	cfg     *config.PlayerConfig
	physics *config.PhysicsConfig

	body     Body
	sensor   Sensor
	animator Animator
	camera   Camera
	effects  Effects
	resetter LevelResetter
	targets  TargetQuery
	flipper  Flipper
	observer Observer

	state     State
	facing    Facing
	health    int
	maxHealth int
	caps      Capabilities

	jumpCharges int
	contacts    Contacts
	wasGrounded bool
	input       Input

	coyote         Timer
	jumpBuffer     Timer
	dashCooldown   Timer
	dashTimer      Timer
	attackSlowdown Timer
	hurt           Timer
	wallStick      Timer
	deathDelay     Timer

	dashTrigger     bool
	airDashUsed     bool
	wallJumping     bool
	attackTriggered bool
	resetIssued     bool
	interactive     bool

	crouching bool
	standing  Collider
	crouched  Collider

	ledge    *ledgeTask
	lastPose Pose
}

// New creates a controller with full health in the Grounded state. Nil tuning
// pointers fall back to the live package configuration, so hot-reloaded
// values apply to existing characters.
func New(player *config.PlayerConfig, physics *config.PhysicsConfig, deps Deps) *Controller {
	if deps.Body == nil {
		panic("controller: nil body")
	}
	if player == nil {
		player = &config.Player
	}
	if physics == nil {
		physics = &config.Physics
	}

	c := &Controller{
		cfg:         player,
		physics:     physics,
		body:        deps.Body,
		sensor:      deps.Sensor,
		animator:    deps.Animator,
		camera:      deps.Camera,
		effects:     deps.Effects,
		resetter:    deps.Resetter,
		targets:     deps.Targets,
		flipper:     deps.Flipper,
		observer:    deps.Observer,
		state:       Grounded,
		facing:      FacingRight,
		health:      player.MaxHealth,
		maxHealth:   player.MaxHealth,
		caps:        CapabilitiesFromConfig(player.Capabilities),
		jumpCharges: player.ExtraJumpCount,
		interactive: true,
	}

	size := player.ColliderSize
	c.standing = Collider{Size: size, Offset: player.ColliderOffset}
	c.crouched = Collider{
		Size:   math.Vec2{X: size.X, Y: size.Y / 2},
		Offset: math.Vec2{X: player.ColliderOffset.X, Y: player.ColliderOffset.Y - size.Y/4},
	}
	c.body.SetCollider(c.standing)
	c.body.SetGravityEnabled(true)
	c.body.SetCollisionEnabled(true)

	return c
}

// InputTick samples intent and advances the frame-rate timers. Triggers are
// latched here and consumed by the next PhysicsTick.
func (c *Controller) InputTick(dt float64, in Input) {
	c.attackTriggered = false

	if c.state == Dead {
		c.tickDeath(dt)
		return
	}
	c.input = in

	c.coyote.Tick(dt)
	c.dashCooldown.Tick(dt)
	c.attackSlowdown.Tick(dt)
	c.hurt.Tick(dt)

	if c.acceptsInput() && in.Jump && c.caps.Enabled(CapJump) && !c.crouching {
		c.jumpBuffer.Arm(c.cfg.JumpBufferTime)
	} else {
		c.jumpBuffer.Tick(dt)
	}

	if c.acceptsInput() {
		if in.Dash && c.canDash() {
			c.dashTrigger = true
		}
		if in.Attack && c.canAttack() {
			c.attack()
		}
	}

	if c.state == Hurt {
		c.updateHurt()
	}
	c.animate()
}

// PhysicsTick reads contacts and runs the locomotion state machine for one
// fixed step.
func (c *Controller) PhysicsTick(dt float64) {
	switch c.state {
	case Dead:
		return
	case LedgeClimbing:
		c.stepLedge(dt)
		c.animate()
		return
	}

	c.SenseContacts()
	grounded := c.contacts.Grounded
	if grounded && !c.wasGrounded {
		c.land()
	}
	c.wasGrounded = grounded
	if grounded {
		c.coyote.Arm(c.cfg.CoyoteTime)
	}

	switch c.state {
	case Hurt:
		c.shapeGravity(dt)
	case Dashing:
		c.stepDash(dt)
	default:
		c.stepLocomotion(dt)
	}
	c.animate()
}

// land resets everything that refills on ground contact.
func (c *Controller) land() {
	c.jumpCharges = c.cfg.ExtraJumpCount
	c.airDashUsed = false
	c.wallJumping = false
}

func (c *Controller) acceptsInput() bool {
	switch c.state {
	case Hurt, Dead, LedgeClimbing:
		return false
	}
	return true
}

func (c *Controller) setState(to State) {
	if c.state == to {
		return
	}
	from := c.state
	c.state = to
	c.body.SetGravityEnabled(to.gravityEnabled())
	if c.observer != nil {
		c.observer.OnTransition(from, to)
	}
}

func (c *Controller) emit(e Event) {
	if c.observer != nil {
		c.observer.OnEvent(e)
	}
}

func (c *Controller) spawn(kind EffectKind, at math.Vec2) {
	if c.effects != nil {
		c.effects.SpawnEffect(kind, at)
	}
}

func (c *Controller) flip() {
	if c.facing == FacingRight {
		c.facing = FacingLeft
	} else {
		c.facing = FacingRight
	}
	if c.flipper != nil {
		c.flipper.Flip(c.facing)
	}
}

func (c *Controller) play(p Pose) {
	c.lastPose = p
	if c.animator != nil {
		c.animator.Play(p)
	}
}

// animate plays the pose matching the current state when it changed.
func (c *Controller) animate() {
	if p := c.pose(); p != c.lastPose {
		c.play(p)
	}
}

func (c *Controller) pose() Pose {
	switch c.state {
	case Dead:
		return PoseDie
	case Hurt:
		return PoseHurt
	case LedgeClimbing:
		return PoseLedgeClimb
	case Dashing:
		return PoseDash
	case WallSliding:
		return PoseWallSlide
	case WallClimbing:
		return PoseWallClimb
	}

	if c.attackSlowdown.Active() {
		return PoseAttack
	}
	vel := c.body.Velocity()
	if c.state == Airborne {
		if vel.Y > 0 {
			return PoseJump
		}
		return PoseFall
	}
	if c.crouching {
		return PoseCrouch
	}
	if stdmath.Abs(vel.X) > 0 {
		return PoseRun
	}
	return PoseIdle
}

func (c *Controller) groundCheckPoint() math.Vec2 {
	return add(c.body.Position(), c.cfg.GroundCheckOffset)
}

// State returns the active locomotion state.
func (c *Controller) State() State { return c.state }

func (c *Controller) Facing() Facing { return c.facing }

// Grounded reports the ground contact read on the last physics tick.
func (c *Controller) Grounded() bool { return c.contacts.Grounded }

func (c *Controller) Dashing() bool { return c.state == Dashing }

// Attacking reports whether the attack slowdown from the last attack is
// still running.
func (c *Controller) Attacking() bool { return c.attackSlowdown.Active() }

// AttackTriggered is true only on the frame an attack was triggered.
func (c *Controller) AttackTriggered() bool { return c.attackTriggered }

func (c *Controller) Hurt() bool { return c.state == Hurt }

func (c *Controller) Dead() bool { return c.state == Dead }

func (c *Controller) Crouching() bool { return c.crouching }

func (c *Controller) Health() int { return c.health }

func (c *Controller) MaxHealth() int { return c.maxHealth }

// HealthFraction returns current health over max health, in [0, 1].
func (c *Controller) HealthFraction() float64 {
	if c.maxHealth <= 0 {
		return 0
	}
	return float64(c.health) / float64(c.maxHealth)
}

func (c *Controller) JumpCharges() int { return c.jumpCharges }

// Interactive is false while a scripted sequence owns the character.
func (c *Controller) Interactive() bool { return c.interactive }

// Contacts returns the contacts read on the last physics tick.
func (c *Controller) Contacts() Contacts { return c.contacts }

// Collider returns the active collider profile.
func (c *Controller) Collider() Collider {
	if c.crouching {
		return c.crouched
	}
	return c.standing
}

func (c *Controller) Position() math.Vec2 { return c.body.Position() }

func (c *Controller) Velocity() math.Vec2 { return c.body.Velocity() }

// Snapshot is a read-only view of a controller for debugging tools.
type Snapshot struct {
	State       string    `json:"state"`
	Facing      string    `json:"facing"`
	Health      int       `json:"health"`
	MaxHealth   int       `json:"max_health"`
	JumpCharges int       `json:"jump_charges"`
	Grounded    bool      `json:"grounded"`
	Crouching   bool      `json:"crouching"`
	Interactive bool      `json:"interactive"`
	Position    math.Vec2 `json:"position"`
	Velocity    math.Vec2 `json:"velocity"`
}

func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		State:       c.state.String(),
		Facing:      c.facing.String(),
		Health:      c.health,
		MaxHealth:   c.maxHealth,
		JumpCharges: c.jumpCharges,
		Grounded:    c.contacts.Grounded,
		Crouching:   c.crouching,
		Interactive: c.interactive,
		Position:    c.body.Position(),
		Velocity:    c.body.Velocity(),
	}
}

func add(a, b math.Vec2) math.Vec2 {
	return math.Vec2{X: a.X + b.X, Y: a.Y + b.Y}
}
