package controller

import "github.com/yohamta/donburi/features/math"

// Collider is an axis-aligned box relative to the body position.
type Collider struct {
	Size   math.Vec2
	Offset math.Vec2
}

// Body is the physics body a Controller drives. Positions are world units
// with y pointing up.
type Body interface {
	Position() math.Vec2
	SetPosition(math.Vec2)
	Velocity() math.Vec2
	SetVelocity(math.Vec2)
	AddImpulse(math.Vec2)
	SetGravityEnabled(bool)
	SetCollisionEnabled(bool)
	SetCollider(Collider)
}

// Layer is a bit mask of collision layers a probe tests against.
type Layer uint8

const (
	LayerGround Layer = 1 << iota
	LayerWall
	LayerClimbable
)

// Sensor answers shape-overlap queries against level geometry.
type Sensor interface {
	OverlapCircle(center math.Vec2, radius float64, mask Layer) bool
	OverlapBox(center, size math.Vec2, mask Layer) bool
}

// Pose names an animation clip.
type Pose string

const (
	PoseIdle       Pose = "idle"
	PoseRun        Pose = "run"
	PoseJump       Pose = "jump"
	PoseFall       Pose = "fall"
	PoseCrouch     Pose = "crouch"
	PoseDash       Pose = "dash"
	PoseAttack     Pose = "attack"
	PoseWallSlide  Pose = "wall_slide"
	PoseWallClimb  Pose = "wall_climb"
	PoseLedgeClimb Pose = "ledge_climb"
	PoseHurt       Pose = "hurt"
	PoseDie        Pose = "die"
)

// Animator plays poses and reports clip progress.
type Animator interface {
	Play(Pose)
	// Progress returns the normalized playback position of the clip. ok is
	// false when the clip is not playing.
	Progress(Pose) (progress float64, ok bool)
}

// Followable is anything the camera can track.
type Followable interface {
	Position() math.Vec2
}

type Camera interface {
	Follow(Followable)
}

// EffectKind names a cosmetic effect.
type EffectKind int

const (
	EffectJump EffectKind = iota
	EffectDash
	EffectHit
	EffectDeath
)

func (k EffectKind) String() string {
	switch k {
	case EffectJump:
		return "jump"
	case EffectDash:
		return "dash"
	case EffectHit:
		return "hit"
	case EffectDeath:
		return "death"
	}
	return "unknown"
}

type Effects interface {
	SpawnEffect(kind EffectKind, position math.Vec2)
}

type LevelResetter interface {
	RequestLevelReset()
}

// Target is something an attack can hit.
type Target interface {
	Position() math.Vec2
	ApplyHit(damage int, knockback math.Vec2)
}

type TargetQuery interface {
	TargetsInRadius(center math.Vec2, radius float64) []Target
}

// Flipper mirrors attached overlays (health bars, labels) when the character
// turns around.
type Flipper interface {
	Flip(Facing)
}

// Deps bundles the collaborators of a Controller. Body is required; any other
// field may be nil.
type Deps struct {
	Body     Body
	Sensor   Sensor
	Animator Animator
	Camera   Camera
	Effects  Effects
	Resetter LevelResetter
	Targets  TargetQuery
	Flipper  Flipper
	Observer Observer
}
