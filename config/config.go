package config

import "github.com/yohamta/donburi/features/math"

// PlayerConfig contains all character controller tuning. Distances are world
// units (y up), durations are seconds, velocities are units per second.
type PlayerConfig struct {
	// Movement
	Speed              float64 `yaml:"speed"`
	CrouchSpeedDivisor float64 `yaml:"crouch_speed_divisor"`

	// Jumping
	JumpForce           float64 `yaml:"jump_force"`
	ExtraJumpForceScale float64 `yaml:"extra_jump_force_scale"` // extra jumps use JumpForce * scale
	ExtraJumpCount      int     `yaml:"extra_jump_count"`
	FallMultiplier      float64 `yaml:"fall_multiplier"`
	LowJumpMultiplier   float64 `yaml:"low_jump_multiplier"`
	JumpBufferTime      float64 `yaml:"jump_buffer_time"`
	CoyoteTime          float64 `yaml:"coyote_time"`

	// Dashing
	DashSpeed    float64 `yaml:"dash_speed"`
	DashTime     float64 `yaml:"dash_time"`     // time spent at dash speed
	DashCooldown float64 `yaml:"dash_cooldown"` // time between dashes

	// Ground detection, relative to the body position
	GroundCheckOffset math.Vec2 `yaml:"ground_check_offset"`
	GroundCheckRadius float64   `yaml:"ground_check_radius"`

	// Wall grab, slide and jump
	GrabOffset            math.Vec2 `yaml:"grab_offset"` // right probe; the left probe mirrors X
	GrabRadius            float64   `yaml:"grab_radius"`
	SlideSpeed            float64   `yaml:"slide_speed"`
	WallStickTime         float64   `yaml:"wall_stick_time"`
	WallAttachMaxVelocity float64   `yaml:"wall_attach_max_velocity"` // attach only when vy <= this
	WallJumpForce         math.Vec2 `yaml:"wall_jump_force"`
	WallClimbForce        math.Vec2 `yaml:"wall_climb_force"`
	WallJumpLerp          float64   `yaml:"wall_jump_lerp"` // steering lerp factor per second after a wall jump
	ClimbSpeed            float64   `yaml:"climb_speed"`

	// Ledge climb
	LedgeCheckHeight float64   `yaml:"ledge_check_height"` // probe height above the grab offset
	LedgeOffset      math.Vec2 `yaml:"ledge_offset"`       // forward (mirrored by facing) and up
	LedgeTimeout     float64   `yaml:"ledge_timeout"`

	// Collider
	ColliderSize        math.Vec2 `yaml:"collider_size"`
	ColliderOffset      math.Vec2 `yaml:"collider_offset"`
	StandClearanceScale float64   `yaml:"stand_clearance_scale"`

	// Combat
	MaxHealth              int       `yaml:"max_health"`
	AttackSpeedDivisor     float64   `yaml:"attack_speed_divisor"`
	AttackSlowdownDuration float64   `yaml:"attack_slowdown_duration"`
	AttackAnchor           math.Vec2 `yaml:"attack_anchor"` // forward (mirrored by facing) and up
	AttackRadius           float64   `yaml:"attack_radius"`
	AttackDamage           int       `yaml:"attack_damage"`
	AttackKnockback        math.Vec2 `yaml:"attack_knockback"`

	// Taking damage
	HurtDuration             float64   `yaml:"hurt_duration"`
	Knockback                math.Vec2 `yaml:"knockback"`
	DamageVerticalThreshold  float64   `yaml:"damage_vertical_threshold"`
	KnockbackHop             float64   `yaml:"knockback_hop"`              // vertical knockback when hit from above
	KnockbackBelowMultiplier float64   `yaml:"knockback_below_multiplier"` // vertical multiplier when hit from below
	BounceVelocity           float64   `yaml:"bounce_velocity"`

	// Death
	DeathVelocityThreshold float64 `yaml:"death_velocity_threshold"`
	DeathResetDelay        float64 `yaml:"death_reset_delay"`

	// Enemy contact
	StompFallingVelocity float64 `yaml:"stomp_falling_velocity"` // player must move slower than this upward
	StompAboveOffset     float64 `yaml:"stomp_above_offset"`

	Capabilities CapabilityConfig `yaml:"capabilities"`
}

// CapabilityConfig holds the capability flags a character spawns with.
type CapabilityConfig struct {
	Jump       bool `yaml:"jump"`
	DoubleJump bool `yaml:"double_jump"`
	Dash       bool `yaml:"dash"`
	Crouch     bool `yaml:"crouch"`
	Attack     bool `yaml:"attack"`
	AirAttack  bool `yaml:"air_attack"`
}

// PhysicsConfig contains global physics values.
type PhysicsConfig struct {
	Gravity       float64 `yaml:"gravity"`        // units/s^2, negative is down
	MaxFallSpeed  float64 `yaml:"max_fall_speed"` // units/s
	FixedTimestep float64 `yaml:"fixed_timestep"` // seconds per physics tick
}

// EnemyConfig contains the defaults for enemies placed in a level.
type EnemyConfig struct {
	Health         int       `yaml:"health"`
	StompDamage    int       `yaml:"stomp_damage"` // damage a stomp deals to the enemy
	PatrolSpeed    float64   `yaml:"patrol_speed"`
	PatrolDistance float64   `yaml:"patrol_distance"`
	WaitTime       float64   `yaml:"wait_time"`
	StunDuration   float64   `yaml:"stun_duration"`
	Size           math.Vec2 `yaml:"size"`
}

// CameraConfig contains camera behavior configuration.
type CameraConfig struct {
	FollowSmoothing float64   `yaml:"follow_smoothing"` // fraction of the gap closed per tick (0.0-1.0)
	LookOffset      math.Vec2 `yaml:"look_offset"`      // world units
	MinZoom         float64   `yaml:"min_zoom"`
	MaxZoom         float64   `yaml:"max_zoom"`
	ZoomOutFactor   float64   `yaml:"zoom_out_factor"` // zoom per unit of distance between players
	ZoomPadding     float64   `yaml:"zoom_padding"`
	ZoomSmoothing   float64   `yaml:"zoom_smoothing"` // per second
	DynamicZoom     bool      `yaml:"dynamic_zoom"`
}

// CoopConfig contains local co-op settings.
type CoopConfig struct {
	MaxPlayers  int     `yaml:"max_players"`
	MaxDistance float64 `yaml:"max_distance"` // 0 disables the distance constraint
}

// WorldConfig describes how world units map onto the screen and the level.
type WorldConfig struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	PixelsPerUnit float64 `yaml:"pixels_per_unit"`
	CellSize      int     `yaml:"cell_size"`
	LevelsDir     string  `yaml:"levels_dir"`
}

// DebugConfig contains debug/testing options.
type DebugConfig struct {
	LogTransitions bool `yaml:"log_transitions"`
	DrawProbes     bool `yaml:"draw_probes"`
}

// TelemetryConfig configures the local metrics/debug server.
type TelemetryConfig struct {
	Enabled    bool   `yaml:"enabled"`
	ListenAddr string `yaml:"listen_addr"`
}

// Tuning groups every section. It is the document shape of tuning YAML files.
type Tuning struct {
	Player    PlayerConfig    `yaml:"player"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Enemy     EnemyConfig     `yaml:"enemy"`
	Camera    CameraConfig    `yaml:"camera"`
	Coop      CoopConfig      `yaml:"coop"`
	World     WorldConfig     `yaml:"world"`
	Debug     DebugConfig     `yaml:"debug"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// Global configuration instances
var Player PlayerConfig
var Physics PhysicsConfig
var Enemy EnemyConfig
var Camera CameraConfig
var Coop CoopConfig
var World WorldConfig
var Debug DebugConfig
var Telemetry TelemetryConfig

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	Apply(Defaults())
}

// Defaults returns the built-in tuning.
func Defaults() Tuning {
	return Tuning{
		Player: PlayerConfig{
			Speed:              8,
			CrouchSpeedDivisor: 2,

			JumpForce:           16,
			ExtraJumpForceScale: 0.7,
			ExtraJumpCount:      1,
			FallMultiplier:      2.5,
			LowJumpMultiplier:   2,
			JumpBufferTime:      0.1,
			CoyoteTime:          0.25,

			DashSpeed:    30,
			DashTime:     0.1,
			DashCooldown: 0.2,

			GroundCheckOffset: math.Vec2{X: 0, Y: -0.5},
			GroundCheckRadius: 0.1,

			GrabOffset:            math.Vec2{X: 0.16, Y: 0},
			GrabRadius:            0.24,
			SlideSpeed:            2.5,
			WallStickTime:         0.25,
			WallAttachMaxVelocity: 0,
			WallJumpForce:         math.Vec2{X: 10.5, Y: 18},
			WallClimbForce:        math.Vec2{X: 4, Y: 14},
			WallJumpLerp:          1.5,
			ClimbSpeed:            4,

			LedgeCheckHeight: 0.5,
			LedgeOffset:      math.Vec2{X: 0.5, Y: 1.0},
			LedgeTimeout:     1.5,

			ColliderSize:        math.Vec2{X: 0.5, Y: 1.0},
			ColliderOffset:      math.Vec2{X: 0, Y: 0},
			StandClearanceScale: 0.9,

			MaxHealth:              3,
			AttackSpeedDivisor:     2,
			AttackSlowdownDuration: 0.4,
			AttackAnchor:           math.Vec2{X: 0.5, Y: 0},
			AttackRadius:           0.5,
			AttackDamage:           1,
			AttackKnockback:        math.Vec2{X: 6, Y: 3},

			HurtDuration:             0.5,
			Knockback:                math.Vec2{X: 8, Y: 10},
			DamageVerticalThreshold:  0.5,
			KnockbackHop:             3,
			KnockbackBelowMultiplier: 1.5,
			BounceVelocity:           14,

			DeathVelocityThreshold: 0.1,
			DeathResetDelay:        1.0,

			StompFallingVelocity: 0.1,
			StompAboveOffset:     0.3,

			Capabilities: CapabilityConfig{
				Jump:   true,
				Dash:   true,
				Crouch: true,
				Attack: true,
			},
		},
		Physics: PhysicsConfig{
			Gravity:       -30,
			MaxFallSpeed:  25,
			FixedTimestep: 1.0 / 60.0,
		},
		Enemy: EnemyConfig{
			Health:         1,
			StompDamage:    1,
			PatrolSpeed:    2,
			PatrolDistance: 3,
			WaitTime:       1,
			StunDuration:   0.5,
			Size:           math.Vec2{X: 0.75, Y: 0.75},
		},
		Camera: CameraConfig{
			FollowSmoothing: 0.125,
			LookOffset:      math.Vec2{X: 0, Y: 1},
			MinZoom:         1,
			MaxZoom:         2,
			ZoomOutFactor:   0.05,
			ZoomPadding:     0.8,
			ZoomSmoothing:   2,
			DynamicZoom:     true,
		},
		Coop: CoopConfig{
			MaxPlayers:  2,
			MaxDistance: 20,
		},
		World: WorldConfig{
			Width:         640,
			Height:        360,
			PixelsPerUnit: 16,
			CellSize:      16,
			LevelsDir:     "levels",
		},
		Telemetry: TelemetryConfig{
			Enabled:    false,
			ListenAddr: "127.0.0.1:6060",
		},
	}
}

// Current returns a copy of the active configuration.
func Current() Tuning {
	return Tuning{
		Player:    Player,
		Physics:   Physics,
		Enemy:     Enemy,
		Camera:    Camera,
		Coop:      Coop,
		World:     World,
		Debug:     Debug,
		Telemetry: Telemetry,
	}
}

// Apply replaces the active configuration. Call it from the game loop only.
func Apply(t Tuning) {
	Player = t.Player
	Physics = t.Physics
	Enemy = t.Enemy
	Camera = t.Camera
	Coop = t.Coop
	World = t.World
	Debug = t.Debug
	Telemetry = t.Telemetry
}
