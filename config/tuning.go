package config

import (
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// ErrInvalidTuning is wrapped by every validation failure.
var ErrInvalidTuning = errors.New("invalid tuning")

// LoadTuning reads a YAML tuning file from fsys and decodes it over the
// current configuration, so a file only needs the keys it changes.
func LoadTuning(fsys fs.FS, path string) (Tuning, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Tuning{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	t, err := ParseTuning(data, Current())
	if err != nil {
		return Tuning{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return t, nil
}

// ParseTuning decodes YAML over base and validates the result.
func ParseTuning(data []byte, base Tuning) (Tuning, error) {
	t := base
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("unmarshal: %w", err)
	}
	if err := Validate(t); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// Validate reports every value that would break the controller.
func Validate(t Tuning) error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidTuning}, args...)...))
	}

	p := t.Player
	if p.MaxHealth <= 0 {
		bad("player.max_health must be positive, got %d", p.MaxHealth)
	}
	if p.ExtraJumpCount < 0 {
		bad("player.extra_jump_count must not be negative, got %d", p.ExtraJumpCount)
	}
	for name, v := range map[string]float64{
		"player.jump_buffer_time":         p.JumpBufferTime,
		"player.coyote_time":              p.CoyoteTime,
		"player.dash_time":                p.DashTime,
		"player.dash_cooldown":            p.DashCooldown,
		"player.wall_stick_time":          p.WallStickTime,
		"player.hurt_duration":            p.HurtDuration,
		"player.death_reset_delay":        p.DeathResetDelay,
		"player.attack_slowdown_duration": p.AttackSlowdownDuration,
	} {
		if v < 0 {
			bad("%s must not be negative, got %v", name, v)
		}
	}
	if p.CrouchSpeedDivisor <= 0 || p.AttackSpeedDivisor <= 0 {
		bad("player speed divisors must be positive")
	}
	if p.LedgeTimeout <= 0 {
		bad("player.ledge_timeout must be positive, got %v", p.LedgeTimeout)
	}
	if p.ColliderSize.X <= 0 || p.ColliderSize.Y <= 0 {
		bad("player.collider_size must be positive, got %v", p.ColliderSize)
	}
	if t.Physics.FixedTimestep <= 0 {
		bad("physics.fixed_timestep must be positive, got %v", t.Physics.FixedTimestep)
	}
	if t.World.PixelsPerUnit <= 0 || t.World.CellSize <= 0 {
		bad("world.pixels_per_unit and world.cell_size must be positive")
	}
	if t.Camera.MinZoom <= 0 || t.Camera.MaxZoom < t.Camera.MinZoom {
		bad("camera zoom range [%v, %v] is invalid", t.Camera.MinZoom, t.Camera.MaxZoom)
	}
	return errors.Join(errs...)
}
