package controller

import (
	"fmt"
	"strings"

	"github.com/automoto/swamp-preachers/config"
)

// Capability is an action family that can be switched on and off at runtime.
type Capability int

const (
	CapJump Capability = iota
	CapDoubleJump
	CapDash
	CapCrouch
	CapAttack
	CapAirAttack

	capabilityCount
)

var capabilityNames = [capabilityCount]string{
	CapJump:       "jump",
	CapDoubleJump: "double_jump",
	CapDash:       "dash",
	CapCrouch:     "crouch",
	CapAttack:     "attack",
	CapAirAttack:  "air_attack",
}

func (c Capability) String() string {
	if c < 0 || c >= capabilityCount {
		return "unknown"
	}
	return capabilityNames[c]
}

// AllCapabilities lists every capability in declaration order.
func AllCapabilities() []Capability {
	caps := make([]Capability, 0, capabilityCount)
	for c := Capability(0); c < capabilityCount; c++ {
		caps = append(caps, c)
	}
	return caps
}

// ParseCapability maps a name such as "double_jump" (or "doubleJump") to a
// Capability.
func ParseCapability(name string) (Capability, error) {
	normalized := strings.ToLower(strings.ReplaceAll(name, "_", ""))
	for c, n := range capabilityNames {
		if strings.ReplaceAll(n, "_", "") == normalized {
			return Capability(c), nil
		}
	}
	return 0, fmt.Errorf("unknown capability %q", name)
}

// Capabilities is the set of flags a character currently has.
type Capabilities [capabilityCount]bool

// CapabilitiesFromConfig converts the spawn flags from tuning.
func CapabilitiesFromConfig(cfg config.CapabilityConfig) Capabilities {
	var caps Capabilities
	caps[CapJump] = cfg.Jump
	caps[CapDoubleJump] = cfg.DoubleJump
	caps[CapDash] = cfg.Dash
	caps[CapCrouch] = cfg.Crouch
	caps[CapAttack] = cfg.Attack
	caps[CapAirAttack] = cfg.AirAttack
	return caps
}

func (c Capabilities) Enabled(cap Capability) bool {
	if cap < 0 || cap >= capabilityCount {
		return false
	}
	return c[cap]
}

// Capability reports whether cap is currently enabled.
func (c *Controller) Capability(cap Capability) bool {
	return c.caps.Enabled(cap)
}

// Capabilities returns a copy of the current flags.
func (c *Controller) Capabilities() Capabilities {
	return c.caps
}

// SetCapability switches one action family on or off. Actions already in
// progress are never interrupted; the flag is only consulted when the next
// trigger is evaluated.
func (c *Controller) SetCapability(cap Capability, enabled bool) {
	if cap < 0 || cap >= capabilityCount {
		return
	}
	c.caps[cap] = enabled
}

// ToggleCapability flips one flag and returns its new value.
func (c *Controller) ToggleCapability(cap Capability) bool {
	c.SetCapability(cap, !c.caps.Enabled(cap))
	return c.caps.Enabled(cap)
}
