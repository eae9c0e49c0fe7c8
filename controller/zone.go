package controller

import (
	"fmt"
	"strings"
)

// Mode is what a capability zone does to one capability on entry.
type Mode int

const (
	ModeIgnore Mode = iota
	ModeEnable
	ModeDisable
	ModeToggle
)

var modeNames = map[Mode]string{
	ModeIgnore:  "ignore",
	ModeEnable:  "enable",
	ModeDisable: "disable",
	ModeToggle:  "toggle",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "unknown"
}

// ParseMode parses a zone mode name. The empty string is ModeIgnore.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ModeIgnore, nil
	}
	for m, name := range modeNames {
		if name == s {
			return m, nil
		}
	}
	return ModeIgnore, fmt.Errorf("unknown capability mode %q", s)
}

// CapabilitySetter is anything whose capabilities a Zone can change.
type CapabilitySetter interface {
	Capability(Capability) bool
	SetCapability(Capability, bool)
}

// Zone is an area trigger that changes capabilities while a character is
// inside it. Each occupant gets its own snapshot so several players can share
// a zone.
type Zone struct {
	Name         string
	Modes        map[Capability]Mode
	RevertOnExit bool
	Message      string

	saved map[CapabilitySetter]Capabilities
}

// Enter applies the zone to who. Entering a zone you are already in does
// nothing, so a toggle is never applied twice.
func (z *Zone) Enter(who CapabilitySetter) {
	if z.saved == nil {
		z.saved = make(map[CapabilitySetter]Capabilities)
	}
	if _, inside := z.saved[who]; inside {
		return
	}

	var snapshot Capabilities
	for _, c := range AllCapabilities() {
		snapshot[c] = who.Capability(c)
	}
	z.saved[who] = snapshot

	for c, mode := range z.Modes {
		switch mode {
		case ModeEnable:
			who.SetCapability(c, true)
		case ModeDisable:
			who.SetCapability(c, false)
		case ModeToggle:
			who.SetCapability(c, !who.Capability(c))
		}
	}
}

// Exit removes who from the zone. With RevertOnExit, every capability the zone
// touched is restored to its value at entry.
func (z *Zone) Exit(who CapabilitySetter) {
	snapshot, inside := z.saved[who]
	if !inside {
		return
	}
	delete(z.saved, who)

	if !z.RevertOnExit {
		return
	}
	for c, mode := range z.Modes {
		if mode != ModeIgnore {
			who.SetCapability(c, snapshot[c])
		}
	}
}

// Contains reports whether who is currently inside the zone.
func (z *Zone) Contains(who CapabilitySetter) bool {
	_, inside := z.saved[who]
	return inside
}

// Occupants returns the number of characters inside the zone.
func (z *Zone) Occupants() int {
	return len(z.saved)
}
