package components

import (
	"github.com/automoto/swamp-preachers/controller"
	"github.com/yohamta/donburi"
)

// ActionID represents a logical player action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionJump
	ActionDash
	ActionAttack
	ActionCrouch
	ActionCount // Must be last - used for array sizing
)

// ControlSchemeID selects a keyboard layout for one player.
type ControlSchemeID int

const (
	ControlSchemeNone ControlSchemeID = iota - 1
	ControlSchemeWASD
	ControlSchemeArrows
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// PlayerInputData stores per-player input state. The input system fills it
// once per frame; the character system turns it into a controller.Input.
type PlayerInputData struct {
	PlayerIndex  int
	Scheme       ControlSchemeID
	GamepadIndex int // index into the connected gamepads, -1 for none

	Current  [ActionCount]bool
	Previous [ActionCount]bool

	// Left stick after the deadzone, y up
	AxisX, AxisY float64

	UsingGamepad bool
}

// BeginFrame swaps the buffers: current becomes previous, then current and the
// stick are cleared for polling.
func (p *PlayerInputData) BeginFrame() {
	p.Previous = p.Current
	p.Current = [ActionCount]bool{}
	p.AxisX, p.AxisY = 0, 0
}

// Action returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func (p *PlayerInputData) Action(id ActionID) ActionState {
	curr := p.Current[id]
	prev := p.Previous[id]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// Intent converts the frame's actions into controller input. An analog stick
// value wins over the digital directions on its axis.
func (p *PlayerInputData) Intent() controller.Input {
	h := p.AxisX
	if h == 0 {
		h = digitalAxis(p.Current[ActionMoveLeft], p.Current[ActionMoveRight])
	}
	v := p.AxisY
	if v == 0 {
		v = digitalAxis(p.Current[ActionMoveDown], p.Current[ActionMoveUp])
	}

	return controller.Input{
		Horizontal: h,
		Vertical:   v,
		Jump:       p.Action(ActionJump).JustPressed,
		JumpHeld:   p.Current[ActionJump],
		Dash:       p.Action(ActionDash).JustPressed,
		Attack:     p.Action(ActionAttack).JustPressed,
		Crouch:     p.Current[ActionCrouch],
	}
}

func digitalAxis(negative, positive bool) float64 {
	var v float64
	if negative {
		v--
	}
	if positive {
		v++
	}
	return v
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()
