package controller

// State is the locomotion state of a character. Exactly one is active at a
// time and only the Controller changes it.
type State int

const (
	Grounded State = iota
	Airborne
	WallSliding
	WallClimbing
	Dashing
	LedgeClimbing
	Hurt
	Dead
)

var stateNames = map[State]string{
	Grounded:      "grounded",
	Airborne:      "airborne",
	WallSliding:   "wall_sliding",
	WallClimbing:  "wall_climbing",
	Dashing:       "dashing",
	LedgeClimbing: "ledge_climbing",
	Hurt:          "hurt",
	Dead:          "dead",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// AllStates lists every state in declaration order.
func AllStates() []State {
	return []State{Grounded, Airborne, WallSliding, WallClimbing, Dashing, LedgeClimbing, Hurt, Dead}
}

// attached reports whether the state holds the character on a wall.
func (s State) attached() bool {
	return s == WallSliding || s == WallClimbing
}

// gravityEnabled reports whether the body should be under gravity in s.
func (s State) gravityEnabled() bool {
	switch s {
	case WallClimbing, Dashing, LedgeClimbing:
		return false
	}
	return true
}

// Facing is the horizontal direction the character looks at.
type Facing int

const (
	FacingLeft  Facing = -1
	FacingRight Facing = 1
)

// Sign returns -1 or 1.
func (f Facing) Sign() float64 {
	if f == FacingLeft {
		return -1
	}
	return 1
}

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// WallSide is the side of the character touching a wall.
type WallSide int

const (
	WallNone WallSide = iota
	WallLeft
	WallRight
)

// Sign returns -1 for the left wall, 1 for the right wall and 0 otherwise.
func (w WallSide) Sign() float64 {
	switch w {
	case WallLeft:
		return -1
	case WallRight:
		return 1
	}
	return 0
}

func (w WallSide) String() string {
	switch w {
	case WallLeft:
		return "left"
	case WallRight:
		return "right"
	}
	return "none"
}
