package controller

// Input is the intent sampled for one frame. Jump, Dash and Attack are edge
// triggered (true only on the frame the button went down); JumpHeld and Crouch
// follow the button state.
type Input struct {
	Horizontal float64 // -1..1
	Vertical   float64 // -1..1, up is positive

	Jump     bool
	JumpHeld bool
	Dash     bool
	Attack   bool
	Crouch   bool
}
