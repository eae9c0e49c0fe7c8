package systems

import (
	"github.com/automoto/swamp-preachers/components"
	"github.com/automoto/swamp-preachers/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// analogDeadzone is the stick magnitude below which input is ignored.
const analogDeadzone = 0.25

// ControlSchemeBindings maps each keyboard scheme to its keys.
var ControlSchemeBindings = map[components.ControlSchemeID]map[components.ActionID][]ebiten.Key{
	components.ControlSchemeWASD: {
		components.ActionMoveLeft:  {ebiten.KeyA},
		components.ActionMoveRight: {ebiten.KeyD},
		components.ActionMoveUp:    {ebiten.KeyW},
		components.ActionMoveDown:  {ebiten.KeyS},
		components.ActionCrouch:    {ebiten.KeyS},
		components.ActionJump:      {ebiten.KeySpace},
		components.ActionDash:      {ebiten.KeyShiftLeft},
		components.ActionAttack:    {ebiten.KeyF},
	},
	components.ControlSchemeArrows: {
		components.ActionMoveLeft:  {ebiten.KeyArrowLeft},
		components.ActionMoveRight: {ebiten.KeyArrowRight},
		components.ActionMoveUp:    {ebiten.KeyArrowUp},
		components.ActionMoveDown:  {ebiten.KeyArrowDown},
		components.ActionCrouch:    {ebiten.KeyArrowDown},
		components.ActionJump:      {ebiten.KeyNumpad0, ebiten.KeyEnter},
		components.ActionDash:      {ebiten.KeyShiftRight, ebiten.KeyNumpad1},
		components.ActionAttack:    {ebiten.KeyControlRight, ebiten.KeyNumpad2},
	},
}

// GamepadBindings maps actions to standard gamepad buttons. South jumps,
// west attacks, east crouches and the right shoulder dashes.
var GamepadBindings = map[components.ActionID][]ebiten.StandardGamepadButton{
	components.ActionMoveLeft:  {ebiten.StandardGamepadButtonLeftLeft},
	components.ActionMoveRight: {ebiten.StandardGamepadButtonLeftRight},
	components.ActionMoveUp:    {ebiten.StandardGamepadButtonLeftTop},
	components.ActionMoveDown:  {ebiten.StandardGamepadButtonLeftBottom},
	components.ActionJump:      {ebiten.StandardGamepadButtonRightBottom},
	components.ActionAttack:    {ebiten.StandardGamepadButtonRightLeft},
	components.ActionCrouch:    {ebiten.StandardGamepadButtonRightRight},
	components.ActionDash:      {ebiten.StandardGamepadButtonFrontTopRight},
}

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdatePlayerInput polls the keyboard scheme and gamepad of every player.
// Must run BEFORE UpdatePlayers in the system order.
func UpdatePlayerInput(ecs *ecs.ECS) {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	components.PlayerInput.Each(ecs.World, func(entry *donburi.Entry) {
		input := components.PlayerInput.Get(entry)
		input.BeginFrame()

		if input.Scheme != components.ControlSchemeNone {
			pollControlScheme(input, input.Scheme)
		}
		if gpID, ok := boundGamepad(input, gamepadIDs); ok {
			pollGamepad(input, gpID)
		}
	})
}

// boundGamepad resolves a player's gamepad index. Player 1 falls back to
// the first connected gamepad when its own index is not connected.
func boundGamepad(input *components.PlayerInputData, gamepads []ebiten.GamepadID) (ebiten.GamepadID, bool) {
	if input.GamepadIndex < 0 {
		return 0, false
	}
	if input.GamepadIndex < len(gamepads) {
		return gamepads[input.GamepadIndex], true
	}
	if input.PlayerIndex == 0 && len(gamepads) > 0 {
		return gamepads[0], true
	}
	return 0, false
}

func pollControlScheme(input *components.PlayerInputData, scheme components.ControlSchemeID) {
	for actionID, keys := range ControlSchemeBindings[scheme] {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}
}

func pollGamepad(input *components.PlayerInputData, gpID ebiten.GamepadID) {
	if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
		return
	}

	used := false
	for actionID, buttons := range GamepadBindings {
		for _, btn := range buttons {
			if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
				input.Current[actionID] = true
				used = true
			}
		}
	}

	horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
	vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

	// Ebiten's stick y points down; the controller wants up positive
	input.AxisX = gamemath.ApplyDeadzone(horizontal, analogDeadzone)
	input.AxisY = -gamemath.ApplyDeadzone(vertical, analogDeadzone)
	if input.AxisX != 0 || input.AxisY != 0 {
		used = true
	}

	if used {
		input.UsingGamepad = true
	}
}
