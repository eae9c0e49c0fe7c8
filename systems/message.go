package systems

import (
	"image/color"

	"github.com/automoto/swamp-preachers/components"
	"github.com/automoto/swamp-preachers/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	messageBoxPadding = 8
	messageTopMargin  = 24
)

var (
	messageBoxColor  = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	messageTextColor = color.White
)

// UpdateMessage counts down the active popup message.
func UpdateMessage(ecs *ecs.ECS) {
	if state := messageState(ecs); state != nil {
		state.Update(frameDelta())
	}
}

func showMessage(ecs *ecs.ECS, text string, seconds float64) {
	if state := messageState(ecs); state != nil {
		state.Show(text, seconds)
	}
}

// DrawMessage renders the active message at the top center of the screen
func DrawMessage(ecs *ecs.ECS, screen *ebiten.Image) {
	state := messageState(ecs)
	if state == nil || !state.Visible() {
		return
	}

	face := fonts.Bold.Get()
	bounds := text.BoundString(face, state.Text) //nolint:staticcheck // TODO: migrate to text/v2
	boxWidth := float32(bounds.Dx() + messageBoxPadding*2)
	boxHeight := float32(bounds.Dy() + messageBoxPadding*2)

	boxX := (float32(screen.Bounds().Dx()) - boxWidth) / 2
	boxY := float32(messageTopMargin)
	vector.FillRect(screen, boxX, boxY, boxWidth, boxHeight, messageBoxColor, false)

	textX := int(boxX) + messageBoxPadding
	textY := int(boxY) + messageBoxPadding + bounds.Dy()
	text.Draw(screen, state.Text, face, textX, textY, messageTextColor)
}

func messageState(ecs *ecs.ECS) *components.MessageStateData {
	entry, ok := components.MessageState.First(ecs.World)
	if !ok {
		return nil
	}
	return components.MessageState.Get(entry)
}
