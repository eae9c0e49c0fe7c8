package components

import "github.com/yohamta/donburi"

// MessageStateData is a singleton tracking the active popup message
type MessageStateData struct {
	Text         string
	DisplayTimer float64 // seconds remaining, 0 hides the message
}

// Show replaces the active message.
func (m *MessageStateData) Show(text string, seconds float64) {
	m.Text = text
	m.DisplayTimer = seconds
}

func (m *MessageStateData) Update(dt float64) {
	if m.DisplayTimer <= 0 {
		return
	}
	m.DisplayTimer -= dt
	if m.DisplayTimer <= 0 {
		m.DisplayTimer = 0
		m.Text = ""
	}
}

// Visible reports whether a message should be drawn.
func (m *MessageStateData) Visible() bool { return m.DisplayTimer > 0 && m.Text != "" }

var MessageState = donburi.NewComponentType[MessageStateData]()
