package animations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClipWithoutDurationIsFinished(t *testing.T) {
	c := NewClip(0, 0, false)
	c.Update(1)
	assert.Equal(t, 1, c.Frames)
	assert.Equal(t, 1.0, c.Progress())
	assert.Equal(t, 0, c.Frame())
}

func TestClipRestart(t *testing.T) {
	c := NewClip(4, 1, false)
	c.Update(2)
	assert.Equal(t, 1.0, c.Progress())
	assert.Equal(t, 3, c.Frame())

	c.Restart()
	assert.Equal(t, 0.0, c.Progress())
	c.Update(0.5)
	assert.Equal(t, 2, c.Frame())
}
