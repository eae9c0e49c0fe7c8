package animations

// Clip is the clock of one animation clip. It runs in seconds so it can be
// advanced from the fixed physics step.
type Clip struct {
	Frames   int
	Duration float64 // seconds for one pass through all frames
	Loop     bool

	elapsed float64
}

func NewClip(frames int, duration float64, loop bool) *Clip {
	if frames < 1 {
		frames = 1
	}
	return &Clip{
		Frames:   frames,
		Duration: duration,
		Loop:     loop,
	}
}

func (c *Clip) Update(dt float64) {
	if c.Duration <= 0 {
		return
	}
	c.elapsed += dt
	for c.elapsed >= c.Duration {
		if !c.Loop {
			// Hold the last frame
			c.elapsed = c.Duration
			return
		}
		c.elapsed -= c.Duration
	}
}

// Frame returns the index of the frame to draw.
func (c *Clip) Frame() int {
	f := int(c.Progress() * float64(c.Frames))
	if f >= c.Frames {
		f = c.Frames - 1
	}
	return f
}

// Progress is the normalized position in the current pass. A finished
// one-shot clip reports 1.
func (c *Clip) Progress() float64 {
	if c.Duration <= 0 {
		return 1
	}
	return c.elapsed / c.Duration
}

func (c *Clip) Restart() {
	c.elapsed = 0
}
