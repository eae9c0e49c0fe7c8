package controller

// Timer counts down to zero. A zero timer is inactive.
type Timer struct {
	remaining float64
}

// Arm (re)starts the timer with duration seconds.
func (t *Timer) Arm(duration float64) {
	if duration < 0 {
		duration = 0
	}
	t.remaining = duration
}

// Tick advances the timer by dt seconds and never goes below zero.
func (t *Timer) Tick(dt float64) {
	if t.remaining <= 0 {
		return
	}
	t.remaining -= dt
	if t.remaining < 0 {
		t.remaining = 0
	}
}

func (t *Timer) Active() bool {
	return t.remaining > 0
}

func (t *Timer) Clear() {
	t.remaining = 0
}

func (t *Timer) Remaining() float64 {
	return t.remaining
}
