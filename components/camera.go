package components

import (
	stdmath "math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the view centre in world units. Zoom scales the visible area:
// 1 shows the configured screen size, 2 shows twice as much of the level.
type CameraData struct {
	Position math.Vec2
	Zoom     float64
}

var Camera = donburi.NewComponentType[CameraData]()

// ScreenShakeData tracks an active screen shake on the camera
type ScreenShakeData struct {
	Intensity float64 // max offset in world units
	Duration  float64 // seconds
	Elapsed   float64
}

// Offset returns the shake displacement at the current time. It decays to
// zero over the duration.
func (s *ScreenShakeData) Offset() math.Vec2 {
	if s.Duration <= 0 || s.Elapsed >= s.Duration {
		return math.Vec2{}
	}
	current := s.Intensity * (s.Duration - s.Elapsed) / s.Duration
	// 60 ticks a second keeps the oscillation rate of a per-frame shake
	t := s.Elapsed * 60
	return math.Vec2{
		X: stdmath.Sin(t*1.1) * current,
		Y: stdmath.Cos(t*1.3) * current,
	}
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()
