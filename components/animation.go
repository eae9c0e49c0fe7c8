package components

import (
	"github.com/automoto/swamp-preachers/assets/animations"
	"github.com/automoto/swamp-preachers/config"
	"github.com/automoto/swamp-preachers/controller"
	"github.com/yohamta/donburi"
)

// AnimationData plays controller poses. It is the Animator and Flipper the
// controller talks to; the renderer reads Current, Frame and Facing.
type AnimationData struct {
	Clips   map[controller.Pose]*animations.Clip
	Current controller.Pose
	Facing  controller.Facing
}

var (
	_ controller.Animator = (*AnimationData)(nil)
	_ controller.Flipper  = (*AnimationData)(nil)
)

// NewAnimationData builds the clips of a character from
// config.CharacterAnimations. Unknown keys yield an empty clip set.
func NewAnimationData(character string) *AnimationData {
	a := &AnimationData{
		Clips:   make(map[controller.Pose]*animations.Clip),
		Current: controller.PoseIdle,
		Facing:  controller.FacingRight,
	}
	for name, def := range config.CharacterAnimations[character] {
		a.Clips[controller.Pose(name)] = animations.NewClip(def.Frames, def.Duration, def.Loop)
	}
	return a
}

func (a *AnimationData) Play(p controller.Pose) {
	if a.Current == p {
		return
	}
	a.Current = p
	if clip, ok := a.Clips[p]; ok {
		clip.Restart()
	}
}

// Progress reports the normalized position of p. Poses that are not playing,
// or have no clip, report ok == false.
func (a *AnimationData) Progress(p controller.Pose) (float64, bool) {
	if p != a.Current {
		return 0, false
	}
	clip, ok := a.Clips[p]
	if !ok {
		return 0, false
	}
	return clip.Progress(), true
}

func (a *AnimationData) Flip(f controller.Facing) { a.Facing = f }

func (a *AnimationData) Update(dt float64) {
	if clip, ok := a.Clips[a.Current]; ok {
		clip.Update(dt)
	}
}

// Frame returns the frame index of the current clip.
func (a *AnimationData) Frame() int {
	if clip, ok := a.Clips[a.Current]; ok {
		return clip.Frame()
	}
	return 0
}

var Animation = donburi.NewComponentType[AnimationData]()
