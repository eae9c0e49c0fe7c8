package components

import (
	"github.com/automoto/swamp-preachers/controller"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// EffectData is a cosmetic effect drawn as a fading, growing square.
type EffectData struct {
	Kind     controller.EffectKind
	Position math.Vec2
	Size     float64 // world units
	Alpha    float32
	Scale    float32
	Started  bool // set by the effects system on the first update

	fade *gween.Tween
	grow *gween.Tween
}

// effectDurations are the lifetimes of each effect kind in seconds.
var effectDurations = map[controller.EffectKind]float32{
	controller.EffectJump:  0.25,
	controller.EffectDash:  0.2,
	controller.EffectHit:   0.15,
	controller.EffectDeath: 0.6,
}

func NewEffectData(kind controller.EffectKind, at math.Vec2, size float64) EffectData {
	d, ok := effectDurations[kind]
	if !ok {
		d = 0.25
	}
	return EffectData{
		Kind:     kind,
		Position: at,
		Size:     size,
		Alpha:    1,
		Scale:    1,
		fade:     gween.New(1, 0, d, ease.InQuad),
		grow:     gween.New(1, 2, d, ease.OutQuad),
	}
}

// Update advances the fade and reports whether the effect has finished.
func (e *EffectData) Update(dt float64) (finished bool) {
	if e.fade == nil {
		return true
	}
	e.Alpha, finished = e.fade.Update(float32(dt))
	e.Scale, _ = e.grow.Update(float32(dt))
	return finished
}

var Effect = donburi.NewComponentType[EffectData]()
