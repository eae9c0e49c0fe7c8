package components

import "github.com/yohamta/donburi"

// HealthData is enemy health. Player health lives in the controller.
type HealthData struct {
	Current int
	Max     int
}

// Apply subtracts damage, never going below zero, and reports whether the
// entity is out of health.
func (h *HealthData) Apply(damage int) bool {
	h.Current -= damage
	if h.Current < 0 {
		h.Current = 0
	}
	return h.Current == 0
}

var Health = donburi.NewComponentType[HealthData]()
