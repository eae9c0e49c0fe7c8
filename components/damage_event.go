package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// DamageEventData queues hits on an enemy until the combat system applies
// them on the next tick.
type DamageEventData struct {
	Hits []Hit
}

type Hit struct {
	Amount    int
	Knockback math.Vec2
}

func (d *DamageEventData) Add(amount int, knockback math.Vec2) {
	d.Hits = append(d.Hits, Hit{Amount: amount, Knockback: knockback})
}

// Drain returns the queued hits and empties the queue.
func (d *DamageEventData) Drain() []Hit {
	hits := d.Hits
	d.Hits = nil
	return hits
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
