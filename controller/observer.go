package controller

import "log"

// Event is a one-shot gameplay event raised by a Controller.
type Event int

const (
	EventJump Event = iota
	EventExtraJump
	EventWallJump
	EventDash
	EventAttack
	EventHurt
	EventBounce
	EventLedgeClimb
	EventDeath
	EventLevelReset
)

var eventNames = map[Event]string{
	EventJump:       "jump",
	EventExtraJump:  "extra_jump",
	EventWallJump:   "wall_jump",
	EventDash:       "dash",
	EventAttack:     "attack",
	EventHurt:       "hurt",
	EventBounce:     "bounce",
	EventLedgeClimb: "ledge_climb",
	EventDeath:      "death",
	EventLevelReset: "level_reset",
}

func (e Event) String() string {
	if name, ok := eventNames[e]; ok {
		return name
	}
	return "unknown"
}

// AllEvents lists every event in declaration order.
func AllEvents() []Event {
	events := make([]Event, 0, len(eventNames))
	for e := EventJump; e <= EventLevelReset; e++ {
		events = append(events, e)
	}
	return events
}

// Observer is notified of state transitions and events. Implementations must
// not call back into the Controller.
type Observer interface {
	OnTransition(from, to State)
	OnEvent(Event)
}

// Observers fans out to several observers.
type Observers []Observer

func (o Observers) OnTransition(from, to State) {
	for _, obs := range o {
		obs.OnTransition(from, to)
	}
}

func (o Observers) OnEvent(e Event) {
	for _, obs := range o {
		obs.OnEvent(e)
	}
}

// LogObserver writes transitions and events to the standard logger.
type LogObserver struct {
	Name string
}

func (l LogObserver) OnTransition(from, to State) {
	log.Printf("[character] %s: %s -> %s", l.Name, from, to)
}

func (l LogObserver) OnEvent(e Event) {
	log.Printf("[character] %s: %s", l.Name, e)
}
