package factory

import (
	"github.com/automoto/swamp-preachers/archetypes"
	"github.com/automoto/swamp-preachers/components"
	"github.com/automoto/swamp-preachers/telemetry"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession creates the singleton holding the popup message state and
// the telemetry recorder. rec may be nil.
func CreateSession(ecs *ecs.ECS, rec *telemetry.Recorder) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)
	components.MessageState.SetValue(session, components.MessageStateData{})
	components.Telemetry.SetValue(session, components.TelemetryData{Recorder: rec})
	return session
}

func recorder(ecs *ecs.ECS) *telemetry.Recorder {
	entry, ok := components.Telemetry.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Telemetry.Get(entry).Recorder
}
