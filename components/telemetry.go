package components

import (
	"github.com/automoto/swamp-preachers/telemetry"
	"github.com/yohamta/donburi"
)

// TelemetryData is a singleton holding the shared metrics recorder.
type TelemetryData struct {
	Recorder *telemetry.Recorder
}

var Telemetry = donburi.NewComponentType[TelemetryData]()
