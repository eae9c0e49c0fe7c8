// Package telemetry exposes character metrics and debug snapshots over a
// local HTTP server.
package telemetry

import (
	"sort"
	"sync"
	"time"

	"github.com/automoto/swamp-preachers/controller"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder counts controller transitions and events and keeps the latest
// snapshot of every character. Observer callbacks and Publish run on the game
// loop; the HTTP handlers only read.
//
// Labels are bounded: states and events are fixed enums, never player names.
type Recorder struct {
	registry *prometheus.Registry

	transitions  *prometheus.CounterVec
	events       *prometheus.CounterVec
	tickDuration prometheus.Histogram
	characters   prometheus.Gauge

	mu        sync.RWMutex
	snapshots map[string]controller.Snapshot
}

var _ controller.Observer = (*Recorder)(nil)

// NewRecorder registers the character metrics on a fresh registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		transitions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "character_state_transitions_total",
			Help: "Character state machine transitions",
		}, []string{"from", "to"}),
		events: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "character_events_total",
			Help: "Character gameplay events",
		}, []string{"event"}),
		tickDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "game_physics_tick_duration_seconds",
			Help:    "Time spent in one fixed physics step",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.016},
		}),
		characters: factory.NewGauge(prometheus.GaugeOpts{
			Name: "game_characters_active",
			Help: "Characters currently published",
		}),
		snapshots: make(map[string]controller.Snapshot),
	}
}

// Registry returns the registry the metrics live on.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

func (r *Recorder) OnTransition(from, to controller.State) {
	r.transitions.WithLabelValues(from.String(), to.String()).Inc()
}

func (r *Recorder) OnEvent(e controller.Event) {
	r.events.WithLabelValues(e.String()).Inc()
}

// ObserveTick records how long a physics step took.
func (r *Recorder) ObserveTick(d time.Duration) {
	r.tickDuration.Observe(d.Seconds())
}

// Publish stores the latest snapshot for a character.
func (r *Recorder) Publish(name string, snap controller.Snapshot) {
	r.mu.Lock()
	r.snapshots[name] = snap
	r.characters.Set(float64(len(r.snapshots)))
	r.mu.Unlock()
}

// Forget drops a character, e.g. when its level is unloaded.
func (r *Recorder) Forget(name string) {
	r.mu.Lock()
	delete(r.snapshots, name)
	r.characters.Set(float64(len(r.snapshots)))
	r.mu.Unlock()
}

// CharacterSnapshot is a published snapshot with the character's name.
type CharacterSnapshot struct {
	Name string `json:"name"`
	controller.Snapshot
}

// Snapshots returns every published snapshot sorted by name.
func (r *Recorder) Snapshots() []CharacterSnapshot {
	r.mu.RLock()
	out := make([]CharacterSnapshot, 0, len(r.snapshots))
	for name, snap := range r.snapshots {
		out = append(out, CharacterSnapshot{Name: name, Snapshot: snap})
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
