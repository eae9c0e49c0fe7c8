package telemetry

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/automoto/swamp-preachers/config"
	"github.com/automoto/swamp-preachers/controller"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

func TestRecorderCountsTransitionsAndEvents(t *testing.T) {
	rec := NewRecorder()

	rec.OnTransition(controller.Grounded, controller.Airborne)
	rec.OnTransition(controller.Grounded, controller.Airborne)
	rec.OnTransition(controller.Airborne, controller.Grounded)
	rec.OnEvent(controller.EventJump)

	assert.Equal(t, 2.0, testutil.ToFloat64(rec.transitions.WithLabelValues("grounded", "airborne")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.transitions.WithLabelValues("airborne", "grounded")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.events.WithLabelValues("jump")))
	assert.Equal(t, 0.0, testutil.ToFloat64(rec.events.WithLabelValues("dash")))
}

type stillBody struct{ vel math.Vec2 }

func (b *stillBody) Position() math.Vec2     { return math.Vec2{} }
func (b *stillBody) SetPosition(math.Vec2)   {}
func (b *stillBody) Velocity() math.Vec2     { return b.vel }
func (b *stillBody) SetVelocity(v math.Vec2) { b.vel = v }

func (b *stillBody) AddImpulse(i math.Vec2) {
	b.vel.X += i.X
	b.vel.Y += i.Y
}

func (b *stillBody) SetGravityEnabled(bool)          {}
func (b *stillBody) SetCollisionEnabled(bool)        {}
func (b *stillBody) SetCollider(controller.Collider) {}

func TestRecorderObservesController(t *testing.T) {
	rec := NewRecorder()
	player := config.Defaults().Player
	c := controller.New(&player, nil, controller.Deps{Body: &stillBody{}, Observer: rec})

	c.TakeDamage(math.Vec2{X: 1})

	assert.Equal(t, 1.0, testutil.ToFloat64(rec.transitions.WithLabelValues("grounded", "hurt")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.events.WithLabelValues("hurt")))
}

func TestPublishAndForget(t *testing.T) {
	rec := NewRecorder()
	rec.Publish("p2", controller.Snapshot{State: "airborne"})
	rec.Publish("p1", controller.Snapshot{State: "grounded"})
	rec.Publish("p1", controller.Snapshot{State: "dashing"})

	snaps := rec.Snapshots()
	require.Len(t, snaps, 2)
	assert.Equal(t, "p1", snaps[0].Name)
	assert.Equal(t, "dashing", snaps[0].State)
	assert.Equal(t, 2.0, testutil.ToFloat64(rec.characters))

	rec.Forget("p2")
	assert.Len(t, rec.Snapshots(), 1)
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.characters))
}

func TestObserveTick(t *testing.T) {
	rec := NewRecorder()
	rec.ObserveTick(2 * time.Millisecond)
	rec.ObserveTick(3 * time.Millisecond)
	assert.Equal(t, 1, testutil.CollectAndCount(rec.tickDuration))
}

func TestRouter(t *testing.T) {
	rec := NewRecorder()
	rec.OnEvent(controller.EventDash)
	rec.Publish("p1", controller.Snapshot{State: "grounded", Health: 3, Position: math.Vec2{X: 1, Y: 2}})
	router := NewRouter(rec, false)

	t.Run("healthz", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ok", w.Body.String())
	})

	t.Run("characters", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/debug/characters", nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var got []map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "p1", got[0]["name"])
		assert.Equal(t, "grounded", got[0]["state"])
		assert.Equal(t, 3.0, got[0]["health"])
	})

	t.Run("metrics", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `character_events_total{event="dash"} 1`)
		assert.Contains(t, w.Body.String(), "game_characters_active 1")
	})

	t.Run("unknown route", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestStartDebugServer(t *testing.T) {
	rec := NewRecorder()

	srv, err := StartDebugServer(config.TelemetryConfig{Enabled: false}, rec)
	require.NoError(t, err)
	assert.Nil(t, srv)

	srv, err = StartDebugServer(config.TelemetryConfig{Enabled: true, ListenAddr: "127.0.0.1:0"}, rec)
	require.NoError(t, err)
	require.NotNil(t, srv)
	defer srv.Shutdown(context.Background())

	resp, err := http.Get("http://" + srv.Addr + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	_, err = StartDebugServer(config.TelemetryConfig{Enabled: true, ListenAddr: srv.Addr}, rec)
	assert.Error(t, err, "a taken address is reported")
}
