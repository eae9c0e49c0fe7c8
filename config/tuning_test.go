package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsAreValid(t *testing.T) {
	require.NoError(t, Validate(Defaults()))
}

func TestDefaultCapabilities(t *testing.T) {
	caps := Defaults().Player.Capabilities
	assert.True(t, caps.Jump)
	assert.False(t, caps.DoubleJump)
	assert.True(t, caps.Dash)
	assert.True(t, caps.Crouch)
	assert.True(t, caps.Attack)
	assert.False(t, caps.AirAttack)
}

func TestLoadTuningOverridesOnlyGivenKeys(t *testing.T) {
	base := Current()

	tuning, err := LoadTuning(os.DirFS("testdata"), "tuning.yaml")
	require.NoError(t, err)

	assert.Equal(t, 10.0, tuning.Player.Speed)
	assert.Equal(t, 2, tuning.Player.ExtraJumpCount)
	assert.Equal(t, 12.0, tuning.Player.WallJumpForce.X)
	assert.Equal(t, 20.0, tuning.Player.WallJumpForce.Y)
	assert.True(t, tuning.Player.Capabilities.DoubleJump)
	assert.False(t, tuning.Camera.DynamicZoom)

	// untouched keys keep the current values
	assert.Equal(t, base.Player.JumpForce, tuning.Player.JumpForce)
	assert.Equal(t, base.Player.CoyoteTime, tuning.Player.CoyoteTime)
	assert.Equal(t, base.Physics, tuning.Physics)

	// loading never applies by itself
	assert.Equal(t, base.Player.Speed, Player.Speed)
}

func TestLoadTuningMissingFile(t *testing.T) {
	_, err := LoadTuning(os.DirFS("testdata"), "missing.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.yaml")
}

func TestParseTuningRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "zero health", yaml: "player: {max_health: 0}"},
		{name: "negative buffer", yaml: "player: {jump_buffer_time: -1}"},
		{name: "negative extra jumps", yaml: "player: {extra_jump_count: -2}"},
		{name: "zero timestep", yaml: "physics: {fixed_timestep: 0}"},
		{name: "zoom range", yaml: "camera: {min_zoom: 2, max_zoom: 1}"},
		{name: "zero ledge timeout", yaml: "player: {ledge_timeout: 0}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTuning([]byte(tt.yaml), Defaults())
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidTuning)
		})
	}
}

func TestParseTuningRejectsMalformedYAML(t *testing.T) {
	_, err := ParseTuning([]byte("player: [1, 2"), Defaults())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidTuning)
}

func TestApplyAndCurrentRoundTrip(t *testing.T) {
	saved := Current()
	t.Cleanup(func() { Apply(saved) })

	tuning := Defaults()
	tuning.Player.DashSpeed = 42
	Apply(tuning)

	assert.Equal(t, 42.0, Player.DashSpeed)
	assert.Equal(t, tuning, Current())
}

func TestWatcherReportsTuningWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	// non-tuning files are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	path := filepath.Join(dir, "player.yaml")
	require.NoError(t, os.WriteFile(path, []byte("player: {speed: 9}"), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, path, name)
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("no event for tuning file")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}
