package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, "", cfg.LogFile)
	assert.Equal(t, ModeWindow, cfg.Mode)
	assert.Equal(t, WindowConfig{Width: 480, Height: 320, Scale: 2, TPS: 60}, cfg.Window)
	assert.Equal(t, 30, cfg.Terminal.Hz)
	assert.Equal(t, HeadlessConfig{Hz: 60, Ticks: 0, Width: 320, Height: 240}, cfg.Headless)
	assert.InDelta(t, 1.0/60, cfg.Physics.Step, 1e-6)
	assert.InDelta(t, -9.8, cfg.Physics.Gravity, 1e-6)
	assert.False(t, cfg.Physics.Realtime)
	assert.Equal(t, 4, cfg.Camera.View)
	assert.InDelta(t, 15, cfg.Camera.Zoom, 1e-6)
	assert.True(t, cfg.Audio.Enabled)
	assert.InDelta(t, 220, cfg.Audio.ToneHz, 1e-9)
	assert.Equal(t, 80, cfg.Audio.ToneMs)
	assert.True(t, cfg.HUD.Enabled)
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tanksim.yaml")
	yaml := `
logLevel: debug
mode: headless
headless:
  ticks: 120
physics:
  realtime: true
camera:
  view: 2
  zoom: 6.5
audio:
  enabled: false
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, ModeHeadless, cfg.Mode)
	assert.Equal(t, uint64(120), cfg.Headless.Ticks)
	assert.Equal(t, 60, cfg.Headless.Hz)
	assert.True(t, cfg.Physics.Realtime)
	assert.Equal(t, 2, cfg.Camera.View)
	assert.InDelta(t, 6.5, cfg.Camera.Zoom, 1e-6)
	assert.False(t, cfg.Audio.Enabled)
}

func TestLoad_SearchesWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tanksim.json"), []byte(`{"mode": "terminal", "terminal": {"hz": 20}}`), 0644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ModeTerminal, cfg.Mode)
	assert.Equal(t, 20, cfg.Terminal.Hz)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TANKSIM_CAMERA_ZOOM", "4")
	t.Setenv("TANKSIM_LOGLEVEL", "warn")
	t.Setenv("TANKSIM_PHYSICS_REALTIME", "true")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.InDelta(t, 4, cfg.Camera.Zoom, 1e-6)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.True(t, cfg.Physics.Realtime)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/tanksim.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := map[string]string{
		"mode":   "mode: vr\n",
		"view":   "camera:\n  view: 7\n",
		"zoom":   "camera:\n  zoom: 0.5\n",
		"step":   "physics:\n  step: 0\n",
		"scale":  "window:\n  scale: 0\n",
		"format": "logFormat: xml\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tanksim.yaml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}
