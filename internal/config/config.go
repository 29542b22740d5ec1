package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Host modes.
const (
	ModeWindow   = "window"
	ModeTerminal = "terminal"
	ModeHeadless = "headless"
)

// Config is the complete program configuration.
type Config struct {
	LogLevel  string `json:"logLevel" mapstructure:"logLevel"`
	LogFormat string `json:"logFormat" mapstructure:"logFormat"` // console or json
	LogFile   string `json:"logFile" mapstructure:"logFile"`
	Mode      string `json:"mode" mapstructure:"mode"`

	Window   WindowConfig   `json:"window" mapstructure:"window"`
	Terminal TerminalConfig `json:"terminal" mapstructure:"terminal"`
	Headless HeadlessConfig `json:"headless" mapstructure:"headless"`
	Physics  PhysicsConfig  `json:"physics" mapstructure:"physics"`
	Camera   CameraConfig   `json:"camera" mapstructure:"camera"`
	Audio    AudioConfig    `json:"audio" mapstructure:"audio"`
	HUD      HUDConfig      `json:"hud" mapstructure:"hud"`
}

// WindowConfig holds desktop window settings.
type WindowConfig struct {
	Width  int `json:"width" mapstructure:"width"`
	Height int `json:"height" mapstructure:"height"`
	Scale  int `json:"scale" mapstructure:"scale"`
	TPS    int `json:"tps" mapstructure:"tps"`
}

type TerminalConfig struct {
	Hz int `json:"hz" mapstructure:"hz"`
}

type HeadlessConfig struct {
	Hz     int    `json:"hz" mapstructure:"hz"`
	Ticks  uint64 `json:"ticks" mapstructure:"ticks"`
	Width  int    `json:"width" mapstructure:"width"`
	Height int    `json:"height" mapstructure:"height"`
}

// PhysicsConfig tunes projectile integration. Step is the fixed frame time in
// seconds; Realtime integrates measured frame time instead.
type PhysicsConfig struct {
	Step     float32 `json:"step" mapstructure:"step"`
	Gravity  float32 `json:"gravity" mapstructure:"gravity"`
	Realtime bool    `json:"realtime" mapstructure:"realtime"`
}

type CameraConfig struct {
	View int     `json:"view" mapstructure:"view"`
	Zoom float32 `json:"zoom" mapstructure:"zoom"`
}

type AudioConfig struct {
	Enabled bool    `json:"enabled" mapstructure:"enabled"`
	ToneHz  float64 `json:"toneHz" mapstructure:"toneHz"`
	ToneMs  int     `json:"toneMs" mapstructure:"toneMs"`
}

type HUDConfig struct {
	Enabled bool `json:"enabled" mapstructure:"enabled"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("logFormat", "console")
	v.SetDefault("logFile", "")
	v.SetDefault("mode", ModeWindow)

	v.SetDefault("window.width", 480)
	v.SetDefault("window.height", 320)
	v.SetDefault("window.scale", 2)
	v.SetDefault("window.tps", 60)

	v.SetDefault("terminal.hz", 30)

	v.SetDefault("headless.hz", 60)
	v.SetDefault("headless.ticks", 0)
	v.SetDefault("headless.width", 320)
	v.SetDefault("headless.height", 240)

	v.SetDefault("physics.step", 1.0/60)
	v.SetDefault("physics.gravity", -9.8)
	v.SetDefault("physics.realtime", false)

	v.SetDefault("camera.view", 4)
	v.SetDefault("camera.zoom", 15)

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.toneHz", 220)
	v.SetDefault("audio.toneMs", 80)

	v.SetDefault("hud.enabled", true)
}

// Load builds the configuration from defaults, an optional config file and
// TANKSIM_* environment variables (TANKSIM_CAMERA_ZOOM sets camera.zoom).
//
// An empty path searches for tanksim.{yaml,json,toml} in the working directory
// and $HOME/.config/tanksim; not finding one is not an error. A non-empty path
// must name a readable file.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("TANKSIM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("tanksim")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/tanksim")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the program cannot run with.
func (c Config) Validate() error {
	switch c.Mode {
	case ModeWindow, ModeTerminal, ModeHeadless:
	default:
		return fmt.Errorf("config: unknown mode %q", c.Mode)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("config: unknown log format %q", c.LogFormat)
	}
	if c.Camera.View < 1 || c.Camera.View > 4 {
		return fmt.Errorf("config: camera.view %d out of range 1-4", c.Camera.View)
	}
	if c.Camera.Zoom < 1 {
		return fmt.Errorf("config: camera.zoom %v below 1", c.Camera.Zoom)
	}
	if c.Physics.Step <= 0 {
		return fmt.Errorf("config: physics.step must be positive, got %v", c.Physics.Step)
	}
	if c.Window.Scale < 1 {
		return fmt.Errorf("config: window.scale must be at least 1, got %d", c.Window.Scale)
	}
	return nil
}
