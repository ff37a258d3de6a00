// Package config handles startup configuration: defaults, the legacy
// abuserc file, config.yaml and command-line flags.
package config

import (
	"github.com/HunterZ/abuse-wii/internal/event"
	"github.com/HunterZ/abuse-wii/internal/keys"
)

// Input devices.
const (
	DeviceMouse    = "mouse"
	DeviceJoystick = "joystick"
)

// Config holds all startup settings.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Audio   AudioConfig   `yaml:"audio"`
	Input   InputConfig   `yaml:"input"`
	Keys    KeysConfig    `yaml:"keys"`
	Paths   PathsConfig   `yaml:"paths"`
	Game    GameConfig    `yaml:"game"`
	Logging LoggingConfig `yaml:"logging"`

	warnings []string
}

// DisplayConfig holds video settings. Width and Height are the game's
// logical resolution; the window is Scale times larger.
type DisplayConfig struct {
	Width       int  `yaml:"width"`
	Height      int  `yaml:"height"`
	Scale       int  `yaml:"scale"`
	Fullscreen  bool `yaml:"fullscreen"`
	DoubleBuf   bool `yaml:"doublebuf"`
	GL          bool `yaml:"gl"`
	Antialias   bool `yaml:"antialias"`
	GrabMouse   bool `yaml:"grabmouse"`
	WideStretch bool `yaml:"widestretch"`
}

// AudioConfig holds sound settings.
type AudioConfig struct {
	Mono    bool `yaml:"mono"`
	NoSound bool `yaml:"nosound"`
}

// InputConfig selects the input device and tunes the joystick.
// Deadzones are percentages of full stick travel.
type InputConfig struct {
	Device      string  `yaml:"device"`
	SwapButtons bool    `yaml:"swap_buttons"`
	UseVAxis    bool    `yaml:"use_vaxis"`
	HDeadzone   float64 `yaml:"hdeadzone"`
	VDeadzone   float64 `yaml:"vdeadzone"`
}

// KeysConfig holds key names as accepted by keys.Value.
type KeysConfig struct {
	Left     string `yaml:"left"`
	Right    string `yaml:"right"`
	Up       string `yaml:"up"`
	Down     string `yaml:"down"`
	Special  string `yaml:"special"`
	Fire     string `yaml:"fire"`
	WeapPrev string `yaml:"weapprev"`
	WeapNext string `yaml:"weapnext"`
}

// PathsConfig holds the data and save directories.
type PathsConfig struct {
	DataDir string `yaml:"data_dir"`
	SaveDir string `yaml:"save_dir"`
}

// GameConfig holds options passed through to the game itself.
type GameConfig struct {
	Edit    bool   `yaml:"edit"`
	Addon   string `yaml:"addon"`
	MapFile string `yaml:"map_file"`
	Lisp    bool   `yaml:"lisp"`
	NoDelay bool   `yaml:"nodelay"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// DefaultDataDir is used when neither the rc file nor flags name one.
const DefaultDataDir = "/usr/local/share/games/abuse"

// Default returns a Config with the stock settings.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Width:  320,
			Height: 200,
			Scale:  2,
		},
		Input: InputConfig{
			Device:    DeviceMouse,
			HDeadzone: 15,
			VDeadzone: 30,
		},
		Keys: KeysConfig{
			Left:     "LEFT",
			Right:    "RIGHT",
			Up:       "UP",
			Down:     "DOWN",
			Fire:     "SPACE",
			WeapPrev: "CTRL_R",
			WeapNext: "INSERT",
		},
		Paths: PathsConfig{
			DataDir: DefaultDataDir,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// WindowSize returns the scaled window dimensions.
func (c *Config) WindowSize() (int, int) {
	scale := c.Display.Scale
	if scale < 1 {
		scale = 1
	}
	return c.Display.Width * scale, c.Display.Height * scale
}

// Bindings resolves the configured key names.
func (c *Config) Bindings() keys.Bindings {
	return keys.Bindings{
		Left:  keys.Value(c.Keys.Left),
		Right: keys.Value(c.Keys.Right),
		Up:    keys.Value(c.Keys.Up),
		Down:  keys.Value(c.Keys.Down),
		B1:    keys.Value(c.Keys.Special),
		B2:    keys.Value(c.Keys.Fire),
		B3:    keys.Value(c.Keys.WeapPrev),
		B4:    keys.Value(c.Keys.WeapNext),
	}
}

// Controller returns the joystick settings in raw axis units.
func (c *Config) Controller() event.ControllerConfig {
	return event.ControllerConfig{
		HDeadzone:   deadzone(c.Input.HDeadzone),
		VDeadzone:   deadzone(c.Input.VDeadzone),
		UseVAxis:    c.Input.UseVAxis,
		SwapButtons: c.Input.SwapButtons,
	}
}

// UseJoystick reports whether the motion-controller input is selected.
func (c *Config) UseJoystick() bool {
	return c.Input.Device == DeviceJoystick
}

// deadzone converts a percentage of stick travel into axis units.
func deadzone(percent float64) int {
	return int(32768 * percent / 100)
}

// validDeadzone reports whether percent is accepted from the command line.
func validDeadzone(percent float64) bool {
	return percent > 0 && percent < 100
}
