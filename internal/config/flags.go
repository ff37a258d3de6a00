package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
)

var (
	flagConfig   = flag.String("config", "", "Path to config.yaml")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagLogFile  = flag.String("log", "", "Write the log to this file")
	flagJoystick = flag.Bool("joystick", false, "Read a motion controller instead of mouse and keyboard")
	flagWrite    = flag.Bool("writeconfig", false, "Write the effective settings to config.yaml in the save directory and exit")

	flagSize       = flag.String("size", "", "Set the size of the screen (WxH)")
	flagEdit       = flag.Bool("edit", false, "Startup in editor mode")
	flagAddon      = flag.String("a", "", "Use addon named `name`")
	flagMapFile    = flag.String("f", "", "Load map file named `file`")
	flagLisp       = flag.Bool("lisp", false, "Startup in lisp interpreter mode")
	flagNoDelay    = flag.Bool("nodelay", false, "Run at maximum speed")
	flagDataDir    = flag.String("datadir", "", "Set the location of the game data")
	flagDoubleBuf  = flag.Bool("doublebuf", false, "Enable double buffering")
	flagFullscreen = flag.Bool("fullscreen", false, "Enable fullscreen mode")
	flagGL         = flag.Bool("gl", false, "Enable OpenGL")
	flagAntialias  = flag.Bool("antialias", false, "Enable anti-aliasing (with -gl only)")
	flagMono       = flag.Bool("mono", false, "Disable stereo sound")
	flagNoSound    = flag.Bool("nosound", false, "Disable sound")
	flagScale      = flag.Int("scale", 0, "Scale the window by `n`")

	flagWideStretch = flag.Bool("widestretch", false, "Stretch picture horizontally on 16:9 displays")
	flagSwapButtons = flag.Bool("swapbuttons", false, "Swap jump/activate/climb button controls")
	flagUseVAxis    = flag.Bool("usevaxis", false, "Allow vertical axis to control jump/activate/climb")
	flagHDeadzone   = flag.Float64("hdeadzone", 0, "Set horizontal axis deadzone to `percent`")
	flagVDeadzone   = flag.Float64("vdeadzone", 0, "Set vertical axis deadzone to `percent`")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Usage = usage
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via -config.
func ConfigPath() string {
	return *flagConfig
}

// WriteConfigRequested reports whether -writeconfig was given.
func WriteConfigRequested() bool {
	return *flagWrite
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "Usage: %s [options]\n\nOptions:\n", os.Args[0])
	flag.PrintDefaults()
}

// applyFlags applies command-line overrides to cfg. Out-of-range values
// are ignored.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagJoystick {
		cfg.Input.Device = DeviceJoystick
	}

	if w, h, ok := parseSize(*flagSize); ok {
		cfg.Display.Width = w
		cfg.Display.Height = h
	}
	if *flagScale > 0 {
		cfg.Display.Scale = *flagScale
	}
	if *flagFullscreen {
		cfg.Display.Fullscreen = true
	}
	if *flagDoubleBuf {
		cfg.Display.DoubleBuf = true
	}
	if *flagGL {
		cfg.Display.GL = true
	}
	if *flagAntialias {
		cfg.Display.Antialias = true
	}
	if *flagWideStretch {
		cfg.Display.WideStretch = true
	}

	if *flagMono {
		cfg.Audio.Mono = true
	}
	if *flagNoSound {
		cfg.Audio.NoSound = true
	}

	if *flagDataDir != "" {
		cfg.Paths.DataDir = *flagDataDir
	}

	if *flagSwapButtons {
		cfg.Input.SwapButtons = true
	}
	if *flagUseVAxis {
		cfg.Input.UseVAxis = true
	}
	if validDeadzone(*flagHDeadzone) {
		cfg.Input.HDeadzone = *flagHDeadzone
	}
	if validDeadzone(*flagVDeadzone) {
		cfg.Input.VDeadzone = *flagVDeadzone
	}

	if *flagEdit {
		cfg.Game.Edit = true
	}
	if *flagAddon != "" {
		cfg.Game.Addon = *flagAddon
	}
	if *flagMapFile != "" {
		cfg.Game.MapFile = *flagMapFile
	}
	if *flagLisp {
		cfg.Game.Lisp = true
	}
	if *flagNoDelay {
		cfg.Game.NoDelay = true
	}
}

// parseSize parses "WxH". Either dimension falls back to the stock
// 320x200 when it does not parse.
func parseSize(s string) (int, int, bool) {
	if s == "" {
		return 0, 0, false
	}
	ws, hs, _ := strings.Cut(strings.ToLower(s), "x")

	w, err := strconv.Atoi(strings.TrimSpace(ws))
	if err != nil || w <= 0 {
		w = 320
	}
	h, err := strconv.Atoi(strings.TrimSpace(hs))
	if err != nil || h <= 0 {
		h = 200
	}
	return w, h, true
}
