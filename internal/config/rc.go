package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// RCFile is the name of the legacy key=value settings file kept in the
// save directory.
const RCFile = "abuserc"

// loadRC merges a legacy rc file into cfg. Lines are key=value, keys are
// case-insensitive and anything not understood is skipped. Numbers that
// do not parse count as 0.
func loadRC(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		applyRC(cfg, strings.ToLower(strings.TrimSpace(key)), strings.TrimSpace(value))
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return nil
}

func applyRC(cfg *Config, key, value string) {
	switch key {
	case "fullscreen":
		cfg.Display.Fullscreen = atoi(value) != 0
	case "doublebuf":
		cfg.Display.DoubleBuf = atoi(value) != 0
	case "mono":
		cfg.Audio.Mono = atoi(value) != 0
	case "grabmouse":
		cfg.Display.GrabMouse = atoi(value) != 0
	case "scale":
		cfg.Display.Scale = atoi(value)
	case "gl":
		cfg.Display.GL = atoi(value) != 0
	case "antialias":
		cfg.Display.Antialias = atoi(value) != 0
	case "datadir":
		cfg.Paths.DataDir = value
	case "left":
		cfg.Keys.Left = value
	case "right":
		cfg.Keys.Right = value
	case "up":
		cfg.Keys.Up = value
	case "down":
		cfg.Keys.Down = value
	case "fire":
		cfg.Keys.Fire = value
	case "special":
		cfg.Keys.Special = value
	case "weapprev":
		cfg.Keys.WeapPrev = value
	case "weapnext":
		cfg.Keys.WeapNext = value
	}
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// writeDefaultRC creates an rc file holding the stock settings.
func writeDefaultRC(path, dataDir string) error {
	var b strings.Builder
	b.WriteString("; Abuse-SDL Configuration file\n\n")
	b.WriteString("; Startup fullscreen\nfullscreen=0\n\n")
	b.WriteString("; Use DoubleBuffering\ndoublebuf=0\n\n")
	b.WriteString("; Use OpenGL\ngl=0\n\n")
	fmt.Fprintf(&b, "; Location of the datafiles\ndatadir=%s\n\n", dataDir)
	b.WriteString("; Use mono audio only\nmono=0\n\n")
	b.WriteString("; Grab the mouse to the window\ngrabmouse=0\n\n")
	b.WriteString("; Set the scale factor\nscale=2\n\n")
	b.WriteString("; Use anti-aliasing (with gl=1 only)\nantialias=1\n\n")
	b.WriteString("; Key mappings\n")
	b.WriteString("left=LEFT\nright=RIGHT\nup=UP\ndown=DOWN\n")
	b.WriteString("fire=SPACE\nweapprev=CTRL_R\nweapnext=INSERT\n")

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	return nil
}
