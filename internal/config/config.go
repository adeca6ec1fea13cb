package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds viewer settings. All fields are optional in the YAML
// file; missing values fall back to the defaults.
type Config struct {
	WindowWidth  int     `yaml:"windowWidth"`
	WindowHeight int     `yaml:"windowHeight"`
	MoveStep     float64 `yaml:"moveStep"`
	RotateStep   float64 `yaml:"rotateStep"` // degrees per key press
	ScaleStep    float64 `yaml:"scaleStep"`
	ServeAddr    string  `yaml:"serveAddr"`
	Background   string  `yaml:"background"` // hex color like "#0f1219"
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		WindowWidth:  1400,
		WindowHeight: 900,
		MoveStep:     0.1,
		RotateStep:   5.0,
		ScaleStep:    0.1,
		ServeAddr:    ":8000",
		Background:   "#0f1219",
	}
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "go3dview", "config.yaml")
}

// Load reads the config file at path, or the default location when path
// is empty. A missing file is not an error: the defaults are returned.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// BackgroundRGBA parses the configured background color. Malformed
// values fall back to the default background.
func (c Config) BackgroundRGBA() (r, g, b, a uint8) {
	r, g, b, ok := parseHexColor(c.Background)
	if !ok {
		r, g, b, _ = parseHexColor(Default().Background)
	}
	return r, g, b, 255
}

func parseHexColor(s string) (r, g, b uint8, ok bool) {
	if len(s) != 7 || s[0] != '#' {
		return 0, 0, 0, false
	}
	var rv, gv, bv int
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &rv, &gv, &bv); err != nil {
		return 0, 0, 0, false
	}
	return uint8(rv), uint8(gv), uint8(bv), true
}
