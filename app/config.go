package app

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"sevenstone/stonegl"
)

// Config holds the viewer settings. All fields have working defaults; a
// YAML file overrides them.
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Scale  int `yaml:"scale"`

	Walls      int     `yaml:"walls"`
	Rows       int     `yaml:"rows"`
	Columns    int     `yaml:"columns"`
	Apothem    float32 `yaml:"apothem"`
	WallHeight float32 `yaml:"wall_height"`
	BlockDepth float32 `yaml:"block_depth"`

	Background string        `yaml:"background"`
	Palette    PaletteColors `yaml:"palette"`
}

// PaletteColors are hex color strings ("#rrggbb") fed to the palette
// resolver. The core never sees these; it receives resolved RGBA values.
type PaletteColors struct {
	Stone    string `yaml:"stone"`
	StoneAlt string `yaml:"stone_alt"`
	Carve    string `yaml:"carve"`
	Corner   string `yaml:"corner"`
	Outline  string `yaml:"outline"`
}

// DefaultConfig returns the canonical enclosure and viewer settings.
func DefaultConfig() Config {
	return Config{
		Width:      640,
		Height:     480,
		Scale:      2,
		Walls:      7,
		Rows:       8,
		Columns:    13,
		Apothem:    20,
		WallHeight: 10,
		BlockDepth: 1,
		Background: "#05080f",
		Palette: PaletteColors{
			Stone:    "#b0a898",
			StoneAlt: "#9c9284",
			Carve:    "#6e6456",
			Corner:   "#8a7f6e",
			Outline:  "#1c1a16",
		},
	}
}

// LoadConfig returns defaults when path is empty, otherwise defaults
// overlaid with the YAML file at path.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// parseHexColor parses "#rrggbb" (the leading '#' is optional).
func parseHexColor(s string) (stonegl.Color, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return stonegl.Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hexNibble(s[i*2])
		lo, ok2 := hexNibble(s[i*2+1])
		if !ok1 || !ok2 {
			return stonegl.Color{}, fmt.Errorf("invalid hex color %q", s)
		}
		rgb[i] = hi<<4 | lo
	}
	return stonegl.RGB(rgb[0], rgb[1], rgb[2]), nil
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
