package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sevenstone/stonegl"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, 7, cfg.Walls)
	assert.Equal(t, 13, cfg.Columns)
	assert.Equal(t, 8, cfg.Rows)
}

func TestLoadConfigOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.yaml")
	data := []byte("rows: 4\napothem: 35.5\npalette:\n  stone: \"#ff0000\"\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Rows)
	assert.InDelta(t, 35.5, float64(cfg.Apothem), 1e-6)
	assert.Equal(t, "#ff0000", cfg.Palette.Stone)
	// Untouched fields keep their defaults.
	assert.Equal(t, 13, cfg.Columns)
	assert.Equal(t, DefaultConfig().Palette.Outline, cfg.Palette.Outline)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    stonegl.Color
		wantErr bool
	}{
		{"#ff8000", stonegl.RGB(0xFF, 0x80, 0x00), false},
		{"102030", stonegl.RGB(0x10, 0x20, 0x30), false},
		{"#fff", stonegl.Color{}, true},
		{"#gggggg", stonegl.Color{}, true},
		{"", stonegl.Color{}, true},
	}
	for _, tt := range tests {
		got, err := parseHexColor(tt.in)
		if tt.wantErr {
			assert.Errorf(t, err, "input %q", tt.in)
			continue
		}
		require.NoErrorf(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}
