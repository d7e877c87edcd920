package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sevenstone/stonegl/masonry"
)

var _ masonry.ColorResolver = (*Palette)(nil)

func testPalette(t *testing.T) *Palette {
	t.Helper()
	p, err := NewPalette(DefaultConfig().Palette)
	require.NoError(t, err)
	return p
}

func TestPaletteCornerModules(t *testing.T) {
	p := testPalette(t)
	fill, _ := p.Resolve(3, 0, -1, masonry.FaceOuter)
	want, _ := parseHexColor(DefaultConfig().Palette.Corner)
	assert.Equal(t, want, fill)
}

func TestPaletteCarvedFaces(t *testing.T) {
	p := testPalette(t)
	carve, _ := p.Resolve(0, 0, 0, masonry.FaceCarve)
	capFill, _ := p.Resolve(0, 0, 0, masonry.FaceCap)
	want, _ := parseHexColor(DefaultConfig().Palette.Carve)
	assert.Equal(t, want, carve)
	assert.Equal(t, want, capFill)
}

func TestPaletteAlternatesStoneShades(t *testing.T) {
	p := testPalette(t)
	a, _ := p.Resolve(0, 0, 0, masonry.FaceOuter)
	b, _ := p.Resolve(0, 0, 1, masonry.FaceOuter)
	assert.NotEqual(t, a, b)

	// Same cell always resolves identically.
	a2, _ := p.Resolve(0, 0, 0, masonry.FaceOuter)
	assert.Equal(t, a, a2)
}

func TestPaletteRejectsBadHex(t *testing.T) {
	_, err := NewPalette(PaletteColors{Stone: "nope"})
	require.Error(t, err)
}

func TestNewAppBuildsScene(t *testing.T) {
	a, err := New(DefaultConfig(), nil)
	require.NoError(t, err)
	assert.Equal(t, 7*8*13+7, a.Scene().ObjectCount())
}

func TestNewAppFailsOnInvalidGeometry(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows = 0
	_, err := New(cfg, nil)
	require.Error(t, err)
	var gerr *masonry.GeometryError
	assert.ErrorAs(t, err, &gerr)
}
