package app

import (
	"sevenstone/stonegl"
	"sevenstone/stonegl/masonry"
)

// Palette is the host's color-resolution collaborator. It maps module cells
// to the configured stone shades: ordinary blocks alternate two stone
// colors per cell, carved faces use the carve shade, corner joints (cell
// column -1) use the corner shade. The core treats all of it as opaque.
type Palette struct {
	stone    stonegl.Color
	stoneAlt stonegl.Color
	carve    stonegl.Color
	corner   stonegl.Color
	outline  stonegl.Color
}

// NewPalette resolves the configured hex strings once, up front.
func NewPalette(pc PaletteColors) (*Palette, error) {
	p := &Palette{}
	for _, c := range []struct {
		dst *stonegl.Color
		hex string
	}{
		{&p.stone, pc.Stone},
		{&p.stoneAlt, pc.StoneAlt},
		{&p.carve, pc.Carve},
		{&p.corner, pc.Corner},
		{&p.outline, pc.Outline},
	} {
		v, err := parseHexColor(c.hex)
		if err != nil {
			return nil, err
		}
		*c.dst = v
	}
	return p, nil
}

func (p *Palette) Resolve(wall, row, col int, face masonry.FaceKind) (fill, outline stonegl.Color) {
	if col < 0 {
		return p.corner, p.outline
	}
	switch face {
	case masonry.FaceCarve, masonry.FaceCap:
		return p.carve, p.outline
	}
	if (wall+row+col)%2 == 0 {
		return p.stone, p.outline
	}
	return p.stoneAlt, p.outline
}
