package app

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"

	"sevenstone/hal"
)

var _ drivers.Displayer = (*fbDisplayer)(nil)

// hud draws text lines directly into the framebuffer, on top of the
// rendered frame.
type hud struct {
	d    *fbDisplayer
	font tinyfont.Fonter
}

const hudLineHeight = 16

var (
	hudTitleColor = color.RGBA{R: 0xE0, G: 0xE8, B: 0xFF, A: 0xFF}
	hudTextColor  = color.RGBA{R: 0x90, G: 0xA0, B: 0xB8, A: 0xFF}
)

func newHUD(fb hal.Framebuffer) *hud {
	return &hud{
		d:    &fbDisplayer{fb: fb},
		font: &freemono.Regular9pt7b,
	}
}

func (h *hud) draw(lines ...string) {
	if h == nil || h.d == nil || h.d.fb == nil {
		return
	}
	y := int16(6)
	for i, s := range lines {
		c := hudTextColor
		if i == 0 {
			c = hudTitleColor
		}
		tinyfont.WriteLine(h.d, h.font, 6, y+hudLineHeight, s, c)
		y += hudLineHeight
	}
}

// fbDisplayer adapts the RGB565 framebuffer to the displayer interface
// tinyfont draws on.
type fbDisplayer struct {
	fb hal.Framebuffer
}

func (d *fbDisplayer) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplayer) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return
	}

	w := d.fb.Width()
	h := d.fb.Height()
	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= w || iy < 0 || iy >= h {
		return
	}

	pixel := rgb565From888(c.R, c.G, c.B)
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d *fbDisplayer) Display() error { return nil }

func rgb565From888(r, g, b uint8) uint16 {
	return uint16((uint16(r>>3)&0x1F)<<11 | (uint16(g>>2)&0x3F)<<5 | (uint16(b>>3) & 0x1F))
}
