package stonegl

import "sort"

// RGB565Target draws into an RGB565 framebuffer buffer.
//
// This type requires no host services; callers provide the backing buffer
// and layout (stride). Polygons are filled with an even-odd scanline pass
// and stroked with Bresenham lines.
type RGB565Target struct {
	Buf    []byte
	Stride int // bytes per row
	W      int
	H      int

	// scratch for scanline intersections, reused across calls.
	xs []int
}

func (t *RGB565Target) Size() (w, h int) { return t.W, t.H }

func (t *RGB565Target) valid() bool {
	return t != nil && t.Buf != nil && t.Stride > 0 && t.W > 0 && t.H > 0
}

func (t *RGB565Target) Clear(c Color) {
	if !t.valid() {
		return
	}
	p := rgb565From888(c.R, c.G, c.B)
	lo := byte(p)
	hi := byte(p >> 8)
	for y := 0; y < t.H; y++ {
		row := y * t.Stride
		for x := 0; x < t.W; x++ {
			off := row + x*2
			if off < 0 || off+1 >= len(t.Buf) {
				continue
			}
			t.Buf[off] = lo
			t.Buf[off+1] = hi
		}
	}
}

func (t *RGB565Target) SetPixel(x, y int, c Color) {
	if !t.valid() {
		return
	}
	if x < 0 || y < 0 || x >= t.W || y >= t.H {
		return
	}
	off := y*t.Stride + x*2
	if off < 0 || off+1 >= len(t.Buf) {
		return
	}
	p := rgb565From888(c.R, c.G, c.B)
	t.Buf[off] = byte(p)
	t.Buf[off+1] = byte(p >> 8)
}

// FillPolygon fills the polygon with an even-odd scanline pass.
func (t *RGB565Target) FillPolygon(pts []Point, c Color) {
	if !t.valid() || len(pts) < 3 {
		return
	}

	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= t.H {
		maxY = t.H - 1
	}

	p := rgb565From888(c.R, c.G, c.B)
	lo := byte(p)
	hi := byte(p >> 8)

	for y := minY; y <= maxY; y++ {
		t.xs = t.xs[:0]
		for i, a := range pts {
			b := pts[(i+1)%len(pts)]
			if a.Y == b.Y {
				continue
			}
			// Half-open edge span [min, max) so shared vertices are not
			// counted twice.
			y0, y1, x0, x1 := a.Y, b.Y, a.X, b.X
			if y0 > y1 {
				y0, y1 = y1, y0
				x0, x1 = x1, x0
			}
			if y < y0 || y >= y1 {
				continue
			}
			x := x0 + (y-y0)*(x1-x0)/(y1-y0)
			t.xs = append(t.xs, x)
		}
		if len(t.xs) < 2 {
			continue
		}
		sort.Ints(t.xs)

		row := y * t.Stride
		for i := 0; i+1 < len(t.xs); i += 2 {
			x0, x1 := t.xs[i], t.xs[i+1]
			if x0 < 0 {
				x0 = 0
			}
			if x1 >= t.W {
				x1 = t.W - 1
			}
			for x := x0; x <= x1; x++ {
				off := row + x*2
				if off < 0 || off+1 >= len(t.Buf) {
					continue
				}
				t.Buf[off] = lo
				t.Buf[off+1] = hi
			}
		}
	}
}

// StrokePolygon draws the closed polygon outline.
func (t *RGB565Target) StrokePolygon(pts []Point, c Color) {
	if !t.valid() || len(pts) < 2 {
		return
	}
	for i, a := range pts {
		b := pts[(i+1)%len(pts)]
		t.drawLine(a.X, a.Y, b.X, b.Y, c)
	}
}

func (t *RGB565Target) drawLine(x0, y0, x1, y1 int, c Color) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		t.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func rgb565From888(r, g, b uint8) uint16 {
	return uint16((uint16(r>>3)&0x1F)<<11 | (uint16(g>>2)&0x3F)<<5 | (uint16(b>>3) & 0x1F))
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
