package stonegl

import "testing"

func newTestTarget(w, h int) *RGB565Target {
	return &RGB565Target{
		Buf:    make([]byte, w*2*h),
		Stride: w * 2,
		W:      w,
		H:      h,
	}
}

func pixelAt(t *RGB565Target, x, y int) uint16 {
	off := y*t.Stride + x*2
	return uint16(t.Buf[off]) | uint16(t.Buf[off+1])<<8
}

func TestClearFillsEveryPixel(t *testing.T) {
	tg := newTestTarget(8, 8)
	tg.Clear(RGB(255, 0, 0))
	want := rgb565From888(255, 0, 0)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if pixelAt(tg, x, y) != want {
				t.Fatalf("pixel (%d,%d) = %04x, want %04x", x, y, pixelAt(tg, x, y), want)
			}
		}
	}
}

func TestFillPolygonCoversInterior(t *testing.T) {
	tg := newTestTarget(32, 32)
	tg.FillPolygon([]Point{{4, 4}, {28, 4}, {28, 28}, {4, 28}}, RGB(0, 255, 0))

	want := rgb565From888(0, 255, 0)
	if pixelAt(tg, 16, 16) != want {
		t.Fatalf("interior pixel not filled")
	}
	if pixelAt(tg, 1, 1) == want {
		t.Fatalf("exterior pixel filled")
	}
}

func TestFillPolygonClipsOutOfBounds(t *testing.T) {
	tg := newTestTarget(16, 16)
	// Polygon extends far beyond the buffer; must not panic and must fill
	// the in-bounds part.
	tg.FillPolygon([]Point{{-100, -100}, {100, -100}, {100, 100}, {-100, 100}}, RGB(0, 0, 255))
	if pixelAt(tg, 8, 8) != rgb565From888(0, 0, 255) {
		t.Fatalf("in-bounds pixel not filled")
	}
}

func TestStrokePolygonDrawsVertices(t *testing.T) {
	tg := newTestTarget(16, 16)
	tg.StrokePolygon([]Point{{2, 2}, {12, 2}, {12, 12}}, RGB(255, 255, 255))

	want := rgb565From888(255, 255, 255)
	for _, p := range []Point{{2, 2}, {12, 2}, {12, 12}} {
		if pixelAt(tg, p.X, p.Y) != want {
			t.Fatalf("vertex (%d,%d) not stroked", p.X, p.Y)
		}
	}
	if pixelAt(tg, 8, 8) == want {
		t.Fatalf("interior unexpectedly stroked")
	}
}

func TestTargetNilSafety(t *testing.T) {
	var tg *RGB565Target
	tg.Clear(RGB(1, 1, 1))
	tg.FillPolygon([]Point{{0, 0}, {1, 0}, {0, 1}}, Color{})
	tg.StrokePolygon([]Point{{0, 0}, {1, 0}}, Color{})
}
