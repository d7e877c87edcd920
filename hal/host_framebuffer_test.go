package hal

import "testing"

func TestFramebufferLayout(t *testing.T) {
	fb := newHostFramebuffer(320, 200)
	if fb.Width() != 320 || fb.Height() != 200 {
		t.Fatalf("size = %dx%d", fb.Width(), fb.Height())
	}
	if fb.StrideBytes() != 640 {
		t.Fatalf("stride = %d, want 640", fb.StrideBytes())
	}
	if len(fb.Buffer()) != 640*200 {
		t.Fatalf("buffer len = %d", len(fb.Buffer()))
	}
	if fb.Format() != PixelFormatRGB565 {
		t.Fatalf("format = %v", fb.Format())
	}
}

func TestFramebufferClearRGB(t *testing.T) {
	fb := newHostFramebuffer(4, 4)
	fb.ClearRGB(255, 0, 0)

	want := rgb565(255, 0, 0)
	buf := fb.Buffer()
	for i := 0; i+1 < len(buf); i += 2 {
		got := uint16(buf[i]) | uint16(buf[i+1])<<8
		if got != want {
			t.Fatalf("pixel %d = %04x, want %04x", i/2, got, want)
		}
	}
}

func TestRGB565RoundTrip(t *testing.T) {
	r, g, b := rgb888From565(rgb565(255, 255, 255))
	if r != 255 || g != 255 || b != 255 {
		t.Fatalf("white round trip = %d,%d,%d", r, g, b)
	}
	r, g, b = rgb888From565(rgb565(0, 0, 0))
	if r != 0 || g != 0 || b != 0 {
		t.Fatalf("black round trip = %d,%d,%d", r, g, b)
	}
}
