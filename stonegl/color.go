package stonegl

// Color is an RGBA color in 8-bit channels.
//
// stonegl never interprets color values; they are supplied by the host's
// color resolver and passed through to the draw target.
type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color     { return Color{R: r, G: g, B: b, A: 0xFF} }
func RGBA(r, g, b, a uint8) Color { return Color{R: r, G: g, B: b, A: a} }

func (c Color) WithAlpha(a uint8) Color { c.A = a; return c }
