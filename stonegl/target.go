package stonegl

// Point is a screen-space vertex in pixel coordinates.
type Point struct {
	X, Y int
}

// Target is the drawing surface the renderer issues its draw calls on.
//
// Implementations must clip out-of-bounds coordinates and are expected to be
// cheap enough to be recreated per frame as a view over a host framebuffer.
type Target interface {
	Size() (w, h int)
	Clear(c Color)
	FillPolygon(pts []Point, c Color)
	StrokePolygon(pts []Point, c Color)
}
