package stonegl

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordTarget captures draw calls instead of rasterizing.
type recordTarget struct {
	w, h    int
	cleared []Color
	fills   []Color
	strokes []Color
}

func (t *recordTarget) Size() (int, int) { return t.w, t.h }
func (t *recordTarget) Clear(c Color)    { t.cleared = append(t.cleared, c) }
func (t *recordTarget) FillPolygon(_ []Point, c Color) {
	t.fills = append(t.fills, c)
}
func (t *recordTarget) StrokePolygon(_ []Point, c Color) {
	t.strokes = append(t.strokes, c)
}

// frontCamera returns a camera at (0,0,10) looking down -z at the origin.
func frontCamera() *Camera {
	c := NewCamera()
	c.Target = Vec3{}
	c.Radius = 10
	c.Theta = 0
	c.Phi = math.Pi / 2
	return c
}

func quadAt(z Scalar, fill Color) []Face {
	return []Face{NewFace([]Vec3{
		V3(-1, -1, z), V3(1, -1, z), V3(1, 1, z), V3(-1, 1, z),
	}, fill, RGB(0, 0, 0))}
}

func TestRenderPaintsFarthestFirst(t *testing.T) {
	// Face depths 10.0 and 5.0 from the camera: the depth-10 face must be
	// filled first, then the depth-5 face over it.
	far := RGB(200, 0, 0)
	near := RGB(0, 200, 0)

	s := NewScene(RGB(9, 9, 9))
	s.AddObject(NewObject(quadAt(5, near))) // inserted nearer-first on purpose
	s.AddObject(NewObject(quadAt(0, far)))  // view depth 10

	target := &recordTarget{w: 100, h: 100}
	r := NewRenderer(nil)
	r.Render(target, s, frontCamera())

	require.Equal(t, []Color{RGB(9, 9, 9)}, target.cleared)
	require.Equal(t, []Color{far, near}, target.fills)
	assert.Equal(t, 2, r.Stats().Drawn)
}

func TestRenderStableForEqualDepths(t *testing.T) {
	first := RGB(1, 0, 0)
	second := RGB(2, 0, 0)

	s := NewScene(Color{})
	s.AddObject(NewObject(quadAt(3, first)))
	s.AddObject(NewObject(quadAt(3, second)))

	target := &recordTarget{w: 64, h: 64}
	NewRenderer(nil).Render(target, s, frontCamera())

	assert.Equal(t, []Color{first, second}, target.fills)
}

func TestRenderSkipsDegenerateFaces(t *testing.T) {
	s := NewScene(Color{})
	// Collinear vertices: zero area.
	s.AddObject(NewObject([]Face{NewFace([]Vec3{
		V3(0, 0, 0), V3(1, 1, 0), V3(2, 2, 0),
	}, RGB(50, 50, 50), Color{})}))
	// Too few vertices.
	s.AddObject(NewObject([]Face{NewFace([]Vec3{
		V3(0, 0, 0), V3(1, 0, 0),
	}, RGB(60, 60, 60), Color{})}))
	s.AddObject(NewObject(quadAt(0, RGB(70, 70, 70))))

	target := &recordTarget{w: 64, h: 64}
	r := NewRenderer(nil)
	require.NotPanics(t, func() {
		r.Render(target, s, frontCamera())
	})

	assert.Equal(t, []Color{RGB(70, 70, 70)}, target.fills)
	assert.Equal(t, 2, r.Stats().Degenerate)
	assert.Equal(t, 1, r.Stats().Drawn)
}

func TestRenderDiscardsFacesBehindNearPlane(t *testing.T) {
	s := NewScene(Color{})
	s.AddObject(NewObject(quadAt(20, RGB(80, 80, 80)))) // behind the camera at z=10

	target := &recordTarget{w: 64, h: 64}
	r := NewRenderer(nil)
	r.Render(target, s, frontCamera())

	assert.Empty(t, target.fills)
	assert.Equal(t, 1, r.Stats().Clipped)
}

func TestRenderSkipsZeroAreaViewport(t *testing.T) {
	s := NewScene(RGB(1, 2, 3))
	s.AddObject(NewObject(quadAt(0, RGB(10, 10, 10))))

	target := &recordTarget{w: 0, h: 0}
	NewRenderer(nil).Render(target, s, frontCamera())

	// The frame is skipped entirely: no clear, no draw calls.
	assert.Empty(t, target.cleared)
	assert.Empty(t, target.fills)
	assert.Empty(t, target.strokes)
}

func TestRenderStrokesEveryFilledFace(t *testing.T) {
	s := NewScene(Color{})
	s.AddObject(NewObject(quadAt(0, RGB(5, 5, 5))))
	s.AddObject(NewObject(quadAt(2, RGB(6, 6, 6))))

	target := &recordTarget{w: 64, h: 64}
	NewRenderer(nil).Render(target, s, frontCamera())

	assert.Len(t, target.strokes, len(target.fills))
}
