package stonegl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func triFaces() []Face {
	return []Face{
		NewFace([]Vec3{V3(0, 0, 0), V3(1, 0, 0), V3(0, 1, 0)}, RGB(10, 20, 30), RGB(1, 1, 1)),
		NewFace([]Vec3{V3(0, 0, 1), V3(1, 0, 1), V3(0, 1, 1)}, RGB(40, 50, 60), RGB(2, 2, 2)),
	}
}

func TestObjectDefaults(t *testing.T) {
	o := NewObject(triFaces())
	assert.Equal(t, V3(1, 1, 1), o.Scale)
	assert.Equal(t, Vec3{}, o.Position)
	assert.Equal(t, 2, o.FaceCount())
}

func TestUpdateWorldTransformScaleRotateTranslate(t *testing.T) {
	o := NewObject([]Face{
		NewFace([]Vec3{V3(1, 0, 0), V3(0, 1, 0), V3(0, 0, 1)}, Color{}, Color{}),
	})
	o.Scale = V3(2, 2, 2)
	o.Rotation.Y = 3.14159265 / 2 // quarter turn
	o.Position = V3(10, 0, 0)
	o.UpdateWorldTransform()

	// (1,0,0) scaled to (2,0,0), rotated about Y to (0,0,-2), then
	// translated to (10,0,-2).
	got := o.WorldFaces()[0].Vertices[0]
	assert.InDelta(t, 10, float64(got.X), 1e-4)
	assert.InDelta(t, 0, float64(got.Y), 1e-4)
	assert.InDelta(t, -2, float64(got.Z), 1e-4)
}

func TestUpdateWorldTransformKeepsColorsAndCentroid(t *testing.T) {
	o := NewObject(triFaces())
	o.Position = V3(5, 5, 5)
	o.UpdateWorldTransform()

	w := o.WorldFaces()
	require.Len(t, w, 2)
	assert.Equal(t, RGB(10, 20, 30), w[0].Fill)
	assert.Equal(t, RGB(2, 2, 2), w[1].Outline)

	// Centroid must be recomputed for world coordinates.
	local := o.LocalFaces()[0].Centroid
	assert.Equal(t, local.Add(V3(5, 5, 5)), w[0].Centroid)
}

func TestUpdateWorldTransformIdempotent(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		o := NewObject(triFaces())
		o.Position = V3(
			rapid.Float32Range(-100, 100).Draw(rt, "px"),
			rapid.Float32Range(-100, 100).Draw(rt, "py"),
			rapid.Float32Range(-100, 100).Draw(rt, "pz"),
		)
		o.Rotation = V3(
			rapid.Float32Range(-6.3, 6.3).Draw(rt, "rx"),
			rapid.Float32Range(-6.3, 6.3).Draw(rt, "ry"),
			rapid.Float32Range(-6.3, 6.3).Draw(rt, "rz"),
		)
		o.Scale = V3(
			rapid.Float32Range(0.1, 10).Draw(rt, "sx"),
			rapid.Float32Range(0.1, 10).Draw(rt, "sy"),
			rapid.Float32Range(0.1, 10).Draw(rt, "sz"),
		)

		o.UpdateWorldTransform()
		first := make([]Vec3, 0)
		for _, f := range o.WorldFaces() {
			first = append(first, f.Vertices...)
		}

		o.UpdateWorldTransform()
		second := make([]Vec3, 0)
		for _, f := range o.WorldFaces() {
			second = append(second, f.Vertices...)
		}

		require.Equal(t, first, second)
	})
}
