package stonegl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSceneAddAndClear(t *testing.T) {
	s := NewScene(RGB(0, 0, 0))
	o := NewObject(triFaces())
	s.AddObject(o)
	s.AddObject(o) // no dedup: the same object may appear twice
	s.AddObject(nil)
	assert.Equal(t, 2, s.ObjectCount())

	s.Clear()
	assert.Equal(t, 0, s.ObjectCount())
	assert.Empty(t, s.AllFaces())
}

func TestSceneAllFacesFlattensInOrder(t *testing.T) {
	s := NewScene(Color{})

	a := NewObject([]Face{NewFace([]Vec3{V3(0, 0, 0), V3(1, 0, 0), V3(0, 1, 0)}, RGB(1, 0, 0), Color{})})
	b := NewObject([]Face{NewFace([]Vec3{V3(0, 0, 0), V3(1, 0, 0), V3(0, 1, 0)}, RGB(2, 0, 0), Color{})})
	b.Position = V3(0, 0, -4)
	s.AddObjects(a, b)

	faces := s.AllFaces()
	require.Len(t, faces, 2)
	assert.Equal(t, RGB(1, 0, 0), faces[0].Fill)
	assert.Equal(t, RGB(2, 0, 0), faces[1].Fill)

	// AllFaces performed the local→world pass: b's faces are translated.
	assert.InDelta(t, -4, float64(faces[1].Vertices[0].Z), 1e-5)
}
