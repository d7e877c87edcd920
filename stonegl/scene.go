package stonegl

// Scene owns an ordered collection of objects and a background color.
//
// Insertion order is irrelevant for rendering correctness; the renderer
// depth-sorts faces downstream. The scene is single-writer: it is mutated
// only by the thread that renders it and needs no internal locking.
type Scene struct {
	Background Color

	objects []*Object
}

// NewScene creates an empty scene with the given background color.
func NewScene(background Color) *Scene {
	return &Scene{Background: background}
}

// AddObject appends an object to the scene. No deduplication is performed.
func (s *Scene) AddObject(o *Object) {
	if o == nil {
		return
	}
	s.objects = append(s.objects, o)
}

// AddObjects appends a batch of objects in order.
func (s *Scene) AddObjects(objs ...*Object) {
	for _, o := range objs {
		s.AddObject(o)
	}
}

// Clear removes all objects from the scene.
func (s *Scene) Clear() {
	s.objects = nil
}

// ObjectCount returns the number of owned objects.
func (s *Scene) ObjectCount() int { return len(s.objects) }

// Objects returns the owned objects in insertion order.
func (s *Scene) Objects() []*Object { return s.objects }

// AllFaces refreshes every object's world transform and returns all
// world-space faces flattened into a single ordered list. This is the sole
// extraction point the renderer uses each frame; the entire local→world
// transform pass happens here.
func (s *Scene) AllFaces() []Face {
	n := 0
	for _, o := range s.objects {
		n += o.FaceCount()
	}
	faces := make([]Face, 0, n)
	for _, o := range s.objects {
		o.UpdateWorldTransform()
		faces = append(faces, o.WorldFaces()...)
	}
	return faces
}
