package stonegl

// Object owns a set of local-space faces plus a position, an Euler rotation
// and a scale. World-space faces are derived on demand by
// UpdateWorldTransform and cached until the next call.
type Object struct {
	Position Vec3
	Rotation Vec3 // Euler angles in radians, applied X then Y then Z.
	Scale    Vec3

	local []Face
	world []Face
}

// NewObject creates an object owning the given local faces, with identity
// rotation, zero position and unit scale.
func NewObject(faces []Face) *Object {
	return &Object{
		Scale: V3(1, 1, 1),
		local: faces,
	}
}

// LocalFaces returns the object's local-space faces.
func (o *Object) LocalFaces() []Face { return o.local }

// FaceCount returns the number of faces the object owns.
func (o *Object) FaceCount() int { return len(o.local) }

// transform returns the composed Scale→Rotate→Translate matrix.
func (o *Object) transform() Mat4 {
	rot := Mat4Mul(Mat4RotateZ(o.Rotation.Z), Mat4Mul(Mat4RotateY(o.Rotation.Y), Mat4RotateX(o.Rotation.X)))
	return Mat4Mul(Mat4Translate(o.Position), Mat4Mul(rot, Mat4Scale(o.Scale)))
}

// UpdateWorldTransform recomputes the cached world-space faces by applying
// the object's Scale→Rotate→Translate transform to every local vertex.
//
// The recompute is unconditional: the result is a pure function of the local
// faces and the current transform fields, so calling it twice with unchanged
// inputs yields identical world faces. Colors are reused; only coordinates
// and centroids change.
func (o *Object) UpdateWorldTransform() {
	m := o.transform()

	if len(o.world) != len(o.local) {
		o.world = make([]Face, len(o.local))
	}
	for i := range o.local {
		src := &o.local[i]
		dst := &o.world[i]
		if len(dst.Vertices) != len(src.Vertices) {
			dst.Vertices = make([]Vec3, len(src.Vertices))
		}
		for j, v := range src.Vertices {
			dst.Vertices[j] = Mat4MulPoint(m, v)
		}
		dst.Fill = src.Fill
		dst.Outline = src.Outline
		dst.RecalculateCentroid()
	}
}

// WorldFaces returns the cached world-space faces. UpdateWorldTransform must
// have been called since the last transform change; Scene.AllFaces does this
// for every object it owns.
func (o *Object) WorldFaces() []Face { return o.world }
