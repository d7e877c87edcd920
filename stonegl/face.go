package stonegl

// degenerateAreaEps is the polygon area below which a face is considered
// degenerate and skipped by the renderer.
const degenerateAreaEps Scalar = 1e-6

// Face is an ordered polygon in 3D space with a fill and an outline color.
//
// A valid face has at least 3 vertices. The centroid is cached and must be
// recomputed whenever the vertex slice is replaced or mutated.
type Face struct {
	Vertices []Vec3
	Fill     Color
	Outline  Color
	Centroid Vec3
}

// NewFace builds a face and computes its centroid.
func NewFace(vertices []Vec3, fill, outline Color) Face {
	f := Face{Vertices: vertices, Fill: fill, Outline: outline}
	f.RecalculateCentroid()
	return f
}

// RecalculateCentroid recomputes the centroid as the arithmetic mean of the
// current vertices.
func (f *Face) RecalculateCentroid() {
	if len(f.Vertices) == 0 {
		f.Centroid = Vec3{}
		return
	}
	var sum Vec3
	for _, v := range f.Vertices {
		sum = sum.Add(v)
	}
	f.Centroid = sum.Mul(1 / Scalar(len(f.Vertices)))
}

// Area returns the polygon area computed from the Newell normal. For planar
// polygons this is the exact area; for slightly non-planar ones it is a
// usable approximation.
func (f *Face) Area() Scalar {
	if len(f.Vertices) < 3 {
		return 0
	}
	var n Vec3
	for i, a := range f.Vertices {
		b := f.Vertices[(i+1)%len(f.Vertices)]
		n.X += (a.Y - b.Y) * (a.Z + b.Z)
		n.Y += (a.Z - b.Z) * (a.X + b.X)
		n.Z += (a.X - b.X) * (a.Y + b.Y)
	}
	return Len(n) / 2
}

// Degenerate reports whether the face must not reach the draw step:
// fewer than 3 vertices, or effectively zero area (e.g. collinear vertices).
func (f *Face) Degenerate() bool {
	if len(f.Vertices) < 3 {
		return true
	}
	return f.Area() < degenerateAreaEps
}
