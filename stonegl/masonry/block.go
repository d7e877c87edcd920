package masonry

import "sevenstone/stonegl"

// BlockBuilder constructs the repeated wall module: an outward rectangular
// prism carrying an inward-facing frustum whose cap edges are the prism
// edges divided by the golden ratio. The carve depth is Depth/Phi.
//
// Local frame: the block is centered in x/y, +Z is the wall's outward
// normal, z=0 is the wall plane. The prism spans z ∈ [0, Depth]; the
// frustum protrudes into the enclosure, z ∈ [-Depth/Phi, 0].
type BlockBuilder struct {
	Width  stonegl.Scalar
	Height stonegl.Scalar
	Depth  stonegl.Scalar

	Colors ColorResolver
}

// Build constructs one block at the given site. All dimensions must be
// strictly positive.
func (b *BlockBuilder) Build(site Site) (*stonegl.Object, error) {
	if err := checkPositive("block width", b.Width); err != nil {
		return nil, err
	}
	if err := checkPositive("block height", b.Height); err != nil {
		return nil, err
	}
	if err := checkPositive("block depth", b.Depth); err != nil {
		return nil, err
	}

	w2 := b.Width / 2
	h2 := b.Height / 2
	d := b.Depth
	cw2 := w2 / Phi
	ch2 := h2 / Phi
	carve := b.Depth / Phi

	// Prism rings: inner at the wall plane, outer at +Depth.
	ia := stonegl.V3(-w2, -h2, 0)
	ib := stonegl.V3(w2, -h2, 0)
	ic := stonegl.V3(w2, h2, 0)
	id := stonegl.V3(-w2, h2, 0)
	oa := stonegl.V3(-w2, -h2, d)
	ob := stonegl.V3(w2, -h2, d)
	oc := stonegl.V3(w2, h2, d)
	od := stonegl.V3(-w2, h2, d)

	// Frustum cap ring, shrunk by the golden ratio.
	ca := stonegl.V3(-cw2, -ch2, -carve)
	cb := stonegl.V3(cw2, -ch2, -carve)
	cc := stonegl.V3(cw2, ch2, -carve)
	cd := stonegl.V3(-cw2, ch2, -carve)

	colors := b.Colors
	if colors == nil {
		colors = defaultColors
	}
	face := func(kind FaceKind, verts ...stonegl.Vec3) stonegl.Face {
		fill, outline := colors.Resolve(site.Wall, site.Row, site.Col, kind)
		return stonegl.NewFace(verts, fill, outline)
	}

	// The prism's inner face is omitted: the frustum attaches there.
	faces := []stonegl.Face{
		face(FaceOuter, oa, ob, oc, od),
		face(FaceTop, id, ic, oc, od),
		face(FaceBottom, ia, ib, ob, oa),
		face(FaceLeft, ia, oa, od, id),
		face(FaceRight, ib, ob, oc, ic),
		face(FaceCarve, ia, ib, cb, ca),
		face(FaceCarve, ib, ic, cc, cb),
		face(FaceCarve, ic, id, cd, cc),
		face(FaceCarve, id, ia, ca, cd),
		face(FaceCap, ca, cb, cc, cd),
	}

	obj := stonegl.NewObject(faces)
	obj.Position = site.Position
	obj.Rotation.Y = site.RotationY
	return obj, nil
}
