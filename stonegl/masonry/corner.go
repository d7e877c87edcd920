package masonry

import (
	"github.com/chewxy/math32"

	"sevenstone/stonegl"
)

// cornerTaper is the half-angle each side face of a corner joint tilts
// inward: the angular deficit left between two adjacent walls of the 7-wall
// arrangement (interior angle 128.571°) split over the joint's two sides.
var cornerTaper = math32.Tan(math32.Pi / 7)

// CornerBuilder constructs the wedge module bridging two adjacent walls: a
// trapezoidal prism, wider on the outside, whose side faces taper by π/7 on
// each side so the joint meets the neighboring wall blocks with zero gap and
// zero overlap.
//
// Local frame: centered in x/y, +Z along the vertex bisector pointing
// outward, z=0 at the inner surface. Width is the outer face width; the
// inner width is derived from the taper and must remain positive.
type CornerBuilder struct {
	Width  stonegl.Scalar
	Height stonegl.Scalar
	Depth  stonegl.Scalar

	Colors ColorResolver
}

// Build constructs one corner joint at the given site.
func (b *CornerBuilder) Build(site Site) (*stonegl.Object, error) {
	if err := checkPositive("corner width", b.Width); err != nil {
		return nil, err
	}
	if err := checkPositive("corner height", b.Height); err != nil {
		return nil, err
	}
	if err := checkPositive("corner depth", b.Depth); err != nil {
		return nil, err
	}
	innerW := b.Width - 2*b.Depth*cornerTaper
	if err := checkPositive("corner inner width", innerW); err != nil {
		return nil, err
	}

	ow2 := b.Width / 2
	iw2 := innerW / 2
	h2 := b.Height / 2
	d := b.Depth

	// Inner (narrow) ring at the wall plane, outer (wide) ring at +Depth.
	ia := stonegl.V3(-iw2, -h2, 0)
	ib := stonegl.V3(iw2, -h2, 0)
	ic := stonegl.V3(iw2, h2, 0)
	id := stonegl.V3(-iw2, h2, 0)
	oa := stonegl.V3(-ow2, -h2, d)
	ob := stonegl.V3(ow2, -h2, d)
	oc := stonegl.V3(ow2, h2, d)
	od := stonegl.V3(-ow2, h2, d)

	colors := b.Colors
	if colors == nil {
		colors = defaultColors
	}
	face := func(kind FaceKind, verts ...stonegl.Vec3) stonegl.Face {
		fill, outline := colors.Resolve(site.Wall, site.Row, site.Col, kind)
		return stonegl.NewFace(verts, fill, outline)
	}

	faces := []stonegl.Face{
		face(FaceOuter, oa, ob, oc, od),
		face(FaceInner, ia, ib, ic, id),
		face(FaceTop, id, ic, oc, od),
		face(FaceBottom, ia, ib, ob, oa),
		face(FaceLeft, ia, oa, od, id),
		face(FaceRight, ib, ob, oc, ic),
	}

	obj := stonegl.NewObject(faces)
	obj.Position = site.Position
	obj.Rotation.Y = site.RotationY
	return obj, nil
}
