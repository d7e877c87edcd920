package stonegl

import (
	"sort"

	"go.uber.org/zap"
)

// nearWEps is the clip-space w threshold below which a whole face is
// discarded. Faces are never clipped per-edge; a face touching the near
// plane disappears entirely. This is a deliberate simplification.
const nearWEps Scalar = 1e-4

// FrameStats summarizes one render pass.
type FrameStats struct {
	Faces      int // faces extracted from the scene
	Drawn      int // faces filled and stroked
	Degenerate int // skipped: <3 vertices or ~zero area
	Clipped    int // skipped: behind or straddling the near plane
}

// Renderer projects a scene through a camera and draws it back-to-front
// (painter's algorithm) on a Target.
//
// Create it once and reuse it across frames to avoid allocations. There is
// no back-face culling and no depth buffer; correctness relies on the depth
// sort and on the assembled geometry being largely convex modules.
type Renderer struct {
	Near Scalar
	Far  Scalar

	log   *zap.Logger
	stats FrameStats

	faces []projectedFace
}

type projectedFace struct {
	pts     []Point
	fill    Color
	outline Color
	depth   Scalar // view-space centroid z; more negative is farther
}

// NewRenderer creates a renderer. A nil logger disables diagnostics.
func NewRenderer(log *zap.Logger) *Renderer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Renderer{
		Near: 0.1,
		Far:  500,
		log:  log,
	}
}

// Stats returns the counters of the most recent render pass.
func (r *Renderer) Stats() FrameStats { return r.stats }

// Render draws one frame. The pass either completes fully or, when the
// target has zero area, is skipped entirely; per-face problems are recovered
// locally and never abort the frame.
func (r *Renderer) Render(t Target, s *Scene, cam *Camera) {
	if r == nil || t == nil || s == nil || cam == nil {
		return
	}
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return
	}

	view := cam.ViewMatrix()
	proj := Mat4Perspective(cam.FOVYRad, Scalar(w)/Scalar(h), r.Near, r.Far)
	vp := Mat4Mul(proj, view)

	faces := s.AllFaces()
	r.stats = FrameStats{Faces: len(faces)}
	r.faces = r.faces[:0]

	for i := range faces {
		f := &faces[i]
		if f.Degenerate() {
			r.stats.Degenerate++
			r.log.Debug("skipping degenerate face",
				zap.Int("vertices", len(f.Vertices)),
				zap.Float32("area", f.Area()))
			continue
		}
		pf, ok := r.project(f, view, vp, w, h)
		if !ok {
			r.stats.Clipped++
			continue
		}
		r.faces = append(r.faces, pf)
	}

	// Painter's algorithm: farthest first. View space looks down -z, so
	// more negative depth sorts earlier. The sort is stable: equal depths
	// keep their extraction order.
	sort.SliceStable(r.faces, func(i, j int) bool {
		return r.faces[i].depth < r.faces[j].depth
	})

	t.Clear(s.Background)
	for i := range r.faces {
		t.FillPolygon(r.faces[i].pts, r.faces[i].fill)
		t.StrokePolygon(r.faces[i].pts, r.faces[i].outline)
	}
	r.stats.Drawn = len(r.faces)
}

// project transforms one face to screen space. It reports false when any
// vertex lands on or behind the near plane (whole-face near clip).
func (r *Renderer) project(f *Face, view, vp Mat4, w, h int) (projectedFace, bool) {
	pts := make([]Point, len(f.Vertices))
	for i, v := range f.Vertices {
		clip := Mat4MulV4(vp, Vec4{X: v.X, Y: v.Y, Z: v.Z, W: 1})
		if clip.W <= nearWEps {
			return projectedFace{}, false
		}
		invW := 1 / clip.W
		ndcX := clip.X * invW
		ndcY := clip.Y * invW
		sx := (ndcX*0.5 + 0.5) * Scalar(w-1)
		sy := (1 - (ndcY*0.5 + 0.5)) * Scalar(h-1)
		pts[i] = Point{X: int(sx + 0.5), Y: int(sy + 0.5)}
	}

	// Depth key is the view-space (pre-projection) z of the centroid.
	depth := Mat4MulPoint(view, f.Centroid).Z
	return projectedFace{
		pts:     pts,
		fill:    f.Fill,
		outline: f.Outline,
		depth:   depth,
	}, true
}
