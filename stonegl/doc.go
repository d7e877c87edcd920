// Package stonegl provides a minimal, predictable software 3D core for the
// sevenstone viewer.
//
// It is intended for visualization of the assembled enclosure: face-based
// objects, a small scene container, an orbit camera, and a painter's-algorithm
// renderer (back-to-front fill of depth-sorted faces, no depth buffer and no
// back-face culling).
//
// Pipeline (fixed):
//
//	Scene → Local-to-world → View → Projection → Whole-face near clip →
//	Depth sort → Fill/stroke draw calls on a Target.
//
// The renderer is software-only and draws through a caller-provided Target.
// Sorting artifacts for overlapping non-convex geometry are an accepted
// limitation of the algorithm, not a defect.
package stonegl
