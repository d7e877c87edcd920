package masonry

import (
	"fmt"

	"sevenstone/stonegl"
)

// Phi is the golden ratio; it governs the carved-frustum proportions.
const Phi stonegl.Scalar = 1.618034

// FaceKind identifies a face of a module for color resolution.
type FaceKind uint8

const (
	FaceOuter FaceKind = iota
	FaceTop
	FaceBottom
	FaceLeft
	FaceRight
	FaceCarve // the four tapered sides of the inward frustum
	FaceCap   // the inward-facing frustum cap
	FaceInner // the inner face of a corner joint
)

func (k FaceKind) String() string {
	switch k {
	case FaceOuter:
		return "outer"
	case FaceTop:
		return "top"
	case FaceBottom:
		return "bottom"
	case FaceLeft:
		return "left"
	case FaceRight:
		return "right"
	case FaceCarve:
		return "carve"
	case FaceCap:
		return "cap"
	case FaceInner:
		return "inner"
	}
	return "unknown"
}

// ColorResolver maps a module cell and face kind to a fill/outline pair.
// Corner joints resolve with Col == -1. masonry never interprets the
// returned values.
type ColorResolver interface {
	Resolve(wall, row, col int, face FaceKind) (fill, outline stonegl.Color)
}

// ResolverFunc adapts a function to the ColorResolver interface.
type ResolverFunc func(wall, row, col int, face FaceKind) (fill, outline stonegl.Color)

func (f ResolverFunc) Resolve(wall, row, col int, face FaceKind) (fill, outline stonegl.Color) {
	return f(wall, row, col, face)
}

// defaultColors is used when a builder has no resolver wired: plain stone
// gray with a black outline.
var defaultColors ColorResolver = ResolverFunc(func(_, _, _ int, _ FaceKind) (stonegl.Color, stonegl.Color) {
	return stonegl.RGB(0xB0, 0xA8, 0x98), stonegl.RGB(0x20, 0x20, 0x20)
})

// Site places one module: world position, outward-facing yaw, and the cell
// used for color resolution.
type Site struct {
	Position  stonegl.Vec3
	RotationY stonegl.Scalar

	Wall, Row, Col int
}

// ModuleBuilder is the capability shared by all module builders. The
// assembly orchestrator dispatches through it without knowing concrete
// builder types.
type ModuleBuilder interface {
	Build(site Site) (*stonegl.Object, error)
}

// GeometryError reports an invalid construction parameter. Builders fail
// fast: no object is returned and no partial assembly is produced.
type GeometryError struct {
	Param string
	Value float64
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("masonry: %s must be positive, got %g", e.Param, e.Value)
}

func checkPositive(param string, v stonegl.Scalar) error {
	if v <= 0 {
		return &GeometryError{Param: param, Value: float64(v)}
	}
	return nil
}

func checkPositiveCount(param string, v int) error {
	if v <= 0 {
		return &GeometryError{Param: param, Value: float64(v)}
	}
	return nil
}
