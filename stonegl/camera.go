package stonegl

import "github.com/chewxy/math32"

// PhiEpsilon keeps the polar angle strictly inside (0, π) so the view
// direction can never coincide with the world-up axis.
const PhiEpsilon Scalar = 0.01

// worldUp is the fixed up reference for the view matrix.
var worldUp = V3(0, 1, 0)

// Camera is a spherical orbit camera: a radius and two angles around a
// look-at target. Position is always derived, never stored.
//
// All operations are plain transformations of (Radius, Theta, Phi, Target);
// out-of-range input is silently clamped, since it arises from continuous
// user interaction and is not an error.
type Camera struct {
	Radius Scalar
	Theta  Scalar // azimuth around world up, radians
	Phi    Scalar // polar angle from world up, clamped to [PhiEpsilon, π-PhiEpsilon]
	Target Vec3

	FOVYRad   Scalar
	MinRadius Scalar
}

// NewCamera returns a camera with viewer-friendly defaults.
func NewCamera() *Camera {
	return &Camera{
		Radius:    30,
		Theta:     0,
		Phi:       1.2,
		Target:    Vec3{},
		FOVYRad:   1.0,
		MinRadius: 1.0,
	}
}

// Orbit adds the deltas to the spherical angles, keeping Phi strictly away
// from the poles.
func (c *Camera) Orbit(deltaPhi, deltaTheta Scalar) {
	c.Theta += deltaTheta
	c.Phi = Clamp(c.Phi+deltaPhi, PhiEpsilon, math32.Pi-PhiEpsilon)
}

// Zoom adds delta to the radius, clamped below at MinRadius so the camera
// never passes through its target.
func (c *Camera) Zoom(delta Scalar) {
	floor := c.MinRadius
	if floor <= 0 {
		floor = PhiEpsilon
	}
	c.Radius += delta
	if c.Radius < floor {
		c.Radius = floor
	}
}

// Pan moves the target along the camera's local right/up axes. The offset is
// scaled by the current radius so pan speed feels the same at any distance.
func (c *Camera) Pan(dx, dy Scalar) {
	forward := Normalize(c.Target.Sub(c.Position()))
	right := Normalize(Cross(forward, worldUp))
	if right == (Vec3{}) {
		right = V3(1, 0, 0)
	}
	up := Cross(right, forward)

	scale := c.Radius * 0.002
	c.Target = c.Target.Add(right.Mul(-dx * scale)).Add(up.Mul(dy * scale))
}

// direction returns the unit vector from the target towards the camera.
func (c *Camera) direction() Vec3 {
	sinPhi := math32.Sin(c.Phi)
	return V3(
		sinPhi*math32.Sin(c.Theta),
		math32.Cos(c.Phi),
		sinPhi*math32.Cos(c.Theta),
	)
}

// Position computes the camera position from the orbit parameters on every
// access; it is never stored, so it cannot go stale.
func (c *Camera) Position() Vec3 {
	return c.Target.Add(c.direction().Mul(c.Radius))
}

// ViewMatrix builds the look-at matrix for the current orbit state. If the
// view direction is numerically parallel to world up, a substitute up axis
// is used to keep the matrix finite.
func (c *Camera) ViewMatrix() Mat4 {
	eye := c.Position()
	up := worldUp
	dir := Normalize(c.Target.Sub(eye))
	if math32.Abs(Dot(dir, up)) > 0.9999 {
		up = V3(0, 0, 1)
	}
	return Mat4LookAt(eye, c.Target, up)
}
