package deskscene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// LookAtMatrix builds a view matrix that moves eye to the origin and points
// the +z axis at target.
func LookAtMatrix(eye, target, up Vector3) Matrix {
	z := target.Sub(eye).Normalized()
	x := up.Cross(z).Normalized()
	y := z.Cross(x)

	m := IdentMatrix()
	m[0][0], m[1][0], m[2][0] = x.X, x.Y, x.Z
	m[0][1], m[1][1], m[2][1] = y.X, y.Y, y.Z
	m[0][2], m[1][2], m[2][2] = z.X, z.Y, z.Z
	m[3][0] = -x.Dot(eye)
	m[3][1] = -y.Dot(eye)
	m[3][2] = -z.Dot(eye)
	return m
}

// Camera orbits a fixed target point. Yaw swings the eye around the target's
// vertical axis, keeping the target centered; pitch tilts the view about the
// camera's horizontal axis after the look-at, which moves the target up or
// down on screen.
type Camera struct {
	position Vector3
	target   Vector3
	yaw      float64
	pitch    float64
}

func NewCamera(position, target Vector3) *Camera {
	return &Camera{position: position, target: target}
}

// Orbit adds to the yaw and pitch angles, in radians. Pitch is clamped short
// of straight up and down.
func (c *Camera) Orbit(dYaw, dPitch float64) {
	c.yaw += dYaw
	c.pitch += dPitch
	const limit = math.Pi/2 - 0.05
	if c.pitch > limit {
		c.pitch = limit
	}
	if c.pitch < -limit {
		c.pitch = -limit
	}
}

// Eye is the current camera position after the yaw orbit.
func (c *Camera) Eye() Vector3 {
	off := c.position.Sub(c.target)
	cosY := math.Cos(c.yaw)
	sinY := math.Sin(c.yaw)
	rotated := Vec3(
		off.X*cosY+off.Z*sinY,
		off.Y,
		-off.X*sinY+off.Z*cosY,
	)
	return c.target.Add(rotated)
}

// ViewMatrix is the world-to-camera transform for the current orbit state.
func (c *Camera) ViewMatrix() Matrix {
	look := LookAtMatrix(c.Eye(), c.target, Vec3(0, 1, 0))
	if c.pitch == 0 {
		return look
	}
	tilt := FromMGL(mgl64.HomogRotate3DX(c.pitch))
	return tilt.MultiplyBy(look)
}
