package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-direct-raytracer/pkg/core"
)

// DefaultFOVAngle is the vertical field of view in degrees
const DefaultFOVAngle = 90.0

const (
	minFOVAngle = 1.0
	maxFOVAngle = 179.0
	maxPitch    = math.Pi/2 - 0.01
)

// Camera is a pinhole camera looking along Forward from Origin
type Camera struct {
	Origin   core.Vec3
	Forward  core.Vec3
	FOVAngle float64 // Degrees

	pitch float64
	yaw   float64
}

// NewCamera creates a camera at origin looking down +Z
func NewCamera(origin core.Vec3, fovAngle float64) *Camera {
	return &Camera{
		Origin:   origin,
		Forward:  core.UnitZ,
		FOVAngle: fovAngle,
	}
}

// NewCameraLookAt creates a camera at origin facing target
func NewCameraLookAt(origin, target core.Vec3, fovAngle float64) *Camera {
	c := NewCamera(origin, fovAngle)
	forward := target.Subtract(origin).Normalize()
	c.pitch = math.Asin(min(max(forward.Y, -1), 1))
	c.yaw = math.Atan2(forward.X, forward.Z)
	c.updateForward()
	return c
}

// CameraToWorld builds the camera basis. Right is worldUp × forward, so +X
// in camera space is to the right of the view direction.
func (c *Camera) CameraToWorld() core.Matrix {
	forward := c.Forward.Normalize()
	right := core.UnitY.Cross(forward)
	if right.LengthSquared() < 1e-12 {
		// Looking straight up or down
		right = core.UnitZ.Cross(forward)
	}
	right = right.Normalize()
	up := forward.Cross(right).Normalize()
	return core.NewMatrix(right, up, forward, c.Origin)
}

// FOVScale returns tan(fov/2), the half extent of the image plane at unit
// distance
func (c *Camera) FOVScale() float64 {
	return math.Tan(c.FOVAngle * math.Pi / 180 / 2)
}

// Rotate adds pitch (positive looks up) and yaw (positive turns right) in
// radians. Pitch is kept short of straight up or down.
func (c *Camera) Rotate(pitch, yaw float64) {
	c.pitch = min(max(c.pitch+pitch, -maxPitch), maxPitch)
	c.yaw += yaw
	c.updateForward()
}

func (c *Camera) updateForward() {
	rotation := mgl64.QuatRotate(c.yaw, mgl64.Vec3{0, 1, 0}).
		Mul(mgl64.QuatRotate(-c.pitch, mgl64.Vec3{1, 0, 0}))
	f := rotation.Rotate(mgl64.Vec3{0, 0, 1})
	c.Forward = core.NewVec3(f[0], f[1], f[2]).Normalize()
}

// Move translates the camera by delta expressed in camera space
// (x right, y up, z forward)
func (c *Camera) Move(delta core.Vec3) {
	c.Origin = c.CameraToWorld().TransformPoint(delta)
}

// ChangeFOV adds delta degrees to the field of view, clamped to (0, 180)
func (c *Camera) ChangeFOV(delta float64) {
	c.FOVAngle = min(max(c.FOVAngle+delta, minFOVAngle), maxFOVAngle)
}
