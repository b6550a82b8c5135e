package renderer

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-pathtracer/pkg/core"
)

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	Center      core.Vec3 // Camera position
	LookAt      core.Vec3 // Point the camera is looking at
	Up          core.Vec3 // Up direction (usually (0,1,0))
	AspectRatio float64   // Width / height
	VFov        float64   // Vertical field of view in degrees
}

// DefaultCameraConfig matches a pinhole at the origin looking down -Z
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		AspectRatio: 2.0,
		VFov:        90.0,
	}
}

// Camera generates rays for rendering
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	forward         core.Vec3
}

func toMgl(v core.Vec3) mgl64.Vec3   { return mgl64.Vec3{v.X, v.Y, v.Z} }
func fromMgl(v mgl64.Vec3) core.Vec3 { return core.NewVec3(v[0], v[1], v[2]) }

// NewCamera creates a pinhole camera from the config
func NewCamera(config CameraConfig) *Camera {
	theta := mgl64.DegToRad(config.VFov)
	halfHeight := math.Tan(theta / 2)
	halfWidth := config.AspectRatio * halfHeight

	from := toMgl(config.Center)
	// Orthonormal basis: w points backwards, u right, v up
	w := from.Sub(toMgl(config.LookAt)).Normalize()
	u := toMgl(config.Up).Cross(w).Normalize()
	v := w.Cross(u)

	lowerLeft := from.Sub(u.Mul(halfWidth)).Sub(v.Mul(halfHeight)).Sub(w)

	return &Camera{
		origin:          config.Center,
		lowerLeftCorner: fromMgl(lowerLeft),
		horizontal:      fromMgl(u.Mul(2 * halfWidth)),
		vertical:        fromMgl(v.Mul(2 * halfHeight)),
		forward:         fromMgl(w.Mul(-1)),
	}
}

// GetRay generates a ray for screen coordinates (u, v) where 0 <= u,v < 1
func (c *Camera) GetRay(u, v float64) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(u)).
		Add(c.vertical.Multiply(v)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction)
}

// GetCameraForward returns the unit viewing direction
func (c *Camera) GetCameraForward() core.Vec3 {
	return c.forward
}
