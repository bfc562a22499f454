package geometry

import (
	"math/rand"

	"github.com/chewxy/math32"
	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	Center        core.Point3 // Camera position (look from)
	LookAt        core.Point3 // Point the camera is looking at
	Up            core.Vec3   // Up direction (usually 0,1,0)
	AspectRatio   float32     // Width / height
	VFov          float32     // Vertical field of view in degrees
	Aperture      float32     // Lens diameter; 0 is a pinhole camera
	FocusDistance float32     // Distance to the focal plane (0 = auto-calculate from LookAt)
}

// MergeCameraConfig returns base with every non-zero field of override applied
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.Center != (core.Point3{}) {
		result.Center = override.Center
	}
	if override.LookAt != (core.Point3{}) {
		result.LookAt = override.LookAt
	}
	if override.Up != (core.Vec3{}) {
		result.Up = override.Up
	}
	if override.AspectRatio != 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.VFov != 0 {
		result.VFov = override.VFov
	}
	if override.Aperture != 0 {
		result.Aperture = override.Aperture
	}
	if override.FocusDistance != 0 {
		result.FocusDistance = override.FocusDistance
	}
	return result
}

// Camera generates rays for rendering. It is immutable after construction
// and safe to share between goroutines.
type Camera struct {
	origin          core.Point3
	lowerLeftCorner core.Point3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
	lensRadius      float32
}

// NewCamera creates a positionable camera with depth of field
func NewCamera(config CameraConfig) *Camera {
	theta := config.VFov * math32.Pi / 180
	viewportHeight := 2 * math32.Tan(theta/2)
	viewportWidth := config.AspectRatio * viewportHeight

	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		focusDistance = config.Center.DistanceTo(config.LookAt)
	}

	// Orthonormal basis; the camera looks down -w
	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	origin := config.Center
	horizontal := u.Multiply(focusDistance * viewportWidth)
	vertical := v.Multiply(focusDistance * viewportHeight)
	lowerLeftCorner := origin.
		SubtractVec(horizontal.Multiply(0.5)).
		SubtractVec(vertical.Multiply(0.5)).
		SubtractVec(w.Multiply(focusDistance))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2,
	}
}

// GetRay generates a ray for image-plane coordinates (s, t), where (0, 0) is
// the lower-left corner and (1, 1) the upper-right. The ray origin is jittered
// over the lens disk to produce defocus blur.
func (c *Camera) GetRay(s, t float32, random *rand.Rand) core.Ray {
	x, y := core.UniformInUnitDisk(random)
	offset := c.u.Multiply(x * c.lensRadius).Add(c.v.Multiply(y * c.lensRadius))

	target := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t))
	origin := c.origin.Add(offset)

	return core.NewRay(origin, target.Subtract(origin).Normalize())
}

// Origin returns the center of the lens
func (c *Camera) Origin() core.Point3 {
	return c.origin
}

// Forward returns the unit viewing direction
func (c *Camera) Forward() core.Vec3 {
	return c.w.Negate()
}

// LensRadius returns the radius of the lens disk
func (c *Camera) LensRadius() float32 {
	return c.lensRadius
}
