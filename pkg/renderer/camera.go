package renderer

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// CameraConfig describes a pinhole camera
type CameraConfig struct {
	Center      core.Vec3 `json:"center"`      // Eye position
	LookAt      core.Vec3 `json:"lookAt"`      // Point the camera looks at
	Up          core.Vec3 `json:"up"`          // Up direction
	AspectRatio float64   `json:"aspectRatio"` // Width / height
	VFov        float64   `json:"vfov"`        // Vertical field of view in degrees
}

// DefaultCameraConfig looks down -Z from z=5
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Center:      core.NewVec3(0, 0, 5),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		AspectRatio: 1.0,
		VFov:        45.0,
	}
}

// Camera generates rays for rendering
type Camera struct {
	config          CameraConfig
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
}

// NewCamera creates a camera from the given configuration
func NewCamera(config CameraConfig) *Camera {
	if config.AspectRatio <= 0 {
		config.AspectRatio = 1.0
	}
	viewportHeight := 2.0 * math.Tan(config.VFov*math.Pi/360.0)
	viewportWidth := config.AspectRatio * viewportHeight

	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	horizontal := u.Multiply(viewportWidth)
	vertical := v.Multiply(viewportHeight)
	lowerLeftCorner := config.Center.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w)

	return &Camera{
		config:          config,
		origin:          config.Center,
		horizontal:      horizontal,
		vertical:        vertical,
		lowerLeftCorner: lowerLeftCorner,
	}
}

// AspectRatio returns width / height of the image plane
func (c *Camera) AspectRatio() float64 {
	return c.config.AspectRatio
}

// RayThrough generates a ray through image coordinates (x, y) where
// 0 <= x,y <= 1 and (0,0) is the lower left corner
func (c *Camera) RayThrough(x, y float64) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(x)).
		Add(c.vertical.Multiply(y)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction)
}
