package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	ordered
	Point    core.Vec3          // A point on the plane
	Normal   core.Vec3          // Unit normal
	Material *material.Material // Material of the plane
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, mat *material.Material) *Plane {
	return &Plane{
		Point:    point,
		Normal:   normal.Normalize(),
		Material: mat,
	}
}

// HasInterior is false: a plane is an open surface, so transmissive planes
// tint shadows but never refract
func (p *Plane) HasInterior() bool {
	return false
}

// Hit tests if a ray intersects with the plane. The reported normal faces
// the incoming ray so the plane shades from both sides.
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Parallel to the plane
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t <= tMin || t > tMax {
		return nil, false
	}

	normal := p.Normal
	if denominator > 0 {
		normal = normal.Negate()
	}

	return &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Normal:   normal,
		Material: p.Material,
		Object:   p,
	}, true
}
