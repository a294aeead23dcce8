package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	ordered
	Center   core.Vec3
	Radius   float64
	Material *material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat *material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// HasInterior is true: a sphere bounds a solid volume
func (s *Sphere) HasInterior() bool {
	return true
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	// Vector from ray origin to sphere center
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Try the closer root first
	root := (-halfB - sqrtD) / a
	if root <= tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root <= tMin || root > tMax {
			return nil, false
		}
	}

	point := ray.At(root)
	return &material.HitRecord{
		T:        root,
		Point:    point,
		Normal:   point.Subtract(s.Center).Multiply(1.0 / s.Radius),
		Material: s.Material,
		Object:   s,
	}, true
}
