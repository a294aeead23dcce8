package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Object is the part of a hit shape the tracer needs beyond its surface
type Object interface {
	// HasInterior reports whether the shape bounds a solid volume, so that
	// refraction through it is tracked on the medium stack
	HasInterior() bool
	// OrderKey is the stable identity used as the medium stack key
	OrderKey() int
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point    core.Vec3 // Point of intersection
	Normal   core.Vec3 // Outward unit surface normal
	T        float64   // Parameter t along the ray
	Material *Material // Material of the hit object
	Object   Object    // The hit object
}

// Occluder answers nearest-hit queries; shadow rays and the integrator both use it
type Occluder interface {
	Intersect(ray core.Ray) (*HitRecord, bool)
}

// Light is the capability set every light variant provides for shading
type Light interface {
	// Direction returns the unit direction from p toward the light
	Direction(p core.Vec3) core.Vec3
	// Color returns the unattenuated light color at p
	Color(p core.Vec3) core.Vec3
	// DistanceAttenuation returns the falloff factor in [0,1] at p
	DistanceAttenuation(p core.Vec3) float64
	// ShadowAttenuation returns the light color reaching p after passing
	// through the occluders between p and the light
	ShadowAttenuation(occluder Occluder, p core.Vec3) core.Vec3
}

// Scene is what shading reads from the scene
type Scene interface {
	Occluder
	Ambient() core.Vec3
	Lights() []Light
}
