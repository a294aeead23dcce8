package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering. It is read-only
// once built and may be traced from many goroutines.
type Scene struct {
	Name    string
	camera  *renderer.Camera
	shapes  []geometry.Shape
	lights  []material.Light // Lights shaded per hit: directional and point
	ambient core.Vec3        // Sum of ambient lights
	epsilon float64
}

// New creates an empty scene viewed through camera
func New(name string, camera *renderer.Camera) *Scene {
	return &Scene{
		Name:    name,
		camera:  camera,
		epsilon: material.DefaultEpsilon,
	}
}

// SetEpsilon sets the minimum hit distance for every intersection query
func (s *Scene) SetEpsilon(eps float64) {
	if eps > 0 {
		s.epsilon = eps
	}
}

// Add inserts a shape and assigns it the next order key
func (s *Scene) Add(shapes ...geometry.Shape) {
	for _, shape := range shapes {
		shape.SetOrderKey(len(s.shapes))
		s.shapes = append(s.shapes, shape)
	}
}

// AddLight adds a light. Ambient lights are folded into the ambient term.
func (s *Scene) AddLight(light lights.Light) {
	if light.Type() == lights.LightTypeAmbient {
		s.ambient = s.ambient.Add(light.Color(core.Vec3{}))
		return
	}
	s.lights = append(s.lights, light)
}

// Intersect returns the nearest hit farther than epsilon along ray
func (s *Scene) Intersect(ray core.Ray) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := math.Inf(1)

	for _, shape := range s.shapes {
		if hit, isHit := shape.Hit(ray, s.epsilon, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// Ambient returns the total ambient light
func (s *Scene) Ambient() core.Vec3 {
	return s.ambient
}

// Lights returns the lights shaded at every hit
func (s *Scene) Lights() []material.Light {
	return s.lights
}

// Camera returns the scene camera
func (s *Scene) Camera() core.Camera {
	return s.camera
}

// Shapes returns the shapes in insertion order
func (s *Scene) Shapes() []geometry.Shape {
	return s.shapes
}
