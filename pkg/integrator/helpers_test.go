package integrator

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// testScene is a linear-search scene that records the rays it is asked about
type testScene struct {
	shapes  []geometry.Shape
	lights  []material.Light
	ambient core.Vec3
	camera  core.Camera
	rays    []core.Ray
}

func (s *testScene) add(shape geometry.Shape) geometry.Shape {
	shape.SetOrderKey(len(s.shapes))
	s.shapes = append(s.shapes, shape)
	return shape
}

func (s *testScene) Intersect(ray core.Ray) (*material.HitRecord, bool) {
	s.rays = append(s.rays, ray)
	var closest *material.HitRecord
	closestT := math.Inf(1)
	for _, shape := range s.shapes {
		if hit, ok := shape.Hit(ray, material.DefaultEpsilon, closestT); ok {
			closest = hit
			closestT = hit.T
		}
	}
	return closest, closest != nil
}

func (s *testScene) Ambient() core.Vec3 { return s.ambient }
func (s *testScene) Lights() []material.Light { return s.lights }
func (s *testScene) Camera() core.Camera { return s.camera }

// fixedCamera sends every primary ray down the same path
type fixedCamera struct {
	ray core.Ray
}

func (c fixedCamera) RayThrough(x, y float64) core.Ray { return c.ray }

func approxEqual(a, b core.Vec3) bool {
	return a.Subtract(b).Length() < 1e-9
}

func emissive(ke core.Vec3) *material.Material {
	return &material.Material{Ke: ke, Index: 1.0}
}

// wall returns a thin box whose face nearest the origin lies on z = at
func wall(at float64, mat *material.Material) *geometry.Box {
	center := at + 0.5
	if at < 0 {
		center = at - 0.5
	}
	return geometry.NewBox(core.NewVec3(0, 0, center), core.NewVec3(20, 20, 1), mat)
}
