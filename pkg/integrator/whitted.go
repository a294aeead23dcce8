package integrator

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// RayTracer implements recursive Whitted-style ray tracing: local Phong
// shading plus mirror reflection and Snell refraction up to a fixed depth.
// It holds no per-ray state and may be shared across goroutines.
type RayTracer struct {
	config Config
}

// NewRayTracer creates a tracer with the given configuration
func NewRayTracer(config Config) *RayTracer {
	return &RayTracer{config: config}
}

// Config returns the tracer configuration
func (rt *RayTracer) Config() Config {
	return rt.config
}

// Trace traces a primary ray through normalized image coordinates (x, y)
// with a fresh medium stack and returns its clamped color.
func (rt *RayTracer) Trace(scene Scene, x, y float64) core.Vec3 {
	media := NewMediumStack()
	ray := scene.Camera().RayThrough(x, y)
	return rt.TraceRay(scene, ray, core.NewVec3(1, 1, 1), 0, media).ClampColor()
}

// TraceRay returns the color seen along ray. weight is the product of the
// reflection/transmission coefficients along the path so far. media is
// mutated during recursion but is restored before TraceRay returns.
func (rt *RayTracer) TraceRay(scene material.Scene, ray core.Ray, weight core.Vec3, depth int, media *MediumStack) core.Vec3 {
	hit, isHit := scene.Intersect(ray)
	if !isHit {
		// Background is black
		return core.Vec3{}
	}

	m := hit.Material
	color := m.Shade(scene, ray, hit)
	if depth >= rt.config.MaxDepth {
		return color
	}

	if m.IsReflective(rt.config.Epsilon) {
		color = color.Add(rt.reflect(scene, ray, hit, weight, depth, media))
	}

	if m.IsTransmissive(rt.config.Epsilon) && hit.Object != nil && hit.Object.HasInterior() {
		refracted, _ := rt.refract(scene, ray, hit, weight, depth, media)
		color = color.Add(refracted)
	}

	return color.ClampColor()
}

// reflect follows the mirror direction 2(N·-D)N - (-D) about the hit normal
func (rt *RayTracer) reflect(scene material.Scene, ray core.Ray, hit *material.HitRecord, weight core.Vec3, depth int, media *MediumStack) core.Vec3 {
	kr := hit.Material.Kr
	next := weight.MultiplyVec(kr)
	if rt.belowThreshold(next) {
		return core.Vec3{}
	}

	direction := ray.Direction.Negate().Reflect(hit.Normal)
	reflected := core.NewRay(ray.At(hit.T), direction)
	return kr.MultiplyVec(rt.TraceRay(scene, reflected, next, depth+1, media))
}

// refract follows the transmitted ray through the hit surface. It returns
// false when no refracted ray exists (total internal reflection); the lost
// energy is not redirected into reflection.
//
// The hit object is pushed onto or popped off media for the duration of the
// recursive call only. On return media holds exactly what it held before.
func (rt *RayTracer) refract(scene material.Scene, ray core.Ray, hit *material.HitRecord, weight core.Vec3, depth int, media *MediumStack) (core.Vec3, bool) {
	m := hit.Material
	next := weight.MultiplyVec(m.Kt)
	if rt.belowThreshold(next) {
		return core.Vec3{}, false
	}

	key := hit.Object.OrderKey()
	indexA := media.Index()
	var normal core.Vec3

	if hit.Normal.Dot(ray.Direction) > rt.config.Epsilon {
		// Leaving the object: the medium beyond is whatever encloses it
		if inner, wasInside := media.Remove(key); wasInside {
			defer media.Insert(key, inner)
		}
		normal = hit.Normal.Negate()
	} else {
		if media.Insert(key, m) {
			defer media.Remove(key)
		}
		normal = hit.Normal
	}
	indexB := media.Index()

	direction, ok := refractDirection(ray.Direction, normal, indexA/indexB)
	if !ok {
		return core.Vec3{}, false
	}

	transmitted := core.NewRay(ray.At(hit.T), direction)
	return m.Kt.MultiplyVec(rt.TraceRay(scene, transmitted, next, depth+1, media)), true
}

func (rt *RayTracer) belowThreshold(weight core.Vec3) bool {
	return rt.config.Threshold > 0 && weight.MaxComponent() < rt.config.Threshold
}

// refractDirection applies Snell's law to the unit incoming direction d at a
// surface with unit normal n facing the incoming side, where ratio is
// indexA/indexB. It reports false on total internal reflection.
func refractDirection(d, n core.Vec3, ratio float64) (core.Vec3, bool) {
	toOrigin := d.Negate()
	cosI := max(min(n.Dot(toOrigin.Normalize()), 1.0), -1.0)
	sinI := math.Sqrt(1 - cosI*cosI)
	sinT := sinI * ratio
	if sinT > 1.0 {
		return core.Vec3{}, false
	}
	cosT := math.Sqrt(1 - sinT*sinT)
	return n.Multiply(ratio*cosI - cosT).Subtract(toOrigin.Multiply(ratio)).Normalize(), true
}
