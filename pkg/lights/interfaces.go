package lights

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

type LightType string

const (
	LightTypeDirectional LightType = "directional"
	LightTypePoint       LightType = "point"
	LightTypeAmbient     LightType = "ambient"
)

// Light is one of the closed set of light variants: *DirectionalLight,
// *PointLight or *AmbientLight. Type identifies which.
type Light interface {
	material.Light
	Type() LightType
}

// Compile-time interface checks
var (
	_ Light = (*DirectionalLight)(nil)
	_ Light = (*PointLight)(nil)
	_ Light = (*AmbientLight)(nil)
)

// Attenuation holds the point light falloff coefficients
type Attenuation struct {
	Constant  float64 `json:"constant"`
	Linear    float64 `json:"linear"`
	Quadratic float64 `json:"quadratic"`
}

// DefaultAttenuation returns coefficients that disable distance falloff
func DefaultAttenuation() Attenuation {
	return Attenuation{Constant: 1.0}
}

// Validate rejects negative coefficients
func (a Attenuation) Validate() error {
	if a.Constant < 0 || a.Linear < 0 || a.Quadratic < 0 {
		return fmt.Errorf("attenuation coefficients must be non-negative, got %+v", a)
	}
	return nil
}

// maxShadowSteps bounds a shadow walk through a chain of transparent occluders
const maxShadowSteps = 1024

// shadowWalk follows a ray from origin toward a light, filtering color through
// every transparent surface it crosses. It returns black at the first opaque
// surface. Surfaces at or beyond lightDistance are ignored.
func shadowWalk(occluder material.Occluder, origin, direction, color core.Vec3, lightDistance, eps float64) core.Vec3 {
	ray := core.NewRay(origin, direction)
	remaining := lightDistance

	for step := 0; step < maxShadowSteps; step++ {
		hit, isHit := occluder.Intersect(ray)
		if !isHit {
			return color
		}
		// The light lies in front of this surface
		if remaining -= hit.T; remaining < eps {
			return color
		}
		if !hit.Material.IsTransmissive(eps) {
			return core.Vec3{}
		}
		color = color.MultiplyVec(hit.Material.Kt)
		ray = core.NewRay(ray.At(hit.T), direction)
	}
	return color
}
