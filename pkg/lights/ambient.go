package lights

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// AmbientLight contributes uniform, unshadowed light. The scene sums ambient
// lights into its ambient term rather than shading against them per light.
type AmbientLight struct {
	color core.Vec3
}

// NewAmbientLight creates an ambient light
func NewAmbientLight(color core.Vec3) *AmbientLight {
	return &AmbientLight{color: color}
}

// Type implements Light
func (al *AmbientLight) Type() LightType {
	return LightTypeAmbient
}

// Direction has no meaning for ambient light
func (al *AmbientLight) Direction(p core.Vec3) core.Vec3 {
	return core.NewVec3(1, 1, 1)
}

// Color does not depend on p
func (al *AmbientLight) Color(p core.Vec3) core.Vec3 {
	return al.color
}

// DistanceAttenuation is always 1
func (al *AmbientLight) DistanceAttenuation(p core.Vec3) float64 {
	return 1.0
}

// ShadowAttenuation is always unattenuated: ambient light is never shadowed
func (al *AmbientLight) ShadowAttenuation(occluder material.Occluder, p core.Vec3) core.Vec3 {
	return core.NewVec3(1, 1, 1)
}
