package lights

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// PointLight radiates from a single position with constant/linear/quadratic falloff
type PointLight struct {
	position    core.Vec3
	color       core.Vec3
	attenuation Attenuation
	epsilon     float64
}

// NewPointLight creates a point light
func NewPointLight(position, color core.Vec3, attenuation Attenuation) *PointLight {
	return &PointLight{
		position:    position,
		color:       color,
		attenuation: attenuation,
		epsilon:     material.DefaultEpsilon,
	}
}

// Type implements Light
func (pl *PointLight) Type() LightType {
	return LightTypePoint
}

// Position returns the light position
func (pl *PointLight) Position() core.Vec3 {
	return pl.position
}

// Direction returns the unit vector from p to the light
func (pl *PointLight) Direction(p core.Vec3) core.Vec3 {
	return pl.position.Subtract(p).Normalize()
}

// Color does not depend on p
func (pl *PointLight) Color(p core.Vec3) core.Vec3 {
	return pl.color
}

// DistanceAttenuation returns 1 / max(c + l*d + q*sqrt(d), 1) where d is the
// squared distance to the light. A zero denominator means no falloff.
func (pl *PointLight) DistanceAttenuation(p core.Vec3) float64 {
	d2 := p.Subtract(pl.position).LengthSquared()
	d := pl.position.Subtract(p).Length()
	denom := pl.attenuation.Constant + pl.attenuation.Linear*d2 + pl.attenuation.Quadratic*d
	if denom == 0 {
		return 1.0
	}
	return 1.0 / max(denom, 1.0)
}

// ShadowAttenuation filters the light color through the transparent
// occluders between p and the light. Surfaces behind the light are ignored.
func (pl *PointLight) ShadowAttenuation(occluder material.Occluder, p core.Vec3) core.Vec3 {
	distance := pl.position.Subtract(p).Length()
	return shadowWalk(occluder, p, pl.Direction(p), pl.Color(p), distance, pl.epsilon)
}
