package lights

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// DirectionalLight is a light at infinite distance shining along a fixed orientation
type DirectionalLight struct {
	orientation core.Vec3 // Normalized direction the light travels
	color       core.Vec3
	epsilon     float64
}

// NewDirectionalLight creates a light travelling along orientation
func NewDirectionalLight(orientation, color core.Vec3) *DirectionalLight {
	return &DirectionalLight{
		orientation: orientation.Normalize(),
		color:       color,
		epsilon:     material.DefaultEpsilon,
	}
}

// Type implements Light
func (dl *DirectionalLight) Type() LightType {
	return LightTypeDirectional
}

// Direction points back against the orientation, toward the light
func (dl *DirectionalLight) Direction(p core.Vec3) core.Vec3 {
	return dl.orientation.Negate()
}

// Color does not depend on p
func (dl *DirectionalLight) Color(p core.Vec3) core.Vec3 {
	return dl.color
}

// DistanceAttenuation is always 1: the light is infinitely far away
func (dl *DirectionalLight) DistanceAttenuation(p core.Vec3) float64 {
	return 1.0
}

// ShadowAttenuation filters the light color through every transparent
// occluder between p and infinity
func (dl *DirectionalLight) ShadowAttenuation(occluder material.Occluder, p core.Vec3) core.Vec3 {
	return shadowWalk(occluder, p, dl.Direction(p), dl.Color(p), math.Inf(1), dl.epsilon)
}
