package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// DefaultEpsilon offsets shadow ray origins off the surface and gates near-zero coefficients
const DefaultEpsilon = 1e-5

// specularScale maps the [0,1] shininess coefficient onto a Phong exponent
const specularScale = 128.0

// Material describes a Phong surface. All coefficients are per-channel in [0,1].
type Material struct {
	Ke        core.Vec3 // emissive
	Ka        core.Vec3 // ambient
	Kd        core.Vec3 // diffuse
	Ks        core.Vec3 // specular
	Kr        core.Vec3 // reflective
	Kt        core.Vec3 // transmissive
	Shininess float64   // in [0,1], scaled by 128 for the Phong exponent
	Index     float64   // index of refraction
	Epsilon   float64   // shadow ray offset; DefaultEpsilon when zero
}

// NewMaterial creates a diffuse material with the given color and refractive index 1
func NewMaterial(kd core.Vec3) *Material {
	return &Material{Kd: kd, Index: 1.0}
}

// NewGlass creates a transmissive material with a faint specular highlight
func NewGlass(kt core.Vec3, index float64) *Material {
	return &Material{
		Ks:        core.NewVec3(0.3, 0.3, 0.3),
		Kt:        kt,
		Shininess: 0.8,
		Index:     index,
	}
}

// NewMirror creates a reflective material
func NewMirror(kr core.Vec3) *Material {
	return &Material{
		Ks:        core.NewVec3(0.2, 0.2, 0.2),
		Kr:        kr,
		Shininess: 0.9,
		Index:     1.0,
	}
}

// IsReflective reports whether kr is large enough to spawn reflection rays
func (m *Material) IsReflective(eps float64) bool {
	return !m.Kr.NearZero(eps)
}

// IsTransmissive reports whether kt is large enough to spawn refraction rays
// or let shadow rays pass through
func (m *Material) IsTransmissive(eps float64) bool {
	return !m.Kt.NearZero(eps)
}

func (m *Material) epsilon() float64 {
	if m.Epsilon > 0 {
		return m.Epsilon
	}
	return DefaultEpsilon
}

// Shade evaluates the local Phong illumination at the hit against every
// light in the scene. It does not recurse.
func (m *Material) Shade(scene Scene, ray core.Ray, hit *HitRecord) core.Vec3 {
	color := m.Ke
	normal := hit.Normal
	point := ray.At(hit.T)
	shadowOrigin := point.Add(normal.Multiply(m.epsilon()))

	// Opacity scales local lighting down on transmissive surfaces
	trans := core.NewVec3(1, 1, 1).Subtract(m.Kt)

	ambient := m.Ka.MultiplyVec(scene.Ambient())
	color = color.Add(trans.MultiplyVec(ambient))

	view := ray.Direction.Negate()
	for _, light := range scene.Lights() {
		attenuation := light.ShadowAttenuation(scene, shadowOrigin).
			Multiply(light.DistanceAttenuation(point))

		l := light.Direction(point).Normalize()
		cosTheta := normal.Dot(l)
		diffuse := m.Kd.Multiply(max(cosTheta, 0)).MultiplyVec(trans)

		v := l.Reflect(normal).Normalize()
		specular := m.Ks.Multiply(math.Pow(max(v.Dot(view), 0), m.Shininess*specularScale))

		color = color.Add(attenuation.MultiplyVec(diffuse.Add(specular)))
	}

	return color.ClampColor()
}
