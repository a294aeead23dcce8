package lights

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// scriptedOccluder returns its hits in order, one per query, then misses
type scriptedOccluder struct {
	hits []*material.HitRecord
	rays []core.Ray
}

func (o *scriptedOccluder) Intersect(ray core.Ray) (*material.HitRecord, bool) {
	o.rays = append(o.rays, ray)
	if len(o.hits) == 0 {
		return nil, false
	}
	hit := o.hits[0]
	o.hits = o.hits[1:]
	return hit, true
}

// endlessOccluder reports a clear surface one unit ahead forever
type endlessOccluder struct {
	queries int
}

func (o *endlessOccluder) Intersect(ray core.Ray) (*material.HitRecord, bool) {
	o.queries++
	return &material.HitRecord{T: 1, Material: &material.Material{Kt: core.NewVec3(1, 1, 1)}}, true
}

func opaqueHit(t float64) *material.HitRecord {
	return &material.HitRecord{T: t, Material: material.NewMaterial(core.NewVec3(0.5, 0.5, 0.5))}
}

func clearHit(t float64, kt core.Vec3) *material.HitRecord {
	return &material.HitRecord{T: t, Material: &material.Material{Kt: kt, Index: 1.5}}
}

func approxEqual(a, b core.Vec3) bool {
	return a.Subtract(b).Length() < 1e-9
}

func TestPointLight_ShadowAttenuation(t *testing.T) {
	color := core.NewVec3(0.8, 0.6, 0.4)
	light := NewPointLight(core.NewVec3(0, 4, 0), color, DefaultAttenuation())
	p := core.NewVec3(0, 0, 0)

	tests := []struct {
		name     string
		hits     []*material.HitRecord
		expected core.Vec3
	}{
		{"Unoccluded", nil, color},
		{"Opaque occluder", []*material.HitRecord{opaqueHit(2)}, core.NewVec3(0, 0, 0)},
		{"Transparent occluder", []*material.HitRecord{clearHit(2, core.NewVec3(0.5, 0.5, 0.5))}, color.Multiply(0.5)},
		{"Opaque occluder beyond light", []*material.HitRecord{opaqueHit(6)}, color},
		{"Opaque occluder at light", []*material.HitRecord{opaqueHit(4)}, color},
		{
			"Two transparent occluders",
			[]*material.HitRecord{clearHit(1, core.NewVec3(0.5, 1, 1)), clearHit(1, core.NewVec3(1, 0.5, 1))},
			color.MultiplyVec(core.NewVec3(0.5, 0.5, 1)),
		},
		{
			"Transparent then opaque beyond light",
			[]*material.HitRecord{clearHit(1, core.NewVec3(0.5, 0.5, 0.5)), opaqueHit(5)},
			color.Multiply(0.5),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			occluder := &scriptedOccluder{hits: tt.hits}
			got := light.ShadowAttenuation(occluder, p)
			if !approxEqual(got, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestShadowWalk_AdvancesOrigin(t *testing.T) {
	light := NewDirectionalLight(core.NewVec3(0, -1, 0), core.NewVec3(1, 1, 1))
	occluder := &scriptedOccluder{hits: []*material.HitRecord{
		clearHit(1, core.NewVec3(0.9, 0.9, 0.9)),
		clearHit(2, core.NewVec3(0.9, 0.9, 0.9)),
	}}

	light.ShadowAttenuation(occluder, core.NewVec3(0, 0, 0))

	if len(occluder.rays) != 3 {
		t.Fatalf("Expected 3 shadow queries, got %d", len(occluder.rays))
	}
	wantOrigins := []core.Vec3{core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), core.NewVec3(0, 3, 0)}
	for i, want := range wantOrigins {
		if !approxEqual(occluder.rays[i].Origin, want) {
			t.Errorf("Query %d: expected origin %v, got %v", i, want, occluder.rays[i].Origin)
		}
		if !approxEqual(occluder.rays[i].Direction, core.NewVec3(0, 1, 0)) {
			t.Errorf("Query %d: expected direction toward the light, got %v", i, occluder.rays[i].Direction)
		}
	}
}

func TestShadowWalk_Terminates(t *testing.T) {
	light := NewDirectionalLight(core.NewVec3(0, -1, 0), core.NewVec3(1, 1, 1))
	occluder := &endlessOccluder{}

	got := light.ShadowAttenuation(occluder, core.NewVec3(0, 0, 0))
	if occluder.queries != maxShadowSteps {
		t.Errorf("Expected walk to stop after %d steps, got %d", maxShadowSteps, occluder.queries)
	}
	if !approxEqual(got, core.NewVec3(1, 1, 1)) {
		t.Errorf("Expected fully clear chain to pass light, got %v", got)
	}
}

func TestDirectionalLight(t *testing.T) {
	color := core.NewVec3(1, 0.5, 0.25)
	light := NewDirectionalLight(core.NewVec3(0, 0, -2), color)
	p := core.NewVec3(3, -7, 100)

	if light.Type() != LightTypeDirectional {
		t.Errorf("Expected type %s, got %s", LightTypeDirectional, light.Type())
	}
	if got := light.Direction(p); !approxEqual(got, core.NewVec3(0, 0, 1)) {
		t.Errorf("Expected direction (0,0,1), got %v", got)
	}
	if got := light.DistanceAttenuation(p); got != 1.0 {
		t.Errorf("Expected no distance attenuation, got %f", got)
	}
	if got := light.ShadowAttenuation(&scriptedOccluder{}, p); got != color {
		t.Errorf("Expected unshadowed color %v, got %v", color, got)
	}
	// Nothing is too far away to cast a shadow from a directional light
	opaque := &scriptedOccluder{hits: []*material.HitRecord{opaqueHit(1e9)}}
	if got := light.ShadowAttenuation(opaque, p); got != (core.Vec3{}) {
		t.Errorf("Expected black behind distant opaque occluder, got %v", got)
	}
	transparent := &scriptedOccluder{hits: []*material.HitRecord{clearHit(3, core.NewVec3(0.5, 0.5, 0.5))}}
	if got := light.ShadowAttenuation(transparent, p); !approxEqual(got, color.Multiply(0.5)) {
		t.Errorf("Expected half color through clear occluder, got %v", got)
	}
}

func TestPointLight_DistanceAttenuation(t *testing.T) {
	tests := []struct {
		name        string
		attenuation Attenuation
		point       core.Vec3
		expected    float64
	}{
		{"Default", DefaultAttenuation(), core.NewVec3(0, 0, 10), 1.0},
		{"Zero coefficients", Attenuation{}, core.NewVec3(0, 0, 10), 1.0},
		{"Linear on squared distance", Attenuation{Linear: 1}, core.NewVec3(0, 0, 2), 0.25},
		{"Quadratic on distance", Attenuation{Quadratic: 1}, core.NewVec3(0, 0, 4), 0.25},
		{"Combined", Attenuation{Constant: 1, Linear: 0.5, Quadratic: 0.5}, core.NewVec3(0, 2, 0), 1.0 / (1 + 2 + 1)},
		{"Denominator below one", Attenuation{Constant: 0.25}, core.NewVec3(1, 0, 0), 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			light := NewPointLight(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), tt.attenuation)
			got := light.DistanceAttenuation(tt.point)
			if math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("Expected %f, got %f", tt.expected, got)
			}
		})
	}
}

func TestPointLight_Direction(t *testing.T) {
	light := NewPointLight(core.NewVec3(0, 10, 0), core.NewVec3(1, 1, 1), DefaultAttenuation())
	if got := light.Direction(core.NewVec3(0, 5, 0)); !approxEqual(got, core.NewVec3(0, 1, 0)) {
		t.Errorf("Expected (0,1,0), got %v", got)
	}
	if light.Type() != LightTypePoint {
		t.Errorf("Expected type %s, got %s", LightTypePoint, light.Type())
	}
}

func TestAmbientLight(t *testing.T) {
	color := core.NewVec3(0.2, 0.2, 0.2)
	light := NewAmbientLight(color)
	occluder := &scriptedOccluder{hits: []*material.HitRecord{opaqueHit(0.5)}}

	for _, p := range []core.Vec3{core.NewVec3(0, 0, 0), core.NewVec3(100, -3, 7)} {
		if got := light.ShadowAttenuation(occluder, p); got != core.NewVec3(1, 1, 1) {
			t.Errorf("Expected ambient to be unshadowed at %v, got %v", p, got)
		}
		if got := light.DistanceAttenuation(p); got != 1.0 {
			t.Errorf("Expected no falloff at %v, got %f", p, got)
		}
		if got := light.Color(p); got != color {
			t.Errorf("Expected color %v, got %v", color, got)
		}
	}
	if len(occluder.rays) != 0 {
		t.Errorf("Expected ambient light never to query the scene, got %d queries", len(occluder.rays))
	}
	if light.Type() != LightTypeAmbient {
		t.Errorf("Expected type %s, got %s", LightTypeAmbient, light.Type())
	}
}

func TestAttenuation_Validate(t *testing.T) {
	if err := DefaultAttenuation().Validate(); err != nil {
		t.Errorf("Expected default attenuation to be valid, got %v", err)
	}
	if err := (Attenuation{Linear: -1}).Validate(); err == nil {
		t.Error("Expected negative coefficient to be rejected")
	}
}
