package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

func TestSphere_Hit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1, material.NewMaterial(core.NewVec3(1, 0, 0)))

	tests := []struct {
		name           string
		ray            core.Ray
		shouldHit      bool
		expectedT      float64
		expectedNormal core.Vec3
	}{
		{
			name:           "Ray hits front",
			ray:            core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)),
			shouldHit:      true,
			expectedT:      4,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "Ray from center exits with outward normal",
			ray:            core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(1, 0, 0)),
			shouldHit:      true,
			expectedT:      1,
			expectedNormal: core.NewVec3(1, 0, 0),
		},
		{
			name:      "Ray misses",
			ray:       core.NewRay(core.NewVec3(0, 2, 0), core.NewVec3(0, 0, -1)),
			shouldHit: false,
		},
		{
			name:      "Sphere behind ray",
			ray:       core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)),
			shouldHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := sphere.Hit(tt.ray, material.DefaultEpsilon, math.Inf(1))
			if ok != tt.shouldHit {
				t.Fatalf("Expected hit=%v, got %v", tt.shouldHit, ok)
			}
			if !ok {
				return
			}
			if math.Abs(hit.T-tt.expectedT) > tolerance {
				t.Errorf("Expected t=%f, got %f", tt.expectedT, hit.T)
			}
			if hit.Normal.Subtract(tt.expectedNormal).Length() > tolerance {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}
