package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

const tolerance = 1e-9

func TestBox_IntersectLocal(t *testing.T) {
	box := NewUnitBox(material.NewMaterial(core.NewVec3(1, 1, 1)))

	tests := []struct {
		name           string
		ray            core.Ray
		shouldHit      bool
		expectedT      float64
		expectedNormal core.Vec3
	}{
		{
			name:           "Ray hits front face",
			ray:            core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)),
			shouldHit:      true,
			expectedT:      4.5,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "Ray hits left face",
			ray:            core.NewRay(core.NewVec3(-3, 0, 0), core.NewVec3(1, 0, 0)),
			shouldHit:      true,
			expectedT:      2.5,
			expectedNormal: core.NewVec3(-1, 0, 0),
		},
		{
			name:      "Ray points away from box",
			ray:       core.NewRay(core.NewVec3(2, 2, 2), core.NewVec3(1, 1, 1)),
			shouldHit: false,
		},
		{
			name:      "Ray parallel to face outside slab",
			ray:       core.NewRay(core.NewVec3(0, 1, 5), core.NewVec3(0, 0, -1)),
			shouldHit: false,
		},
		{
			name:      "Ray misses past corner",
			ray:       core.NewRay(core.NewVec3(2, 0, 5), core.NewVec3(0, 0.1, -1)),
			shouldHit: false,
		},
		{
			name:           "Ray inside box exits far side",
			ray:            core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)),
			shouldHit:      true,
			expectedT:      0.5,
			expectedNormal: core.NewVec3(0, 1, 0),
		},
		{
			name:           "Ray on surface exits far side",
			ray:            core.NewRay(core.NewVec3(0, 0, 0.5), core.NewVec3(0, 0, -1)),
			shouldHit:      true,
			expectedT:      1.0,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tHit, normal, ok := box.IntersectLocal(tt.ray, material.DefaultEpsilon)
			if ok != tt.shouldHit {
				t.Fatalf("Expected hit=%v, got %v (t=%f)", tt.shouldHit, ok, tHit)
			}
			if !tt.shouldHit {
				return
			}
			if math.Abs(tHit-tt.expectedT) > tolerance {
				t.Errorf("Expected t=%f, got %f", tt.expectedT, tHit)
			}
			if normal.Subtract(tt.expectedNormal).Length() > tolerance {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, normal)
			}
		})
	}
}

func TestBox_IntersectLocal_PositionNormal(t *testing.T) {
	box := NewUnitBox(nil)
	// Off-center hit on the +Z face: the normal follows the hit position
	ray := core.NewRay(core.NewVec3(0.25, 0, 5), core.NewVec3(0, 0, -1))

	_, normal, ok := box.IntersectLocal(ray, 0)
	if !ok {
		t.Fatal("Expected hit")
	}
	want := core.NewVec3(0.25, 0, 0.5).Normalize()
	if normal.Subtract(want).Length() > tolerance {
		t.Errorf("Expected position-derived normal %v, got %v", want, normal)
	}

	box.ExactNormals = true
	_, normal, _ = box.IntersectLocal(ray, 0)
	if normal != core.NewVec3(0, 0, 1) {
		t.Errorf("Expected exact face normal (0,0,1), got %v", normal)
	}
}

func TestBox_Hit_World(t *testing.T) {
	mat := material.NewMaterial(core.NewVec3(0.5, 0.5, 0.5))
	// 2x4x2 box centered at (0, 0, -10)
	box := NewBox(core.NewVec3(0, 0, -10), core.NewVec3(2, 4, 2), mat)
	box.SetOrderKey(7)

	hit, ok := box.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), 0.001, 100)
	if !ok {
		t.Fatal("Expected hit")
	}
	if math.Abs(hit.T-9) > tolerance {
		t.Errorf("Expected t=9, got %f", hit.T)
	}
	if hit.Point.Subtract(core.NewVec3(0, 0, -9)).Length() > tolerance {
		t.Errorf("Expected point (0,0,-9), got %v", hit.Point)
	}
	if hit.Normal.Subtract(core.NewVec3(0, 0, 1)).Length() > tolerance {
		t.Errorf("Expected normal (0,0,1), got %v", hit.Normal)
	}
	if hit.Material != mat {
		t.Error("Expected hit to carry the box material")
	}
	if hit.Object.OrderKey() != 7 || !hit.Object.HasInterior() {
		t.Errorf("Expected object with key 7 and an interior, got key %d", hit.Object.OrderKey())
	}

	// Top face is 2 units above the center
	hit, ok = box.Hit(core.NewRay(core.NewVec3(0, 10, -10), core.NewVec3(0, -1, 0)), 0.001, 100)
	if !ok || math.Abs(hit.T-8) > tolerance {
		t.Fatalf("Expected top face hit at t=8, got %v %v", ok, hit)
	}
	if hit.Normal.Subtract(core.NewVec3(0, 1, 0)).Length() > tolerance {
		t.Errorf("Expected normal (0,1,0), got %v", hit.Normal)
	}

	if _, ok := box.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), 0.001, 5); ok {
		t.Error("Expected no hit beyond tMax")
	}
}
