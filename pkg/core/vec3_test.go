package core

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func TestVec3_Reflect(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vec3
		normal   Vec3
		expected Vec3
	}{
		{
			name:     "Along normal",
			vector:   NewVec3(0, 1, 0),
			normal:   NewVec3(0, 1, 0),
			expected: NewVec3(0, 1, 0),
		},
		{
			name:     "45 degrees",
			vector:   NewVec3(1, 1, 0).Normalize(),
			normal:   NewVec3(0, 1, 0),
			expected: NewVec3(-1, 1, 0).Normalize(),
		},
		{
			name:     "Grazing",
			vector:   NewVec3(1, 0, 0),
			normal:   NewVec3(0, 0, 1),
			expected: NewVec3(-1, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.vector.Reflect(tt.normal)
			if result.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestVec3_ClampColor(t *testing.T) {
	v := NewVec3(-0.5, 0.25, 3)
	got := v.ClampColor()
	if got != NewVec3(0, 0.25, 1) {
		t.Errorf("Expected (0, 0.25, 1), got %v", got)
	}
}

func TestVec3_NearZero(t *testing.T) {
	if !NewVec3(1e-7, -1e-7, 0).NearZero(1e-5) {
		t.Error("Expected tiny vector to be near zero")
	}
	if NewVec3(0, 0, 0.1).NearZero(1e-5) {
		t.Error("Expected (0,0,0.1) not to be near zero")
	}
}

func TestVec3_Normalize(t *testing.T) {
	if got := NewVec3(0, 0, 0).Normalize(); got != NewVec3(0, 0, 0) {
		t.Errorf("Expected zero vector to stay zero, got %v", got)
	}
	got := NewVec3(3, 4, 0).Normalize()
	if math.Abs(got.Length()-1) > tolerance {
		t.Errorf("Expected unit length, got %f", got.Length())
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, -2))
	if ray.Direction != NewVec3(0, 0, -1) {
		t.Errorf("Expected direction to be normalized, got %v", ray.Direction)
	}
	if got := ray.At(4); got != NewVec3(1, 2, -1) {
		t.Errorf("Expected (1,2,-1), got %v", got)
	}
}

func TestVec3_ComponentAndMax(t *testing.T) {
	v := NewVec3(0.2, 0.9, 0.4)
	for i, want := range []float64{0.2, 0.9, 0.4} {
		if got := v.Component(i); got != want {
			t.Errorf("Component(%d): expected %f, got %f", i, want, got)
		}
	}
	if v.MaxComponent() != 0.9 {
		t.Errorf("Expected max 0.9, got %f", v.MaxComponent())
	}
}
