package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// unitHalf is the half-extent of the local unit cube [-0.5, 0.5]^3
const unitHalf = 0.5

// Box is an axis-aligned box: the unit cube scaled by Size and moved to Center
type Box struct {
	ordered
	Center   core.Vec3          // Center point of the box
	Size     core.Vec3          // Edge lengths along each axis
	Material *material.Material // Material for all faces

	// ExactNormals selects the face normal of the dominant axis instead of
	// the normalized hit position, which is only exact at face centers
	ExactNormals bool
}

// NewBox creates a new box with the given center, edge lengths and material
func NewBox(center, size core.Vec3, mat *material.Material) *Box {
	return &Box{Center: center, Size: size, Material: mat}
}

// NewUnitBox creates the unit cube centered at the origin
func NewUnitBox(mat *material.Material) *Box {
	return NewBox(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), mat)
}

// HasInterior is true: a box bounds a solid volume
func (b *Box) HasInterior() bool {
	return true
}

// Hit maps the ray into the unit cube's frame and intersects it there.
// The local direction is left unnormalized so t is the same in both frames.
func (b *Box) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	local := core.Ray{
		Origin:    ray.Origin.Subtract(b.Center).DivideVec(b.Size),
		Direction: ray.Direction.DivideVec(b.Size),
	}

	t, localNormal, ok := b.IntersectLocal(local, tMin)
	if !ok || t > tMax {
		return nil, false
	}

	return &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Normal:   localNormal.DivideVec(b.Size).Normalize(),
		Material: b.Material,
		Object:   b,
	}, true
}

// IntersectLocal intersects a ray given in the cube's local space using the
// slab method. It returns the nearest distance greater than tMin and the
// outward normal there.
func (b *Box) IntersectLocal(ray core.Ray, tMin float64) (float64, core.Vec3, bool) {
	tNear := math.Inf(-1)
	tFar := math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		p := ray.Origin.Component(axis)
		d := ray.Direction.Component(axis)

		if d == 0 {
			// Parallel to this pair of slabs
			if p > unitHalf || p < -unitHalf {
				return 0, core.Vec3{}, false
			}
			continue
		}

		t1 := (-unitHalf - p) / d
		t2 := (unitHalf - p) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tNear = max(tNear, t1)
		tFar = min(tFar, t2)
		if tNear > tFar || tFar < 0 {
			return 0, core.Vec3{}, false
		}
	}

	// Rays starting inside, or on the surface, leave through the far side
	t := tNear
	if t <= tMin {
		t = tFar
		if t <= tMin {
			return 0, core.Vec3{}, false
		}
	}

	return t, b.localNormal(ray.At(t)), true
}

func (b *Box) localNormal(p core.Vec3) core.Vec3 {
	if !b.ExactNormals {
		return p.Normalize()
	}
	ax, ay, az := math.Abs(p.X), math.Abs(p.Y), math.Abs(p.Z)
	switch {
	case ax >= ay && ax >= az:
		return core.NewVec3(math.Copysign(1, p.X), 0, 0)
	case ay >= az:
		return core.NewVec3(0, math.Copysign(1, p.Y), 0)
	default:
		return core.NewVec3(0, 0, math.Copysign(1, p.Z))
	}
}
