package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Shape interface for objects that can be hit by rays.
//
// Hit returns the nearest intersection with tMin < t <= tMax. Shapes with an
// interior report the outward unit normal whichever side the ray came from.
// Open surfaces report the normal facing the ray.
type Shape interface {
	material.Object
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
	SetOrderKey(key int)
}

// ordered carries the insertion-order identity shared by every shape
type ordered struct {
	key int
}

// OrderKey implements material.Object
func (o *ordered) OrderKey() int {
	return o.key
}

// SetOrderKey is called by the scene when the shape is added
func (o *ordered) SetOrderKey(key int) {
	o.key = key
}
