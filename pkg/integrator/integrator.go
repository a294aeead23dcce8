package integrator

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Scene is everything the tracer reads: the shading view plus the camera
type Scene interface {
	material.Scene
	Camera() core.Camera
}

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// Trace returns the clamped color seen through normalized image coordinates (x, y)
	Trace(scene Scene, x, y float64) core.Vec3
}

// Config contains the tracer settings. It is fixed for the life of a RayTracer.
type Config struct {
	MaxDepth  int     `json:"maxDepth"`  // Maximum recursion depth; 0 means local shading only
	Epsilon   float64 `json:"epsilon"`   // Tolerance for boundary tests and near-zero coefficients
	Threshold float64 `json:"threshold"` // Skip secondary rays whose weight falls below this; 0 disables
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		MaxDepth: 5,
		Epsilon:  material.DefaultEpsilon,
	}
}

// Validate checks the configuration for values the tracer cannot honor
func (c Config) Validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("max depth must be non-negative, got %d", c.MaxDepth)
	}
	if c.Epsilon <= 0 {
		return fmt.Errorf("epsilon must be positive, got %g", c.Epsilon)
	}
	if c.Threshold < 0 || c.Threshold > 1 {
		return fmt.Errorf("threshold must be between 0 and 1, got %g", c.Threshold)
	}
	return nil
}

var _ Integrator = (*RayTracer)(nil)
