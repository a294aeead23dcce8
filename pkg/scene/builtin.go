package scene

import (
	"errors"
	"fmt"
	"sort"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// ErrUnknownScene is returned by Create for names not in the registry
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Name passed to Create
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"`
}

type builder func(atten lights.Attenuation) *Scene

var builtins = map[string]struct {
	info  SceneInfo
	build builder
}{
	"default": {
		SceneInfo{"default", "Default Scene", "Red box and glass sphere on a floor under a point light"},
		NewDefaultScene,
	},
	"nested-glass": {
		SceneInfo{"nested-glass", "Nested Glass", "Overlapping transparent solids of different indices"},
		NewNestedGlassScene,
	},
	"mirrors": {
		SceneInfo{"mirrors", "Facing Mirrors", "Two parallel mirrors around a sphere"},
		NewMirrorsScene,
	},
}

// Create builds the named built-in scene with the given point light falloff
func Create(name string, atten lights.Attenuation) (*Scene, error) {
	entry, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	if err := atten.Validate(); err != nil {
		return nil, fmt.Errorf("scene %s: %w", name, err)
	}
	return entry.build(atten), nil
}

// ListScenes returns every built-in scene sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtins))
	for _, entry := range builtins {
		scenes = append(scenes, entry.info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// Names returns the built-in scene IDs sorted
func Names() []string {
	scenes := ListScenes()
	names := make([]string, len(scenes))
	for i, info := range scenes {
		names[i] = info.ID
	}
	return names
}

// newFloor is a wide flat slab whose top face sits at y
func newFloor(y float64, mat *material.Material) *geometry.Box {
	floor := geometry.NewBox(core.NewVec3(0, y-0.5, 0), core.NewVec3(20, 1, 20), mat)
	floor.ExactNormals = true
	return floor
}

// NewDefaultScene creates a red box and a glass sphere on a grey floor
func NewDefaultScene(atten lights.Attenuation) *Scene {
	camera := renderer.NewCamera(renderer.CameraConfig{
		Center:      core.NewVec3(0, 1.5, 5),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		AspectRatio: 16.0 / 9.0,
		VFov:        40.0,
	})
	s := New("default", camera)

	grey := material.NewMaterial(core.NewVec3(0.6, 0.6, 0.6))
	grey.Ka = core.NewVec3(0.3, 0.3, 0.3)

	red := material.NewMaterial(core.NewVec3(0.8, 0.15, 0.1))
	red.Ka = core.NewVec3(0.2, 0.05, 0.05)
	red.Ks = core.NewVec3(0.4, 0.4, 0.4)
	red.Shininess = 0.5

	glass := material.NewGlass(core.NewVec3(0.8, 0.8, 0.8), 1.5)
	glass.Kr = core.NewVec3(0.1, 0.1, 0.1)

	box := geometry.NewUnitBox(red)
	box.Center = core.NewVec3(-0.9, 0, 0)
	box.ExactNormals = true

	s.Add(
		newFloor(-0.5, grey),
		box,
		geometry.NewSphere(core.NewVec3(0.8, 0.1, 0.6), 0.6, glass),
	)

	s.AddLight(lights.NewPointLight(core.NewVec3(3, 5, 4), core.NewVec3(1, 1, 1), atten))
	s.AddLight(lights.NewDirectionalLight(core.NewVec3(-1, -1, -0.5), core.NewVec3(0.2, 0.2, 0.25)))
	s.AddLight(lights.NewAmbientLight(core.NewVec3(0.2, 0.2, 0.2)))
	return s
}

// NewNestedGlassScene stacks transparent solids of different indices so that
// rays pass through regions covered by more than one object
func NewNestedGlassScene(atten lights.Attenuation) *Scene {
	camera := renderer.NewCamera(renderer.CameraConfig{
		Center:      core.NewVec3(0, 0.5, 6),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		AspectRatio: 1.0,
		VFov:        35.0,
	})
	s := New("nested-glass", camera)

	checker := material.NewMaterial(core.NewVec3(0.2, 0.5, 0.8))
	checker.Ka = core.NewVec3(0.2, 0.2, 0.2)

	// Back wall so refracted rays land on something
	wall := geometry.NewBox(core.NewVec3(0, 0, -4), core.NewVec3(20, 20, 1), checker)
	wall.ExactNormals = true

	outer := material.NewGlass(core.NewVec3(0.9, 0.9, 0.9), 1.3)
	inner := material.NewGlass(core.NewVec3(0.9, 0.7, 0.7), 1.8)
	cube := material.NewGlass(core.NewVec3(0.7, 0.9, 0.7), 1.5)

	glassCube := geometry.NewBox(core.NewVec3(0.6, 0, 0), core.NewVec3(1.4, 1.4, 1.4), cube)
	glassCube.ExactNormals = true

	s.Add(
		wall,
		geometry.NewSphere(core.NewVec3(-0.4, 0, 0), 1.2, outer),
		geometry.NewSphere(core.NewVec3(-0.4, 0, 0), 0.5, inner),
		glassCube,
	)

	s.AddLight(lights.NewPointLight(core.NewVec3(0, 4, 5), core.NewVec3(1, 1, 1), atten))
	s.AddLight(lights.NewAmbientLight(core.NewVec3(0.15, 0.15, 0.15)))
	return s
}

// NewMirrorsScene puts a sphere between two facing mirrors so that reflection
// recursion only stops at the depth limit
func NewMirrorsScene(atten lights.Attenuation) *Scene {
	camera := renderer.NewCamera(renderer.CameraConfig{
		Center:      core.NewVec3(0, 0.5, 3),
		LookAt:      core.NewVec3(0, 0, -2),
		Up:          core.NewVec3(0, 1, 0),
		AspectRatio: 16.0 / 9.0,
		VFov:        60.0,
	})
	s := New("mirrors", camera)

	mirror := material.NewMirror(core.NewVec3(0.85, 0.85, 0.85))
	mirror.Kd = core.NewVec3(0.05, 0.05, 0.05)

	gold := material.NewMaterial(core.NewVec3(0.8, 0.6, 0.2))
	gold.Ka = core.NewVec3(0.2, 0.15, 0.05)
	gold.Ks = core.NewVec3(0.6, 0.6, 0.6)
	gold.Shininess = 0.7

	backdrop := material.NewMaterial(core.NewVec3(0.3, 0.4, 0.5))
	backdrop.Ka = core.NewVec3(0.3, 0.4, 0.5)

	left := geometry.NewBox(core.NewVec3(-2.5, 0, -2), core.NewVec3(0.2, 4, 8), mirror)
	left.ExactNormals = true
	right := geometry.NewBox(core.NewVec3(2.5, 0, -2), core.NewVec3(0.2, 4, 8), mirror)
	right.ExactNormals = true

	s.Add(
		newFloor(-1, material.NewMaterial(core.NewVec3(0.5, 0.5, 0.5))),
		left,
		right,
		geometry.NewSphere(core.NewVec3(0, -0.4, -2), 0.6, gold),
		geometry.NewPlane(core.NewVec3(0, 0, -6), core.NewVec3(0, 0, 1), backdrop),
	)

	s.AddLight(lights.NewPointLight(core.NewVec3(0, 3, 0), core.NewVec3(1, 1, 1), atten))
	s.AddLight(lights.NewAmbientLight(core.NewVec3(0.1, 0.1, 0.1)))
	return s
}
