package integrator

import (
	"slices"

	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// vacuumIndex is the refractive index outside every object
const vacuumIndex = 1.0

type mediumEntry struct {
	key      int
	material *material.Material
}

// MediumStack records the transparent objects a ray is currently inside,
// ordered by object key. The entry with the largest key is the current medium.
// A stack belongs to one primary ray and is not safe for concurrent use.
type MediumStack struct {
	entries []mediumEntry // sorted by key
}

// NewMediumStack returns an empty stack: the ray starts in vacuum
func NewMediumStack() *MediumStack {
	return &MediumStack{}
}

func (s *MediumStack) find(key int) (int, bool) {
	return slices.BinarySearchFunc(s.entries, key, func(e mediumEntry, k int) int {
		return e.key - k
	})
}

// Insert records entering the object with the given key. It reports false and
// leaves the stack unchanged if the key is already present.
func (s *MediumStack) Insert(key int, m *material.Material) bool {
	i, found := s.find(key)
	if found {
		return false
	}
	s.entries = slices.Insert(s.entries, i, mediumEntry{key: key, material: m})
	return true
}

// Remove records leaving the object with the given key and returns its material
func (s *MediumStack) Remove(key int) (*material.Material, bool) {
	i, found := s.find(key)
	if !found {
		return nil, false
	}
	m := s.entries[i].material
	s.entries = slices.Delete(s.entries, i, i+1)
	return m, true
}

// Top returns the current (innermost) medium
func (s *MediumStack) Top() (*material.Material, bool) {
	if len(s.entries) == 0 {
		return nil, false
	}
	return s.entries[len(s.entries)-1].material, true
}

// Index returns the refractive index of the current medium, or vacuum
func (s *MediumStack) Index() float64 {
	m, ok := s.Top()
	if !ok || m == nil {
		return vacuumIndex
	}
	return m.Index
}

// Len returns the number of media the ray is inside
func (s *MediumStack) Len() int {
	return len(s.entries)
}

// Keys returns the recorded object keys in ascending order
func (s *MediumStack) Keys() []int {
	keys := make([]int, len(s.entries))
	for i, e := range s.entries {
		keys[i] = e.key
	}
	return keys
}

// Reset empties the stack
func (s *MediumStack) Reset() {
	s.entries = s.entries[:0]
}
