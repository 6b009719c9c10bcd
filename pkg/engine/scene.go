package engine

import "github.com/chazu/meshforge/pkg/mesh"

// NamedMesh is a generated mesh buffer plus the name it was emitted
// under.
type NamedMesh struct {
	Name   string
	Buffer *mesh.Buffer
}

// Scene is the output of one script evaluation: the meshes emitted by
// the script, in emission order.
type Scene struct {
	Meshes []NamedMesh
}

// New returns an empty scene.
func New() *Scene {
	return &Scene{}
}

// Add appends a mesh to the scene.
func (s *Scene) Add(name string, b *mesh.Buffer) {
	s.Meshes = append(s.Meshes, NamedMesh{Name: name, Buffer: b})
}

// Len returns the number of emitted meshes.
func (s *Scene) Len() int {
	return len(s.Meshes)
}
