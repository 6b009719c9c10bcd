// Package export writes generated mesh buffers to interchange formats:
// binary STL (through sdfx triangles) and Wavefront OBJ.
package export

import (
	"fmt"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/meshforge/pkg/mesh"
)

// Triangles expands an indexed buffer into sdfx triangles, one per index
// triple. Positions are widened back to float64; STL carries no other
// attributes, so normals/uvs/colors are dropped here.
func Triangles(b *mesh.Buffer) ([]*sdf.Triangle3, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	tris := make([]*sdf.Triangle3, 0, b.TriangleCount())
	for i := 0; i+2 < len(b.Indices); i += 3 {
		t := &sdf.Triangle3{}
		for j := 0; j < 3; j++ {
			vi := int(b.Indices[i+j]) * 3
			t[j] = v3.Vec{
				X: float64(b.Positions[vi]),
				Y: float64(b.Positions[vi+1]),
				Z: float64(b.Positions[vi+2]),
			}
		}
		tris = append(tris, t)
	}
	return tris, nil
}

// STL writes the buffer to path as binary STL.
func STL(b *mesh.Buffer, path string) error {
	tris, err := Triangles(b)
	if err != nil {
		return fmt.Errorf("stl export: %w", err)
	}
	if err := render.SaveSTL(path, tris); err != nil {
		return fmt.Errorf("stl export: %w", err)
	}
	return nil
}
