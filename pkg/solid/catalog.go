// Package solid generates triangulated meshes for the five regular
// polyhedra, optionally rounded toward a sphere by recursive face
// subdivision. All generation is pure computation over value types; a
// call owns everything it allocates and no global state is touched.
package solid

import (
	"math"
	"strings"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/meshforge/pkg/mesh"
)

// Kind identifies a base polyhedron.
type Kind int

const (
	Tetrahedron Kind = iota
	Octahedron
	Cube
	Icosahedron
	Dodecahedron
)

var kindNames = map[Kind]string{
	Tetrahedron:  "tetrahedron",
	Octahedron:   "octahedron",
	Cube:         "cube",
	Icosahedron:  "icosahedron",
	Dodecahedron: "dodecahedron",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKind converts a solid name to its Kind. Unknown names are an
// InvalidArgument error; there is no silent fallback.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == strings.ToLower(name) {
			return k, nil
		}
	}
	return 0, mesh.InvalidArg("kind", name,
		"must be tetrahedron, octahedron, cube, icosahedron, or dodecahedron")
}

// Face is an ordered triple of vertex indices. The winding of the catalog
// tables is not guaranteed consistent; normals are outward-corrected
// downstream.
type Face [3]int

// base returns the canonical vertex and triangle tables for a kind. The
// vertices are not yet normalized onto the unit sphere.
func base(k Kind) ([]v3.Vec, []Face, error) {
	switch k {
	case Tetrahedron:
		t := (1.0 + math.Sqrt(2.0)) / 2.0
		verts := []v3.Vec{
			{X: -1, Y: -t, Z: 0}, {X: 1, Y: -t, Z: 0},
			{X: 0, Y: 1, Z: t}, {X: 0, Y: 1, Z: -t},
		}
		faces := []Face{{2, 1, 0}, {2, 3, 1}, {0, 3, 2}, {1, 3, 0}}
		return verts, faces, nil

	case Octahedron:
		verts := []v3.Vec{
			{X: 1}, {X: -1}, {Y: 1}, {Y: -1}, {Z: 1}, {Z: -1},
		}
		faces := []Face{
			{4, 0, 2}, {4, 2, 1}, {4, 1, 3}, {4, 3, 0},
			{5, 2, 0}, {5, 1, 2}, {5, 3, 1}, {5, 0, 3},
		}
		return verts, faces, nil

	case Cube:
		verts := []v3.Vec{
			{X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1},
			{X: 1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: -1},
			{X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1},
			{X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1},
		}
		faces := []Face{
			{0, 2, 1}, {0, 3, 2}, // front
			{4, 5, 7}, {5, 6, 7}, // back
			{0, 4, 7}, {0, 7, 3}, // left
			{1, 2, 6}, {1, 6, 5}, // right
			{3, 7, 6}, {3, 6, 2}, // top
			{0, 1, 5}, {0, 5, 4}, // bottom
		}
		return verts, faces, nil

	case Icosahedron:
		t := (1.0 + math.Sqrt(5.0)) / 2.0
		verts := []v3.Vec{
			{X: -1, Y: t}, {X: 1, Y: t}, {X: -1, Y: -t}, {X: 1, Y: -t},
			{Y: -1, Z: t}, {Y: 1, Z: t}, {Y: -1, Z: -t}, {Y: 1, Z: -t},
			{X: t, Z: -1}, {X: t, Z: 1}, {X: -t, Z: -1}, {X: -t, Z: 1},
		}
		faces := []Face{
			{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
			{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
			{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
			{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
		}
		return verts, faces, nil

	case Dodecahedron:
		verts := []v3.Vec{
			{Z: 1.070466},
			{X: .7136442, Z: .7978784}, {X: -.3568221, Y: .618034, Z: .7978784},
			{X: -.3568221, Y: -.618034, Z: .7978784},
			{X: .7978784, Y: .618034, Z: .3568221}, {X: .7978784, Y: -.618034, Z: .3568221},
			{X: -.9341724, Y: .381966, Z: .3568221}, {X: .1362939, Y: 1, Z: .3568221},
			{X: .1362939, Y: -1, Z: .3568221}, {X: -.9341724, Y: -.381966, Z: .3568221},
			{X: .9341724, Y: .381966, Z: -.3568221}, {X: .9341724, Y: -.381966, Z: -.3568221},
			{X: -.7978784, Y: .618034, Z: -.3568221}, {X: -.1362939, Y: 1, Z: -.3568221},
			{X: -.1362939, Y: -1, Z: -.3568221}, {X: -.7978784, Y: -.618034, Z: -.3568221},
			{X: .3568221, Y: .618034, Z: -.7978784}, {X: .3568221, Y: -.618034, Z: -.7978784},
			{X: -.7136442, Z: -.7978784}, {Z: -1.070466},
		}
		pentagons := [][5]int{
			{0, 1, 4, 7, 2}, {0, 2, 6, 9, 3}, {0, 3, 8, 5, 1},
			{1, 5, 11, 10, 4}, {2, 7, 13, 12, 6}, {3, 9, 15, 14, 8},
			{4, 10, 16, 13, 7}, {5, 8, 14, 17, 11}, {6, 12, 18, 15, 9},
			{10, 11, 17, 19, 16}, {12, 13, 16, 19, 18}, {14, 15, 18, 19, 17},
		}
		// Fan-triangulate each pentagon from its first vertex.
		faces := make([]Face, 0, len(pentagons)*3)
		for _, p := range pentagons {
			faces = append(faces,
				Face{p[0], p[1], p[2]},
				Face{p[0], p[2], p[3]},
				Face{p[0], p[3], p[4]},
			)
		}
		return verts, faces, nil
	}

	return nil, nil, mesh.InvalidArg("kind", int(k),
		"must be tetrahedron, octahedron, cube, icosahedron, or dodecahedron")
}
