package solid

import (
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/meshforge/pkg/mesh"
)

// edgeKey is the canonical (min,max) index pair for an undirected edge.
// Two faces sharing an edge resolve to the same key, so the midpoint
// vertex for that edge is created exactly once per subdivision pass.
type edgeKey struct {
	lo, hi int
}

func makeEdgeKey(a, b int) edgeKey {
	if a < b {
		return edgeKey{lo: a, hi: b}
	}
	return edgeKey{lo: b, hi: a}
}

// Subdivide replaces every triangle with four smaller ones, levels times.
// Edge midpoints are pushed back onto the unit sphere, which is what
// rounds a subdivided solid toward a sphere; the input vertices are
// expected to lie on the unit sphere already. levels == 0 returns the
// inputs unchanged. The face count grows by 4x per level.
func Subdivide(verts []v3.Vec, faces []Face, levels int) ([]v3.Vec, []Face) {
	for ; levels > 0; levels-- {
		verts, faces = subdivideOnce(verts, faces)
	}
	return verts, faces
}

// subdivideOnce performs a single 4-way split of every face. The midpoint
// cache is rebuilt per pass: the edges of pass k+1 connect vertices that
// did not exist in pass k.
func subdivideOnce(verts []v3.Vec, faces []Face) ([]v3.Vec, []Face) {
	outVerts := make([]v3.Vec, len(verts), len(verts)+len(faces)*3/2)
	copy(outVerts, verts)
	outFaces := make([]Face, 0, len(faces)*4)
	cache := make(map[edgeKey]int)

	midpointIndex := func(a, b int) int {
		key := makeEdgeKey(a, b)
		if idx, ok := cache[key]; ok {
			return idx
		}
		m := mesh.SafeNormalize(mesh.Midpoint(verts[a], verts[b]))
		outVerts = append(outVerts, m)
		idx := len(outVerts) - 1
		cache[key] = idx
		return idx
	}

	for _, f := range faces {
		v1, v2, v3i := f[0], f[1], f[2]
		a := midpointIndex(v1, v2)
		b := midpointIndex(v2, v3i)
		c := midpointIndex(v3i, v1)

		// The corner-corner-center split preserves the original winding.
		outFaces = append(outFaces,
			Face{v1, a, c},
			Face{v2, b, a},
			Face{v3i, c, b},
			Face{a, b, c},
		)
	}

	return outVerts, outFaces
}
