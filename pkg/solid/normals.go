package solid

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/meshforge/pkg/mesh"
)

// faceNormal computes the unit normal of a face, flipped to point away
// from the origin when necessary. The outward test compares the normal
// against the face centroid, which is valid because every solid here is
// convex and centered at the origin. Parametric surfaces must not use
// this correction.
func faceNormal(verts []v3.Vec, f Face) v3.Vec {
	v0, v1, v2 := verts[f[0]], verts[f[1]], verts[f[2]]
	n := mesh.SafeNormalize(v1.Sub(v0).Cross(v2.Sub(v0)))

	centroid := v0.Add(v1).Add(v2).DivScalar(3)
	if centroid.Dot(n) < 0 {
		n = n.MulScalar(-1)
	}
	return n
}

// vertexNormals averages the outward-corrected normals of every face that
// references a vertex, then renormalizes. A vertex referenced by no face
// falls back to its own normalized position as a pseudo-normal; for an
// origin-centered solid that is the best guess available.
func vertexNormals(verts []v3.Vec, faces []Face) []v3.Vec {
	sums := make([]v3.Vec, len(verts))
	counts := make([]int, len(verts))

	for _, f := range faces {
		n := faceNormal(verts, f)
		for _, vi := range f {
			sums[vi] = sums[vi].Add(n)
			counts[vi]++
		}
	}

	normals := make([]v3.Vec, len(verts))
	for i := range verts {
		if counts[i] > 0 {
			normals[i] = mesh.SafeNormalize(sums[i].DivScalar(float64(counts[i])))
		} else {
			normals[i] = mesh.SafeNormalize(verts[i])
		}
	}
	return normals
}

// sphericalUV projects a unit vector onto [0,1]x[0,1] texture space.
// There is a seam along the x=0,z<0 meridian and singularities at the
// poles; both are inherited behavior, not defects.
func sphericalUV(v v3.Vec) [2]float64 {
	u := 0.5 + math.Atan2(v.X, v.Z)/(2*math.Pi)
	w := 0.5 + math.Asin(clamp(v.Y, -1, 1))/math.Pi
	return [2]float64{u, w}
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
