package solid

import (
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/meshforge/pkg/mesh"
)

// facePalette is the default per-face color rotation. Cosmetic only; a
// vertex shared by several faces takes the color of the first face that
// references it.
var facePalette = []v3.Vec{
	{X: 1}, {Y: 1}, {Z: 1},
	{Y: 1, Z: 1}, {X: 1, Z: 1}, {X: 1, Y: 1},
}

// unreferencedColor is used for vertices no face references.
var unreferencedColor = v3.Vec{X: 0.7, Y: 0.7, Z: 0.7}

// Generate builds the mesh buffer for a regular polyhedron circumscribed
// by a sphere of the given radius, after the requested number of 4-way
// face subdivisions. The pipeline is: catalog table, normalize onto the
// unit sphere, subdivide, scale by radius, then derive normals, spherical
// UVs and colors.
func Generate(kind Kind, radius float64, subdivisions int) (*mesh.Buffer, error) {
	if radius <= 0 {
		return nil, mesh.InvalidArg("radius", radius, "must be positive")
	}
	if subdivisions < 0 {
		return nil, mesh.InvalidArg("subdivisions", subdivisions, "must be >= 0")
	}

	verts, faces, err := base(kind)
	if err != nil {
		return nil, err
	}

	for i := range verts {
		verts[i] = mesh.SafeNormalize(verts[i])
	}
	verts, faces = Subdivide(verts, faces, subdivisions)

	unit := verts
	scaled := make([]v3.Vec, len(verts))
	for i, v := range unit {
		scaled[i] = v.MulScalar(radius)
	}

	normals := vertexNormals(scaled, faces)

	uvs := make([][2]float64, len(scaled))
	for i, v := range unit {
		uvs[i] = sphericalUV(v)
	}

	// Per-vertex face normals and palette colors, first referencing face
	// wins. Both stay length-N so the parallel-array invariant holds.
	faceNorms := make([]v3.Vec, len(scaled))
	colors := make([]v3.Vec, len(scaled))
	assigned := make([]bool, len(scaled))
	for fi, f := range faces {
		n := faceNormal(scaled, f)
		c := facePalette[fi%len(facePalette)]
		for _, vi := range f {
			if assigned[vi] {
				continue
			}
			faceNorms[vi] = n
			colors[vi] = c
			assigned[vi] = true
		}
	}
	for i := range scaled {
		if !assigned[i] {
			faceNorms[i] = normals[i]
			colors[i] = unreferencedColor
		}
	}

	indices := make([]uint32, 0, len(faces)*3)
	for _, f := range faces {
		indices = append(indices, uint32(f[0]), uint32(f[1]), uint32(f[2]))
	}

	return mesh.Assemble(mesh.Geometry{
		Positions:   scaled,
		Colors:      colors,
		UVs:         uvs,
		Normals:     normals,
		FaceNormals: faceNorms,
		Indices:     indices,
	})
}

// GenerateNamed is Generate with a string kind, for callers that take the
// solid name from user input (the DSL and CLI layers).
func GenerateNamed(kind string, radius float64, subdivisions int) (*mesh.Buffer, error) {
	k, err := ParseKind(kind)
	if err != nil {
		return nil, err
	}
	return Generate(k, radius, subdivisions)
}
