package mesh

import v3 "github.com/deadsy/sdfx/vec/v3"

// Geometry is the working-set representation the generators build in
// float64 before packing. Positions and Indices are required; every other
// attribute is optional and synthesized with a default when absent.
type Geometry struct {
	Positions   []v3.Vec
	Colors      []v3.Vec // RGB in [0,1]
	UVs         [][2]float64
	Normals     []v3.Vec
	FaceNormals []v3.Vec
	Indices     []uint32
}

// Defaults used for synthesized attributes.
var (
	defaultColor  = v3.Vec{X: 1, Y: 1, Z: 1} // white
	defaultNormal = v3.Vec{X: 0, Y: 1, Z: 0}
)

// Assemble packs a Geometry into the final float32 Buffer. It enforces the
// parallel-array invariant: positions and indices must be present, indices
// must come in triples and reference valid vertices, and any supplied
// optional attribute must match the vertex count. Absent optional
// attributes are filled in (white color, zero UV, +Y normals; face normals
// default to the smooth normals when those were supplied).
func Assemble(g Geometry) (*Buffer, error) {
	n := len(g.Positions)
	if n == 0 {
		return nil, violation("positions", "required attribute is missing or empty")
	}
	if len(g.Indices) == 0 {
		return nil, violation("indices", "required attribute is missing or empty")
	}
	if len(g.Indices)%3 != 0 {
		return nil, violation("indices", "length %d is not a multiple of 3", len(g.Indices))
	}
	for i, idx := range g.Indices {
		if int(idx) >= n {
			return nil, violation("indices", "index %d at offset %d exceeds vertex count %d", idx, i, n)
		}
	}
	if g.Colors != nil && len(g.Colors) != n {
		return nil, violation("colors", "have %d entries, want %d", len(g.Colors), n)
	}
	if g.UVs != nil && len(g.UVs) != n {
		return nil, violation("uvs", "have %d entries, want %d", len(g.UVs), n)
	}
	if g.Normals != nil && len(g.Normals) != n {
		return nil, violation("normals", "have %d entries, want %d", len(g.Normals), n)
	}
	if g.FaceNormals != nil && len(g.FaceNormals) != n {
		return nil, violation("faceNormals", "have %d entries, want %d", len(g.FaceNormals), n)
	}

	b := &Buffer{
		Positions: packVec3(g.Positions),
		Indices:   make([]uint32, len(g.Indices)),
	}
	copy(b.Indices, g.Indices)

	if g.Colors != nil {
		b.Colors = packVec3(g.Colors)
	} else {
		b.Colors = packUniform(defaultColor, n)
	}
	if g.Normals != nil {
		b.Normals = packVec3(g.Normals)
	} else {
		b.Normals = packUniform(defaultNormal, n)
	}
	if g.FaceNormals != nil {
		b.FaceNormals = packVec3(g.FaceNormals)
	} else if g.Normals != nil {
		b.FaceNormals = packVec3(g.Normals)
	} else {
		b.FaceNormals = packUniform(defaultNormal, n)
	}
	if g.UVs != nil {
		b.UVs = make([]float32, 0, n*2)
		for _, uv := range g.UVs {
			b.UVs = append(b.UVs, float32(uv[0]), float32(uv[1]))
		}
	} else {
		b.UVs = make([]float32, n*2)
	}

	return b, nil
}

func packVec3(vs []v3.Vec) []float32 {
	out := make([]float32, 0, len(vs)*3)
	for _, v := range vs {
		out = append(out, float32(v.X), float32(v.Y), float32(v.Z))
	}
	return out
}

func packUniform(v v3.Vec, n int) []float32 {
	out := make([]float32, 0, n*3)
	for i := 0; i < n; i++ {
		out = append(out, float32(v.X), float32(v.Y), float32(v.Z))
	}
	return out
}
