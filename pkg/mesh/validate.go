package mesh

// Validate checks the parallel-array invariants on an already-built
// buffer: all per-vertex attributes cover the same vertex count, indices
// come in triples, and every index references a valid vertex. Buffers
// produced by Assemble always pass; the check exists for geometry that
// arrives from outside the generators.
func (b *Buffer) Validate() error {
	if len(b.Positions) == 0 {
		return violation("positions", "required attribute is missing or empty")
	}
	if len(b.Positions)%3 != 0 {
		return violation("positions", "length %d is not a multiple of 3", len(b.Positions))
	}
	n := len(b.Positions) / 3

	if len(b.Colors) != n*3 {
		return violation("colors", "have %d floats, want %d", len(b.Colors), n*3)
	}
	if len(b.Normals) != n*3 {
		return violation("normals", "have %d floats, want %d", len(b.Normals), n*3)
	}
	if len(b.FaceNormals) != n*3 {
		return violation("faceNormals", "have %d floats, want %d", len(b.FaceNormals), n*3)
	}
	if len(b.UVs) != n*2 {
		return violation("uvs", "have %d floats, want %d", len(b.UVs), n*2)
	}

	if len(b.Indices) == 0 {
		return violation("indices", "required attribute is missing or empty")
	}
	if len(b.Indices)%3 != 0 {
		return violation("indices", "length %d is not a multiple of 3", len(b.Indices))
	}
	for i, idx := range b.Indices {
		if int(idx) >= n {
			return violation("indices", "index %d at offset %d exceeds vertex count %d", idx, i, n)
		}
	}
	return nil
}
