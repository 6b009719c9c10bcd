package mesh

import v3 "github.com/deadsy/sdfx/vec/v3"

// degenerate is the length below which a vector is treated as zero.
const degenerate = 1e-8

// SafeNormalize returns v scaled to unit length, or v unchanged if its
// length is below the degeneracy threshold. The guard keeps zero vectors
// from turning into NaNs deep inside the generation pipeline.
func SafeNormalize(v v3.Vec) v3.Vec {
	l := v.Length()
	if l < degenerate {
		return v
	}
	return v.DivScalar(l)
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b v3.Vec) v3.Vec {
	return a.Add(b).MulScalar(0.5)
}
