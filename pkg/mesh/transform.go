package mesh

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// ApplyMatrix transforms the buffer in place. Positions go through the
// full 4x4 matrix; vertex and face normals go through the inverse
// transpose of the upper-left 3x3 block and are renormalized afterwards,
// which keeps them correct under non-uniform scaling. If the 3x3 block is
// singular the normals are left untouched. Returns the buffer for
// chaining.
func (b *Buffer) ApplyMatrix(m mgl32.Mat4) *Buffer {
	for i := 0; i+2 < len(b.Positions); i += 3 {
		p := mgl32.TransformCoordinate(mgl32.Vec3{b.Positions[i], b.Positions[i+1], b.Positions[i+2]}, m)
		b.Positions[i], b.Positions[i+1], b.Positions[i+2] = p[0], p[1], p[2]
	}

	lin := m.Mat3()
	if lin.Det() == 0 {
		return b
	}
	normalMat := lin.Inv().Transpose()
	transformDirections(b.Normals, normalMat)
	transformDirections(b.FaceNormals, normalMat)
	return b
}

// transformDirections applies a 3x3 matrix to every packed vec3 in a and
// renormalizes the results in place.
func transformDirections(a []float32, m mgl32.Mat3) {
	for i := 0; i+2 < len(a); i += 3 {
		v := m.Mul3x1(mgl32.Vec3{a[i], a[i+1], a[i+2]})
		l := math32.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
		if l < degenerate {
			continue
		}
		a[i], a[i+1], a[i+2] = v[0]/l, v[1]/l, v[2]/l
	}
}
