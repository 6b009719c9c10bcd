package mesh

import (
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/go-gl/mathgl/mgl32"
)

const testEps = 1e-5

func mglVec3(x, y, z float32) mgl32.Vec3 {
	return mgl32.Vec3{x, y, z}
}

func nearVec(a, b mgl32.Vec3) bool {
	return a.Sub(b).Len() < testEps
}

// quadBuffer builds a 2-triangle unit quad in the XY plane with +Z
// normals.
func quadBuffer(t *testing.T) *Buffer {
	t.Helper()
	up := v3.Vec{Z: 1}
	b, err := Assemble(Geometry{
		Positions: []v3.Vec{{}, {X: 1}, {X: 1, Y: 1}, {Y: 1}},
		Normals:   []v3.Vec{up, up, up, up},
		Indices:   []uint32{0, 1, 2, 0, 2, 3},
	})
	if err != nil {
		t.Fatalf("quad assembly failed: %v", err)
	}
	return b
}

func TestApplyMatrixIdentityRoundTrip(t *testing.T) {
	b := quadBuffer(t)
	wantPos := append([]float32(nil), b.Positions...)
	wantNorm := append([]float32(nil), b.Normals...)
	wantFace := append([]float32(nil), b.FaceNormals...)

	b.ApplyMatrix(mgl32.Ident4())

	for i := range wantPos {
		if diff := b.Positions[i] - wantPos[i]; diff > testEps || diff < -testEps {
			t.Fatalf("Positions[%d] changed by %v under identity", i, diff)
		}
	}
	for i := range wantNorm {
		if diff := b.Normals[i] - wantNorm[i]; diff > testEps || diff < -testEps {
			t.Fatalf("Normals[%d] changed by %v under identity", i, diff)
		}
	}
	for i := range wantFace {
		if diff := b.FaceNormals[i] - wantFace[i]; diff > testEps || diff < -testEps {
			t.Fatalf("FaceNormals[%d] changed by %v under identity", i, diff)
		}
	}
}

func TestApplyMatrixTranslation(t *testing.T) {
	b := quadBuffer(t)
	b.ApplyMatrix(mgl32.Translate3D(2, 3, 4))

	if got := b.Position(0); !nearVec(got, mglVec3(2, 3, 4)) {
		t.Errorf("Position(0) = %v, want (2,3,4)", got)
	}
	// Translation must not touch direction vectors.
	if got := b.Normal(0); !nearVec(got, mglVec3(0, 0, 1)) {
		t.Errorf("Normal(0) = %v, want +Z", got)
	}
}

func TestApplyMatrixNonUniformScaleNormals(t *testing.T) {
	// A 45-degree normal under scale (1,2,1): the naive transform would
	// tilt it toward +Y, the inverse transpose tilts it toward +X.
	n := v3.Vec{X: 1, Y: 1}
	b, err := Assemble(Geometry{
		Positions: []v3.Vec{{}, {X: 1}, {Y: 1}},
		Normals:   []v3.Vec{SafeNormalize(n), SafeNormalize(n), SafeNormalize(n)},
		Indices:   []uint32{0, 1, 2},
	})
	if err != nil {
		t.Fatalf("assembly failed: %v", err)
	}

	b.ApplyMatrix(mgl32.Scale3D(1, 2, 1))

	got := b.Normal(0)
	// inverse-transpose = diag(1, 1/2, 1): (0.7071, 0.3536, 0) normalized.
	want := mglVec3(0.894427, 0.447214, 0)
	if !nearVec(got, want) {
		t.Errorf("Normal(0) = %v, want %v", got, want)
	}
	if l := got.Len(); l < 1-testEps || l > 1+testEps {
		t.Errorf("normal length = %v, want 1", l)
	}
}

func TestApplyMatrixSingularLinearPartKeepsNormals(t *testing.T) {
	b := quadBuffer(t)
	before := append([]float32(nil), b.Normals...)

	// Flatten to z=0: positions transform, normals stay untouched since
	// the 3x3 block is singular.
	b.ApplyMatrix(mgl32.Scale3D(1, 1, 0))

	for i := range before {
		if b.Normals[i] != before[i] {
			t.Fatalf("Normals[%d] changed under singular transform", i)
		}
	}
}

func TestSafeNormalize(t *testing.T) {
	v := SafeNormalize(v3.Vec{X: 3, Y: 4})
	if d := v.Length() - 1; d > testEps || d < -testEps {
		t.Errorf("length = %v, want 1", v.Length())
	}

	// Degenerate input comes back unchanged.
	z := v3.Vec{X: 1e-12}
	if got := SafeNormalize(z); got != z {
		t.Errorf("degenerate vector was modified: %v", got)
	}
}

func TestMidpoint(t *testing.T) {
	m := Midpoint(v3.Vec{X: 1, Y: 2, Z: 3}, v3.Vec{X: 3, Y: 2, Z: 1})
	want := v3.Vec{X: 2, Y: 2, Z: 2}
	if m != want {
		t.Errorf("Midpoint = %v, want %v", m, want)
	}
}
