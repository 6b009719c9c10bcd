package solid

import (
	"errors"
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/meshforge/pkg/mesh"
)

const eps = 1e-5

func TestGenerateIcosahedron(t *testing.T) {
	b, err := Generate(Icosahedron, 1.0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.VertexCount() != 12 {
		t.Errorf("vertex count = %d, want 12", b.VertexCount())
	}
	if b.TriangleCount() != 20 {
		t.Errorf("triangle count = %d, want 20", b.TriangleCount())
	}
	if len(b.Indices) != 60 {
		t.Errorf("index count = %d, want 60", len(b.Indices))
	}
}

func TestGenerateSubdividedIcosahedron(t *testing.T) {
	b, err := Generate(Icosahedron, 1.0, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.VertexCount() != 42 {
		t.Errorf("vertex count = %d, want 42", b.VertexCount())
	}
	if b.TriangleCount() != 80 {
		t.Errorf("triangle count = %d, want 80", b.TriangleCount())
	}
	if len(b.Indices) != 240 {
		t.Errorf("index count = %d, want 240", len(b.Indices))
	}
}

func TestGenerateCube(t *testing.T) {
	b, err := Generate(Cube, 1.0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.VertexCount() != 8 {
		t.Errorf("vertex count = %d, want 8", b.VertexCount())
	}
	if b.TriangleCount() != 12 {
		t.Errorf("triangle count = %d, want 12", b.TriangleCount())
	}
}

func TestGenerateNamedUnknownKind(t *testing.T) {
	_, err := GenerateNamed("hexagon", 1.0, 0)
	var ia *mesh.InvalidArgumentError
	if !errors.As(err, &ia) {
		t.Fatalf("expected InvalidArgumentError, got %v", err)
	}
}

func TestGenerateRejectsBadParameters(t *testing.T) {
	if _, err := Generate(Cube, 0, 0); err == nil {
		t.Error("expected error for zero radius")
	}
	if _, err := Generate(Cube, -1, 0); err == nil {
		t.Error("expected error for negative radius")
	}
	if _, err := Generate(Cube, 1, -1); err == nil {
		t.Error("expected error for negative subdivisions")
	}
}

func TestGenerateVerticesOnSphere(t *testing.T) {
	for _, radius := range []float64{1.0, 2.5} {
		for _, k := range allKinds {
			b, err := Generate(k, radius, 1)
			if err != nil {
				t.Fatalf("%s: %v", k, err)
			}
			for i := 0; i < b.VertexCount(); i++ {
				p := b.Position(i)
				l := float64(p.Len())
				if l < radius-1e-4 || l > radius+1e-4 {
					t.Fatalf("%s r=%v: |vertex %d| = %v", k, radius, i, l)
				}
			}
		}
	}
}

func TestGenerateNormalsAreUnitLength(t *testing.T) {
	b, err := Generate(Dodecahedron, 1.0, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < b.VertexCount(); i++ {
		if l := b.Normal(i).Len(); l < 1-eps || l > 1+eps {
			t.Fatalf("|Normal(%d)| = %v, want 1", i, l)
		}
		if l := b.FaceNormal(i).Len(); l < 1-eps || l > 1+eps {
			t.Fatalf("|FaceNormal(%d)| = %v, want 1", i, l)
		}
	}
}

func TestFaceNormalsPointOutward(t *testing.T) {
	for _, k := range allKinds {
		verts, faces := normalizedBase(t, k)
		verts, faces = Subdivide(verts, faces, 1)
		for fi, f := range faces {
			n := faceNormal(verts, f)
			centroid := verts[f[0]].Add(verts[f[1]]).Add(verts[f[2]]).DivScalar(3)
			if centroid.Dot(n) < 0 {
				t.Fatalf("%s: face %d normal points inward", k, fi)
			}
		}
	}
}

func TestVertexNormalsFallbackForUnreferencedVertex(t *testing.T) {
	verts := []v3.Vec{{X: 1}, {Y: 1}, {Z: 1}, {X: -1}}
	faces := []Face{{0, 1, 2}} // vertex 3 unreferenced
	normals := vertexNormals(verts, faces)
	want := mesh.SafeNormalize(verts[3])
	if normals[3] != want {
		t.Errorf("unreferenced vertex normal = %v, want normalized position %v", normals[3], want)
	}
}

func TestSphericalUVRange(t *testing.T) {
	for _, k := range allKinds {
		b, err := Generate(k, 1.0, 2)
		if err != nil {
			t.Fatalf("%s: %v", k, err)
		}
		for i, uv := range b.UVs {
			if uv < 0 || uv > 1 {
				t.Fatalf("%s: UVs[%d] = %v, outside [0,1]", k, i, uv)
			}
		}
	}
}

func TestGeneratedBufferValidates(t *testing.T) {
	for _, k := range allKinds {
		b, err := Generate(k, 1.0, 1)
		if err != nil {
			t.Fatalf("%s: %v", k, err)
		}
		if err := b.Validate(); err != nil {
			t.Errorf("%s: generated buffer failed validation: %v", k, err)
		}
	}
}
