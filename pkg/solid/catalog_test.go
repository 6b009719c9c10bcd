package solid

import (
	"errors"
	"testing"

	"github.com/chazu/meshforge/pkg/mesh"
)

var allKinds = []Kind{Tetrahedron, Octahedron, Cube, Icosahedron, Dodecahedron}

func TestBaseTableSizes(t *testing.T) {
	cases := []struct {
		kind  Kind
		verts int
		faces int
	}{
		{Tetrahedron, 4, 4},
		{Octahedron, 6, 8},
		{Cube, 8, 12},
		{Icosahedron, 12, 20},
		{Dodecahedron, 20, 36}, // 12 pentagons x 3 fan triangles
	}
	for _, tc := range cases {
		verts, faces, err := base(tc.kind)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.kind, err)
		}
		if len(verts) != tc.verts {
			t.Errorf("%s: %d vertices, want %d", tc.kind, len(verts), tc.verts)
		}
		if len(faces) != tc.faces {
			t.Errorf("%s: %d faces, want %d", tc.kind, len(faces), tc.faces)
		}
	}
}

func TestBaseFaceIndicesInRange(t *testing.T) {
	for _, k := range allKinds {
		verts, faces, err := base(k)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", k, err)
		}
		for fi, f := range faces {
			for _, vi := range f {
				if vi < 0 || vi >= len(verts) {
					t.Fatalf("%s: face %d references vertex %d of %d", k, fi, vi, len(verts))
				}
			}
		}
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range allKinds {
		got, err := ParseKind(k.String())
		if err != nil {
			t.Fatalf("ParseKind(%q): %v", k.String(), err)
		}
		if got != k {
			t.Errorf("ParseKind(%q) = %v, want %v", k.String(), got, k)
		}
	}

	// Case-insensitive.
	if k, err := ParseKind("Icosahedron"); err != nil || k != Icosahedron {
		t.Errorf("ParseKind(\"Icosahedron\") = %v, %v", k, err)
	}
}

func TestParseKindUnknown(t *testing.T) {
	_, err := ParseKind("hexagon")
	var ia *mesh.InvalidArgumentError
	if !errors.As(err, &ia) {
		t.Fatalf("expected InvalidArgumentError, got %v", err)
	}
}
