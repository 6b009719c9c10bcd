package parametric

import (
	"errors"
	"math"
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/meshforge/pkg/mesh"
)

const eps = 1e-4

// flatSheet is the trivial surface z=0.
func flatSheet(u, v float64) v3.Vec {
	return v3.Vec{X: u, Y: v}
}

func unitDomain(uSeg, vSeg int) Domain {
	return Domain{UMin: 0, UMax: 1, USegments: uSeg, VMin: 0, VMax: 1, VSegments: vSeg}
}

func TestSampleGridSizes(t *testing.T) {
	b, err := Sample(unitDomain(4, 3), flatSheet)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.VertexCount() != 5*4 {
		t.Errorf("vertex count = %d, want 20", b.VertexCount())
	}
	if b.TriangleCount() != 4*3*2 {
		t.Errorf("triangle count = %d, want 24", b.TriangleCount())
	}
	if err := b.Validate(); err != nil {
		t.Errorf("sampled buffer failed validation: %v", err)
	}
}

func TestSampleRejectsBadArguments(t *testing.T) {
	var ia *mesh.InvalidArgumentError

	_, err := Sample(unitDomain(0, 3), flatSheet)
	if !errors.As(err, &ia) {
		t.Errorf("uSegments=0: expected InvalidArgumentError, got %v", err)
	}
	_, err = Sample(unitDomain(3, -1), flatSheet)
	if !errors.As(err, &ia) {
		t.Errorf("vSegments=-1: expected InvalidArgumentError, got %v", err)
	}
	_, err = Sample(unitDomain(3, 3), nil)
	if !errors.As(err, &ia) {
		t.Errorf("nil fn: expected InvalidArgumentError, got %v", err)
	}
}

func TestSampleUVsAreGridFractions(t *testing.T) {
	b, err := Sample(unitDomain(2, 2), flatSheet)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Vertex (i,j) carries uv (i/2, j/2); corners pin the range.
	if got := b.UV(0); got[0] != 0 || got[1] != 0 {
		t.Errorf("UV(0) = %v, want (0,0)", got)
	}
	last := b.VertexCount() - 1
	if got := b.UV(last); got[0] != 1 || got[1] != 1 {
		t.Errorf("UV(last) = %v, want (1,1)", got)
	}
	for i, uv := range b.UVs {
		if uv < 0 || uv > 1 {
			t.Fatalf("UVs[%d] = %v, outside [0,1]", i, uv)
		}
	}
}

func TestSampleFlatSheetNormals(t *testing.T) {
	b, err := Sample(unitDomain(3, 3), flatSheet)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// dS/du x dS/dv = +Z everywhere on the sheet.
	for i := 0; i < b.VertexCount(); i++ {
		n := b.Normal(i)
		if math.Abs(float64(n[2])-1) > eps {
			t.Fatalf("Normal(%d) = %v, want +Z", i, n)
		}
		fn := b.FaceNormal(i)
		if math.Abs(float64(fn[2])-1) > eps {
			t.Fatalf("FaceNormal(%d) = %v, want +Z", i, fn)
		}
	}
}

func TestSampleDegenerateNormalFallsBackToPosition(t *testing.T) {
	// A surface collapsing everything onto a ray from the origin: both
	// partials are parallel, so the cross product vanishes and the
	// normal falls back to the normalized sample position.
	ray := func(u, v float64) v3.Vec {
		return v3.Vec{X: 1 + u + v}
	}
	b, err := Sample(unitDomain(2, 2), ray)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < b.VertexCount(); i++ {
		n := b.Normal(i)
		if math.Abs(float64(n[0])-1) > eps {
			t.Fatalf("Normal(%d) = %v, want +X (normalized position)", i, n)
		}
	}
}

func TestSampleDegenerateAtOriginFallsBackToY(t *testing.T) {
	// Everything collapses to the origin: position fallback is
	// degenerate too, leaving the +Y fallback.
	point := func(u, v float64) v3.Vec {
		return v3.Vec{}
	}
	b, err := Sample(unitDomain(2, 2), point)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < b.VertexCount(); i++ {
		if n := b.Normal(i); n[1] != 1 {
			t.Fatalf("Normal(%d) = %v, want +Y fallback", i, n)
		}
	}
}

func TestSampleNormalsUnitLength(t *testing.T) {
	b, err := Torus(1.0, 0.3, 16, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < b.VertexCount(); i++ {
		if l := b.Normal(i).Len(); l < 1-eps || l > 1+eps {
			t.Fatalf("|Normal(%d)| = %v, want 1", i, l)
		}
	}
}
