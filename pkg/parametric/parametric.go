// Package parametric samples 2-parameter surface functions over a
// rectangular (u,v) grid and emits indexed, quad-triangulated mesh
// buffers. The torus, plane and disk constructors are thin closed-form
// surface functions over the one shared sampler.
package parametric

import (
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/meshforge/pkg/mesh"
)

// SurfaceFunc maps a parameter pair to a point on the surface.
type SurfaceFunc func(u, v float64) v3.Vec

// Domain describes the rectangular parameter region to sample and how
// densely to sample it. The grid has (USegments+1) x (VSegments+1)
// points.
type Domain struct {
	UMin, UMax float64
	USegments  int
	VMin, VMax float64
	VSegments  int
}

// derivativeStep is the central-difference step as a fraction of one
// segment.
const derivativeStep = 0.01

// colorCycle is the cosmetic per-sample color rotation, indexed by grid
// coordinates.
var colorCycle = []v3.Vec{
	{X: 1}, {Y: 1}, {Z: 1},
	{X: 1, Y: 1}, {Y: 1, Z: 1}, {X: 1, Z: 1},
}

// flatFallback replaces a face normal that degenerates to zero.
var flatFallback = v3.Vec{Y: 1}

// Sample evaluates fn over the domain grid and builds an indexed mesh.
// Each grid cell becomes two triangles with a consistent diagonal. Vertex
// normals come from central-difference partial derivatives of fn; face
// normals come from the realized triangle vertices, so the two can
// disagree slightly in high-curvature regions. No outward correction is
// applied: a parametric patch has no origin to be outward from.
func Sample(d Domain, fn SurfaceFunc) (*mesh.Buffer, error) {
	if fn == nil {
		return nil, mesh.InvalidArg("fn", nil, "surface function is required")
	}
	if d.USegments <= 0 {
		return nil, mesh.InvalidArg("uSegments", d.USegments, "must be positive")
	}
	if d.VSegments <= 0 {
		return nil, mesh.InvalidArg("vSegments", d.VSegments, "must be positive")
	}

	uStep := (d.UMax - d.UMin) / float64(d.USegments)
	vStep := (d.VMax - d.VMin) / float64(d.VSegments)
	rows, cols := d.USegments+1, d.VSegments+1

	positions := make([]v3.Vec, 0, rows*cols)
	normals := make([]v3.Vec, 0, rows*cols)
	uvs := make([][2]float64, 0, rows*cols)
	colors := make([]v3.Vec, 0, rows*cols)

	for i := 0; i < rows; i++ {
		u := d.UMin + float64(i)*uStep
		for j := 0; j < cols; j++ {
			v := d.VMin + float64(j)*vStep
			positions = append(positions, fn(u, v))
			normals = append(normals, surfaceNormal(fn, u, v, uStep, vStep))
			uvs = append(uvs, [2]float64{
				float64(i) / float64(d.USegments),
				float64(j) / float64(d.VSegments),
			})
			colors = append(colors, colorCycle[(i+j)%len(colorCycle)])
		}
	}

	// Quad split with a single diagonal direction across the grid:
	// (i0,i1,i2) and (i0,i2,i3) for every cell.
	indices := make([]uint32, 0, d.USegments*d.VSegments*6)
	faceNorms := make([]v3.Vec, len(positions))
	assigned := make([]bool, len(positions))

	emit := func(a, b, c int) {
		indices = append(indices, uint32(a), uint32(b), uint32(c))
		n := triangleNormal(positions[a], positions[b], positions[c])
		for _, vi := range []int{a, b, c} {
			if !assigned[vi] {
				faceNorms[vi] = n
				assigned[vi] = true
			}
		}
	}

	for i := 0; i < d.USegments; i++ {
		for j := 0; j < d.VSegments; j++ {
			i0 := i*cols + j
			i1 := (i+1)*cols + j
			i2 := (i+1)*cols + j + 1
			i3 := i*cols + j + 1
			emit(i0, i1, i2)
			emit(i0, i2, i3)
		}
	}

	for i := range faceNorms {
		if !assigned[i] {
			faceNorms[i] = normals[i]
		}
	}

	return mesh.Assemble(mesh.Geometry{
		Positions:   positions,
		Colors:      colors,
		UVs:         uvs,
		Normals:     normals,
		FaceNormals: faceNorms,
		Indices:     indices,
	})
}

// surfaceNormal estimates the surface normal at (u,v) from
// central-difference partial derivatives. When the cross product
// degenerates (poles, self-intersections) it falls back to the normalized
// position of the sample point, and to +Y if that is degenerate too.
func surfaceNormal(fn SurfaceFunc, u, v, uStep, vStep float64) v3.Vec {
	du := derivativeStep * uStep
	dv := derivativeStep * vStep

	dU := fn(u+du, v).Sub(fn(u-du, v)).DivScalar(2 * du)
	dV := fn(u, v+dv).Sub(fn(u, v-dv)).DivScalar(2 * dv)

	n := dU.Cross(dV)
	if n.Length() < 1e-8 {
		p := fn(u, v)
		if p.Length() < 1e-8 {
			return flatFallback
		}
		return mesh.SafeNormalize(p)
	}
	return mesh.SafeNormalize(n)
}

// triangleNormal computes the plane normal of a realized triangle, with
// the +Y fallback for degenerate (zero-area) triangles.
func triangleNormal(p1, p2, p3 v3.Vec) v3.Vec {
	n := p2.Sub(p1).Cross(p3.Sub(p1))
	if n.Length() < 1e-8 {
		return flatFallback
	}
	return mesh.SafeNormalize(n)
}
