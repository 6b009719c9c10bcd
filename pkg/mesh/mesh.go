// Package mesh defines the triangle mesh buffer produced by the
// generators. A Buffer holds parallel per-vertex attribute arrays plus a
// triangle index array, all flat and ready for GPU upload: positions,
// colors, normals and face normals carry 3 floats per vertex, uvs carry 2,
// indices carry 3 uint32s per triangle.
package mesh

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Buffer is an immutable-by-convention triangle mesh. It is built once by
// Assemble (or the generators on top of it) and handed to consumers that
// read but never mutate it. ApplyMatrix is the one sanctioned in-place
// mutation and only makes sense before the buffer is shared.
type Buffer struct {
	Positions   []float32 `json:"positions"`   // [x0,y0,z0, x1,y1,z1, ...]
	Colors      []float32 `json:"colors"`      // [r0,g0,b0, ...]
	UVs         []float32 `json:"uvs"`         // [u0,v0, ...]
	Normals     []float32 `json:"normals"`     // smooth per-vertex normals
	FaceNormals []float32 `json:"faceNormals"` // flat normals, one per vertex (first referencing face wins)
	Indices     []uint32  `json:"indices"`     // [i0,i1,i2, ...] triangles
}

// VertexCount returns the number of vertices.
func (b *Buffer) VertexCount() int {
	return len(b.Positions) / 3
}

// TriangleCount returns the number of triangles.
func (b *Buffer) TriangleCount() int {
	return len(b.Indices) / 3
}

// IsEmpty returns true if the buffer has no geometry.
func (b *Buffer) IsEmpty() bool {
	return len(b.Positions) == 0
}

// Position returns the i-th vertex position.
func (b *Buffer) Position(i int) mgl32.Vec3 {
	return mgl32.Vec3{b.Positions[3*i], b.Positions[3*i+1], b.Positions[3*i+2]}
}

// Normal returns the i-th smooth vertex normal.
func (b *Buffer) Normal(i int) mgl32.Vec3 {
	return mgl32.Vec3{b.Normals[3*i], b.Normals[3*i+1], b.Normals[3*i+2]}
}

// FaceNormal returns the flat normal stored for the i-th vertex.
func (b *Buffer) FaceNormal(i int) mgl32.Vec3 {
	return mgl32.Vec3{b.FaceNormals[3*i], b.FaceNormals[3*i+1], b.FaceNormals[3*i+2]}
}

// UV returns the i-th texture coordinate.
func (b *Buffer) UV(i int) mgl32.Vec2 {
	return mgl32.Vec2{b.UVs[2*i], b.UVs[2*i+1]}
}

// Bounds returns the axis-aligned bounding box of the positions.
// An empty buffer yields a (+Inf, -Inf) box.
func (b *Buffer) Bounds() (min, max mgl32.Vec3) {
	inf := math32.Inf(1)
	min = mgl32.Vec3{inf, inf, inf}
	max = mgl32.Vec3{-inf, -inf, -inf}
	for i := 0; i+2 < len(b.Positions); i += 3 {
		for k := 0; k < 3; k++ {
			min[k] = math32.Min(min[k], b.Positions[i+k])
			max[k] = math32.Max(max[k], b.Positions[i+k])
		}
	}
	return min, max
}
