package parametric

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/meshforge/pkg/mesh"
)

// Polygon builds a flat regular n-gon in the XY plane, fan-triangulated
// from a center vertex. This is a direct construction rather than a
// sampled surface: every triangle shares the center, so a grid sampler
// would waste a full collapsed row on it. All normals face +Z. UVs are a
// planar projection of the unit circle into [0,1]x[0,1].
func Polygon(sides int, radius float64) (*mesh.Buffer, error) {
	if sides < 3 {
		return nil, mesh.InvalidArg("sides", sides, "must be at least 3")
	}
	if radius <= 0 {
		return nil, mesh.InvalidArg("radius", radius, "must be positive")
	}

	angle := 2 * math.Pi / float64(sides)
	up := v3.Vec{Z: 1}

	positions := make([]v3.Vec, 0, sides+1)
	colors := make([]v3.Vec, 0, sides+1)
	uvs := make([][2]float64, 0, sides+1)
	normals := make([]v3.Vec, 0, sides+1)

	// Center vertex, shared by every triangle of the fan.
	positions = append(positions, v3.Vec{})
	colors = append(colors, v3.Vec{X: 1, Y: 1, Z: 1})
	uvs = append(uvs, [2]float64{0.5, 0.5})
	normals = append(normals, up)

	indices := make([]uint32, 0, sides*3)
	for i := 0; i < sides; i++ {
		c, s := math.Cos(float64(i)*angle), math.Sin(float64(i)*angle)
		positions = append(positions, v3.Vec{X: radius * c, Y: radius * s})
		if i%2 == 0 {
			colors = append(colors, v3.Vec{X: 1})
		} else {
			colors = append(colors, v3.Vec{Z: 1})
		}
		uvs = append(uvs, [2]float64{c*0.5 + 0.5, s*0.5 + 0.5})
		normals = append(normals, up)

		current := uint32(i + 1)
		next := uint32((i+1)%sides + 1)
		indices = append(indices, 0, current, next)
	}

	return mesh.Assemble(mesh.Geometry{
		Positions:   positions,
		Colors:      colors,
		UVs:         uvs,
		Normals:     normals,
		FaceNormals: normals,
		Indices:     indices,
	})
}
