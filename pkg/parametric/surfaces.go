package parametric

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/meshforge/pkg/mesh"
)

// Torus builds a torus mesh. majorRadius runs from the torus center to
// the tube center, minorRadius is the tube radius. u sweeps the major
// circle, v the tube.
func Torus(majorRadius, minorRadius float64, radialSegments, tubularSegments int) (*mesh.Buffer, error) {
	if majorRadius <= 0 {
		return nil, mesh.InvalidArg("majorRadius", majorRadius, "must be positive")
	}
	if minorRadius <= 0 {
		return nil, mesh.InvalidArg("minorRadius", minorRadius, "must be positive")
	}

	fn := func(u, v float64) v3.Vec {
		return v3.Vec{
			X: (majorRadius + minorRadius*math.Cos(v)) * math.Cos(u),
			Y: (majorRadius + minorRadius*math.Cos(v)) * math.Sin(u),
			Z: minorRadius * math.Sin(v),
		}
	}

	return Sample(Domain{
		UMin: 0, UMax: 2 * math.Pi, USegments: radialSegments,
		VMin: 0, VMax: 2 * math.Pi, VSegments: tubularSegments,
	}, fn)
}

// Plane builds a flat rectangle in the XY plane, centered at the origin.
func Plane(width, height float64, widthSegments, heightSegments int) (*mesh.Buffer, error) {
	if width <= 0 {
		return nil, mesh.InvalidArg("width", width, "must be positive")
	}
	if height <= 0 {
		return nil, mesh.InvalidArg("height", height, "must be positive")
	}

	fn := func(u, v float64) v3.Vec {
		return v3.Vec{X: u, Y: v}
	}

	return Sample(Domain{
		UMin: -width / 2, UMax: width / 2, USegments: widthSegments,
		VMin: -height / 2, VMax: height / 2, VSegments: heightSegments,
	}, fn)
}

// Disk builds a flat disk in the XY plane as a polar patch: u is the
// angle, v the distance from the center. The center row collapses to a
// single point geometrically; its normals take the degenerate-case
// fallback path.
func Disk(radius float64, segments, rings int) (*mesh.Buffer, error) {
	if radius <= 0 {
		return nil, mesh.InvalidArg("radius", radius, "must be positive")
	}

	fn := func(u, v float64) v3.Vec {
		return v3.Vec{X: v * math.Cos(u), Y: v * math.Sin(u)}
	}

	return Sample(Domain{
		UMin: 0, UMax: 2 * math.Pi, USegments: segments,
		VMin: 0, VMax: radius, VSegments: rings,
	}, fn)
}
