package engine

import (
	"fmt"
	"strings"
	"sync/atomic"

	zygo "github.com/glycerine/zygomys/zygo"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/chazu/meshforge/pkg/mesh"
	"github.com/chazu/meshforge/pkg/parametric"
	"github.com/chazu/meshforge/pkg/solid"
)

// maxSubdivisions caps the subdivision level accepted from scripts.
// Generation itself is unbounded; this keeps interactive evaluation well
// inside the EvalTimeout (each level quadruples the face count).
const maxSubdivisions = 5

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// preprocessSource transforms meshforge Lisp source code before passing
// it to zygomys. It performs two transformations:
//
//  1. Keyword conversion: :keyword -> "__kw_keyword" (string literal)
//     This avoids the need to register keyword symbols as globals, which
//     would conflict with user-defined variables of the same name.
//
//  2. Kebab-case to underscore: radial-segments -> radial_segments
//     zygomys does not allow hyphens in identifiers (it interprets them
//     as the subtraction operator). This converts kebab-case identifiers
//     to underscore form outside of strings and comments.
//
// Both transformations respect string literal boundaries and line comments.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		// Skip double-quoted string literals.
		if b[i] == '"' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Skip backtick-quoted string literals.
		if b[i] == '`' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '`' {
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Convert ; line comments to // comments for zygomys.
		// zygomys uses // for line comments, not the traditional Lisp ;.
		if b[i] == ';' {
			result = append(result, '/', '/')
			i++
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Transform :keyword to "__kw_keyword".
		if b[i] == ':' && i+1 < len(b) {
			// Preserve := (assignment operator).
			if b[i+1] == '=' {
				result = append(result, b[i], b[i+1])
				i += 2
				continue
			}
			if isLetter(b[i+1]) {
				j := i + 1
				for j < len(b) && isKWChar(b[j]) {
					j++
				}
				kwName := strings.ReplaceAll(string(b[i+1:j]), "-", "_")
				result = append(result, '"')
				result = append(result, []byte(kwPrefix)...)
				result = append(result, []byte(kwName)...)
				result = append(result, '"')
				i = j
				continue
			}
		}
		// Transform kebab-case identifiers: alpha-alpha -> alpha_alpha.
		// Only when the hyphen sits between identifier characters (not a
		// minus operator).
		if b[i] == '-' && i > 0 && i+1 < len(b) &&
			isIdentChar(b[i-1]) && isIdentStartChar(b[i+1]) {
			result = append(result, '_')
			i++
			continue
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

func isIdentStartChar(c byte) bool {
	return isLetter(c)
}

// ---------------------------------------------------------------------------
// Custom Sexp types
// ---------------------------------------------------------------------------

// sexpMesh wraps a generated mesh.Buffer so it can flow between builtins.
type sexpMesh struct {
	buf *mesh.Buffer
}

func (m *sexpMesh) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(mesh %dv %dt)", m.buf.VertexCount(), m.buf.TriangleCount())
}
func (m *sexpMesh) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// isKW checks if a Sexp is a preprocessed keyword string.
// Returns the keyword name (without prefix) and true if it is.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds the result of parsing a mixed positional+keyword argument
// list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
// Keywords are identified by the __kw_ prefix added during preprocessing.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		name, ok := isKW(args[i])
		if ok {
			if i+1 < len(args) {
				result.kw[name] = args[i+1]
				i += 2
			} else {
				// Keyword at end with no value — treat as flag with nil.
				result.kw[name] = zygo.SexpNull
				i++
			}
		} else {
			result.positional = append(result.positional, args[i])
			i++
		}
	}
	return result
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toInt extracts an int from a Sexp.
func toInt(s zygo.Sexp) (int, error) {
	if v, ok := s.(*zygo.SexpInt); ok {
		return int(v.Val), nil
	}
	return 0, fmt.Errorf("expected integer, got %T (%s)", s, s.SexpString(nil))
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// toKeywordString extracts a keyword name or plain string from a Sexp.
// Handles both preprocessed keywords (__kw_cube) and plain strings
// ("cube").
func toKeywordString(s zygo.Sexp) (string, error) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", fmt.Errorf("expected keyword or string, got %T (%s)", s, s.SexpString(nil))
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], nil
	}
	return str.S, nil
}

// toMesh extracts a mesh.Buffer from a sexpMesh.
func toMesh(s zygo.Sexp) (*mesh.Buffer, error) {
	if m, ok := s.(*sexpMesh); ok {
		return m.buf, nil
	}
	return nil, fmt.Errorf("expected mesh, got %T (%s)", s, s.SexpString(nil))
}

// floatKW reads an optional keyword number, keeping def when absent.
func floatKW(pa kwArgs, name string, def float64) (float64, error) {
	v, ok := pa.kw[name]
	if !ok {
		return def, nil
	}
	f, err := toFloat64(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return f, nil
}

// intKW reads an optional keyword integer, keeping def when absent.
func intKW(pa kwArgs, name string, def int) (int, error) {
	v, ok := pa.kw[name]
	if !ok {
		return def, nil
	}
	n, err := toInt(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Anonymous mesh naming
// ---------------------------------------------------------------------------

var meshCounter uint64

func nextMeshName() string {
	n := atomic.AddUint64(&meshCounter, 1)
	return fmt.Sprintf("mesh_%d", n)
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs the meshforge DSL builtins into a zygomys
// environment. Generator builtins return mesh values; transform builtins
// mutate and return them; emit adds them to the scene.
//
// Source code must be preprocessed with preprocessSource() before
// evaluation so that :keyword tokens are converted to recognizable string
// literals.
func registerBuiltins(env *zygo.Zlisp, s *Scene) {

	// -----------------------------------------------------------------------
	// (polyhedron :kind "icosahedron" :radius 1.0 :subdivisions 2)
	// -----------------------------------------------------------------------
	env.AddFunction("polyhedron", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)

		kindName := "icosahedron"
		if v, ok := pa.kw["kind"]; ok {
			k, err := toKeywordString(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("polyhedron: kind: %w", err)
			}
			kindName = k
		}
		radius, err := floatKW(pa, "radius", 1.0)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("polyhedron: %w", err)
		}
		subdivisions, err := intKW(pa, "subdivisions", 0)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("polyhedron: %w", err)
		}
		if subdivisions > maxSubdivisions {
			return zygo.SexpNull, fmt.Errorf("polyhedron: subdivisions %d exceeds limit %d",
				subdivisions, maxSubdivisions)
		}

		buf, err := solid.GenerateNamed(kindName, radius, subdivisions)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("polyhedron: %w", err)
		}
		return &sexpMesh{buf: buf}, nil
	})

	// -----------------------------------------------------------------------
	// (torus :major-radius 1.0 :minor-radius 0.3
	//        :radial-segments 32 :tubular-segments 16)
	// -----------------------------------------------------------------------
	env.AddFunction("torus", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)

		major, err := floatKW(pa, "major_radius", 1.0)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("torus: %w", err)
		}
		minor, err := floatKW(pa, "minor_radius", 0.3)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("torus: %w", err)
		}
		radial, err := intKW(pa, "radial_segments", 32)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("torus: %w", err)
		}
		tubular, err := intKW(pa, "tubular_segments", 16)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("torus: %w", err)
		}

		buf, err := parametric.Torus(major, minor, radial, tubular)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("torus: %w", err)
		}
		return &sexpMesh{buf: buf}, nil
	})

	// -----------------------------------------------------------------------
	// (plane :width 1 :height 1 :width-segments 8 :height-segments 8)
	// -----------------------------------------------------------------------
	env.AddFunction("plane", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)

		width, err := floatKW(pa, "width", 1.0)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("plane: %w", err)
		}
		height, err := floatKW(pa, "height", 1.0)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("plane: %w", err)
		}
		ws, err := intKW(pa, "width_segments", 8)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("plane: %w", err)
		}
		hs, err := intKW(pa, "height_segments", 8)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("plane: %w", err)
		}

		buf, err := parametric.Plane(width, height, ws, hs)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("plane: %w", err)
		}
		return &sexpMesh{buf: buf}, nil
	})

	// -----------------------------------------------------------------------
	// (disk :radius 1 :segments 32 :rings 4)
	// -----------------------------------------------------------------------
	env.AddFunction("disk", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)

		radius, err := floatKW(pa, "radius", 1.0)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("disk: %w", err)
		}
		segments, err := intKW(pa, "segments", 32)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("disk: %w", err)
		}
		rings, err := intKW(pa, "rings", 4)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("disk: %w", err)
		}

		buf, err := parametric.Disk(radius, segments, rings)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("disk: %w", err)
		}
		return &sexpMesh{buf: buf}, nil
	})

	// -----------------------------------------------------------------------
	// (polygon :sides 6 :radius 1)
	// -----------------------------------------------------------------------
	env.AddFunction("polygon", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)

		sides, err := intKW(pa, "sides", 3)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("polygon: %w", err)
		}
		radius, err := floatKW(pa, "radius", 1.0)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("polygon: %w", err)
		}

		buf, err := parametric.Polygon(sides, radius)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("polygon: %w", err)
		}
		return &sexpMesh{buf: buf}, nil
	})

	// -----------------------------------------------------------------------
	// (translate m x y z)
	// -----------------------------------------------------------------------
	env.AddFunction("translate", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		buf, x, y, z, err := meshAndXYZ("translate", args)
		if err != nil {
			return zygo.SexpNull, err
		}
		buf.ApplyMatrix(mgl32.Translate3D(float32(x), float32(y), float32(z)))
		return args[0], nil
	})

	// -----------------------------------------------------------------------
	// (scale m x y z)
	// -----------------------------------------------------------------------
	env.AddFunction("scale", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		buf, x, y, z, err := meshAndXYZ("scale", args)
		if err != nil {
			return zygo.SexpNull, err
		}
		buf.ApplyMatrix(mgl32.Scale3D(float32(x), float32(y), float32(z)))
		return args[0], nil
	})

	// -----------------------------------------------------------------------
	// (rotate-deg m x y z) — Euler angles in degrees, applied X then Y
	// then Z.
	// -----------------------------------------------------------------------
	env.AddFunction("rotate_deg", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		buf, x, y, z, err := meshAndXYZ("rotate-deg", args)
		if err != nil {
			return zygo.SexpNull, err
		}
		m := mgl32.HomogRotate3DZ(mgl32.DegToRad(float32(z))).
			Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(float32(y)))).
			Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(float32(x))))
		buf.ApplyMatrix(m)
		return args[0], nil
	})

	// -----------------------------------------------------------------------
	// (emit m :name "ball")
	// -----------------------------------------------------------------------
	env.AddFunction("emit", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) < 1 {
			return zygo.SexpNull, fmt.Errorf("emit requires a mesh argument")
		}
		buf, err := toMesh(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("emit: %w", err)
		}

		meshName := nextMeshName()
		if v, ok := pa.kw["name"]; ok {
			n, err := toString(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("emit: name: %w", err)
			}
			meshName = n
		}

		s.Add(meshName, buf)
		return pa.positional[0], nil
	})
}

// meshAndXYZ parses the common (op mesh x y z) argument shape shared by
// the transform builtins.
func meshAndXYZ(op string, args []zygo.Sexp) (*mesh.Buffer, float64, float64, float64, error) {
	if len(args) != 4 {
		return nil, 0, 0, 0, fmt.Errorf("%s requires a mesh and 3 numbers, got %d arguments", op, len(args))
	}
	buf, err := toMesh(args[0])
	if err != nil {
		return nil, 0, 0, 0, fmt.Errorf("%s: %w", op, err)
	}
	x, err := toFloat64(args[1])
	if err != nil {
		return nil, 0, 0, 0, fmt.Errorf("%s: x: %w", op, err)
	}
	y, err := toFloat64(args[2])
	if err != nil {
		return nil, 0, 0, 0, fmt.Errorf("%s: y: %w", op, err)
	}
	z, err := toFloat64(args[3])
	if err != nil {
		return nil, 0, 0, 0, fmt.Errorf("%s: z: %w", op, err)
	}
	return buf, x, y, z, nil
}
