package export

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/chazu/meshforge/pkg/mesh"
)

// WriteOBJ writes the buffer to w as Wavefront OBJ: one object named
// name, with v/vt/vn records per vertex and f records indexing all three
// streams with the same 1-based index.
func WriteOBJ(b *mesh.Buffer, w io.Writer, name string) error {
	if err := b.Validate(); err != nil {
		return fmt.Errorf("obj export: %w", err)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "o %s\n", name)

	n := b.VertexCount()
	for i := 0; i < n; i++ {
		fmt.Fprintf(bw, "v %g %g %g\n",
			b.Positions[3*i], b.Positions[3*i+1], b.Positions[3*i+2])
	}
	for i := 0; i < n; i++ {
		fmt.Fprintf(bw, "vt %g %g\n", b.UVs[2*i], b.UVs[2*i+1])
	}
	for i := 0; i < n; i++ {
		fmt.Fprintf(bw, "vn %g %g %g\n",
			b.Normals[3*i], b.Normals[3*i+1], b.Normals[3*i+2])
	}
	for i := 0; i+2 < len(b.Indices); i += 3 {
		a, c, d := b.Indices[i]+1, b.Indices[i+1]+1, b.Indices[i+2]+1
		fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, c, c, c, d, d, d)
	}

	return bw.Flush()
}

// OBJ writes the buffer to path as Wavefront OBJ.
func OBJ(b *mesh.Buffer, path, name string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("obj export: %w", err)
	}
	defer f.Close()
	return WriteOBJ(b, f, name)
}
