package objconv

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/rbxasset/meshconv/pkg/core/mesh"
)

// Export writes m as an OBJ document: every position, then every texture
// coordinate with V flipped back to the down-positive convention, then
// every normal, then 1-based face lines. A face corner reuses one index for
// all three attributes, matching the single-indexed vertex model.
func Export(w io.Writer, m *mesh.Mesh) error {
	bw := bufio.NewWriter(w)

	for i := range m.Vertices {
		p := m.Vertices[i].Position
		fmt.Fprintf(bw, "v %.6f %.6f %.6f\n", p[0], p[1], p[2])
	}
	for i := range m.Vertices {
		uv := m.Vertices[i].UV
		fmt.Fprintf(bw, "vt %.6f %.6f\n", uv[0], 1-uv[1])
	}
	for i := range m.Vertices {
		n := m.Vertices[i].Normal
		fmt.Fprintf(bw, "vn %.6f %.6f %.6f\n", n[0], n[1], n[2])
	}
	for _, f := range m.Faces {
		fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n",
			f[0]+1, f[0]+1, f[0]+1,
			f[1]+1, f[1]+1, f[1]+1,
			f[2]+1, f[2]+1, f[2]+1)
	}

	return bw.Flush()
}

// ExportBytes renders m as an OBJ document in memory.
func ExportBytes(m *mesh.Mesh) []byte {
	var b bytes.Buffer
	_ = Export(&b, m) // writes to a bytes.Buffer cannot fail

	return b.Bytes()
}
