// Package objconv converts Wavefront OBJ documents to and from the
// intermediate mesh form.
//
// OBJ syntax is parsed by the g3n engine loader, this package only reshapes
// the resulting polygon soup: it fan-triangulates faces, flattens sub-meshes
// into a single vertex sequence and flips the V texture axis to the
// up-positive convention of the mesh model.
package objconv

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/g3n/engine/loader/obj"

	"github.com/rbxasset/meshconv/pkg/core/mesh"
)

// corner addresses one OBJ face corner by its position, texture and normal
// indices as they appear in the source document.
type corner struct {
	pos, uv, norm int
}

// Import parses OBJ text into the intermediate mesh form.
//
// Each sub-mesh keeps a private corner mapping, so a corner shared by two
// sub-meshes yields two vertex records. Corners without a texture
// coordinate read it as (0,0), corners without a normal read it as +Y. V is
// flipped on the way in.
//
// Returns ErrNoMeshData when the document has no sub-meshes or its first
// sub-mesh has no faces.
func Import(r io.Reader) (*mesh.Mesh, error) {
	dec, err := obj.DecodeReader(r, strings.NewReader(""))
	if err != nil {
		return nil, fmt.Errorf("parse obj: %w", err)
	}

	if len(dec.Objects) == 0 || len(dec.Objects[0].Faces) == 0 {
		return nil, ErrNoMeshData
	}

	var m mesh.Mesh

	for oi := range dec.Objects {
		slots := make(map[corner]uint32)

		for fi := range dec.Objects[oi].Faces {
			face := &dec.Objects[oi].Faces[fi]

			for k := 2; k < len(face.Vertices); k++ {
				var tri mesh.Face

				for ti, ci := range [3]int{0, k - 1, k} {
					slot, err := cornerSlot(&m, dec, face, ci, slots)
					if err != nil {
						return nil, err
					}
					tri[ti] = slot
				}

				m.Faces = append(m.Faces, tri)
			}
		}
	}

	return &m, nil
}

// ImportBytes is Import over an in-memory document.
func ImportBytes(data []byte) (*mesh.Mesh, error) {
	return Import(bytes.NewReader(data))
}

// cornerSlot resolves one face corner to a vertex index in m, appending a
// new vertex on first sight of the corner.
func cornerSlot(m *mesh.Mesh, dec *obj.Decoder, face *obj.Face, ci int, slots map[corner]uint32) (uint32, error) {
	c := corner{pos: face.Vertices[ci], uv: -1, norm: -1}
	if ci < len(face.Uvs) {
		c.uv = face.Uvs[ci]
	}
	if ci < len(face.Normals) {
		c.norm = face.Normals[ci]
	}

	if slot, ok := slots[c]; ok {
		return slot, nil
	}

	if c.pos < 0 || 3*c.pos+2 >= len(dec.Vertices) {
		return 0, fmt.Errorf("obj face references position %d outside the %d stored", c.pos, len(dec.Vertices)/3)
	}

	v := mesh.Vertex{
		Position: [3]float32{dec.Vertices[3*c.pos], dec.Vertices[3*c.pos+1], dec.Vertices[3*c.pos+2]},
		Normal:   [3]float32{0, 1, 0},
	}

	// The loader marks absent corner attributes with out-of-range indices,
	// both count as missing here.
	if c.norm >= 0 && 3*c.norm+2 < len(dec.Normals) {
		v.Normal = [3]float32{dec.Normals[3*c.norm], dec.Normals[3*c.norm+1], dec.Normals[3*c.norm+2]}
	}

	var uv [2]float32
	if c.uv >= 0 && 2*c.uv+1 < len(dec.Uvs) {
		uv = [2]float32{dec.Uvs[2*c.uv], dec.Uvs[2*c.uv+1]}
	}
	v.UV = [2]float32{uv[0], 1 - uv[1]}

	slot := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, v)
	slots[c] = slot

	return slot, nil
}
