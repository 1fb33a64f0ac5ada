package filemesh

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/rbxasset/meshconv/pkg/core/mesh"
)

// Encode serializes m in the layout of the requested container version.
//
// Binary versions always write the extended vertex record: a default
// tangent along -Z and an opaque white color are filled in for every
// vertex. The V texture component is written as stored, the flip applied
// on decode is not undone here. Face indices are written without bounds
// checks, a well-formed mesh is the caller's responsibility.
func Encode(m *mesh.Mesh, v Version) ([]byte, error) {
	switch v {
	case Version100:
		return encodeASCII(m, v, 2), nil
	case Version101:
		return encodeASCII(m, v, 1), nil
	case Version200:
		return encodeV2(m), nil
	case Version300, Version301:
		return encodeV3(m, v), nil
	case Version400, Version401:
		return encodeV4(m, v), nil
	case Version500:
		return encodeV5(m), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, uint8(v))
	}
}

// encodeASCII writes the non-indexed 1.xx text layout: nine bracketed
// float triplets per face, three per corner. Positions are scaled up by
// scale on write (2 for version 1.00, stored at half size on disk).
func encodeASCII(m *mesh.Mesh, v Version, scale float32) []byte {
	var b bytes.Buffer
	b.WriteString(v.headerLine())
	fmt.Fprintf(&b, "%d\n", len(m.Faces))

	for _, f := range m.Faces {
		for _, idx := range f {
			vert := m.Vertices[idx]
			fmt.Fprintf(&b, "[%.6f,%.6f,%.6f][%.6f,%.6f,%.6f][%.6f,%.6f,%.6f]",
				vert.Position[0]*scale, vert.Position[1]*scale, vert.Position[2]*scale,
				vert.Normal[0], vert.Normal[1], vert.Normal[2],
				vert.UV[0], vert.UV[1], 0.0)
		}
	}

	return b.Bytes()
}

func encodeV2(m *mesh.Mesh) []byte {
	w := newWriter(m, sizeHeaderV2)
	w.str(Version200.headerLine())

	w.u16(sizeHeaderV2)
	w.u8(sizeVertexColored)
	w.u8(sizeFace)
	w.u32(uint32(len(m.Vertices)))
	w.u32(uint32(len(m.Faces)))

	w.vertices(m)
	w.faces(m)

	return w.buf
}

func encodeV3(m *mesh.Mesh, v Version) []byte {
	w := newWriter(m, sizeHeaderV3)
	w.str(v.headerLine())

	w.u16(sizeHeaderV3)
	w.u8(sizeVertexColored)
	w.u8(sizeFace)
	w.u16(sizeLODOffset)
	w.u16(1) // numLODOffsets
	w.u32(uint32(len(m.Vertices)))
	w.u32(uint32(len(m.Faces)))

	w.vertices(m)
	w.faces(m)
	w.u32(0) // single LOD offset, the whole mesh is the base level

	return w.buf
}

func encodeV4(m *mesh.Mesh, v Version) []byte {
	w := newWriter(m, sizeHeaderV4)
	w.str(v.headerLine())

	w.u16(sizeHeaderV4)
	w.skinnedHeader(m)

	w.vertices(m)
	w.faces(m)
	w.u32(0)

	return w.buf
}

func encodeV5(m *mesh.Mesh) []byte {
	w := newWriter(m, sizeHeaderV5)
	w.str(Version500.headerLine())

	w.u16(sizeHeaderV5)
	w.skinnedHeader(m)
	w.u32(0) // facsDataFormat
	w.u32(0) // facsDataSize

	w.vertices(m)
	w.faces(m)
	w.u32(0)

	return w.buf
}

// writer builds a little-endian record stream.
type writer struct {
	buf []byte
}

func newWriter(m *mesh.Mesh, headerSize int) *writer {
	n := len("version 0.00\n") + headerSize +
		len(m.Vertices)*sizeVertexColored + len(m.Faces)*sizeFace + sizeLODOffset
	return &writer{buf: make([]byte, 0, n)}
}

func (w *writer) str(s string)  { w.buf = append(w.buf, s...) }
func (w *writer) u8(v uint8)    { w.buf = append(w.buf, v) }
func (w *writer) i8(v int8)     { w.buf = append(w.buf, byte(v)) }
func (w *writer) u16(v uint16)  { w.buf = binary.LittleEndian.AppendUint16(w.buf, v) }
func (w *writer) u32(v uint32)  { w.buf = binary.LittleEndian.AppendUint32(w.buf, v) }
func (w *writer) f32(v float32) { w.buf = binary.LittleEndian.AppendUint32(w.buf, math.Float32bits(v)) }

// skinnedHeader writes the shared v4/v5 header fields after the header
// size: no skinning, no subsets, one LOD offset.
func (w *writer) skinnedHeader(m *mesh.Mesh) {
	w.u16(0) // lodType
	w.u32(uint32(len(m.Vertices)))
	w.u32(uint32(len(m.Faces)))
	w.u16(1) // numLODOffsets
	w.u16(0) // numBones
	w.u32(0) // boneNamesSize
	w.u16(0) // numSubsets
	w.u8(1)  // numHighQualityLODs
	w.u8(0)  // unused
}

// vertices writes every vertex in the extended colored layout.
func (w *writer) vertices(m *mesh.Mesh) {
	for i := range m.Vertices {
		v := &m.Vertices[i]

		w.f32(v.Position[0])
		w.f32(v.Position[1])
		w.f32(v.Position[2])
		w.f32(v.Normal[0])
		w.f32(v.Normal[1])
		w.f32(v.Normal[2])
		w.f32(v.UV[0])
		w.f32(v.UV[1])

		// Default tangent and opaque white, the model carries neither
		// attribute.
		w.i8(0)
		w.i8(0)
		w.i8(-127)
		w.i8(127)
		w.u8(255)
		w.u8(255)
		w.u8(255)
		w.u8(255)
	}
}

func (w *writer) faces(m *mesh.Mesh) {
	for _, f := range m.Faces {
		w.u32(f[0])
		w.u32(f[1])
		w.u32(f[2])
	}
}
