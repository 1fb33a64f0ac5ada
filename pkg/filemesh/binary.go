package filemesh

import (
	"fmt"

	"github.com/rbxasset/meshconv/pkg/core/mesh"
)

// Record sizes fixed by the on-disk layout.
const (
	sizeHeaderV2 = 12
	sizeHeaderV3 = 16
	sizeHeaderV4 = 24
	sizeHeaderV5 = 32

	sizeVertexColored = 40 // position, normal, uv, tangent, RGBA
	sizeVertexPlain   = 36 // same without the RGBA block
	sizeFace          = 12
	sizeLODOffset     = 4
)

func decodeV2(body []byte) (*mesh.Mesh, error) {
	r := &reader{buf: body}

	headerSize, err := r.u16()
	if err != nil {
		return nil, err
	}
	if headerSize != sizeHeaderV2 {
		return nil, fmt.Errorf("%w: v2 header size %d, want %d", ErrMalformedBody, headerSize, sizeHeaderV2)
	}

	vertexSize, err := r.u8()
	if err != nil {
		return nil, err
	}
	faceSize, err := r.u8()
	if err != nil {
		return nil, err
	}
	if faceSize != sizeFace {
		return nil, fmt.Errorf("%w: v2 face size %d, want %d", ErrMalformedBody, faceSize, sizeFace)
	}

	numVerts, err := r.u32()
	if err != nil {
		return nil, err
	}
	numFaces, err := r.u32()
	if err != nil {
		return nil, err
	}

	if vertexSize != sizeVertexColored && vertexSize != sizeVertexPlain {
		return nil, fmt.Errorf("%w: v2 vertex size %d", ErrMalformedBody, vertexSize)
	}

	vertices, err := readVertices(r, int(numVerts), vertexSize == sizeVertexColored)
	if err != nil {
		return nil, err
	}
	faces, err := readFaces(r, int(numFaces), numVerts)
	if err != nil {
		return nil, err
	}

	return &mesh.Mesh{Vertices: vertices, Faces: faces}, nil
}

func decodeV3(body []byte) (*mesh.Mesh, error) {
	r := &reader{buf: body}

	headerSize, err := r.u16()
	if err != nil {
		return nil, err
	}
	if headerSize != sizeHeaderV3 {
		return nil, fmt.Errorf("%w: v3 header size %d, want %d", ErrMalformedBody, headerSize, sizeHeaderV3)
	}

	vertexSize, err := r.u8()
	if err != nil {
		return nil, err
	}
	faceSize, err := r.u8()
	if err != nil {
		return nil, err
	}
	if faceSize != sizeFace {
		return nil, fmt.Errorf("%w: v3 face size %d, want %d", ErrMalformedBody, faceSize, sizeFace)
	}

	// LOD offset record size, declared but never interpreted.
	if _, err = r.u16(); err != nil {
		return nil, err
	}
	numLODOffsets, err := r.u16()
	if err != nil {
		return nil, err
	}
	numVerts, err := r.u32()
	if err != nil {
		return nil, err
	}
	numFaces, err := r.u32()
	if err != nil {
		return nil, err
	}

	// The color block is mandatory from v3 on.
	if vertexSize != sizeVertexColored {
		return nil, fmt.Errorf("%w: v3 vertex size %d, want %d", ErrMalformedBody, vertexSize, sizeVertexColored)
	}

	vertices, err := readVertices(r, int(numVerts), true)
	if err != nil {
		return nil, err
	}
	faces, err := readFaces(r, int(numFaces), numVerts)
	if err != nil {
		return nil, err
	}
	offsets, err := readLODOffsets(r, int(numLODOffsets))
	if err != nil {
		return nil, err
	}

	return &mesh.Mesh{Vertices: vertices, Faces: truncateToBaseLOD(faces, offsets, numFaces)}, nil
}

// headerV4 is the fixed header part shared by the v4 and v5 layouts, minus
// the leading header size field.
type headerV4 struct {
	lodType       uint16
	numVerts      uint32
	numFaces      uint32
	numLODOffsets uint16
	numBones      uint16
	boneNamesSize uint32
	numSubsets    uint16
	numHQLODs     uint8
	unused        uint8
}

func readHeaderV4(r *reader) (headerV4, error) {
	var h headerV4

	rec, err := r.take(sizeHeaderV4 - 2)
	if err != nil {
		return h, err
	}

	h.lodType = le.Uint16(rec[0:])
	h.numVerts = le.Uint32(rec[2:])
	h.numFaces = le.Uint32(rec[6:])
	h.numLODOffsets = le.Uint16(rec[10:])
	h.numBones = le.Uint16(rec[12:])
	h.boneNamesSize = le.Uint32(rec[14:])
	h.numSubsets = le.Uint16(rec[18:])
	h.numHQLODs = rec[20]
	h.unused = rec[21]

	return h, nil
}

// checkSkinning rejects meshes carrying payloads that are detected but
// never decoded.
func (h headerV4) checkSkinning() error {
	if h.numBones != 0 || h.boneNamesSize != 0 || h.numSubsets != 0 {
		return fmt.Errorf("%w: skinning and subset data (bones %d, bone names %d B, subsets %d)",
			ErrUnsupportedFeature, h.numBones, h.boneNamesSize, h.numSubsets)
	}
	return nil
}

func decodeV4(body []byte) (*mesh.Mesh, error) {
	r := &reader{buf: body}

	headerSize, err := r.u16()
	if err != nil {
		return nil, err
	}
	if headerSize != sizeHeaderV4 {
		return nil, fmt.Errorf("%w: v4 header size %d, want %d", ErrMalformedBody, headerSize, sizeHeaderV4)
	}

	h, err := readHeaderV4(r)
	if err != nil {
		return nil, err
	}
	if err = h.checkSkinning(); err != nil {
		return nil, err
	}

	colored, err := inferVertexSize(r.rest(), h)
	if err != nil {
		return nil, err
	}

	vertices, err := readVertices(r, int(h.numVerts), colored)
	if err != nil {
		return nil, err
	}
	faces, err := readFaces(r, int(h.numFaces), h.numVerts)
	if err != nil {
		return nil, err
	}
	offsets, err := readLODOffsets(r, int(h.numLODOffsets))
	if err != nil {
		return nil, err
	}

	return &mesh.Mesh{Vertices: vertices, Faces: truncateToBaseLOD(faces, offsets, h.numFaces)}, nil
}

func decodeV5(body []byte) (*mesh.Mesh, error) {
	r := &reader{buf: body}

	headerSize, err := r.u16()
	if err != nil {
		return nil, err
	}
	if headerSize != sizeHeaderV5 {
		return nil, fmt.Errorf("%w: v5 header size %d, want %d", ErrMalformedBody, headerSize, sizeHeaderV5)
	}

	h, err := readHeaderV4(r)
	if err != nil {
		return nil, err
	}
	facsFormat, err := r.u32()
	if err != nil {
		return nil, err
	}
	facsSize, err := r.u32()
	if err != nil {
		return nil, err
	}

	if err = h.checkSkinning(); err != nil {
		return nil, err
	}
	if facsFormat != 0 || facsSize != 0 {
		return nil, fmt.Errorf("%w: facial animation data (format %d, %d B)",
			ErrUnsupportedFeature, facsFormat, facsSize)
	}

	// v5 vertex records always carry the color block.
	vertices, err := readVertices(r, int(h.numVerts), true)
	if err != nil {
		return nil, err
	}
	faces, err := readFaces(r, int(h.numFaces), h.numVerts)
	if err != nil {
		return nil, err
	}
	offsets, err := readLODOffsets(r, int(h.numLODOffsets))
	if err != nil {
		return nil, err
	}

	return &mesh.Mesh{Vertices: vertices, Faces: truncateToBaseLOD(faces, offsets, h.numFaces)}, nil
}

// inferVertexSize recovers the v4 vertex stride, which is not declared
// anywhere in the layout: subtract the face and LOD block lengths from the
// bytes remaining after the header and divide by the vertex count. Only the
// two known strides are accepted.
func inferVertexSize(remaining int, h headerV4) (colored bool, err error) {
	vertexBlock := remaining - int(h.numFaces)*sizeFace - int(h.numLODOffsets)*sizeLODOffset
	if vertexBlock < 0 {
		return false, fmt.Errorf("%w: face and LOD blocks exceed the %d remaining bytes", ErrMalformedBody, remaining)
	}

	if h.numVerts == 0 {
		// Nothing to size. The colored stride is assumed, zero records are
		// read either way.
		return true, nil
	}

	switch stride := vertexBlock / int(h.numVerts); stride {
	case sizeVertexColored:
		return true, nil
	case sizeVertexPlain:
		return false, nil
	default:
		return false, fmt.Errorf("%w: inferred vertex size %d", ErrMalformedBody, stride)
	}
}

func readVertices(r *reader, count int, colored bool) ([]mesh.Vertex, error) {
	stride := sizeVertexPlain
	if colored {
		stride = sizeVertexColored
	}
	if r.rest()/stride < count {
		return nil, fmt.Errorf("%w: %d vertex records of %d bytes, %d bytes left",
			ErrTruncated, count, stride, r.rest())
	}

	vertices := make([]mesh.Vertex, count)
	for i := range vertices {
		rec := r.block(stride)

		v := &vertices[i]
		v.Position[0] = f32le(rec[0:])
		v.Position[1] = f32le(rec[4:])
		v.Position[2] = f32le(rec[8:])
		v.Normal[0] = f32le(rec[12:])
		v.Normal[1] = f32le(rec[16:])
		v.Normal[2] = f32le(rec[20:])
		v.UV[0] = f32le(rec[24:])
		v.UV[1] = 1 - f32le(rec[28:])
		// Tangent and color bytes are not modeled, the record tail is
		// dropped.
	}

	return vertices, nil
}

func readFaces(r *reader, count int, numVerts uint32) ([]mesh.Face, error) {
	if r.rest()/sizeFace < count {
		return nil, fmt.Errorf("%w: %d face records of %d bytes, %d bytes left",
			ErrTruncated, count, sizeFace, r.rest())
	}

	faces := make([]mesh.Face, count)
	for i := range faces {
		rec := r.block(sizeFace)

		f := mesh.Face{le.Uint32(rec[0:]), le.Uint32(rec[4:]), le.Uint32(rec[8:])}
		for _, idx := range f {
			if idx >= numVerts {
				return nil, fmt.Errorf("%w: face %d references vertex %d of %d",
					ErrMalformedBody, i, idx, numVerts)
			}
		}
		faces[i] = f
	}

	return faces, nil
}

func readLODOffsets(r *reader, count int) ([]uint32, error) {
	if r.rest()/sizeLODOffset < count {
		return nil, fmt.Errorf("%w: %d LOD offsets of %d bytes, %d bytes left",
			ErrTruncated, count, sizeLODOffset, r.rest())
	}

	offsets := make([]uint32, count)
	for i := range offsets {
		offsets[i] = le.Uint32(r.block(sizeLODOffset))
	}

	return offsets, nil
}

// truncateToBaseLOD keeps only the highest level of detail. The second LOD
// offset, when present, is the face index where the lower-detail levels
// begin. Offsets beyond the second are ignored.
func truncateToBaseLOD(faces []mesh.Face, offsets []uint32, numFaces uint32) []mesh.Face {
	if len(offsets) < 2 {
		return faces
	}

	keep := offsets[1]
	if keep > numFaces {
		keep = numFaces
	}
	if int64(keep) < int64(len(faces)) {
		faces = faces[:keep]
	}

	return faces
}
