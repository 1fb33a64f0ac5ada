// Package mesh provides the intermediate triangle mesh model shared by all
// format codecs.
package mesh

// Vertex carries the attributes of a single mesh vertex: position, normal
// and texture coordinates. Normals are passed through as-is and are not
// necessarily unit length. The V texture axis points up, matching the
// Wavefront OBJ convention.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	UV       [2]float32
}

// Face is a triangle referencing three vertices by their slots in the mesh
// vertex sequence.
type Face [3]uint32

// Mesh is a triangulated polygon mesh in single-indexed form: each face
// corner addresses exactly one Vertex carrying all attributes.
//
// A Mesh is produced whole by a single decode or import call and consumed
// whole by a single encode or export call. A Mesh is well-formed when every
// face index is less than the number of vertices. Decoders enforce this,
// encoders trust it.
type Mesh struct {
	Vertices []Vertex
	Faces    []Face
}

// Extents returns the axis-aligned bounding box of the mesh vertices. Both
// bounds are zero for a mesh without vertices.
func (m *Mesh) Extents() (min, max [3]float32) {
	if len(m.Vertices) == 0 {
		return
	}

	min = m.Vertices[0].Position
	max = min

	for i := range m.Vertices[1:] {
		p := m.Vertices[i+1].Position
		for axis := range p {
			if p[axis] < min[axis] {
				min[axis] = p[axis]
			}
			if p[axis] > max[axis] {
				max[axis] = p[axis]
			}
		}
	}

	return
}
