package objconv

import "errors"

// ErrNoMeshData is returned when the OBJ input holds no usable geometry:
// no sub-meshes at all, or a leading sub-mesh without faces.
var ErrNoMeshData = errors.New("no mesh data in obj input")
