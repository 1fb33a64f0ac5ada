package converter

import (
	"fmt"
	"strings"

	"github.com/rbxasset/meshconv/pkg/filemesh"
)

// Target identifies the output format of a conversion.
type Target struct {
	obj     bool
	version filemesh.Version
}

// TargetOBJ returns the target producing OBJ documents.
func TargetOBJ() Target {
	return Target{obj: true}
}

// TargetFileMesh returns the target producing mesh files of the given
// version.
func TargetFileMesh(v filemesh.Version) Target {
	return Target{version: v}
}

// ParseTarget reads a target from its string form: "obj" or a mesh version
// such as "v2.00" or "2.00".
func ParseTarget(s string) (Target, error) {
	if strings.EqualFold(s, "obj") {
		return TargetOBJ(), nil
	}

	v, err := filemesh.ParseVersion(strings.TrimPrefix(strings.ToLower(s), "v"))
	if err != nil {
		return Target{}, fmt.Errorf("unknown target format %q: %w", s, err)
	}

	return TargetFileMesh(v), nil
}

// IsOBJ reports whether the target produces OBJ documents.
func (t Target) IsOBJ() bool {
	return t.obj
}

// Version returns the mesh version of a non-OBJ target.
func (t Target) Version() filemesh.Version {
	return t.version
}

// String returns "obj" or the "vX.YY" form of the mesh version.
func (t Target) String() string {
	if t.obj {
		return "obj"
	}
	return "v" + t.version.String()
}

// SourceExtension returns the file extension of the conversion sources of
// this target.
func (t Target) SourceExtension() string {
	if t.obj {
		return ".mesh"
	}
	return ".obj"
}

// OutputExtension returns the file extension of produced files.
func (t Target) OutputExtension() string {
	if t.obj {
		return ".obj"
	}
	return ".mesh"
}
