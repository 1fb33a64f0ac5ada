package filemesh

import "fmt"

// Version identifies one of the supported mesh container layouts.
type Version uint8

// Supported container versions.
const (
	_ Version = iota
	Version100
	Version101
	Version200
	Version300
	Version301
	Version400
	Version401
	Version500
)

var versionStrings = map[Version]string{
	Version100: "1.00",
	Version101: "1.01",
	Version200: "2.00",
	Version300: "3.00",
	Version301: "3.01",
	Version400: "4.00",
	Version401: "4.01",
	Version500: "5.00",
}

// String implements fmt.Stringer.
func (v Version) String() string {
	if s, ok := versionStrings[v]; ok {
		return s
	}
	return fmt.Sprintf("unknown version %d", uint8(v))
}

// headerLine returns the text line opening every serialized mesh of this
// version.
func (v Version) headerLine() string {
	return "version " + versionStrings[v] + "\n"
}

// ParseVersion maps a version literal such as "2.00" to its Version value.
func ParseVersion(s string) (Version, error) {
	for v, str := range versionStrings {
		if s == str {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedVersion, s)
}

// Versions lists every supported version in layout order.
func Versions() []Version {
	return []Version{
		Version100, Version101,
		Version200,
		Version300, Version301,
		Version400, Version401,
		Version500,
	}
}
