package filemesh

import "errors"

// Decoding errors. Each one is terminal for the conversion call that
// returned it, no partial mesh ever escapes.
var (
	// ErrMalformedHeader is returned when the version line is missing or is
	// not valid text.
	ErrMalformedHeader = errors.New("malformed mesh header")

	// ErrUnsupportedVersion is returned when the version line does not name
	// a known container version.
	ErrUnsupportedVersion = errors.New("unsupported mesh version")

	// ErrUnsupportedFeature is returned when the mesh declares skinning,
	// subset or facial animation payloads.
	ErrUnsupportedFeature = errors.New("unsupported mesh feature")

	// ErrMalformedBody is returned when a declared size, record stride,
	// face index or text token contradicts the container layout.
	ErrMalformedBody = errors.New("malformed mesh body")

	// ErrTruncated is returned when the buffer ends before a declared
	// field or record array does.
	ErrTruncated = errors.New("unexpected end of mesh data")
)
