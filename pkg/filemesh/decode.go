// Package filemesh implements the versioned mesh container codec: the
// text-based 1.xx layout and the binary 2.00 through 5.00 layouts, in both
// directions.
//
// Decoding dispatches on the leading "version X.YY" line and returns the
// intermediate mesh form. Encoding serializes an intermediate mesh in any
// requested version. Both directions work on byte buffers only, callers own
// all file handling.
package filemesh

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rbxasset/meshconv/pkg/core/mesh"
)

// Decode parses a serialized mesh in any of the supported container
// versions.
//
// The V texture component of every decoded vertex is flipped to the
// "up is increasing" convention of the intermediate model.
func Decode(data []byte) (*mesh.Mesh, error) {
	v, body, err := splitHeader(data)
	if err != nil {
		return nil, err
	}

	switch v {
	case Version100:
		return decodeASCII(body, true)
	case Version101:
		return decodeASCII(body, false)
	case Version200:
		return decodeV2(body)
	case Version300, Version301:
		return decodeV3(body)
	case Version400, Version401:
		return decodeV4(body)
	case Version500:
		return decodeV5(body)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedVersion, v)
	}
}

// DetectVersion reads the container version from the leading header line
// without touching the body.
func DetectVersion(data []byte) (Version, error) {
	v, _, err := splitHeader(data)
	return v, err
}

// splitHeader validates the leading "version X.YY" line and returns the
// mapped version together with the body following the line.
func splitHeader(data []byte) (Version, []byte, error) {
	nl := bytes.IndexByte(data, '\n')
	if nl < 0 {
		return 0, nil, fmt.Errorf("%w: missing version line", ErrMalformedHeader)
	}

	header := data[:nl]
	if len(header) > 0 && header[len(header)-1] == '\r' {
		header = header[:len(header)-1]
	}
	if !utf8.Valid(header) {
		return 0, nil, fmt.Errorf("%w: version line is not valid UTF-8", ErrMalformedHeader)
	}

	line := strings.TrimSpace(string(header))

	lit, ok := strings.CutPrefix(line, "version ")
	if !ok {
		return 0, nil, fmt.Errorf("%w: %q", ErrUnsupportedVersion, line)
	}

	v, err := ParseVersion(lit)
	if err != nil {
		return 0, nil, err
	}

	return v, data[nl+1:], nil
}
