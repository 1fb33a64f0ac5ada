package filemesh

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/rbxasset/meshconv/pkg/core/mesh"
)

// decodeASCII parses the 1.xx text body: a face count line followed by one
// line of bracketed float triplets, nine per face. scaleHalf is set for
// version 1.00, whose positions are stored at twice their model size.
//
// The text layout is not indexed, so every face gets three fresh vertices.
func decodeASCII(body []byte, scaleHalf bool) (*mesh.Mesh, error) {
	if !utf8.Valid(body) {
		return nil, fmt.Errorf("%w: text mesh is not valid UTF-8", ErrMalformedBody)
	}

	text := string(body)
	if text == "" {
		return nil, fmt.Errorf("%w: missing face count line", ErrMalformedBody)
	}

	faceLine, rest, hasMore := strings.Cut(text, "\n")

	numFaces, err := strconv.ParseUint(strings.TrimSpace(faceLine), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid face count %q", ErrMalformedBody, strings.TrimSpace(faceLine))
	}

	if !hasMore {
		return nil, fmt.Errorf("%w: missing vertex data line", ErrMalformedBody)
	}
	dataLine, _, _ := strings.Cut(rest, "\n")

	triplets, err := parseBracketTriplets(strings.TrimSpace(dataLine))
	if err != nil {
		return nil, err
	}
	if uint64(len(triplets)) != numFaces*9 {
		return nil, fmt.Errorf("%w: %d vectors for %d faces, want %d",
			ErrMalformedBody, len(triplets), numFaces, numFaces*9)
	}

	m := &mesh.Mesh{
		Vertices: make([]mesh.Vertex, 0, numFaces*3),
		Faces:    make([]mesh.Face, 0, numFaces),
	}

	for fi := 0; fi < int(numFaces); fi++ {
		var face mesh.Face
		for c := 0; c < 3; c++ {
			base := fi*9 + c*3

			pos := triplets[base]
			if scaleHalf {
				pos = [3]float32{pos[0] * 0.5, pos[1] * 0.5, pos[2] * 0.5}
			}
			norm := triplets[base+1]
			uv := triplets[base+2]

			face[c] = uint32(len(m.Vertices))
			m.Vertices = append(m.Vertices, mesh.Vertex{
				Position: pos,
				Normal:   norm,
				UV:       [2]float32{uv[0], 1 - uv[1]},
			})
		}
		m.Faces = append(m.Faces, face)
	}

	return m, nil
}

// parseBracketTriplets extracts every "[x,y,z]" group from line. Text
// between groups is ignored, the writer emits them back to back.
func parseBracketTriplets(line string) ([][3]float32, error) {
	var out [][3]float32

	rest := line
	for {
		start := strings.IndexByte(rest, '[')
		if start < 0 {
			return out, nil
		}
		rest = rest[start+1:]

		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return nil, fmt.Errorf("%w: missing closing bracket", ErrMalformedBody)
		}
		inside := rest[:end]
		rest = rest[end+1:]

		var vals []float32
		for _, comp := range strings.Split(inside, ",") {
			comp = strings.TrimSpace(comp)
			f, err := strconv.ParseFloat(comp, 32)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid float %q in vector", ErrMalformedBody, comp)
			}
			vals = append(vals, float32(f))
		}
		if len(vals) != 3 {
			return nil, fmt.Errorf("%w: vector has %d components, want 3", ErrMalformedBody, len(vals))
		}

		out = append(out, [3]float32{vals[0], vals[1], vals[2]})
	}
}
