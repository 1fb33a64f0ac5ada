package filemesh

import (
	"encoding/binary"
	"fmt"
	"math"
)

var le = binary.LittleEndian

// reader is a bounds-checked little-endian cursor over a binary mesh body.
type reader struct {
	buf []byte
	off int
}

// rest returns the number of unread bytes.
func (r *reader) rest() int { return len(r.buf) - r.off }

// take consumes the next n bytes, failing with ErrTruncated when fewer
// remain.
func (r *reader) take(n int) ([]byte, error) {
	if r.rest() < n {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, %d left",
			ErrTruncated, n, r.off, r.rest())
	}
	return r.block(n), nil
}

// block consumes the next n bytes without bounds checking. The caller must
// have verified that n bytes remain.
func (r *reader) block(n int) []byte {
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b
}

func (r *reader) u8() (uint8, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *reader) u16() (uint16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return le.Uint16(b), nil
}

func (r *reader) u32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return le.Uint32(b), nil
}

// f32le reads a little-endian 32-bit float from the start of b.
func f32le(b []byte) float32 {
	return math.Float32frombits(le.Uint32(b))
}
