package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// Key addresses one cached conversion result.
type Key [sha256.Size]byte

// NewKey derives the cache key of converting source to the given target
// format tag.
func NewKey(source []byte, target string) Key {
	h := sha256.New()
	h.Write([]byte(target))
	h.Write([]byte{0})
	h.Write(source)

	var k Key
	h.Sum(k[:0])

	return k
}

// String returns the hexadecimal form of the key.
func (k Key) String() string {
	return hex.EncodeToString(k[:])
}
