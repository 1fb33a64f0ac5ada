package cache

import (
	"bytes"

	"github.com/klauspost/compress/zstd"
)

// compressPrefixLength is the length of the compression marker at the
// start of compressed payloads.
const compressPrefixLength = 4

// zstdFrameMagic contains the first 4 bytes of any zstd frame.
var zstdFrameMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// compressor handles optional zstd packing of stored payloads. The decoder
// side always works, so entries written with compression on stay readable
// after it is turned off.
type compressor struct {
	enabled bool

	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

func (c *compressor) init() error {
	var err error

	if c.enabled {
		c.encoder, err = zstd.NewWriter(nil)
		if err != nil {
			return err
		}
	}

	c.decoder, err = zstd.NewReader(nil)

	return err
}

// compress packs data when compression is enabled and returns it untouched
// otherwise.
func (c *compressor) compress(data []byte) []byte {
	if !c.enabled {
		return data
	}

	maxSize := c.encoder.MaxEncodedSize(len(data))

	return c.encoder.EncodeAll(data, make([]byte, 0, maxSize))
}

// decompress unpacks data carrying the zstd frame magic and returns any
// other data untouched.
func (c *compressor) decompress(data []byte) ([]byte, error) {
	if len(data) < compressPrefixLength || !bytes.Equal(data[:compressPrefixLength], zstdFrameMagic) {
		return data, nil
	}

	return c.decoder.DecodeAll(data, nil)
}

func (c *compressor) close() error {
	var err error

	if c.encoder != nil {
		err = c.encoder.Close()
	}
	if c.decoder != nil {
		c.decoder.Close()
	}

	return err
}
