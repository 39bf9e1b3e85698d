package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"

	"github.com/arloliu/psitable/format"
)

// S2Codec compresses section files with S2, favoring speed over ratio.
type S2Codec struct{}

var _ Codec = (*S2Codec)(nil)

// NewS2Codec creates a new S2 codec.
func NewS2Codec() S2Codec {
	return S2Codec{}
}

// Type returns CompressionS2.
func (c S2Codec) Type() format.CompressionType {
	return format.CompressionS2
}

// Compress compresses the input data using S2 block encoding.
func (c S2Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decompresses an S2 block.
func (c S2Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	out, err := s2.Decode(nil, data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}

	return out, nil
}
