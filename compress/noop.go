package compress

import "github.com/arloliu/psitable/format"

// NoOpCodec stores section files uncompressed, as plain concatenated
// sections that stream analyzers read directly.
type NoOpCodec struct{}

var _ Codec = (*NoOpCodec)(nil)

// NewNoOpCodec creates a codec that passes data through.
func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

// Type returns CompressionNone.
func (c NoOpCodec) Type() format.CompressionType {
	return format.CompressionNone
}

// Compress returns data without copying it.
func (c NoOpCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data without copying it.
func (c NoOpCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
