package compress

import "github.com/arloliu/psitable/format"

// ZstdCodec compresses section files with Zstandard.
//
// The pure Go implementation from klauspost/compress is used by default.
// Building with the "gozstd" tag and cgo enabled switches to valyala/gozstd.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a new Zstd codec with default settings.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}

// Type returns CompressionZstd.
func (c ZstdCodec) Type() format.CompressionType {
	return format.CompressionZstd
}
