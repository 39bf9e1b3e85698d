// Package compress provides the codecs used to store section files on disk.
//
// A section file is the plain concatenation of the binary sections of one or
// more tables, in slot order. Broadcast tables such as EIT schedules repeat a
// lot of descriptor text, so a whole file is usually compressed as a single
// block rather than section by section.
//
// # Codecs
//
//	Type            | Implementation
//	----------------|---------------------------------------------
//	CompressionNone | NoOpCodec, data passes through unchanged
//	CompressionZstd | ZstdCodec (klauspost/compress, or gozstd with the "gozstd" build tag)
//	CompressionS2   | S2Codec (klauspost/compress/s2)
//	CompressionLZ4  | LZ4Codec (pierrec/lz4 block format)
//
// Use GetCodec to obtain the shared, stateless codec for a type:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(raw)
//
// # Thread Safety
//
// All codecs in this package are stateless values backed by pooled encoders,
// and are safe for concurrent use.
package compress
