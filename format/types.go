// Package format holds the enumerations shared by the persistence helpers.
package format

import "fmt"

// CompressionType selects how a section file is compressed on disk.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone stores raw concatenated sections.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 block compression.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompressionType converts a case-sensitive name as produced by String
// back into a CompressionType.
func ParseCompressionType(name string) (CompressionType, error) {
	switch name {
	case "None", "":
		return CompressionNone, nil
	case "Zstd":
		return CompressionZstd, nil
	case "S2":
		return CompressionS2, nil
	case "LZ4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("unknown compression type %q", name)
	}
}

// IsValid reports whether c is one of the known compression types.
func (c CompressionType) IsValid() bool {
	return c >= CompressionNone && c <= CompressionLZ4
}
