// Package format defines the wire-level enums shared across the
// storage format. The numeric values are stable: they are written to
// disk and must never be renumbered.
package format

// CompressionType identifies the compression applied to a stored block.
// It is persisted as a single byte in the block trailer.
type CompressionType uint8

const (
	CompressionNone   CompressionType = 0x0 // CompressionNone stores the block bytes as-is.
	CompressionSnappy CompressionType = 0x1 // CompressionSnappy is the default block compression.
	CompressionS2     CompressionType = 0x2 // CompressionS2 is the S2 extension of Snappy.
	CompressionLZ4    CompressionType = 0x3 // CompressionLZ4 is LZ4 block compression.
	CompressionZstd   CompressionType = 0x4 // CompressionZstd is Zstandard compression.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionSnappy:
		return "Snappy"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	case CompressionZstd:
		return "Zstd"
	default:
		return "Unknown"
	}
}

// IsValid reports whether c is a known compression type.
func (c CompressionType) IsValid() bool {
	return c <= CompressionZstd
}
