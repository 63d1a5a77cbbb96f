package compress

import (
	"errors"
	"fmt"

	"github.com/halver/keel/format"
)

// ErrUnknownCodec is returned when a compression type has no
// registered codec.
var ErrUnknownCodec = errors.New("unknown compression codec")

// Compressor compresses one block-sized payload at a time.
//
// Implementations are one-shot: bytes in, freshly allocated bytes out.
// The input is never modified, and internal state (if any) is pooled so
// a single Compressor value is safe for concurrent use.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor.
//
// Implementations validate the input framing and return an error for
// corrupted or foreign data; they never panic on malformed input.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions of a compression algorithm.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec creates a fresh Codec for the given compression type.
func CreateCodec(compression format.CompressionType) (Codec, error) {
	switch compression {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionSnappy:
		return NewSnappyCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	default:
		return nil, fmt.Errorf("%w: %s (0x%02x)", ErrUnknownCodec, compression, uint8(compression))
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone:   NewNoOpCompressor(),
	format.CompressionSnappy: NewSnappyCompressor(),
	format.CompressionS2:     NewS2Compressor(),
	format.CompressionLZ4:    NewLZ4Compressor(),
	format.CompressionZstd:   NewZstdCompressor(),
}

// GetCodec returns the shared built-in Codec for the given compression
// type. All codecs are stateless or internally pooled, so the shared
// instances are safe to use from any goroutine.
func GetCodec(compression format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compression]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s (0x%02x)", ErrUnknownCodec, compression, uint8(compression))
}
