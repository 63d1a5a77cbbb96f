package block

import (
	"fmt"

	"github.com/halver/keel/coding"
	"github.com/halver/keel/compress"
	"github.com/halver/keel/crc32c"
	"github.com/halver/keel/format"
	"github.com/halver/keel/status"
	"github.com/halver/keel/view"
)

// TrailerLen is the size of the seal trailer appended to every stored
// block: one compression type byte plus a masked CRC-32C.
const TrailerLen = 5

// Seal prepares block contents for storage.
//
// The payload is compressed with the requested codec, then a one-byte
// compression type and a masked CRC-32C covering the stored bytes and
// the type byte are appended. When compression saves less than 1/8 of
// the payload, the block is stored uncompressed instead; the type
// byte records what was actually done, so Open needs no metadata
// beyond the sealed bytes themselves.
//
// Errors are write-path problems (unknown compression type, codec
// failure), reported as ordinary errors rather than status values.
func Seal(payload view.ByteView, compression format.CompressionType) ([]byte, error) {
	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}

	contents := payload.Bytes()
	storedType := compression
	if compression != format.CompressionNone {
		compressed, err := codec.Compress(contents)
		if err != nil {
			return nil, fmt.Errorf("compress block with %s: %w", compression, err)
		}

		if len(compressed) < len(contents)-len(contents)/8 {
			contents = compressed
		} else {
			// Not worth it. Storing raw keeps reads a plain copy.
			storedType = format.CompressionNone
		}
	}

	sealed := make([]byte, 0, len(contents)+TrailerLen)
	sealed = append(sealed, contents...)
	sealed = append(sealed, byte(storedType))

	// The checksum covers the stored bytes and the type byte, so a
	// flipped type is caught before a decompressor sees the data.
	return coding.AppendFixed32(sealed, crc32c.Mask(crc32c.Value(sealed))), nil
}

// Open verifies a sealed block and returns its original payload.
//
// The checksum is verified before the compression type is trusted.
// Any failure (short input, checksum mismatch, unknown compression
// type, decompression error) is a Corruption status: sealed blocks
// come from storage, and a block that does not verify is damaged data
// rather than a caller bug. For blocks stored uncompressed the
// returned bytes alias sealed's storage.
func Open(sealed view.ByteView) ([]byte, status.Status) {
	if sealed.Len() < TrailerLen {
		return nil, status.Corruption(view.FromString("sealed block too short"))
	}

	data := sealed.Bytes()
	n := sealed.Len() - TrailerLen

	stored := crc32c.Unmask(coding.Fixed32(data[n+1:]))
	if crc32c.Value(data[:n+1]) != stored {
		return nil, status.Corruption(view.FromString("block checksum mismatch"))
	}

	compression := format.CompressionType(data[n])
	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, status.Corruption(view.FromString("unknown block compression type"), view.FromString(compression.String()))
	}

	payload, err := codec.Decompress(data[:n])
	if err != nil {
		return nil, status.Corruption(view.FromString("block decompression failed"), view.FromString(err.Error()))
	}

	return payload, status.OK()
}
