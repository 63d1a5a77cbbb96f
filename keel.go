// Package keel is the binary encoding core of a log-structured
// key-value storage engine: byte views, operation statuses, and the
// wire primitives (varints, fixed-width integers, length-prefixed
// strings) every record read and write path runs through, plus the
// block format built on top of them.
//
// # Layering
//
//   - view: ByteView, a non-owning aliasing window over bytes
//   - status: Status, the success-or-typed-error result value
//   - coding: varint / fixed-width / length-prefixed wire codecs
//   - crc32c: masked Castagnoli checksums for stored data
//   - format, compress, filter: block services (wire enums,
//     compression codecs, bloom filters)
//   - block: prefix-compressed key/value blocks, sealing, handles
//
// # Basic Usage
//
// Encoding primitives:
//
//	buf := coding.AppendUvarint64(nil, 16384)
//	buf = coding.AppendLengthPrefixed(buf, view.FromString("payload"))
//
//	in := view.Wrap(buf)
//	n, _ := coding.GetUvarint64(&in)       // 16384, in advanced
//	p, _ := coding.GetLengthPrefixed(&in)  // aliases "payload"
//
// Building, sealing and reading back a block:
//
//	builder, _ := keel.NewBlockBuilder()
//	defer builder.Release()
//	builder.Add(view.FromString("key"), view.FromString("value"))
//
//	sealed, _ := keel.SealBlock(builder.Finish(), format.CompressionSnappy)
//
//	contents, st := keel.OpenBlock(view.Wrap(sealed))
//	if !st.OK() {
//	    // damaged data, not a programming error
//	}
//	r, st := block.NewReader(view.Wrap(contents))
//	for k, v := range r.All() {
//	    fmt.Printf("%s=%s\n", k, v)
//	}
//
// This package provides thin top-level wrappers around the block
// package for the common build/seal/open cycle. For everything else,
// use the subpackages directly.
package keel

import (
	"github.com/halver/keel/block"
	"github.com/halver/keel/format"
	"github.com/halver/keel/status"
	"github.com/halver/keel/view"
)

// NewBlockBuilder creates an empty block builder with the default
// restart interval. See block.NewBuilder for configuration options.
func NewBlockBuilder(opts ...block.BuilderOption) (*block.Builder, error) {
	return block.NewBuilder(opts...)
}

// SealBlock compresses a finished block and appends the type byte and
// masked CRC-32C trailer, producing the bytes that go to storage.
func SealBlock(contents view.ByteView, compression format.CompressionType) ([]byte, error) {
	return block.Seal(contents, compression)
}

// OpenBlock verifies a sealed block's checksum and returns the
// decompressed contents, ready for block.NewReader. Damaged or
// unrecognized input yields a Corruption status.
func OpenBlock(sealed view.ByteView) ([]byte, status.Status) {
	return block.Open(sealed)
}
