// Package compress provides the block compression codecs of the
// storage format.
//
// Blocks are compressed whole before they are sealed: one payload in,
// one compressed payload out. Which codec was used is not recorded
// here; the block trailer carries a format.CompressionType byte and
// readers dispatch through GetCodec.
//
// # Algorithms
//
//   - Snappy (format.CompressionSnappy): the default. Cheap enough to
//     run on every block write.
//   - S2 (format.CompressionS2): Snappy's successor, better ratios at
//     similar speed on large blocks.
//   - LZ4 (format.CompressionLZ4): fastest decompression.
//   - Zstd (format.CompressionZstd): best ratio, for cold data. Built
//     on klauspost/compress by default; the "gozstd" build tag swaps
//     in the libzstd binding for cgo deployments.
//   - None (format.CompressionNone): pass-through.
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionSnappy)
//	if err != nil {
//		return err
//	}
//	compressed, err := codec.Compress(blockBytes)
//
// All built-in codecs are safe for concurrent use; GetCodec returns
// shared instances. Every codec treats empty input as empty output.
package compress
