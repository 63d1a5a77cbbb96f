package coding

import "github.com/halver/keel/endian"

// wire is the byte order of the storage format.
var wire = endian.Wire()

// PutFixed32 writes v as 4 little-endian bytes at the start of dst.
// Panics if dst is shorter than 4 bytes.
func PutFixed32(dst []byte, v uint32) {
	wire.PutUint32(dst, v)
}

// PutFixed64 writes v as 8 little-endian bytes at the start of dst.
// Panics if dst is shorter than 8 bytes.
func PutFixed64(dst []byte, v uint64) {
	wire.PutUint64(dst, v)
}

// AppendFixed32 appends the 4-byte little-endian encoding of v to dst
// and returns the extended buffer.
func AppendFixed32(dst []byte, v uint32) []byte {
	return wire.AppendUint32(dst, v)
}

// AppendFixed64 appends the 8-byte little-endian encoding of v to dst
// and returns the extended buffer.
func AppendFixed64(dst []byte, v uint64) []byte {
	return wire.AppendUint64(dst, v)
}

// Fixed32 decodes a little-endian uint32 from the first 4 bytes of b.
// Panics if b is shorter than 4 bytes.
func Fixed32(b []byte) uint32 {
	return wire.Uint32(b)
}

// Fixed64 decodes a little-endian uint64 from the first 8 bytes of b.
// Panics if b is shorter than 8 bytes.
func Fixed64(b []byte) uint64 {
	return wire.Uint64(b)
}
