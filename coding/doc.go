// Package coding implements the wire primitives the storage format is
// built from: fixed-width integers, variable-length integers, and
// length-prefixed byte strings.
//
// # Byte Order
//
// Fixed-width values are little-endian on every host (the order
// endian.Wire returns). Encoded bytes are bit-identical across
// architectures; decoding is a plain load on little-endian hosts and
// explicit byte assembly elsewhere.
//
// # Varints
//
// Varints use base-128 groups, least significant group first, with the
// high bit of each byte flagging continuation. Small values dominate
// real keys and lengths, so a value below 128 costs a single byte and
// the decoders take a dedicated fast path for it. A uint32 needs at
// most 5 bytes (MaxUvarintLen32), a uint64 at most 10
// (MaxUvarintLen64). Signed values are zigzag-mapped first, the same
// mapping encoding/binary uses.
//
// # Call Shapes
//
// Each primitive comes in the shapes the format code needs:
//
//   - Append*: append the encoding to a growable []byte and return it.
//   - Put*: write into a caller-sized buffer; panics when the buffer is
//     too small, since sizing it is the caller's contract.
//   - Fixed32/Fixed64, Uvarint32/Uvarint64: decode from the front of a
//     []byte.
//   - Get*: decode from the front of a *view.ByteView and advance it
//     past the consumed bytes. On failure the view is left untouched.
//
// # Failure Results
//
// The []byte decoders follow the encoding/binary convention: a
// positive n is the number of bytes consumed, n == 0 means the input
// ended before the encoding did, and n < 0 means the encoding ran past
// its maximum width (-n bytes were examined). The Get* decoders fold
// both failures into a false return. Within the maximum width, bits in
// the final byte beyond the target width are dropped rather than
// rejected; decoders accept exactly the byte strings the original
// format accepted, and tests pin that acceptance.
package coding
