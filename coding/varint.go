package coding

import "github.com/halver/keel/view"

// Maximum encoded sizes of 32-bit and 64-bit varints.
const (
	MaxUvarintLen32 = 5
	MaxUvarintLen64 = 10
)

// UvarintLen returns the number of bytes AppendUvarint64 produces for
// v, without encoding it.
func UvarintLen(v uint64) int {
	switch {
	case v < 1<<7:
		return 1
	case v < 1<<14:
		return 2
	case v < 1<<21:
		return 3
	case v < 1<<28:
		return 4
	case v < 1<<35:
		return 5
	case v < 1<<42:
		return 6
	case v < 1<<49:
		return 7
	case v < 1<<56:
		return 8
	case v < 1<<63:
		return 9
	default:
		return 10
	}
}

// AppendUvarint32 appends the varint encoding of v to dst and returns
// the extended buffer. The encoding uses 1 to 5 bytes.
func AppendUvarint32(dst []byte, v uint32) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}

	return append(dst, byte(v))
}

// AppendUvarint64 appends the varint encoding of v to dst and returns
// the extended buffer. The encoding uses 1 to 10 bytes.
func AppendUvarint64(dst []byte, v uint64) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}

	return append(dst, byte(v))
}

// PutUvarint32 encodes v at the start of dst and returns the number of
// bytes written. Panics if dst cannot hold the encoding; size it with
// UvarintLen or MaxUvarintLen32.
func PutUvarint32(dst []byte, v uint32) int {
	i := 0
	for v >= 0x80 {
		dst[i] = byte(v) | 0x80
		v >>= 7
		i++
	}
	dst[i] = byte(v)

	return i + 1
}

// PutUvarint64 encodes v at the start of dst and returns the number of
// bytes written. Panics if dst cannot hold the encoding; size it with
// UvarintLen or MaxUvarintLen64.
func PutUvarint64(dst []byte, v uint64) int {
	i := 0
	for v >= 0x80 {
		dst[i] = byte(v) | 0x80
		v >>= 7
		i++
	}
	dst[i] = byte(v)

	return i + 1
}

// Uvarint32 decodes a varint-encoded uint32 from the start of b.
//
// A positive n is the number of bytes consumed. n == 0 means b ended
// before the terminating byte; n < 0 means the continuation bit was
// still set on the 5th byte and -n bytes were examined. Bits of the
// 5th byte beyond the 32-bit range are dropped, not rejected.
func Uvarint32(b []byte) (uint32, int) {
	if len(b) > 0 && b[0] < 0x80 {
		return uint32(b[0]), 1
	}

	return uvarint32Slow(b)
}

// uvarint32Slow is the multi-byte path of Uvarint32, kept out of the
// inlinable fast path.
func uvarint32Slow(b []byte) (uint32, int) {
	var x uint32
	for i := range MaxUvarintLen32 {
		if i >= len(b) {
			return 0, 0
		}

		c := b[i]
		if c < 0x80 {
			return x | uint32(c)<<(7*i), i + 1
		}
		x |= uint32(c&0x7f) << (7 * i)
	}

	return 0, -MaxUvarintLen32
}

// Uvarint64 decodes a varint-encoded uint64 from the start of b.
//
// Result conventions match Uvarint32, with the width limit at 10 bytes.
func Uvarint64(b []byte) (uint64, int) {
	if len(b) > 0 && b[0] < 0x80 {
		return uint64(b[0]), 1
	}

	return uvarint64Slow(b)
}

// uvarint64Slow is the multi-byte path of Uvarint64.
func uvarint64Slow(b []byte) (uint64, int) {
	var x uint64
	for i := range MaxUvarintLen64 {
		if i >= len(b) {
			return 0, 0
		}

		c := b[i]
		if c < 0x80 {
			return x | uint64(c)<<(7*i), i + 1
		}
		x |= uint64(c&0x7f) << (7 * i)
	}

	return 0, -MaxUvarintLen64
}

// GetUvarint32 decodes a varint-encoded uint32 from the front of in
// and advances the view past it. On failure it returns false and
// leaves the view unchanged.
func GetUvarint32(in *view.ByteView) (uint32, bool) {
	v, n := Uvarint32(in.Bytes())
	if n <= 0 {
		return 0, false
	}
	in.RemovePrefix(n)

	return v, true
}

// GetUvarint64 decodes a varint-encoded uint64 from the front of in
// and advances the view past it. On failure it returns false and
// leaves the view unchanged.
func GetUvarint64(in *view.ByteView) (uint64, bool) {
	v, n := Uvarint64(in.Bytes())
	if n <= 0 {
		return 0, false
	}
	in.RemovePrefix(n)

	return v, true
}

// AppendVarint64 appends the zigzag varint encoding of v to dst and
// returns the extended buffer. Zigzag keeps small magnitudes short for
// both signs.
func AppendVarint64(dst []byte, v int64) []byte {
	return AppendUvarint64(dst, zigzag(v))
}

// PutVarint64 encodes v at the start of dst and returns the number of
// bytes written. Panics if dst cannot hold the encoding.
func PutVarint64(dst []byte, v int64) int {
	return PutUvarint64(dst, zigzag(v))
}

// VarintLen returns the number of bytes AppendVarint64 produces for v.
func VarintLen(v int64) int {
	return UvarintLen(zigzag(v))
}

// Varint64 decodes a zigzag varint-encoded int64 from the start of b.
// Result conventions match Uvarint64.
func Varint64(b []byte) (int64, int) {
	ux, n := Uvarint64(b)
	if n <= 0 {
		return 0, n
	}

	return unzigzag(ux), n
}

// GetVarint64 decodes a zigzag varint-encoded int64 from the front of
// in and advances the view past it. On failure it returns false and
// leaves the view unchanged.
func GetVarint64(in *view.ByteView) (int64, bool) {
	ux, ok := GetUvarint64(in)
	if !ok {
		return 0, false
	}

	return unzigzag(ux), true
}

func zigzag(v int64) uint64 {
	ux := uint64(v) << 1
	if v < 0 {
		ux = ^ux
	}

	return ux
}

func unzigzag(ux uint64) int64 {
	x := int64(ux >> 1)
	if ux&1 != 0 {
		x = ^x
	}

	return x
}
