package coding

import (
	"math"

	"github.com/halver/keel/view"
)

// AppendLengthPrefixed appends value to dst as a varint length followed
// by the value bytes, and returns the extended buffer.
// Panics if value is longer than 4 GiB - 1; format lengths are 32-bit.
func AppendLengthPrefixed(dst []byte, value view.ByteView) []byte {
	if uint64(value.Len()) > math.MaxUint32 {
		panic("AppendLengthPrefixed: value exceeds 32-bit length")
	}

	dst = AppendUvarint32(dst, uint32(value.Len()))

	return append(dst, value.Bytes()...)
}

// GetLengthPrefixed decodes a length-prefixed value from the front of
// in and advances the view past the prefix and the value bytes.
//
// The returned view aliases in's storage; no bytes are copied. On
// failure (bad length varint, or a length longer than the remaining
// input) it returns false and leaves in unchanged.
func GetLengthPrefixed(in *view.ByteView) (view.ByteView, bool) {
	p := *in

	n, ok := GetUvarint32(&p)
	if !ok || uint64(n) > uint64(p.Len()) {
		return view.ByteView{}, false
	}

	value := view.Wrap(p.Bytes()[:n])
	p.RemovePrefix(int(n))
	*in = p

	return value, true
}
