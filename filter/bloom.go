// Package filter builds bloom filters over key sets.
//
// An engine stores one filter per block of keys and consults it before
// touching the block: a negative answer skips the block entirely, a
// positive answer is right most of the time. Filters never produce
// false negatives.
package filter

import (
	"github.com/halver/keel/internal/hash"
	"github.com/halver/keel/view"
)

// BloomFilter is a bloom filter policy: a bits-per-key budget and the
// probe count derived from it. The same policy must be used to build
// and to query a filter.
type BloomFilter struct {
	bitsPerKey int
	k          int
}

// NewBloom creates a bloom filter policy with the given bits-per-key
// budget. 10 bits per key yields a false-positive rate around 1%.
func NewBloom(bitsPerKey int) *BloomFilter {
	if bitsPerKey < 0 {
		bitsPerKey = 0
	}

	// Probe count that minimizes the false-positive rate for the
	// budget: bitsPerKey * ln(2), clamped to a sane range.
	k := int(float64(bitsPerKey) * 0.69)
	if k < 1 {
		k = 1
	}
	if k > 30 {
		k = 30
	}

	return &BloomFilter{bitsPerKey: bitsPerKey, k: k}
}

// Name identifies the filter encoding. Engines persist it so that a
// policy change invalidates stored filters instead of misreading them.
func (f *BloomFilter) Name() string {
	return "keel.BuiltinBloomFilter"
}

// Append builds a filter over keys and appends it to dst, returning
// the extended buffer. The filter layout is the bit array followed by
// one byte holding the probe count.
func (f *BloomFilter) Append(dst []byte, keys []view.ByteView) []byte {
	bits := len(keys) * f.bitsPerKey
	// Tiny key sets would otherwise get a tiny array and a high
	// false-positive rate.
	if bits < 64 {
		bits = 64
	}

	nBytes := (bits + 7) / 8
	bits = nBytes * 8

	start := len(dst)
	dst = append(dst, make([]byte, nBytes)...)
	array := dst[start:]

	for _, key := range keys {
		h := hash.Sum64(key.Bytes())
		delta := h>>33 | h<<31
		for range f.k {
			pos := h % uint64(bits)
			array[pos/8] |= 1 << (pos % 8)
			h += delta
		}
	}

	return append(dst, byte(f.k)) //nolint:gosec // k is clamped to 1..30
}

// MayContain reports whether key may be in the set the filter was
// built from. False positives happen at the policy's configured rate;
// false negatives never do.
func (f *BloomFilter) MayContain(filter view.ByteView, key view.ByteView) bool {
	n := filter.Len()
	if n < 2 {
		return false
	}

	array := filter.Bytes()[:n-1]
	bits := uint64(len(array)) * 8

	k := filter.At(n - 1)
	if k > 30 {
		// Reserved for future encodings. Treat as a match rather
		// than wrongly skipping data.
		return true
	}

	h := hash.Sum64(key.Bytes())
	delta := h>>33 | h<<31
	for range int(k) {
		pos := h % bits
		if array[pos/8]&(1<<(pos%8)) == 0 {
			return false
		}
		h += delta
	}

	return true
}
