// Package hash provides the 64-bit fingerprint used for key hashing.
package hash

import "github.com/cespare/xxhash/v2"

// Sum64 computes the xxHash64 fingerprint of the given bytes.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Sum64String computes the xxHash64 fingerprint of the given string
// without copying it.
func Sum64String(data string) uint64 {
	return xxhash.Sum64String(data)
}
