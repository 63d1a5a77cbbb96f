// Package crc32c computes masked CRC-32C (Castagnoli) checksums for
// stored data.
//
// Checksums that guard stored payloads are masked before they hit the
// wire. Storing a raw CRC is a trap once checksummed data embeds other
// checksummed data: the CRC of a buffer that starts with its own CRC
// collapses into a handful of degenerate values. Masking rotates the
// CRC and adds a constant so that embedded checksums stay independent.
package crc32c

import "hash/crc32"

var castagnoli = crc32.MakeTable(crc32.Castagnoli)

const maskDelta = 0xa282ead8

// Value returns the CRC-32C of data.
func Value(data []byte) uint32 {
	return crc32.Checksum(data, castagnoli)
}

// Extend returns the CRC-32C of the concatenation of a buffer with
// checksum crc followed by data.
func Extend(crc uint32, data []byte) uint32 {
	return crc32.Update(crc, castagnoli, data)
}

// Mask returns the masked form of crc, the form stored on the wire.
func Mask(crc uint32) uint32 {
	// Rotate right by 15 bits and add a constant.
	return ((crc >> 15) | (crc << 17)) + maskDelta
}

// Unmask returns the raw CRC that Mask was applied to.
func Unmask(masked uint32) uint32 {
	rot := masked - maskDelta
	return (rot >> 17) | (rot << 15)
}
