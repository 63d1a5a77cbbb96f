// Package block implements the key/value block format: the unit in
// which sorted entries are laid out, compressed, checksummed, and
// later read back.
//
// # Layout
//
// A block is a run of entries followed by a restart trailer:
//
//	entry   := uvarint(shared) uvarint(unshared) uvarint(valueLen)
//	           key delta bytes  value bytes
//	trailer := fixed32(restart offset) ...  fixed32(restart count)
//
// Consecutive keys usually share a prefix, so each entry stores only
// the byte count it shares with its predecessor plus the divergent
// tail. Every restartInterval-th entry is written with shared = 0 (a
// restart point) and its offset recorded in the trailer, which is what
// makes point lookups inside a block possible without decoding it
// from the front.
//
// # Sealing
//
// Before a block goes to storage it is sealed:
//
//	sealed := contents  compression type (1 byte)  masked CRC-32C (4 bytes)
//
// The checksum covers the contents and the type byte, so a reader can
// reject a damaged block before handing it to a decompressor.
//
// Handle and Footer locate blocks inside a table file: a Handle is a
// block's (offset, size) pair, and the fixed-size Footer at the end of
// a table points at the metaindex and index blocks.
package block
