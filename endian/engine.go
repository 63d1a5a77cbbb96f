// Package endian pins down the byte order of the storage format.
//
// Every multi-byte integer in the on-disk format is little-endian, on
// every host. Wire returns the engine that order is defined in; code
// that produces or parses format bytes goes through it rather than
// naming binary.LittleEndian directly, so the format's byte order is
// stated in exactly one place.
//
// Native and its Is* companions probe the byte order of the running
// host. They exist for diagnostics and for tests that prove encoded
// output is host-independent; format code never branches on them.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// Engine combines the ByteOrder and AppendByteOrder interfaces from
// encoding/binary. binary.LittleEndian and binary.BigEndian both
// satisfy it.
type Engine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Wire returns the byte order of the storage format: little-endian,
// independent of the host.
func Wire() Engine {
	return binary.LittleEndian
}

// Native determines the host's byte order by inspecting the memory
// layout of a known integer value.
func Native() binary.ByteOrder {
	// 0x0100 stores its MSB (0x01) at the lowest address on a
	// big-endian host and its LSB (0x00) there on a little-endian one.
	var probe uint16 = 0x0100

	b := (*[2]byte)(unsafe.Pointer(&probe))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the host stores integers
// little-endian, i.e. whether the wire order matches the host order.
func IsNativeLittleEndian() bool {
	return Native() == binary.LittleEndian
}

// IsNativeBigEndian reports whether the host stores integers big-endian.
func IsNativeBigEndian() bool {
	return Native() == binary.BigEndian
}
