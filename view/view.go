// Package view provides ByteView, a non-owning view over a byte sequence.
//
// A ByteView is a slice header by value: it references storage owned by
// someone else and never copies it. Copying a ByteView copies the
// reference, not the bytes, so views are passed by value throughout the
// codebase. The caller must keep the underlying storage alive and
// unchanged for as long as any view derived from it is in use.
//
// The zero value is a valid empty view.
package view

import (
	"bytes"
	"unsafe"
)

// ByteView references a contiguous byte sequence without owning it.
//
// Views are cheap to construct and copy (one slice header), and every
// accessor except String aliases the original storage. Mutating the
// backing array is visible through all views over it.
type ByteView struct {
	b []byte
}

// Wrap returns a view over b. The view aliases b directly; no bytes are
// copied.
func Wrap(b []byte) ByteView {
	return ByteView{b: b}
}

// FromString returns a view over the bytes of s without copying them.
//
// The returned view must be treated as read-only: writing through
// Bytes() on a string-backed view corrupts immutable string data.
func FromString(s string) ByteView {
	if len(s) == 0 {
		return ByteView{}
	}

	return ByteView{b: unsafe.Slice(unsafe.StringData(s), len(s))}
}

// Bytes returns the referenced bytes. The result aliases the view's
// backing storage; it is not a copy.
func (v ByteView) Bytes() []byte {
	return v.b
}

// Len returns the number of bytes referenced by the view.
func (v ByteView) Len() int {
	return len(v.b)
}

// Empty reports whether the view references zero bytes.
func (v ByteView) Empty() bool {
	return len(v.b) == 0
}

// At returns the i-th byte of the view.
// Panics if i is out of range.
func (v ByteView) At(i int) byte {
	return v.b[i]
}

// Clear resets the view to the empty view. The underlying storage is
// untouched.
func (v *ByteView) Clear() {
	v.b = nil
}

// RemovePrefix advances the view past its first n bytes.
// Panics if n is negative or greater than Len().
func (v *ByteView) RemovePrefix(n int) {
	if n < 0 || n > len(v.b) {
		panic("view: RemovePrefix out of range")
	}
	v.b = v.b[n:]
}

// String returns a copy of the referenced bytes as a string.
// This is the only ByteView operation that copies.
func (v ByteView) String() string {
	return string(v.b)
}

// Compare orders two views lexicographically by unsigned byte value.
//
// It returns a negative number when v sorts before o, zero when the
// views hold identical bytes, and a positive number when v sorts after
// o. When one view is a prefix of the other, the shorter sorts first.
func (v ByteView) Compare(o ByteView) int {
	return bytes.Compare(v.b, o.b)
}

// HasPrefix reports whether the view begins with the bytes of p.
func (v ByteView) HasPrefix(p ByteView) bool {
	return bytes.HasPrefix(v.b, p.b)
}

// Equal reports whether two views have the same length and contents.
func (v ByteView) Equal(o ByteView) bool {
	return bytes.Equal(v.b, o.b)
}
