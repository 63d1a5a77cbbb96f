package block

import (
	"github.com/halver/keel/coding"
	"github.com/halver/keel/status"
	"github.com/halver/keel/view"
)

// MaxEncodedHandleLen is the largest encoding of a Handle: two
// maximum-width 64-bit varints.
const MaxEncodedHandleLen = 2 * coding.MaxUvarintLen64

// FooterLen is the exact encoded size of a Footer. The handle region
// is padded to its maximum size so the footer can be read from a
// fixed position at the end of a table file.
const FooterLen = 2*MaxEncodedHandleLen + 8

// footerMagic marks the tail of a table file. Chosen once, never
// reused by another format revision.
const footerMagic uint64 = 0x75f2ac9bd01ce8a4

// Handle locates a block inside a table file: the offset of its first
// byte and the size of its contents, excluding the seal trailer.
type Handle struct {
	Offset uint64
	Size   uint64
}

// AppendTo appends the handle's encoding, two uvarint64s, to dst and
// returns the extended buffer.
func (h Handle) AppendTo(dst []byte) []byte {
	dst = coding.AppendUvarint64(dst, h.Offset)

	return coding.AppendUvarint64(dst, h.Size)
}

// DecodeFrom decodes a handle from the front of in and advances the
// view past the consumed bytes. On failure it returns a Corruption
// status; the view may have consumed the leading varint by then.
func (h *Handle) DecodeFrom(in *view.ByteView) status.Status {
	offset, ok := coding.GetUvarint64(in)
	if !ok {
		return status.Corruption(view.FromString("bad block handle"))
	}
	size, ok := coding.GetUvarint64(in)
	if !ok {
		return status.Corruption(view.FromString("bad block handle"))
	}

	h.Offset = offset
	h.Size = size

	return status.OK()
}

// Footer is the fixed-size region at the end of a table file. It
// points at the two blocks everything else is reachable from: the
// metaindex block (filters and other auxiliary data) and the index
// block (handles of all data blocks).
type Footer struct {
	MetaindexHandle Handle
	IndexHandle     Handle
}

// AppendTo appends the footer's encoding to dst and returns the
// extended buffer. The encoding is always exactly FooterLen bytes:
// both handles, zero padding up to the maximum handle region, and the
// magic number.
func (f Footer) AppendTo(dst []byte) []byte {
	start := len(dst)
	dst = f.MetaindexHandle.AppendTo(dst)
	dst = f.IndexHandle.AppendTo(dst)
	dst = append(dst, make([]byte, start+2*MaxEncodedHandleLen-len(dst))...)

	return coding.AppendFixed64(dst, footerMagic)
}

// DecodeFrom decodes a footer from the front of in and advances the
// view past all FooterLen bytes. The magic number is checked before
// the handles are trusted. On any failure (short view, wrong magic,
// malformed handle) it returns a Corruption status and leaves the
// view unchanged.
func (f *Footer) DecodeFrom(in *view.ByteView) status.Status {
	if in.Len() < FooterLen {
		return status.Corruption(view.FromString("not a keel table (footer too short)"))
	}
	if coding.Fixed64(in.Bytes()[FooterLen-8:]) != footerMagic {
		return status.Corruption(view.FromString("not a keel table (bad magic number)"))
	}

	handles := view.Wrap(in.Bytes()[:2*MaxEncodedHandleLen])
	if st := f.MetaindexHandle.DecodeFrom(&handles); !st.OK() {
		return st
	}
	if st := f.IndexHandle.DecodeFrom(&handles); !st.OK() {
		return st
	}
	in.RemovePrefix(FooterLen)

	return status.OK()
}
