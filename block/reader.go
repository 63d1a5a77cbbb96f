package block

import (
	"iter"

	"github.com/halver/keel/coding"
	"github.com/halver/keel/status"
	"github.com/halver/keel/view"
)

// Reader walks the entries of a finished block.
//
// NewReader validates the restart trailer up front; All then yields
// entries in key order. Iteration is scanner-style: a malformed entry
// ends the loop early and Status reports the corruption afterwards.
// Malformed data never panics; blocks come from storage and must be
// treated as untrusted input.
//
// A Reader reassembles prefix-compressed keys into an internal
// buffer, so it is not safe for concurrent use and the key view
// passed to the loop body is only valid until the next iteration
// step (copy it with String or Bytes to retain it). Value views alias
// the block contents and stay valid as long as those bytes do.
type Reader struct {
	data        view.ByteView
	entriesEnd  int // offset where the entry region ends and restarts begin
	numRestarts int
	st          status.Status
	keyBuf      []byte
}

// NewReader validates contents as a finished block and returns a
// Reader over it. The view must cover exactly one block, trailer
// included but seal trailer stripped (see Open).
//
// Returns a Corruption status when the restart trailer is
// inconsistent with the block size.
func NewReader(contents view.ByteView) (*Reader, status.Status) {
	n := contents.Len()
	if n < 4 {
		return nil, status.Corruption(view.FromString("block too short for restart trailer"))
	}

	numRestarts := int(coding.Fixed32(contents.Bytes()[n-4:]))
	if numRestarts > (n-4)/4 {
		return nil, status.Corruption(view.FromString("restart count exceeds block size"))
	}

	return &Reader{
		data:        contents,
		entriesEnd:  n - 4 - numRestarts*4,
		numRestarts: numRestarts,
	}, status.OK()
}

// NumRestarts returns the number of restart points recorded in the
// block's trailer.
func (r *Reader) NumRestarts() int {
	return r.numRestarts
}

// RestartPoint returns the entry-region offset of the i-th restart
// point. Panics if i is out of range; restart indexes come from the
// trailer the Reader itself validated, so a bad index is a caller bug.
func (r *Reader) RestartPoint(i int) int {
	if i < 0 || i >= r.numRestarts {
		panic("block: restart index out of range")
	}

	return int(coding.Fixed32(r.data.Bytes()[r.entriesEnd+4*i:]))
}

// All returns an iterator over the block's entries in key order.
//
// The iterator stops early when it hits a malformed entry; check
// Status after the loop to tell exhaustion from corruption. Each call
// to All starts a fresh scan from the first entry.
func (r *Reader) All() iter.Seq2[view.ByteView, view.ByteView] {
	return func(yield func(view.ByteView, view.ByteView) bool) {
		r.st = status.OK()
		r.keyBuf = r.keyBuf[:0]

		rest := view.Wrap(r.data.Bytes()[:r.entriesEnd])
		for !rest.Empty() {
			key, value, ok := r.next(&rest)
			if !ok || !yield(key, value) {
				return
			}
		}
	}
}

// Status reports how the last All iteration ended: OK after a full
// scan (or before any scan), a Corruption status when the scan
// stopped at a malformed entry.
func (r *Reader) Status() status.Status {
	return r.st
}

// next decodes one entry from the front of rest, maintaining keyBuf
// as the reassembled key. On failure it records the corruption in
// r.st and returns false.
func (r *Reader) next(rest *view.ByteView) (view.ByteView, view.ByteView, bool) {
	shared, ok := coding.GetUvarint32(rest)
	if !ok {
		return r.corrupt("bad entry header")
	}
	unshared, ok := coding.GetUvarint32(rest)
	if !ok {
		return r.corrupt("bad entry header")
	}
	valueLen, ok := coding.GetUvarint32(rest)
	if !ok {
		return r.corrupt("bad entry header")
	}

	if int64(shared) > int64(len(r.keyBuf)) {
		return r.corrupt("entry shares more key bytes than exist")
	}
	if uint64(unshared)+uint64(valueLen) > uint64(rest.Len()) {
		return r.corrupt("entry overruns block")
	}

	r.keyBuf = append(r.keyBuf[:shared], rest.Bytes()[:unshared]...)
	rest.RemovePrefix(int(unshared))

	value := view.Wrap(rest.Bytes()[:valueLen])
	rest.RemovePrefix(int(valueLen))

	return view.Wrap(r.keyBuf), value, true
}

func (r *Reader) corrupt(msg string) (view.ByteView, view.ByteView, bool) {
	r.st = status.Corruption(view.FromString(msg))

	return view.ByteView{}, view.ByteView{}, false
}
