package block

import (
	"fmt"

	"github.com/halver/keel/coding"
	"github.com/halver/keel/internal/options"
	"github.com/halver/keel/internal/pool"
	"github.com/halver/keel/view"
)

// DefaultRestartInterval is the number of entries between restart
// points when WithRestartInterval does not override it. Sixteen is a
// good trade between block size (restart entries store their full
// key) and in-block seek cost (a seek decodes at most interval
// entries past the nearest restart).
const DefaultRestartInterval = 16

// BuilderOption configures a Builder at construction time.
type BuilderOption = options.Option[*Builder]

// WithRestartInterval sets the number of entries between restart
// points. The interval must be at least 1; an interval of 1 disables
// prefix compression entirely.
func WithRestartInterval(n int) BuilderOption {
	return options.New(func(b *Builder) error {
		if n < 1 {
			return fmt.Errorf("restart interval must be at least 1, got %d", n)
		}
		b.restartInterval = n

		return nil
	})
}

// Builder assembles the entry region and restart trailer of a block.
//
// Keys must be added in nondecreasing byte order; each entry stores
// only the suffix that differs from its predecessor, except at
// restart points where the full key is stored and its offset recorded
// in the trailer. Finish appends the trailer and returns a view of
// the completed block, ready for Seal.
//
// The builder's buffer comes from a shared pool; call Release once
// the finished block has been copied or sealed. A Builder is not safe
// for concurrent use.
type Builder struct {
	buf             *pool.ByteBuffer
	restarts        []uint32 // offsets where full keys were written
	restartInterval int
	counter         int    // entries since the last restart point
	lastKey         []byte // owned copy, not a view into caller storage
	finished        bool
}

// NewBuilder creates an empty block builder.
//
// Parameters:
//   - opts: optional configuration (see WithRestartInterval)
//
// Returns:
//   - *Builder: the created builder
//   - error: an error if an option rejects its value
func NewBuilder(opts ...BuilderOption) (*Builder, error) {
	b := &Builder{
		buf:             pool.GetBlockBuffer(),
		restarts:        append(make([]uint32, 0, 16), 0), // first entry is a restart
		restartInterval: DefaultRestartInterval,
	}

	if err := options.Apply(b, opts...); err != nil {
		pool.PutBlockBuffer(b.buf)
		return nil, err
	}

	return b, nil
}

// Add appends a key/value entry to the block under construction.
//
// Keys must arrive in nondecreasing byte order. Add panics when the
// key sorts before the previous one or when the builder is already
// finished; both are caller bugs, not data errors.
//
// The key and value bytes are copied into the block; the views are
// not retained.
func (b *Builder) Add(key, value view.ByteView) {
	if b.finished {
		panic("block: Add after Finish")
	}
	if b.buf.Len() > 0 && key.Compare(view.Wrap(b.lastKey)) < 0 {
		panic("block: keys added out of order")
	}

	shared := 0
	if b.counter < b.restartInterval {
		shared = sharedPrefixLen(b.lastKey, key)
	} else {
		// Restart point: store the full key and remember where.
		b.restarts = append(b.restarts, uint32(b.buf.Len())) //nolint:gosec // block offsets fit 32 bits
		b.counter = 0
	}
	unshared := key.Len() - shared

	b.buf.Grow(3*coding.MaxUvarintLen32 + unshared + value.Len())
	b.buf.B = coding.AppendUvarint32(b.buf.B, uint32(shared))    //nolint:gosec // bounded by key length
	b.buf.B = coding.AppendUvarint32(b.buf.B, uint32(unshared))  //nolint:gosec // bounded by key length
	b.buf.B = coding.AppendUvarint32(b.buf.B, uint32(value.Len())) //nolint:gosec // format caps values at 32-bit lengths
	b.buf.B = append(b.buf.B, key.Bytes()[shared:]...)
	b.buf.B = append(b.buf.B, value.Bytes()...)

	// Track the full key for the next prefix computation. Reusing the
	// shared prefix already in lastKey keeps this a suffix copy.
	b.lastKey = append(b.lastKey[:shared], key.Bytes()[shared:]...)
	b.counter++
}

// Finish appends the restart trailer and returns a view of the
// complete block. No entries may be added afterwards; the returned
// view aliases the builder's buffer and stays valid until Reset or
// Release. Panics when called twice without a Reset in between.
func (b *Builder) Finish() view.ByteView {
	if b.finished {
		panic("block: Finish called twice")
	}

	for _, offset := range b.restarts {
		b.buf.B = coding.AppendFixed32(b.buf.B, offset)
	}
	b.buf.B = coding.AppendFixed32(b.buf.B, uint32(len(b.restarts))) //nolint:gosec // restart count fits 32 bits
	b.finished = true

	return view.Wrap(b.buf.B)
}

// Reset returns the builder to its freshly constructed state, keeping
// the buffer allocation and the configured restart interval.
func (b *Builder) Reset() {
	b.buf.Reset()
	b.restarts = append(b.restarts[:0], 0)
	b.counter = 0
	b.lastKey = b.lastKey[:0]
	b.finished = false
}

// SizeEstimate returns the size of the block Finish would produce if
// called now. After Finish it is the exact final size.
func (b *Builder) SizeEstimate() int {
	if b.finished {
		return b.buf.Len()
	}

	return b.buf.Len() + len(b.restarts)*4 + 4
}

// Empty reports whether no entries have been added since construction
// or the last Reset.
func (b *Builder) Empty() bool {
	return b.buf.Len() == 0
}

// Release returns the builder's buffer to the shared pool. The
// builder and any views Finish returned must not be used afterwards.
func (b *Builder) Release() {
	pool.PutBlockBuffer(b.buf)
	b.buf = nil
}

// sharedPrefixLen returns the length of the longest common prefix of
// a and b.
func sharedPrefixLen(a []byte, b view.ByteView) int {
	n := min(len(a), b.Len())

	i := 0
	for i < n && a[i] == b.At(i) {
		i++
	}

	return i
}
