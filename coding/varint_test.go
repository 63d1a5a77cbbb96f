package coding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halver/keel/view"
)

func TestUvarint_BoundaryLengths(t *testing.T) {
	tests := []struct {
		v uint64
		n int
	}{
		{0, 1},
		{127, 1},
		{128, 2},
		{16383, 2},
		{16384, 3},
		{1<<21 - 1, 3},
		{1 << 21, 4},
		{1<<28 - 1, 4},
		{1 << 28, 5},
		{math.MaxUint32, 5},
		{1<<35 - 1, 5},
		{1 << 35, 6},
		{1 << 42, 7},
		{1 << 49, 8},
		{1 << 56, 9},
		{1<<63 - 1, 9},
		{1 << 63, 10},
		{math.MaxUint64, 10},
	}

	for _, tt := range tests {
		enc := AppendUvarint64(nil, tt.v)
		require.Len(t, enc, tt.n, "encoding of %d", tt.v)
		require.Equal(t, tt.n, UvarintLen(tt.v), "UvarintLen(%d)", tt.v)

		got, n := Uvarint64(enc)
		require.Equal(t, tt.n, n)
		require.Equal(t, tt.v, got)
	}
}

func TestUvarint32_RoundTrip(t *testing.T) {
	values := []uint32{0, 1, 127, 128, 255, 300, 16383, 16384, 65535, 1<<21 - 1, 1 << 28, math.MaxUint32}

	for _, v := range values {
		enc := AppendUvarint32(nil, v)

		got, n := Uvarint32(enc)
		require.Equal(t, len(enc), n)
		require.Equal(t, v, got)

		// The 32-bit and 64-bit encoders produce identical bytes.
		require.Equal(t, AppendUvarint64(nil, uint64(v)), enc)
	}
}

func TestPutUvarint(t *testing.T) {
	for _, v := range []uint64{0, 127, 128, 16384, math.MaxUint64} {
		want := AppendUvarint64(nil, v)

		buf := make([]byte, UvarintLen(v))
		n := PutUvarint64(buf, v)
		require.Equal(t, len(want), n)
		require.Equal(t, want, buf)

		if v <= math.MaxUint32 {
			buf32 := make([]byte, UvarintLen(v))
			n32 := PutUvarint32(buf32, uint32(v))
			require.Equal(t, want, buf32[:n32])
		}
	}
}

func TestPutUvarint_ShortBufferPanics(t *testing.T) {
	require.Panics(t, func() { PutUvarint32(make([]byte, 1), 128) })
	require.Panics(t, func() { PutUvarint64(make([]byte, 9), math.MaxUint64) })
	require.Panics(t, func() { PutUvarint64(nil, 0) })
}

func TestUvarint_TruncatedInput(t *testing.T) {
	_, n := Uvarint32(nil)
	require.Zero(t, n)
	_, n = Uvarint64([]byte{})
	require.Zero(t, n)

	for _, v := range []uint64{128, 16384, 1 << 28, math.MaxUint32, 1 << 56, math.MaxUint64} {
		enc := AppendUvarint64(nil, v)

		// Every strict prefix ends on a continuation byte.
		for cut := range enc {
			_, n := Uvarint64(enc[:cut])
			assert.Zero(t, n, "Uvarint64 on %d-byte prefix of %d", cut, v)

			if v <= math.MaxUint32 {
				_, n := Uvarint32(enc[:cut])
				assert.Zero(t, n, "Uvarint32 on %d-byte prefix of %d", cut, v)
			}
		}
	}
}

func TestUvarint32_TooLong(t *testing.T) {
	// Continuation bit still set on the 5th byte.
	_, n := Uvarint32([]byte{0x80, 0x80, 0x80, 0x80, 0x80})
	require.Equal(t, -MaxUvarintLen32, n)

	_, n = Uvarint32([]byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x01})
	require.Equal(t, -MaxUvarintLen32, n)

	// A terminating 5th byte is fine.
	got, n := Uvarint32([]byte{0xff, 0xff, 0xff, 0xff, 0x0f})
	require.Equal(t, 5, n)
	require.Equal(t, uint32(math.MaxUint32), got)
}

func TestUvarint64_TooLong(t *testing.T) {
	tooLong := make([]byte, MaxUvarintLen64)
	for i := range tooLong {
		tooLong[i] = 0x80
	}

	_, n := Uvarint64(tooLong)
	require.Equal(t, -MaxUvarintLen64, n)

	_, n = Uvarint64(append(tooLong, 0x01))
	require.Equal(t, -MaxUvarintLen64, n)

	maxEnc := []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01}
	got, n := Uvarint64(maxEnc)
	require.Equal(t, 10, n)
	require.Equal(t, uint64(math.MaxUint64), got)
}

// Bits of the final byte beyond the target width are dropped. These
// inputs are non-minimal but the format has always accepted them, and
// readers in the field depend on that staying true.
func TestUvarint32_FinalByteHighBitsDropped(t *testing.T) {
	got, n := Uvarint32([]byte{0xff, 0xff, 0xff, 0xff, 0x7f})
	require.Equal(t, 5, n)
	require.Equal(t, uint32(math.MaxUint32), got)

	// 0x10 contributes only bit 32, which falls off the top.
	got, n = Uvarint32([]byte{0x80, 0x80, 0x80, 0x80, 0x10})
	require.Equal(t, 5, n)
	require.Equal(t, uint32(0), got)

	got, n = Uvarint32([]byte{0x81, 0x80, 0x80, 0x80, 0x10})
	require.Equal(t, 5, n)
	require.Equal(t, uint32(1), got)
}

func TestUvarint64_FinalByteHighBitsDropped(t *testing.T) {
	// 0x02 contributes only bit 64.
	in := []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x02}
	got, n := Uvarint64(in)
	require.Equal(t, 10, n)
	require.Equal(t, uint64(0), got)

	in[0] = 0x81
	got, n = Uvarint64(in)
	require.Equal(t, 10, n)
	require.Equal(t, uint64(1), got)
}

func TestUvarint_FastAndSlowPathsAgree(t *testing.T) {
	for b := range 0x80 {
		in := []byte{byte(b)}

		v32, n32 := Uvarint32(in)
		sv32, sn32 := uvarint32Slow(in)
		require.Equal(t, v32, sv32)
		require.Equal(t, n32, sn32)
		require.Equal(t, 1, n32)

		v64, n64 := Uvarint64(in)
		sv64, sn64 := uvarint64Slow(in)
		require.Equal(t, v64, sv64)
		require.Equal(t, n64, sn64)
	}

	multi := AppendUvarint64(nil, 987654321)
	v, n := Uvarint64(multi)
	sv, sn := uvarint64Slow(multi)
	require.Equal(t, v, sv)
	require.Equal(t, n, sn)
}

func TestUvarintLen_MatchesEncoding(t *testing.T) {
	for bit := range 64 {
		edge := uint64(1) << bit
		for _, v := range []uint64{edge - 1, edge, edge + 1} {
			require.Len(t, AppendUvarint64(nil, v), UvarintLen(v), "value %d", v)
		}
	}
}

func TestGetUvarint32_AdvancesCursor(t *testing.T) {
	var buf []byte
	buf = AppendUvarint32(buf, 300)
	buf = AppendUvarint32(buf, 7)
	buf = append(buf, 0xee)

	in := view.Wrap(buf)

	v, ok := GetUvarint32(&in)
	require.True(t, ok)
	require.Equal(t, uint32(300), v)
	require.Equal(t, len(buf)-2, in.Len())

	v, ok = GetUvarint32(&in)
	require.True(t, ok)
	require.Equal(t, uint32(7), v)

	require.Equal(t, 1, in.Len())
	require.Equal(t, byte(0xee), in.At(0))
}

func TestGetUvarint_FailureLeavesViewUnchanged(t *testing.T) {
	truncated := []byte{0x80, 0x80}
	in := view.Wrap(truncated)

	_, ok := GetUvarint32(&in)
	require.False(t, ok)
	require.Equal(t, 2, in.Len())
	require.Equal(t, byte(0x80), in.At(0))

	_, ok = GetUvarint64(&in)
	require.False(t, ok)
	require.Equal(t, 2, in.Len())

	tooLong := view.Wrap([]byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80})
	_, ok = GetUvarint32(&tooLong)
	require.False(t, ok)
	require.Equal(t, 6, tooLong.Len())
}

func TestGetUvarint64_RoundTrip(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 1 << 40, math.MaxUint64}

	var buf []byte
	for _, v := range values {
		buf = AppendUvarint64(buf, v)
	}

	in := view.Wrap(buf)
	for _, want := range values {
		got, ok := GetUvarint64(&in)
		require.True(t, ok)
		require.Equal(t, want, got)
	}
	require.True(t, in.Empty())
}

func TestVarint64_RoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, 63, -64, 64, -65, 300, -300, math.MaxInt64, math.MinInt64}

	for _, v := range values {
		enc := AppendVarint64(nil, v)
		require.Len(t, enc, VarintLen(v))

		got, n := Varint64(enc)
		require.Equal(t, len(enc), n)
		require.Equal(t, v, got)
	}
}

// Zigzag keeps small magnitudes short for both signs.
func TestVarint64_SmallMagnitudes(t *testing.T) {
	require.Equal(t, 1, VarintLen(0))
	require.Equal(t, 1, VarintLen(63))
	require.Equal(t, 1, VarintLen(-64))
	require.Equal(t, 2, VarintLen(64))
	require.Equal(t, 2, VarintLen(-65))
	require.Equal(t, 10, VarintLen(math.MinInt64))
}

func TestVarint64_Failures(t *testing.T) {
	_, n := Varint64(nil)
	require.Zero(t, n)

	tooLong := make([]byte, MaxUvarintLen64+1)
	for i := range tooLong {
		tooLong[i] = 0x80
	}
	_, n = Varint64(tooLong)
	require.Equal(t, -MaxUvarintLen64, n)
}

func TestGetVarint64(t *testing.T) {
	var buf []byte
	buf = AppendVarint64(buf, -12345)
	buf = AppendVarint64(buf, 12345)

	in := view.Wrap(buf)

	v, ok := GetVarint64(&in)
	require.True(t, ok)
	require.Equal(t, int64(-12345), v)

	v, ok = GetVarint64(&in)
	require.True(t, ok)
	require.Equal(t, int64(12345), v)
	require.True(t, in.Empty())

	_, ok = GetVarint64(&in)
	require.False(t, ok)
}

func TestPutVarint64(t *testing.T) {
	for _, v := range []int64{0, -1, 1 << 40, math.MinInt64} {
		buf := make([]byte, VarintLen(v))
		n := PutVarint64(buf, v)
		require.Equal(t, AppendVarint64(nil, v), buf[:n])
	}
}
