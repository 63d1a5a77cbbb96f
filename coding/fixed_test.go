package coding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPutFixed32_ByteLayout(t *testing.T) {
	buf := make([]byte, 4)
	PutFixed32(buf, 0x04030201)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, buf)

	PutFixed32(buf, 0)
	require.Equal(t, []byte{0x00, 0x00, 0x00, 0x00}, buf)

	PutFixed32(buf, math.MaxUint32)
	require.Equal(t, []byte{0xff, 0xff, 0xff, 0xff}, buf)
}

func TestPutFixed64_ByteLayout(t *testing.T) {
	buf := make([]byte, 8)
	PutFixed64(buf, 0x0807060504030201)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}, buf)
}

// The encoding is defined byte by byte: byte i holds bits 8i..8i+7.
// This holds on every host, whatever its native order.
func TestFixed_HostIndependentLayout(t *testing.T) {
	for _, v := range []uint64{0, 1, 0xdeadbeef, 0x0123456789abcdef, math.MaxUint64} {
		enc := AppendFixed64(nil, v)
		require.Len(t, enc, 8)
		for i, got := range enc {
			require.Equal(t, byte(v>>(8*i)), got, "byte %d of %#x", i, v)
		}
	}

	for _, v := range []uint32{0, 1, 0xcafebabe, math.MaxUint32} {
		enc := AppendFixed32(nil, v)
		require.Len(t, enc, 4)
		for i, got := range enc {
			require.Equal(t, byte(v>>(8*i)), got, "byte %d of %#x", i, v)
		}
	}
}

func TestAppendFixed_ExtendsBuffer(t *testing.T) {
	buf := []byte{0xaa}

	buf = AppendFixed32(buf, 0x00000201)
	require.Equal(t, []byte{0xaa, 0x01, 0x02, 0x00, 0x00}, buf)

	buf = AppendFixed64(buf, 1)
	require.Len(t, buf, 13)
	require.Equal(t, byte(0x01), buf[5])
}

func TestFixedRoundTrip(t *testing.T) {
	values32 := []uint32{0, 1, 255, 256, 0x12345678, math.MaxUint32}
	for _, v := range values32 {
		require.Equal(t, v, Fixed32(AppendFixed32(nil, v)))
	}

	values64 := []uint64{0, 1, 255, 1 << 32, 0x123456789abcdef0, math.MaxUint64}
	for _, v := range values64 {
		require.Equal(t, v, Fixed64(AppendFixed64(nil, v)))
	}
}

func TestFixed_DecodeIgnoresTrailingBytes(t *testing.T) {
	buf := AppendFixed32(nil, 77)
	buf = append(buf, 0xff, 0xff)
	require.Equal(t, uint32(77), Fixed32(buf))
}

func TestFixed_ShortBuffersPanic(t *testing.T) {
	require.Panics(t, func() { PutFixed32(make([]byte, 3), 1) })
	require.Panics(t, func() { PutFixed64(make([]byte, 7), 1) })
	require.Panics(t, func() { Fixed32([]byte{1, 2, 3}) })
	require.Panics(t, func() { Fixed64(make([]byte, 7)) })
}
