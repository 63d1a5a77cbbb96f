package endian

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestWire_IsLittleEndian(t *testing.T) {
	engine := Wire()

	require.Implements(t, (*Engine)(nil), engine)
	require.Equal(t, binary.LittleEndian, engine)

	// LSB first on the wire.
	b := make([]byte, 4)
	engine.PutUint32(b, 0x01020304)
	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, b)
	require.Equal(t, uint32(0x01020304), engine.Uint32(b))

	appended := engine.AppendUint16([]byte{0xff}, 0x0102)
	require.Equal(t, []byte{0xff, 0x02, 0x01}, appended)
}

func TestNative_MatchesHostLayout(t *testing.T) {
	result := Native()

	var probe uint16 = 0x0102
	raw := (*[2]byte)(unsafe.Pointer(&probe))

	switch raw[0] {
	case 0x02:
		require.Equal(t, binary.LittleEndian, result)
	case 0x01:
		require.Equal(t, binary.BigEndian, result)
	default:
		require.Failf(t, "unexpected probe byte", "got: %v", raw[0])
	}
}

func TestNative_AgreesWithStdlib(t *testing.T) {
	b := []byte{0x01, 0x02, 0x03, 0x04}
	require.Equal(t, binary.NativeEndian.Uint32(b), Native().Uint32(b))
}

func TestNative_Consistency(t *testing.T) {
	first := Native()
	for range 100 {
		require.Equal(t, first, Native())
	}
}

func TestIsNativePredicates(t *testing.T) {
	little := IsNativeLittleEndian()
	big := IsNativeBigEndian()

	// Exactly one of the two holds.
	require.NotEqual(t, little, big)
	require.Equal(t, Native() == binary.LittleEndian, little)
	require.Equal(t, Native() == binary.BigEndian, big)
}
