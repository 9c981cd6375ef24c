package binwrite

import (
	"bytes"
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/binwrite/endian"
)

func TestPrimitives_BigLittleReversed(t *testing.T) {
	big := MustOptions(WithBigEndian())
	little := MustOptions(WithLittleEndian())
	native := DefaultOptions()

	values := []struct {
		name  string
		v     Encodable
		width int
	}{
		{"u16", U16(0x0102), 2},
		{"i16", I16(-300), 2},
		{"u32", U32(0x01020304), 4},
		{"i32", I32(math.MinInt32 + 5), 4},
		{"u64", U64(0x0102030405060708), 8},
		{"i64", I64(-1234567890123), 8},
		{"f32", F32(3.25), 4},
		{"f64", F64(-0.1), 8},
		{"u128", Uint128{Hi: 0x0102030405060708, Lo: 0x090A0B0C0D0E0F10}, 16},
		{"i128", Int128From64(-42), 16},
	}
	for _, tt := range values {
		t.Run(tt.name, func(t *testing.T) {
			be := encodeBytes(t, tt.v, big)
			le := encodeBytes(t, tt.v, little)
			ne := encodeBytes(t, tt.v, native)

			require.Len(t, be, tt.width)
			require.Len(t, le, tt.width)

			reversed := slices.Clone(le)
			slices.Reverse(reversed)
			require.Equal(t, be, reversed)

			if endian.IsNativeLittleEndian() {
				require.Equal(t, le, ne)
			} else {
				require.Equal(t, be, ne)
			}
		})
	}
}

func TestPrimitives_SingleByteInvariant(t *testing.T) {
	for _, opts := range []*Options{MustOptions(WithBigEndian()), MustOptions(WithLittleEndian()), nil} {
		require.Equal(t, []byte{0xFF}, encodeBytes(t, U8(0xFF), opts))
		require.Equal(t, []byte{0x80}, encodeBytes(t, I8(-128), opts))
		require.Equal(t, []byte{0x01}, encodeBytes(t, Bool(true), opts))
		require.Equal(t, []byte{0x00}, encodeBytes(t, Bool(false), opts))
		require.Equal(t, []byte("A"), encodeBytes(t, Char('A'), opts))
	}
}

func TestPrimitives_Floats(t *testing.T) {
	big := MustOptions(WithBigEndian())

	require.Equal(t, []byte{0x3F, 0x80, 0x00, 0x00}, encodeBytes(t, F32(1), big))
	require.Equal(t, []byte{0x3F, 0xF0, 0, 0, 0, 0, 0, 0}, encodeBytes(t, F64(1), big))
	require.Equal(t, []byte{0x7F, 0xC0, 0x00, 0x00}, encodeBytes(t, F32(math.Float32frombits(0x7FC00000)), big))
}

func TestPrimitives_128(t *testing.T) {
	big := MustOptions(WithBigEndian())
	little := MustOptions(WithLittleEndian())

	one := Uint128From64(1)
	require.Equal(t, append(make([]byte, 15), 0x01), encodeBytes(t, one, big))
	require.Equal(t, append([]byte{0x01}, make([]byte, 15)...), encodeBytes(t, one, little))

	minusOne := Int128From64(-1)
	require.Equal(t, bytes.Repeat([]byte{0xFF}, 16), encodeBytes(t, minusOne, big))

	minusTwo := encodeBytes(t, Int128From64(-2), little)
	require.Equal(t, byte(0xFE), minusTwo[0])
	require.Equal(t, bytes.Repeat([]byte{0xFF}, 15), minusTwo[1:])

	require.Equal(t, Int128{Hi: 0, Lo: 5}, Int128From64(5))
}

func TestChar_UTF8(t *testing.T) {
	tests := []struct {
		r    rune
		want []byte
	}{
		{'a', []byte{0x61}},
		{'é', []byte{0xC3, 0xA9}},
		{'€', []byte{0xE2, 0x82, 0xAC}},
		{'😀', []byte{0xF0, 0x9F, 0x98, 0x80}},
		{rune(-1), []byte{0xEF, 0xBF, 0xBD}},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, encodeBytes(t, Char(tt.r), MustOptions(WithBigEndian())), "rune %U", tt.r)
	}
}

func TestPrimitives_PointerEncodesLikeValue(t *testing.T) {
	opts := MustOptions(WithBigEndian())
	v := U32(0xCAFEBABE)
	s := String("text")

	require.Equal(t, encodeBytes(t, v, opts), encodeBytes(t, &v, opts))
	require.Equal(t, encodeBytes(t, s, opts), encodeBytes(t, &s, opts))
}
