package binwrite

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func concat(t *testing.T, opts *Options, parts ...Encodable) []byte {
	t.Helper()
	var out []byte
	for _, p := range parts {
		out = append(out, encodeBytes(t, p, opts)...)
	}

	return out
}

func TestSeq(t *testing.T) {
	opts := MustOptions(WithLittleEndian())

	s := Seq[U32]{1, 2, 0xFFFFFFFF}
	require.Equal(t, concat(t, opts, U32(1), U32(2), U32(0xFFFFFFFF)), encodeBytes(t, s, opts))

	require.Empty(t, encodeBytes(t, Seq[U64]{}, opts))
	require.Empty(t, encodeBytes(t, Seq[U64](nil), opts))

	nested := Seq[Seq[U16]]{{1, 2}, {}, {3}}
	require.Equal(t, []byte{1, 0, 2, 0, 3, 0}, encodeBytes(t, nested, opts))
}

func TestArrays(t *testing.T) {
	big := MustOptions(WithBigEndian())

	require.Empty(t, encodeBytes(t, Array0[U32]{}, big))
	require.Equal(t, []byte{0, 1}, encodeBytes(t, Array1[U16]{1}, big))
	require.Equal(t, []byte{0, 1, 0, 2, 0, 3, 0, 4}, encodeBytes(t, Array4[U16]{1, 2, 3, 4}, big))

	var a20 Array20[U8]
	for i := range a20 {
		a20[i] = U8(i)
	}
	want := make([]byte, 20)
	for i := range want {
		want[i] = byte(i)
	}
	require.Equal(t, want, encodeBytes(t, a20, big))

	// arrays of composites recurse with the same options
	pairs := Array2[Tuple2[U8, U16]]{NewTuple2(U8(1), U16(2)), NewTuple2(U8(3), U16(4))}
	require.Equal(t, []byte{1, 0, 2, 3, 0, 4}, encodeBytes(t, pairs, big))
}

func TestTuples(t *testing.T) {
	opts := MustOptions(WithBigEndian())

	require.Empty(t, encodeBytes(t, Tuple0{}, opts))
	require.Empty(t, encodeBytes(t, Tuple{}, opts))

	t1 := NewTuple1(U64(5))
	require.Equal(t, encodeBytes(t, U64(5), opts), encodeBytes(t, t1, opts))

	mixed := NewTuple5(U8(1), I16(-1), String("ab"), F32(1), Char('é'))
	require.Equal(t,
		concat(t, opts, U8(1), I16(-1), String("ab"), F32(1), Char('é')),
		encodeBytes(t, mixed, opts))

	nested := NewTuple3(NewTuple2(U8(1), U8(2)), Tuple0{}, Seq[U8]{3, 4})
	require.Equal(t, []byte{1, 2, 3, 4}, encodeBytes(t, nested, opts))
}

func TestTuple20(t *testing.T) {
	opts := MustOptions(WithLittleEndian())

	tup := NewTuple20(
		U8(1), U16(2), U32(3), U64(4), I8(-5),
		I16(-6), I32(-7), I64(-8), F32(9), F64(10),
		Bool(true), Char('x'), String("s"), Bytes{0xAA}, CString("c"),
		UTF16String("u"), UTF16NullString("n"), Seq[U8]{1}, Array2[U8]{2, 3}, Tuple0{},
	)
	want := concat(t, opts,
		U8(1), U16(2), U32(3), U64(4), I8(-5),
		I16(-6), I32(-7), I64(-8), F32(9), F64(10),
		Bool(true), Char('x'), String("s"), Bytes{0xAA}, CString("c"),
		UTF16String("u"), UTF16NullString("n"), Seq[U8]{1}, Array2[U8]{2, 3}, Tuple0{},
	)

	require.Equal(t, want, encodeBytes(t, tup, opts))

	dynamic := Tuple{tup.V1, tup.V2, tup.V3, tup.V4, tup.V5, tup.V6, tup.V7, tup.V8, tup.V9, tup.V10,
		tup.V11, tup.V12, tup.V13, tup.V14, tup.V15, tup.V16, tup.V17, tup.V18, tup.V19, tup.V20}
	require.Equal(t, want, encodeBytes(t, dynamic, opts))
}

func TestComposite_StopsAtFirstError(t *testing.T) {
	sinkErr := errors.New("no space left")

	// room for the first two U32 only
	sink := &failAfter{limit: 8, err: sinkErr}
	err := EncodeWith(Seq[U32]{1, 2, 3, 4}, sink, MustOptions(WithBigEndian()))
	require.Same(t, sinkErr, err)
	require.Equal(t, []byte{0, 0, 0, 1, 0, 0, 0, 2}, sink.Bytes(), "prior elements stay in the sink")

	sink = &failAfter{limit: 3, err: sinkErr}
	err = EncodeWith(NewTuple3(U16(1), U16(2), U16(3)), sink, MustOptions(WithBigEndian()))
	require.Same(t, sinkErr, err)
	require.Equal(t, []byte{0, 1}, sink.Bytes())

	sink = &failAfter{limit: 1, err: sinkErr}
	err = EncodeWith(Array3[String]{"a", "b", "c"}, sink, nil)
	require.Same(t, sinkErr, err)
	require.Equal(t, "a", sink.String())
}

func TestComposite_PointerElements(t *testing.T) {
	opts := MustOptions(WithBigEndian())
	a, b := U16(1), U16(2)

	byRef := Seq[*U16]{&a, &b}
	byVal := Seq[U16]{a, b}
	require.Equal(t, encodeBytes(t, byVal, opts), encodeBytes(t, byRef, opts))

	require.Equal(t, encodeBytes(t, NewTuple2(a, b), opts), encodeBytes(t, NewTuple2(&a, &b), opts))
}

func TestValue(t *testing.T) {
	tests := []struct {
		in   any
		want Encodable
	}{
		{uint8(1), U8(1)},
		{int8(-1), I8(-1)},
		{uint16(2), U16(2)},
		{int16(-2), I16(-2)},
		{uint32(3), U32(3)},
		{int32(-3), I32(-3)},
		{'r', I32('r')},
		{uint64(4), U64(4)},
		{int64(-4), I64(-4)},
		{float32(1.5), F32(1.5)},
		{2.5, F64(2.5)},
		{true, Bool(true)},
		{"s", String("s")},
		{[]byte{1}, Bytes{1}},
		{Char('x'), Char('x')},
	}
	for _, tt := range tests {
		got, ok := Value(tt.in)
		require.True(t, ok, "%T", tt.in)
		require.Equal(t, tt.want, got)
	}

	for _, bad := range []any{1, uint(1), nil, struct{}{}, []int{1}} {
		_, ok := Value(bad)
		require.False(t, ok, "%T", bad)
	}
}

func TestValues(t *testing.T) {
	tup, err := Values(uint16(0x0102), "hi", true)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, EncodeWith(tup, &buf, MustOptions(WithBigEndian())))
	require.Equal(t, []byte{0x01, 0x02, 'h', 'i', 0x01}, buf.Bytes())

	_, err = Values(uint8(1), 42)
	require.ErrorContains(t, err, "value 1: unsupported type int")
}
