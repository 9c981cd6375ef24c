package binwrite

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/binwrite/endian"
)

// failAfter accepts up to limit bytes in total, then fails every write with err.
type failAfter struct {
	bytes.Buffer
	limit int
	err   error
}

func (f *failAfter) Write(p []byte) (int, error) {
	if f.Len()+len(p) > f.limit {
		return 0, f.err
	}

	return f.Buffer.Write(p)
}

func (f *failAfter) WriteString(s string) (int, error) {
	return f.Write([]byte(s))
}

// lazySink reports one byte fewer than requested and no error.
type lazySink struct{}

func (lazySink) Write(p []byte) (int, error) { return len(p) - 1, nil }

func mustOptions(t *testing.T, opts ...Option) *Options {
	t.Helper()
	o, err := NewOptions(opts...)
	require.NoError(t, err)

	return o
}

func encodeBytes(t *testing.T, v Encodable, opts *Options) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, EncodeWith(v, &buf, opts))

	return buf.Bytes()
}

func TestScenarios(t *testing.T) {
	big := mustOptions(t, WithBigEndian())
	little := mustOptions(t, WithLittleEndian())

	tests := []struct {
		name string
		enc  func(w io.Writer) error
		want []byte
	}{
		{"u32 little", func(w io.Writer) error { return U32(1).Encode(w, little) }, []byte{0x01, 0x00, 0x00, 0x00}},
		{"u32 big", func(w io.Writer) error { return U32(1).Encode(w, big) }, []byte{0x00, 0x00, 0x00, 0x01}},
		{"tuple big", func(w io.Writer) error { return NewTuple2(U16(3), U16(4)).Encode(w, big) }, []byte{0x00, 0x03, 0x00, 0x04}},
		{"i32 little", func(w io.Writer) error { return I32(-2).Encode(w, little) }, []byte{0xFE, 0xFF, 0xFF, 0xFF}},
		{"null-terminated", func(w io.Writer) error { return WriteNullTerminated("abc", w, nil) }, []byte{0x61, 0x62, 0x63, 0x00}},
		{"utf16 little", func(w io.Writer) error { return WriteUTF16("ab", w, little) }, []byte{0x61, 0x00, 0x62, 0x00}},
		{"utf16 null big", func(w io.Writer) error { return WriteUTF16NullTerminated("a", w, big) }, []byte{0x00, 0x61, 0x00, 0x00}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, tt.enc(&buf))
			require.Equal(t, tt.want, buf.Bytes())
		})
	}
}

func TestEncode_DefaultIsNative(t *testing.T) {
	var def, native bytes.Buffer
	require.NoError(t, Encode(U64(0x0102030405060708), &def))
	require.NoError(t, U64(0x0102030405060708).Encode(&native, mustOptions(t, WithByteOrder(endian.Native))))
	require.Equal(t, native.Bytes(), def.Bytes())

	var nilOpts bytes.Buffer
	require.NoError(t, EncodeWith(U64(0x0102030405060708), &nilOpts, nil))
	require.Equal(t, def.Bytes(), nilOpts.Bytes())

	var zero bytes.Buffer
	require.NoError(t, EncodeWith(U64(0x0102030405060708), &zero, &Options{}))
	require.Equal(t, def.Bytes(), zero.Bytes())
}

func TestEncode_SinkErrorUnchanged(t *testing.T) {
	sinkErr := errors.New("sink full")
	err := Encode(U32(7), &failAfter{limit: 0, err: sinkErr})
	require.Same(t, sinkErr, err)
}

func TestEncode_ShortWrite(t *testing.T) {
	require.ErrorIs(t, Encode(U32(7), lazySink{}), io.ErrShortWrite)
	require.ErrorIs(t, Encode(String("abc"), lazySink{}), io.ErrShortWrite)
}

func TestMarshal(t *testing.T) {
	v := NewTuple3(U16(0xABCD), CString("hi"), Seq[U8]{1, 2})

	out, err := Marshal(v, WithBigEndian())
	require.NoError(t, err)
	require.Equal(t, []byte{0xAB, 0xCD, 'h', 'i', 0x00, 0x01, 0x02}, out)

	var buf bytes.Buffer
	require.NoError(t, EncodeWith(v, &buf, mustOptions(t, WithBigEndian())))
	require.Equal(t, buf.Bytes(), out)

	// result must not alias the pooled buffer
	again, err := Marshal(U8(9))
	require.NoError(t, err)
	require.Equal(t, []byte{9}, again)
	require.Equal(t, []byte{0xAB, 0xCD, 'h', 'i', 0x00, 0x01, 0x02}, out)

	_, err = Marshal(U8(1), WithByteOrder(endian.ByteOrder(200)))
	require.Error(t, err)
}
