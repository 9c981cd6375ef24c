package binwrite

import (
	"io"
	"math"
	"unicode/utf8"

	"github.com/arloliu/binwrite/endian"
)

// Fixed-width numeric encoders. Each writes exactly its width in bytes with a
// single sink write, in the byte order selected by Options. U8, I8 and Bool are
// one byte wide and therefore unaffected by byte order.
type (
	U8  uint8
	I8  int8
	U16 uint16
	I16 int16
	U32 uint32
	I32 int32
	U64 uint64
	I64 int64
	F32 float32
	F64 float64

	// Bool encodes as a single byte, 0x01 for true and 0x00 for false.
	Bool bool
)

// Uint128 is an unsigned 128-bit integer, Hi<<64 | Lo.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// Int128 is a two's-complement signed 128-bit integer, Hi<<64 | Lo.
type Int128 struct {
	Hi int64
	Lo uint64
}

// Uint128From64 widens v to 128 bits.
func Uint128From64(v uint64) Uint128 {
	return Uint128{Lo: v}
}

// Int128From64 sign-extends v to 128 bits.
func Int128From64(v int64) Int128 {
	return Int128{Hi: v >> 63, Lo: uint64(v)} //nolint:gosec
}

// Char encodes a rune as its UTF-8 byte sequence (1 to 4 bytes). Byte order
// does not apply. Invalid runes encode as U+FFFD.
type Char rune

var (
	_ Encodable = U8(0)
	_ Encodable = I8(0)
	_ Encodable = U16(0)
	_ Encodable = I16(0)
	_ Encodable = U32(0)
	_ Encodable = I32(0)
	_ Encodable = U64(0)
	_ Encodable = I64(0)
	_ Encodable = F32(0)
	_ Encodable = F64(0)
	_ Encodable = Bool(false)
	_ Encodable = Uint128{}
	_ Encodable = Int128{}
	_ Encodable = Char(0)
)

func (v U8) Encode(w io.Writer, _ *Options) error {
	return writeFull(w, []byte{byte(v)})
}

func (v I8) Encode(w io.Writer, _ *Options) error {
	return writeFull(w, []byte{byte(v)})
}

func (v Bool) Encode(w io.Writer, _ *Options) error {
	var b byte
	if v {
		b = 1
	}

	return writeFull(w, []byte{b})
}

func (v U16) Encode(w io.Writer, opts *Options) error {
	var buf [2]byte
	opts.Engine().PutUint16(buf[:], uint16(v))

	return writeFull(w, buf[:])
}

func (v I16) Encode(w io.Writer, opts *Options) error {
	return U16(v).Encode(w, opts) //nolint:gosec
}

func (v U32) Encode(w io.Writer, opts *Options) error {
	var buf [4]byte
	opts.Engine().PutUint32(buf[:], uint32(v))

	return writeFull(w, buf[:])
}

func (v I32) Encode(w io.Writer, opts *Options) error {
	return U32(v).Encode(w, opts) //nolint:gosec
}

func (v U64) Encode(w io.Writer, opts *Options) error {
	var buf [8]byte
	opts.Engine().PutUint64(buf[:], uint64(v))

	return writeFull(w, buf[:])
}

func (v I64) Encode(w io.Writer, opts *Options) error {
	return U64(v).Encode(w, opts) //nolint:gosec
}

// Encode writes the IEEE-754 binary32 bit pattern of v.
func (v F32) Encode(w io.Writer, opts *Options) error {
	return U32(math.Float32bits(float32(v))).Encode(w, opts)
}

// Encode writes the IEEE-754 binary64 bit pattern of v.
func (v F64) Encode(w io.Writer, opts *Options) error {
	return U64(math.Float64bits(float64(v))).Encode(w, opts)
}

func (v Uint128) Encode(w io.Writer, opts *Options) error {
	var buf [16]byte
	put128(opts.Engine(), buf[:], v.Hi, v.Lo)

	return writeFull(w, buf[:])
}

func (v Int128) Encode(w io.Writer, opts *Options) error {
	return Uint128{Hi: uint64(v.Hi), Lo: v.Lo}.Encode(w, opts) //nolint:gosec
}

// put128 lays out a 128-bit value as two 64-bit halves, high half first for
// big-endian engines and low half first otherwise.
func put128(engine endian.EndianEngine, buf []byte, hi, lo uint64) {
	if engine == endian.GetBigEndianEngine() {
		engine.PutUint64(buf[:8], hi)
		engine.PutUint64(buf[8:16], lo)

		return
	}
	engine.PutUint64(buf[:8], lo)
	engine.PutUint64(buf[8:16], hi)
}

func (v Char) Encode(w io.Writer, _ *Options) error {
	var buf [utf8.UTFMax]byte

	return writeFull(w, utf8.AppendRune(buf[:0], rune(v)))
}
