// Package binwrite encodes typed Go values into byte streams under explicit
// byte-order rules.
//
// Every encodable value satisfies Encodable, a single method that writes the
// value into an io.Writer using the byte order carried by *Options. The package
// ships encoders for fixed-width numbers and characters, raw text, sequences,
// fixed-size arrays and tuples, plus three text forms (null-terminated,
// UTF-16 and UTF-16 null-terminated). Composite encoders simply concatenate the
// encodings of their elements: there are no headers, length prefixes or
// padding, so the byte layout is exactly the sequence of encode calls made.
//
// # Basic Usage
//
//	var buf bytes.Buffer
//	opts, _ := binwrite.NewOptions(binwrite.WithBigEndian())
//
//	rec := binwrite.NewTuple3(binwrite.U16(3), binwrite.U16(4), binwrite.CString("id"))
//	if err := binwrite.EncodeWith(rec, &buf, opts); err != nil {
//	    return err
//	}
//	// buf: 00 03 00 04 69 64 00
//
// Encode uses default options, which always select the host byte order:
//
//	err := binwrite.Encode(binwrite.U32(1), w)
//
// # Errors
//
// Encoders never wrap or retry: the first error reported by the sink is
// returned as-is and encoding stops. Bytes written before the failure stay in
// the sink.
//
// # Thread Safety
//
// Options are immutable and may be shared. Encoding into a sink is not
// synchronized; callers must not encode into the same sink from multiple
// goroutines at once.
package binwrite

import (
	"io"

	"github.com/arloliu/binwrite/compress"
	"github.com/arloliu/binwrite/format"
	"github.com/arloliu/binwrite/internal/hash"
	"github.com/arloliu/binwrite/internal/pool"
)

// Encodable is implemented by every value that can be written as bytes.
//
// Encode writes the receiver into w using the byte order in opts. A nil opts
// means default options. Implementations must return sink errors unchanged and
// must not keep w after returning.
//
// All encoders in this package use value receivers, so a pointer to a value
// encodes exactly like the value itself.
type Encodable interface {
	Encode(w io.Writer, opts *Options) error
}

// Encode writes v into w with default options (host byte order).
func Encode(v Encodable, w io.Writer) error {
	return v.Encode(w, DefaultOptions())
}

// EncodeWith writes v into w with explicit options.
func EncodeWith(v Encodable, w io.Writer, opts *Options) error {
	return v.Encode(w, opts)
}

// Marshal encodes v into a new byte slice.
//
// It builds Options from opts and encodes into a pooled buffer, so the only
// errors it can return come from option validation or from v itself.
func Marshal(v Encodable, opts ...Option) ([]byte, error) {
	buf, err := encodePooled(v, opts)
	if err != nil {
		return nil, err
	}
	defer pool.PutEncodeBuffer(buf)

	return buf.Clone(), nil
}

// MarshalCompressed encodes v and compresses the result as a single block.
//
// The output is a raw block of the chosen algorithm (a zstd frame, an S2 block
// or an LZ4 block), not a stream. CompressionNone returns the plain encoding.
// Empty encodings yield nil for S2 and LZ4. An LZ4 block may also come back
// empty when the encoding does not compress; callers needing raw fallback
// should compare against Marshal.
func MarshalCompressed(v Encodable, ct format.CompressionType, opts ...Option) ([]byte, error) {
	c, err := compress.GetCompressor(ct)
	if err != nil {
		return nil, err
	}

	buf, err := encodePooled(v, opts)
	if err != nil {
		return nil, err
	}
	defer pool.PutEncodeBuffer(buf)

	if ct == format.CompressionNone {
		return buf.Clone(), nil
	}

	return c.Compress(buf.Bytes())
}

// Checksum returns the xxHash64 of v's encoding. It equals Encoder.Checksum
// after encoding v alone into a checksumming Encoder with the same options.
func Checksum(v Encodable, opts ...Option) (uint64, error) {
	buf, err := encodePooled(v, opts)
	if err != nil {
		return 0, err
	}
	defer pool.PutEncodeBuffer(buf)

	return hash.Sum(buf.Bytes()), nil
}

// encodePooled encodes v into a pooled buffer. On success the caller owns the
// buffer and must return it with pool.PutEncodeBuffer.
func encodePooled(v Encodable, opts []Option) (*pool.ByteBuffer, error) {
	o, err := NewOptions(opts...)
	if err != nil {
		return nil, err
	}

	buf := pool.GetEncodeBuffer()
	if err := v.Encode(buf, o); err != nil {
		pool.PutEncodeBuffer(buf)
		return nil, err
	}

	return buf, nil
}

// writeFull writes p with a single call to w. A sink that accepts fewer bytes
// without reporting an error yields io.ErrShortWrite.
func writeFull(w io.Writer, p []byte) error {
	if len(p) == 0 {
		return nil
	}

	n, err := w.Write(p)
	if err != nil {
		return err
	}
	if n < len(p) {
		return io.ErrShortWrite
	}

	return nil
}
