package binwrite

import (
	"fmt"
	"io"
	"unicode/utf16"
)

// String encodes its UTF-8 bytes verbatim, with no length prefix or
// terminator. Byte order does not apply.
type String string

// Bytes encodes its contents verbatim.
type Bytes []byte

// CString encodes as null-terminated text, see WriteNullTerminated.
type CString string

// UTF16String encodes as UTF-16 code units, see WriteUTF16.
type UTF16String string

// UTF16NullString encodes as null-terminated UTF-16, see WriteUTF16NullTerminated.
type UTF16NullString string

var (
	_ Encodable = String("")
	_ Encodable = Bytes(nil)
	_ Encodable = CString("")
	_ Encodable = UTF16String("")
	_ Encodable = UTF16NullString("")
)

func (s String) Encode(w io.Writer, _ *Options) error {
	if len(s) == 0 {
		return nil
	}

	n, err := io.WriteString(w, string(s))
	if err != nil {
		return err
	}
	if n < len(s) {
		return io.ErrShortWrite
	}

	return nil
}

func (b Bytes) Encode(w io.Writer, _ *Options) error {
	return writeFull(w, b)
}

func (s CString) Encode(w io.Writer, opts *Options) error {
	return WriteNullTerminated(string(s), w, opts)
}

func (s UTF16String) Encode(w io.Writer, opts *Options) error {
	return WriteUTF16(string(s), w, opts)
}

func (s UTF16NullString) Encode(w io.Writer, opts *Options) error {
	return WriteUTF16NullTerminated(string(s), w, opts)
}

// WriteNullTerminated writes the text form of v as UTF-8 followed by one zero
// byte.
//
// v may be anything fmt.Sprint can render: strings, numbers, fmt.Stringer
// values and so on.
func WriteNullTerminated(v any, w io.Writer, opts *Options) error {
	if err := String(display(v)).Encode(w, opts); err != nil {
		return err
	}

	return U8(0).Encode(w, opts)
}

// WriteUTF16 writes the text form of v as UTF-16 code units, each encoded as a
// U16 in the byte order selected by opts. Runes above U+FFFF become surrogate
// pairs. No terminator is written.
func WriteUTF16(v any, w io.Writer, opts *Options) error {
	var units [2]uint16
	for _, r := range display(v) {
		for _, unit := range utf16.AppendRune(units[:0], r) {
			if err := U16(unit).Encode(w, opts); err != nil {
				return err
			}
		}
	}

	return nil
}

// WriteUTF16NullTerminated is WriteUTF16 followed by a zero U16 unit.
func WriteUTF16NullTerminated(v any, w io.Writer, opts *Options) error {
	if err := WriteUTF16(v, w, opts); err != nil {
		return err
	}

	return U16(0).Encode(w, opts)
}

// display renders v the way fmt.Sprint does, skipping fmt for plain strings.
func display(v any) string {
	if s, ok := v.(string); ok {
		return s
	}

	return fmt.Sprint(v)
}
