package binwrite

import (
	"fmt"
	"io"
)

//go:generate go run ./internal/gen/composites -max 20 -out composite_gen.go

// Seq is a dynamically sized sequence. Elements are encoded in index order with
// the same Options; no length prefix is written.
type Seq[T Encodable] []T

func (s Seq[T]) Encode(w io.Writer, opts *Options) error {
	for _, v := range s {
		if err := v.Encode(w, opts); err != nil {
			return err
		}
	}

	return nil
}

// Tuple is a heterogeneous list of values encoded in order. It is the dynamic
// counterpart of the generated Tuple0 through Tuple20 types.
type Tuple []Encodable

func (t Tuple) Encode(w io.Writer, opts *Options) error {
	return encodeAll(w, opts, t...)
}

// encodeAll encodes values in order with the same opts and stops at the first
// error. Every composite type funnels through it or through Seq.
func encodeAll(w io.Writer, opts *Options, values ...Encodable) error {
	for _, v := range values {
		if err := v.Encode(w, opts); err != nil {
			return err
		}
	}

	return nil
}

// Value maps a Go value to its encoder.
//
// Fixed-width integers, floats, bool, string and []byte are supported, as is
// anything that already implements Encodable. int and uint are rejected because
// their width depends on the platform. rune is an alias of int32 and maps to
// I32; use Char for UTF-8 output.
func Value(v any) (Encodable, bool) {
	switch x := v.(type) {
	case Encodable:
		return x, true
	case uint8:
		return U8(x), true
	case int8:
		return I8(x), true
	case uint16:
		return U16(x), true
	case int16:
		return I16(x), true
	case uint32:
		return U32(x), true
	case int32:
		return I32(x), true
	case uint64:
		return U64(x), true
	case int64:
		return I64(x), true
	case float32:
		return F32(x), true
	case float64:
		return F64(x), true
	case bool:
		return Bool(x), true
	case string:
		return String(x), true
	case []byte:
		return Bytes(x), true
	default:
		return nil, false
	}
}

// Values builds a Tuple from plain Go values using Value.
func Values(vs ...any) (Tuple, error) {
	t := make(Tuple, 0, len(vs))
	for i, v := range vs {
		e, ok := Value(v)
		if !ok {
			return nil, fmt.Errorf("value %d: unsupported type %T", i, v)
		}
		t = append(t, e)
	}

	return t, nil
}
