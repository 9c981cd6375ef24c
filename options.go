package binwrite

import (
	"fmt"

	"github.com/arloliu/binwrite/endian"
	"github.com/arloliu/binwrite/internal/options"
)

// Options carries the encode-time parameters consulted by every encoder.
//
// Fields are unexported so new settings can be added without breaking callers.
// Build Options with DefaultOptions, NewOptions or (*Options).With. The zero
// value and a nil *Options are both valid and equal to the defaults, which
// select the host byte order.
type Options struct {
	byteOrder endian.ByteOrder
}

// Option overrides one field of Options.
type Option = options.Option[*Options]

// DefaultOptions returns options with every field at its default.
func DefaultOptions() *Options {
	return &Options{byteOrder: endian.Native}
}

// NewOptions starts from the defaults and applies opts in order.
//
// Example:
//
//	opts, err := binwrite.NewOptions(binwrite.WithLittleEndian())
func NewOptions(opts ...Option) (*Options, error) {
	o := DefaultOptions()
	if err := options.Apply(o, opts...); err != nil {
		return nil, err
	}

	return o, nil
}

// MustOptions is like NewOptions but panics on an invalid option. It is meant
// for package-level variables.
func MustOptions(opts ...Option) *Options {
	o, err := NewOptions(opts...)
	if err != nil {
		panic(err)
	}

	return o
}

// With returns a copy of o with opts applied. o itself is never modified.
func (o *Options) With(opts ...Option) (*Options, error) {
	c := DefaultOptions()
	if o != nil {
		*c = *o
	}
	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}

// ByteOrder returns the configured byte order.
func (o *Options) ByteOrder() endian.ByteOrder {
	if o == nil {
		return endian.Native
	}

	return o.byteOrder
}

// Engine returns the engine the configured byte order resolves to.
func (o *Options) Engine() endian.EndianEngine {
	return o.ByteOrder().Engine()
}

func (o *Options) String() string {
	return fmt.Sprintf("Options{ByteOrder: %s}", o.ByteOrder())
}

// WithByteOrder selects the byte order for multi-byte values.
func WithByteOrder(b endian.ByteOrder) Option {
	return options.New(func(o *Options) error {
		if !b.Valid() {
			return fmt.Errorf("invalid byte order: %d", uint8(b))
		}
		o.byteOrder = b

		return nil
	})
}

// WithBigEndian emits the most significant byte first.
func WithBigEndian() Option {
	return options.NoError(func(o *Options) {
		o.byteOrder = endian.Big
	})
}

// WithLittleEndian emits the least significant byte first.
func WithLittleEndian() Option {
	return options.NoError(func(o *Options) {
		o.byteOrder = endian.Little
	})
}

// WithNativeEndian emits bytes in host order. It is the default.
func WithNativeEndian() Option {
	return options.NoError(func(o *Options) {
		o.byteOrder = endian.Native
	})
}
