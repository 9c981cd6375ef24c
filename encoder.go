package binwrite

import (
	"errors"
	"io"

	"go.uber.org/zap"

	"github.com/arloliu/binwrite/compress"
	"github.com/arloliu/binwrite/format"
	"github.com/arloliu/binwrite/internal/logging"
	"github.com/arloliu/binwrite/internal/options"
	"github.com/arloliu/binwrite/track"
)

// ErrEncoderClosed is returned by an Encoder used after Close.
var ErrEncoderClosed = errors.New("binwrite: encoder is closed")

// Encoder streams encoded values into a sink with a fixed set of options.
//
// Values pass through a tracking writer, so Position always reports the number
// of encoded (uncompressed) bytes, and then through an optional compressing
// writer before reaching the sink:
//
//	values -> track.Writer -> compress writer -> sink
//
// An Encoder is itself an io.Writer, so the text functions and any other
// Encodable can target it directly. It is not safe for concurrent use.
type Encoder struct {
	opts        *Options
	compression format.CompressionType
	tracker     *track.Writer
	compressor  io.WriteCloser
	sink        *track.Writer
	closed      bool
}

var _ io.WriteCloser = (*Encoder)(nil)

type encoderConfig struct {
	encodeOpts  []Option
	compression format.CompressionType
	checksum    bool
}

// EncoderOption configures an Encoder.
type EncoderOption = options.Option[*encoderConfig]

// WithOptions sets the encode options used for every value.
func WithOptions(opts ...Option) EncoderOption {
	return options.NoError(func(c *encoderConfig) {
		c.encodeOpts = append(c.encodeOpts, opts...)
	})
}

// WithCompression compresses the stream before it reaches the sink.
// The default is format.CompressionNone.
func WithCompression(comp format.CompressionType) EncoderOption {
	return options.New(func(c *encoderConfig) error {
		if _, err := compress.GetCompressor(comp); err != nil {
			return err
		}
		c.compression = comp

		return nil
	})
}

// WithChecksum enables an xxHash64 checksum over the uncompressed stream,
// reported by Checksum.
func WithChecksum(enabled bool) EncoderOption {
	return options.NoError(func(c *encoderConfig) {
		c.checksum = enabled
	})
}

// WithConfig applies every setting from cfg.
func WithConfig(cfg Config) EncoderOption {
	return options.New(func(c *encoderConfig) error {
		c.encodeOpts = append(c.encodeOpts, WithByteOrder(cfg.ByteOrder))
		c.checksum = cfg.Checksum
		if cfg.Compression == 0 {
			c.compression = format.CompressionNone
			return nil
		}

		return options.Apply(c, WithCompression(cfg.Compression))
	})
}

// NewEncoder creates an Encoder writing into w.
//
// w is borrowed: Close finishes the compressed stream and flushes w when it
// has a Flush method, but never closes it.
func NewEncoder(w io.Writer, opts ...EncoderOption) (*Encoder, error) {
	cfg := &encoderConfig{compression: format.CompressionNone}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	encodeOpts, err := NewOptions(cfg.encodeOpts...)
	if err != nil {
		return nil, err
	}

	sink := track.NewWriter(w)
	compressor, err := compress.NewWriter(sink, cfg.compression)
	if err != nil {
		return nil, err
	}

	var trackOpts []track.Option
	if cfg.checksum {
		trackOpts = append(trackOpts, track.WithChecksum())
	}

	logging.Logger().Debug("encoder created",
		zap.Stringer("byte_order", encodeOpts.ByteOrder()),
		zap.Stringer("compression", cfg.compression),
		zap.Bool("checksum", cfg.checksum))

	return &Encoder{
		opts:        encodeOpts,
		compression: cfg.compression,
		tracker:     track.NewWriter(compressor, trackOpts...),
		compressor:  compressor,
		sink:        sink,
	}, nil
}

// Encode writes values in order and stops at the first error, which is
// returned unchanged.
func (e *Encoder) Encode(values ...Encodable) error {
	if e.closed {
		return ErrEncoderClosed
	}

	return encodeAll(e.tracker, e.opts, values...)
}

// EncodeValue writes plain Go values, mapped to encoders by Value.
func (e *Encoder) EncodeValue(values ...any) error {
	t, err := Values(values...)
	if err != nil {
		return err
	}

	return e.Encode(t)
}

// Write writes raw bytes into the stream.
func (e *Encoder) Write(p []byte) (int, error) {
	if e.closed {
		return 0, ErrEncoderClosed
	}

	return e.tracker.Write(p)
}

// Options returns the encode options in effect.
func (e *Encoder) Options() *Options {
	return e.opts
}

// Position returns the number of encoded bytes accepted so far, before
// compression.
func (e *Encoder) Position() int64 {
	return e.tracker.Position()
}

// Checksum returns the xxHash64 of the encoded bytes, or zero when checksums
// are disabled.
func (e *Encoder) Checksum() uint64 {
	return e.tracker.Sum64()
}

// Stats reports encoded and compressed sizes. Compressed sizes are final only
// after Close.
func (e *Encoder) Stats() compress.CompressionStats {
	return compress.CompressionStats{
		Algorithm:      e.compression,
		OriginalSize:   e.tracker.Position(),
		CompressedSize: e.sink.Position(),
	}
}

// Flush pushes buffered compressed data and then flushes the sink when it
// supports flushing.
func (e *Encoder) Flush() error {
	if e.closed {
		return ErrEncoderClosed
	}
	if f, ok := e.compressor.(track.Flusher); ok {
		if err := f.Flush(); err != nil {
			return err
		}
	}

	return e.sink.Flush()
}

// Close finishes the compressed stream and flushes the sink. The sink itself
// stays open. Calling Close more than once is a no-op.
func (e *Encoder) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true

	if err := e.compressor.Close(); err != nil {
		logging.Logger().Warn("failed to finish compressed stream",
			zap.Stringer("compression", e.compression),
			zap.Error(err))

		return err
	}
	if err := e.sink.Flush(); err != nil {
		return err
	}

	stats := e.Stats()
	logging.Logger().Debug("encoder closed",
		zap.Int64("encoded_bytes", stats.OriginalSize),
		zap.Int64("sink_bytes", stats.CompressedSize))

	return nil
}
