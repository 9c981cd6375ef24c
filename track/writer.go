// Package track provides a write-position-tracking adapter for arbitrary sinks.
//
// A Writer counts the bytes its wrapped sink accepts and answers io.Seeker
// queries that do not move: Seek(0, io.SeekCurrent) and Seek(0, io.SeekEnd)
// both return the count. Any other seek fails with ErrUnsupportedSeek. This lets
// code written against io.WriteSeeker ask "where am I?" on sinks that cannot seek
// at all, such as sockets, pipes or compressing writers.
//
//	tw := track.NewWriter(conn)
//	_ = binwrite.Encode(header, tw)
//	pos, _ := tw.Seek(0, io.SeekCurrent) // bytes written so far
//
// A Writer is not safe for concurrent use. It never flushes or closes the
// wrapped sink on its own.
package track

import (
	"fmt"
	"io"
	"io/fs"

	"go.uber.org/zap"

	"github.com/arloliu/binwrite/internal/hash"
	"github.com/arloliu/binwrite/internal/logging"
	"github.com/arloliu/binwrite/internal/options"
)

// ErrUnsupportedSeek is returned for any seek that would move the position.
// It matches fs.ErrInvalid with errors.Is.
var ErrUnsupportedSeek = fmt.Errorf("track: only zero-offset current or end seeks are supported: %w", fs.ErrInvalid)

// Flusher is implemented by sinks that buffer internally, such as bufio.Writer.
type Flusher interface {
	Flush() error
}

// Writer wraps an io.Writer and counts accepted bytes.
type Writer struct {
	inner  io.Writer
	pos    int64
	digest *hash.Digest
}

var (
	_ io.WriteSeeker  = (*Writer)(nil)
	_ io.StringWriter = (*Writer)(nil)
	_ Flusher         = (*Writer)(nil)
)

// Option configures a Writer.
type Option = options.Option[*Writer]

// WithChecksum keeps a running xxHash64 digest of every accepted byte,
// available from Sum64.
func WithChecksum() Option {
	return options.NoError(func(t *Writer) {
		t.digest = hash.NewDigest()
	})
}

// NewWriter wraps w. The position starts at zero.
func NewWriter(w io.Writer, opts ...Option) *Writer {
	t := &Writer{inner: w}
	// all Writer options are infallible
	_ = options.Apply(t, opts...)

	return t
}

// Write forwards p to the wrapped sink and advances the position by the number
// of bytes the sink reports as accepted, even when it also returns an error.
// The sink's result is returned unchanged.
func (t *Writer) Write(p []byte) (int, error) {
	n, err := t.inner.Write(p)
	if n > 0 {
		t.pos += int64(n)
		if t.digest != nil {
			_, _ = t.digest.Write(p[:n])
		}
	}

	return n, err
}

// WriteString writes s, using the sink's own WriteString when it has one.
func (t *Writer) WriteString(s string) (int, error) {
	sw, ok := t.inner.(io.StringWriter)
	if !ok {
		return t.Write([]byte(s))
	}

	n, err := sw.WriteString(s)
	if n > 0 {
		t.pos += int64(n)
		if t.digest != nil {
			_, _ = t.digest.WriteString(s[:n])
		}
	}

	return n, err
}

// Flush forwards to the wrapped sink when it implements Flusher and is a no-op
// otherwise. The position is not affected.
func (t *Writer) Flush() error {
	if f, ok := t.inner.(Flusher); ok {
		return f.Flush()
	}

	return nil
}

// Seek reports the current position for Seek(0, io.SeekCurrent) and
// Seek(0, io.SeekEnd). Every other request returns ErrUnsupportedSeek and
// leaves the position unchanged.
func (t *Writer) Seek(offset int64, whence int) (int64, error) {
	if offset == 0 && (whence == io.SeekCurrent || whence == io.SeekEnd) {
		return t.pos, nil
	}

	logging.Logger().Debug("rejected seek on tracking writer",
		zap.Int64("offset", offset),
		zap.Int("whence", whence),
		zap.Int64("position", t.pos))

	return 0, ErrUnsupportedSeek
}

// Position returns the number of bytes accepted since the Writer was created.
func (t *Writer) Position() int64 {
	return t.pos
}

// Sum64 returns the xxHash64 of all accepted bytes. It is zero unless the
// Writer was created WithChecksum.
func (t *Writer) Sum64() uint64 {
	if t.digest == nil {
		return 0
	}

	return t.digest.Sum64()
}

// Unwrap returns the wrapped sink.
func (t *Writer) Unwrap() io.Writer {
	return t.inner
}
