//go:build cgo && gozstd

package compress

import (
	"io"

	"github.com/valyala/gozstd"
)

const gozstdLevel = 3

// Compress compresses the input data using Zstandard compression.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, gozstdLevel), nil
}

// gozstdWriter releases the C encoder state once the frame is finished.
type gozstdWriter struct {
	*gozstd.Writer
}

func (w gozstdWriter) Close() error {
	err := w.Writer.Close()
	w.Writer.Release()

	return err
}

func newZstdWriter(w io.Writer) (io.WriteCloser, error) {
	return gozstdWriter{gozstd.NewWriterLevel(w, gozstdLevel)}, nil
}
