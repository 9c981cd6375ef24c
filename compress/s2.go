package compress

import (
	"io"

	"github.com/klauspost/compress/s2"
)

// S2Compressor compresses payloads with S2 block encoding.
type S2Compressor struct{}

var _ Compressor = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses the input data using S2 block compression.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// newS2Writer returns an S2 stream writer. Close flushes the stream and does
// not close w.
func newS2Writer(w io.Writer) io.WriteCloser {
	return s2.NewWriter(w, s2.WriterConcurrency(1))
}
