package compress

import "io"

// NoOpCompressor returns its input unchanged.
//
// It is the block counterpart of format.CompressionNone and is useful as a
// baseline when measuring the cost of real compression.
type NoOpCompressor struct{}

var _ Compressor = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-operation compressor.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data as-is, without copying.
//
// The returned slice shares memory with the input.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// nopWriteCloser forwards writes and ignores Close.
type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
