package compress

// ZstdCompressor provides Zstandard compression.
//
// It favors compression ratio over speed and fits archival output or output
// sent over constrained links. The implementation is klauspost/compress/zstd
// by default and valyala/gozstd when built with cgo and the "gozstd" tag;
// both produce standard zstd frames.
type ZstdCompressor struct{}

var _ Compressor = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
