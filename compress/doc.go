// Package compress provides compressing sinks for binwrite output.
//
// Encoders write into an io.Writer; this package supplies writers that compress
// everything they receive before it reaches the destination:
//
//	w, err := compress.NewWriter(file, format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	if err := binwrite.Encode(record, w); err != nil {
//	    return err
//	}
//	return w.Close() // finishes the frame, leaves file open
//
// Supported algorithms:
//   - None: pass-through, Close is a no-op
//   - Zstd: klauspost/compress/zstd, or valyala/gozstd when built with the
//     "gozstd" tag and cgo enabled
//   - S2: klauspost/compress/s2 stream format
//   - LZ4: pierrec/lz4 frame format
//
// Closing a writer returned by NewWriter never closes the destination.
//
// For payloads that are already fully materialized, the block Compressor
// implementations compress a byte slice in one call.
package compress
