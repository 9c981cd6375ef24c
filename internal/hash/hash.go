// Package hash wraps xxHash64, the checksum used for encoded output.
package hash

import "github.com/cespare/xxhash/v2"

// Digest is a streaming xxHash64 state. It implements io.Writer.
type Digest = xxhash.Digest

// Sum computes the xxHash64 of data.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// NewDigest returns a fresh streaming digest.
func NewDigest() *Digest {
	return xxhash.New()
}
