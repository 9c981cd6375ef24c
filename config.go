package binwrite

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/binwrite/endian"
	"github.com/arloliu/binwrite/format"
)

// Config is the file form of encoder settings.
//
//	byte_order: big      # native | big | little
//	compression: zstd    # none | zstd | s2 | lz4
//	checksum: true
type Config struct {
	ByteOrder   endian.ByteOrder       `yaml:"byte_order"`
	Compression format.CompressionType `yaml:"compression,omitempty"`
	Checksum    bool                   `yaml:"checksum"`
}

// LoadConfig decodes a YAML Config from r. Unknown keys are rejected. An empty
// document yields the zero Config, which means native byte order, no
// compression and no checksum.
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return Config{}, nil
		}

		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

// Options builds encode options from the config.
func (c Config) Options() (*Options, error) {
	return NewOptions(WithByteOrder(c.ByteOrder))
}
