package endian

import (
	"fmt"
	"strings"
)

// ByteOrder selects the order in which multi-byte values are emitted.
//
// The zero value is Native, so a zero-valued configuration always encodes in
// host order.
type ByteOrder uint8

const (
	Native ByteOrder = iota // Native emits bytes in host order.
	Big                     // Big emits the most significant byte first.
	Little                  // Little emits the least significant byte first.
)

func (b ByteOrder) String() string {
	switch b {
	case Native:
		return "Native"
	case Big:
		return "Big"
	case Little:
		return "Little"
	default:
		return "Unknown"
	}
}

// Valid reports whether b is one of Native, Big or Little.
func (b ByteOrder) Valid() bool {
	return b <= Little
}

// Engine resolves b to a concrete engine. Native resolves to the host order
// detected at package initialization. Unknown values resolve like Native.
func (b ByteOrder) Engine() EndianEngine {
	switch b {
	case Big:
		return GetBigEndianEngine()
	case Little:
		return GetLittleEndianEngine()
	default:
		return nativeEngine
	}
}

// IsNative reports whether b resolves to the host order.
func (b ByteOrder) IsNative() bool {
	return CompareNativeEndian(b.Engine())
}

// ParseByteOrder parses "native", "big" or "little", ignoring case and
// surrounding whitespace. "be" and "le" are accepted as short forms.
func ParseByteOrder(s string) (ByteOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "native", "":
		return Native, nil
	case "big", "be":
		return Big, nil
	case "little", "le":
		return Little, nil
	default:
		return Native, fmt.Errorf("invalid byte order: %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (b ByteOrder) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("invalid byte order: %d", uint8(b))
	}

	return []byte(strings.ToLower(b.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *ByteOrder) UnmarshalText(text []byte) error {
	parsed, err := ParseByteOrder(string(text))
	if err != nil {
		return err
	}
	*b = parsed

	return nil
}
