// Package endian provides the byte order model used by binwrite encoders.
//
// A ByteOrder names one of three orders: Big, Little or Native. Encoders never
// branch on the ByteOrder directly; they resolve it to an EndianEngine once per
// encode call and let the engine lay out the bytes.
//
// # Basic Usage
//
//	engine := endian.Big.Engine()
//	buf = engine.AppendUint32(buf, 1) // 00 00 00 01
//
// Native resolves to whichever of Big or Little matches the host. The host order
// is detected once when the package is initialized, so the result is stable for
// the lifetime of the process:
//
//	if endian.Native.Engine() == endian.GetLittleEndianEngine() {
//	    // little-endian host
//	}
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// nativeEngine is the host byte order, probed once at package initialization.
var nativeEngine = probeNativeEngine()

func probeNativeEngine() EndianEngine {
	if CheckEndianness() == binary.BigEndian {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// CheckEndianness uses a fixed integer value to determine the host's byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 is 256. For a little-endian system, the LSB (0x00) is first.
	// For a big-endian system, the MSB (0x01) is first.
	var i uint16 = 0x0100

	b := (*[2]byte)(unsafe.Pointer(&i))

	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

func IsNativeLittleEndian() bool {
	return nativeEngine == GetLittleEndianEngine()
}

func IsNativeBigEndian() bool {
	return nativeEngine == GetBigEndianEngine()
}

// CompareNativeEndian reports whether engine lays out bytes in host order.
func CompareNativeEndian(engine EndianEngine) bool {
	return engine == nativeEngine
}

// NativeEngine returns the engine matching the host byte order.
func NativeEngine() EndianEngine {
	return nativeEngine
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
