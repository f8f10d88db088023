// Package endian provides byte order utilities for binary encoding and decoding.
//
// It combines the ByteOrder and AppendByteOrder interfaces from Go's standard
// encoding/binary package into a single EndianEngine interface, so frame
// headers can be written with the append-style API and read back with the
// indexed API through one value.
//
// # Basic Usage
//
// Frame headers default to little-endian:
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint32(buf, payloadLen)
//	payloadLen = engine.Uint32(buf[8:12])
//
// The big-endian engine exists for interoperability with big-endian
// producers; the frame header records which engine wrote it.
//
// # Thread Safety
//
// The returned EndianEngine instances are immutable and stateless, and safe
// for concurrent use.
package endian

import (
	"encoding/binary"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library, making it fully compatible with existing Go code while
// providing access to both read/write and append operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// IsLittleEndian reports whether engine is the little-endian engine, for
// callers that hold an engine and need the flag bit it corresponds to.
func IsLittleEndian(engine EndianEngine) bool {
	return engine == EndianEngine(binary.LittleEndian)
}
