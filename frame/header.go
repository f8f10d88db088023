package frame

import (
	"fmt"

	"github.com/driftwood-io/tscodec/endian"
	"github.com/driftwood-io/tscodec/errs"
	"github.com/driftwood-io/tscodec/format"
)

const (
	// Bit masks for the options word
	EndiannessMask   = 0x0001 // endianness bit (bit 0): 0=little, 1=big
	ReservedBitsMask = 0x000E // reserved bits (bits 1-3), must be zero
	MagicNumberMask  = 0xFFF0 // magic number (bits 4-15)

	// MagicFrameV1Opt is the options-word magic for frame format v1.
	MagicFrameV1Opt = 0xCA50

	// HeaderSize is the fixed envelope header size in bytes.
	HeaderSize = 12
	// ChecksumSize is the size of the trailing xxHash64 checksum in bytes.
	ChecksumSize = 8

	// DefaultMaxPayload bounds the per-frame allocation a reader will make
	// from an untrusted length field.
	DefaultMaxPayload = 64 * 1024 * 1024 // 64MiB
)

// Header is the fixed-size portion of a frame envelope.
type Header struct {
	// Options is a packed field.
	// Bit 0 is the endianness flag, 0 means little-endian, 1 means big-endian.
	// Bits 1-3 are reserved for future use, must be set to 0.
	// Bits 4-15 are the magic number identifying the frame format:
	//   - 0xCA50 (0b1100_1010_0101_0000): frame format v1
	Options uint16

	// Compression identifies the codec applied to the payload.
	Compression format.CompressionType

	// SampleCount is the number of samples in the enclosed chunk. The chunk
	// payload cannot describe this itself, so the envelope carries it.
	SampleCount uint32

	// PayloadLen is the stored payload length in bytes, after compression.
	PayloadLen uint32
}

// NewHeader creates a little-endian v1 header for the given compression.
func NewHeader(compression format.CompressionType) Header {
	return Header{
		Options:     MagicFrameV1Opt,
		Compression: compression,
	}
}

// IsLittleEndian returns whether the non-options fields are little-endian.
func (h Header) IsLittleEndian() bool {
	return (h.Options & EndiannessMask) == 0
}

// WithLittleEndian sets little-endian byte order.
func (h *Header) WithLittleEndian() {
	h.Options &= ^uint16(EndiannessMask)
}

// WithBigEndian sets big-endian byte order.
func (h *Header) WithBigEndian() {
	h.Options |= EndiannessMask
}

// MagicNumber returns the magic number from the Options field.
func (h Header) MagicNumber() uint16 {
	return h.Options & MagicNumberMask
}

// Engine returns the byte-order engine the endianness bit selects.
func (h Header) Engine() endian.EndianEngine {
	if h.IsLittleEndian() {
		return endian.GetLittleEndianEngine()
	}

	return endian.GetBigEndianEngine()
}

// Validate checks the options word and compression byte.
func (h Header) Validate() error {
	if h.MagicNumber() != MagicFrameV1Opt {
		return fmt.Errorf("%w: options word %#04x", errs.ErrInvalidMagic, h.Options)
	}
	if h.Options&ReservedBitsMask != 0 {
		return fmt.Errorf("%w: reserved option bits set in %#04x", errs.ErrInvalidHeader, h.Options)
	}
	if !h.Compression.IsValid() {
		return fmt.Errorf("%w: %#02x", errs.ErrInvalidCompressionType, uint8(h.Compression))
	}

	return nil
}

// Parse decodes and validates a header from data.
//
// The options word is read little-endian regardless of the endianness bit,
// which resolves the bootstrap: the bit then selects the engine for the
// remaining fields.
func (h *Header) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("%w: %d bytes, need %d", errs.ErrInvalidHeader, len(data), HeaderSize)
	}

	h.Options = uint16(data[0]) | uint16(data[1])<<8
	h.Compression = format.CompressionType(data[2])
	if err := h.Validate(); err != nil {
		return err
	}

	if data[3] != 0 {
		return fmt.Errorf("%w: reserved byte %#02x nonzero", errs.ErrInvalidHeader, data[3])
	}

	engine := h.Engine()
	h.SampleCount = engine.Uint32(data[4:8])
	h.PayloadLen = engine.Uint32(data[8:12])

	return nil
}

// AppendTo appends the serialized header to b and returns the extended
// slice. The inverse of Parse.
func (h Header) AppendTo(b []byte) []byte {
	b = append(b, byte(h.Options), byte(h.Options>>8))
	b = append(b, byte(h.Compression), 0)

	engine := h.Engine()
	b = engine.AppendUint32(b, h.SampleCount)
	b = engine.AppendUint32(b, h.PayloadLen)

	return b
}
