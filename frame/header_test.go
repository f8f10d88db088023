package frame

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/driftwood-io/tscodec/endian"
	"github.com/driftwood-io/tscodec/errs"
	"github.com/driftwood-io/tscodec/format"
)

// === Construction and Options Word ===

func TestNewHeader_Defaults(t *testing.T) {
	hdr := NewHeader(format.CompressionNone)

	require.True(t, hdr.IsLittleEndian())
	require.Equal(t, uint16(MagicFrameV1Opt), hdr.MagicNumber())
	require.Equal(t, format.CompressionNone, hdr.Compression)
	require.Zero(t, hdr.SampleCount)
	require.Zero(t, hdr.PayloadLen)
	require.NoError(t, hdr.Validate())
}

func TestHeader_EndiannessToggle(t *testing.T) {
	hdr := NewHeader(format.CompressionNone)

	hdr.WithBigEndian()
	require.False(t, hdr.IsLittleEndian())
	require.False(t, endian.IsLittleEndian(hdr.Engine()))
	require.Equal(t, uint16(MagicFrameV1Opt), hdr.MagicNumber(), "endianness bit must not disturb the magic")

	hdr.WithLittleEndian()
	require.True(t, hdr.IsLittleEndian())
	require.True(t, endian.IsLittleEndian(hdr.Engine()))
	require.NoError(t, hdr.Validate())
}

// === Validation ===

func TestHeader_Validate_BadMagic(t *testing.T) {
	hdr := NewHeader(format.CompressionNone)
	hdr.Options = 0xBEE0

	err := hdr.Validate()
	require.ErrorIs(t, err, errs.ErrInvalidMagic)
}

func TestHeader_Validate_ReservedBits(t *testing.T) {
	hdr := NewHeader(format.CompressionNone)
	hdr.Options |= 0x0004

	err := hdr.Validate()
	require.ErrorIs(t, err, errs.ErrInvalidHeader)
}

func TestHeader_Validate_BadCompression(t *testing.T) {
	hdr := NewHeader(format.CompressionType(0x7F))

	err := hdr.Validate()
	require.ErrorIs(t, err, errs.ErrInvalidCompressionType)
}

// === Serialization ===

func TestHeader_AppendTo_LittleEndianLayout(t *testing.T) {
	hdr := NewHeader(format.CompressionLZ4)
	hdr.SampleCount = 0x01020304
	hdr.PayloadLen = 0x0A0B0C0D

	b := hdr.AppendTo(nil)
	require.Equal(t, []byte{
		0x50, 0xCA, // options 0xCA50, little-endian
		0x04, 0x00, // compression LZ4, reserved
		0x04, 0x03, 0x02, 0x01, // sample count
		0x0D, 0x0C, 0x0B, 0x0A, // payload length
	}, b)
}

func TestHeader_AppendTo_BigEndianLayout(t *testing.T) {
	hdr := NewHeader(format.CompressionZstd)
	hdr.WithBigEndian()
	hdr.SampleCount = 0x01020304
	hdr.PayloadLen = 0x0A0B0C0D

	// The options word stays little-endian even in big-endian mode so a
	// reader can bootstrap from it.
	b := hdr.AppendTo(nil)
	require.Equal(t, []byte{
		0x51, 0xCA, // options 0xCA51, still little-endian bytes
		0x02, 0x00, // compression Zstd, reserved
		0x01, 0x02, 0x03, 0x04, // sample count
		0x0A, 0x0B, 0x0C, 0x0D, // payload length
	}, b)
}

func TestHeader_Parse_RoundTrip(t *testing.T) {
	for _, bigEndian := range []bool{false, true} {
		hdr := NewHeader(format.CompressionS2)
		if bigEndian {
			hdr.WithBigEndian()
		}
		hdr.SampleCount = 98765
		hdr.PayloadLen = 4321

		var parsed Header
		require.NoError(t, parsed.Parse(hdr.AppendTo(nil)))
		require.Equal(t, hdr, parsed)
	}
}

func TestHeader_Parse_ShortBuffer(t *testing.T) {
	var hdr Header
	err := hdr.Parse(make([]byte, HeaderSize-1))
	require.ErrorIs(t, err, errs.ErrInvalidHeader)
}

func TestHeader_Parse_ReservedByteNonzero(t *testing.T) {
	b := NewHeader(format.CompressionNone).AppendTo(nil)
	b[3] = 0x80

	var hdr Header
	err := hdr.Parse(b)
	require.ErrorIs(t, err, errs.ErrInvalidHeader)
}

func TestHeader_Parse_RejectsBeforeFieldDecode(t *testing.T) {
	b := NewHeader(format.CompressionNone).AppendTo(nil)
	b[0] = 0x00
	b[1] = 0x00

	var hdr Header
	err := hdr.Parse(b)
	require.ErrorIs(t, err, errs.ErrInvalidMagic)
	require.Zero(t, hdr.SampleCount, "fields must not be decoded from a rejected header")
}
