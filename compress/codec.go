package compress

import (
	"fmt"

	"github.com/driftwood-io/tscodec/errs"
	"github.com/driftwood-io/tscodec/format"
)

// Compressor compresses chunk payloads before they are framed.
//
// The input is an opaque bit-packed chunk, typically a few hundred bytes to
// a few dozen kilobytes. Compression runs once per chunk on the write path,
// so implementations favor throughput over maximum ratio.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	//   - Internal buffers may be reused for efficiency
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores chunk payloads extracted from a frame.
//
// Separate from Compressor because readers and writers usually live in
// different processes and only need one direction.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original result.
	//
	// The input must have been produced by the matching Compressor. Corrupted
	// or mismatched input returns an error; which corruptions are detectable
	// depends on the algorithm, so frames carry their own checksum.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	//   - Internal buffers may be reused for efficiency
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats reports the outcome of compressing one payload.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used
	Algorithm format.CompressionType

	// OriginalSize is the size of input data before compression
	OriginalSize int64

	// CompressedSize is the size of data after compression
	CompressedSize int64
}

// CompressionRatio returns compressed size over original size. Values below
// 1.0 indicate the payload shrank; bit-packed chunks sometimes do not, and
// values above 1.0 are possible.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage (0-100%).
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// CreateCodec creates a fresh Codec for the specified compression type.
//
// Returns errs.ErrInvalidCompressionType for types the frame format does not
// define.
func CreateCodec(compressionType format.CompressionType) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompressionType, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the shared built-in Codec for the specified compression
// type. The built-in codecs are stateless and safe for concurrent use, so
// callers on the read path should prefer this over CreateCodec.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompressionType, compressionType)
}
