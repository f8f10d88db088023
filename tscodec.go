// Package tscodec provides lossless, space-efficient compression for
// time-series samples.
//
// A sample is an int64 timestamp paired with a float64 value. Timestamps
// compress with delta-of-delta encoding and values with XOR encoding, so a
// regularly sampled series of slowly changing values costs around two bits
// per sample instead of sixteen bytes.
//
// # Core Features
//
//   - Delta-of-delta timestamp encoding: one bit per sample on a steady
//     cadence, graceful fallback for jitter and gaps
//   - XOR value encoding for float64, optimal for slowly-changing series
//   - Bit-exact round trips for every value, NaN and infinities included
//   - Framed container with xxHash64 integrity checks and optional payload
//     compression (None, Zstd, S2, LZ4)
//   - Little- and big-endian frame headers
//
// # Basic Usage
//
// Compressing a series:
//
//	c := tscodec.NewCompressor()
//	for _, s := range samples {
//	    c.Add(s.Ts, s.Val)
//	}
//	payload := append([]byte(nil), c.Bytes()...)
//	count := c.Count()
//	c.Finish()
//
// The payload does not record how many samples it holds; store the count
// alongside it (the frame container does this for you). Decompressing:
//
//	d := tscodec.NewDecompressor(payload)
//	for s := range d.All(count) {
//	    fmt.Printf("ts=%d val=%f\n", s.Ts, s.Val)
//	}
//
// Or with the one-shot helpers:
//
//	payload := tscodec.Compress(samples)
//	decoded, err := tscodec.Decompress(payload, len(samples))
//
// Writing framed chunks to a file or socket:
//
//	w, _ := tscodec.NewFrameWriter(file, frame.WithCompression(format.CompressionZstd))
//	_ = w.WriteChunk(payload, count)
//
//	r, _ := tscodec.NewFrameReader(file)
//	payload, count, err := r.Next()
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the chunk and
// frame packages, simplifying the most common use cases. For fine-grained
// control use those packages directly: chunk holds the codec, frame the
// container, and compress the payload compression codecs.
package tscodec

import (
	"io"

	"github.com/driftwood-io/tscodec/chunk"
	"github.com/driftwood-io/tscodec/frame"
)

// Sample is one time-series point, re-exported from the chunk package so
// callers of the top-level API need only this import.
type Sample = chunk.Sample

// NewCompressor creates an empty chunk compressor.
//
// Add samples in timestamp order, read the payload with Bytes, then release
// the internal buffer with Finish.
func NewCompressor() *chunk.Compressor {
	return chunk.NewCompressor()
}

// NewDecompressor creates a decompressor over a chunk payload.
//
// The payload alone does not delimit the series; pair it with the sample
// count recorded at compression time.
func NewDecompressor(payload []byte) *chunk.Decompressor {
	return chunk.NewDecompressor(payload)
}

// Compress encodes samples into a chunk payload in one call.
//
// The returned slice is freshly allocated and owned by the caller. Keep
// len(samples) alongside it for decompression.
func Compress(samples []Sample) []byte {
	c := chunk.NewCompressor()
	defer c.Finish()

	c.AddSlice(samples)

	return append([]byte(nil), c.Bytes()...)
}

// Decompress decodes count samples from a chunk payload in one call.
//
// It returns the samples decoded so far plus the first error, so a truncated
// payload yields a partial slice alongside the failure.
func Decompress(payload []byte, count int) ([]Sample, error) {
	return chunk.NewDecompressor(payload).ReadAll(count)
}

// NewFrameWriter creates a frame writer targeting w.
//
// Defaults to little-endian headers and no payload compression; see
// frame.WithCompression and frame.WithBigEndian.
func NewFrameWriter(w io.Writer, opts ...frame.WriterOption) (*frame.Writer, error) {
	return frame.NewWriter(w, opts...)
}

// NewFrameReader creates a frame reader consuming from r.
func NewFrameReader(r io.Reader, opts ...frame.ReaderOption) (*frame.Reader, error) {
	return frame.NewReader(r, opts...)
}
