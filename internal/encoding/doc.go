// Package encoding implements the timestamp and value bit codecs that make
// up a chunk payload.
//
// This package is internal; external code uses the chunk package, which
// interleaves the two codecs onto one bit stream.
//
// # Implementation Overview
//
//   - TimestampEncoder/Decoder - delta-of-delta compression for int64
//     timestamps
//   - ValueEncoder/Decoder - XOR compression for float64 values
//
// Both codecs are streaming: encoders append bit groups to a caller-owned
// bitstream.Stream and decoders consume them in the same order. They hold
// only fixed-size state, so a chunk of any length costs no codec-side
// allocation.
//
// Values round-trip by bit pattern. Every float64, NaN payloads and negative
// zero included, decodes to exactly the bits that were encoded. Timestamps
// round-trip exactly when consecutive deltas stay within the documented
// field widths; see the type comments for the truncation rules at the
// boundaries.
package encoding
