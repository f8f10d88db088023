// Package chunk implements the lossless time-series chunk codec: interleaved
// delta-of-delta timestamp compression and XOR float value compression over
// one contiguous bit stream.
//
// # Layout
//
// A chunk is a single bit sequence with no internal framing. The first
// sample is stored raw (64-bit timestamp, then 64-bit IEEE 754 value); every
// later sample appends its timestamp bit-group immediately followed by its
// value bit-group, with no padding between fields or samples. Only the very
// end of the chunk is byte-aligned, by zero-padding the low bits of the
// final byte.
//
// Regular series approach two bits per sample: a constant cadence costs one
// bit per timestamp from the third sample on, and an unchanged value costs
// one bit from the second sample on.
//
// Two timestamp fields have fixed precision: the delta between the first two
// samples must fit a 14-bit signed field, and each later delta-of-delta a
// 32-bit signed field. Out-of-range inputs lose their high bits silently and
// decode to different timestamps, so pick a timestamp unit whose first step
// stays within ±8191 (milliseconds for second-scale cadences).
//
// The payload deliberately carries no version tag, sample count, or
// checksum. The sample count travels out of band, and integrity is the
// responsibility of the enclosing storage format; the frame package provides
// both.
//
// # Usage
//
// Write side:
//
//	c := chunk.NewCompressor()
//	defer c.Finish()
//
//	c.Add(1672531200000, 23.5)
//	c.Add(1672531201000, 23.6)
//
//	payload := c.Bytes()   // valid until Finish
//	count := c.Count()
//
// Read side, driven by the externally tracked count:
//
//	d := chunk.NewDecompressor(payload)
//	for s := range d.All(count) {
//	    ...
//	}
//
// All stops early if the stream is truncated; use Next or ReadAll when the
// error matters.
//
// # Concurrency
//
// A Compressor has a single owner; concurrent Add calls must be serialized
// by the caller. A finalized payload is immutable and may back any number of
// Decompressor instances concurrently, since each keeps a private cursor.
package chunk
