package encoding

import (
	"github.com/driftwood-io/tscodec/internal/bitstream"
)

// TimestampEncoder compresses int64 timestamps with delta-of-delta prefix
// coding into a caller-owned bit stream.
//
// The scheme exploits the near-constant cadence of scrape timestamps:
//  1. Sample 0: stored raw (64 bits)
//  2. Sample 1: delta from sample 0 as a fixed 14-bit two's-complement field
//  3. Sample n >= 2: delta-of-delta (dod), prefix coded by magnitude:
//
//     dod == 0              -> '0'
//     dod in [-63, 64]      -> '10'   + 7-bit field
//     dod in [-255, 256]    -> '110'  + 9-bit field
//     dod in [-2047, 2048]  -> '1110' + 12-bit field
//     otherwise             -> '1111' + 32-bit field (dod truncated to int32)
//
// The bucket ranges are inclusive and deliberately asymmetric: the payload
// field holds the low n bits of dod, and field values above 2^(n-1) decode as
// negatives, so the n-bit pattern 10...0 represents the positive bound (+64,
// +256, +2048) rather than a negative.
//
// A constant cadence therefore costs a single bit per sample from sample 2
// on. Deltas beyond the 14-bit field at sample 1 and dods beyond the 32-bit
// field truncate silently; these are documented precision boundaries of the
// wire format, not error conditions.
//
// The encoder does not own a stream: the chunk compressor passes its shared
// stream to each Encode call. The zero value is ready to use.
type TimestampEncoder struct {
	prevTS    int64
	prevDelta int64
	count     int
}

// NewTimestampEncoder creates a delta-of-delta timestamp encoder.
func NewTimestampEncoder() *TimestampEncoder {
	return &TimestampEncoder{}
}

// Encode appends one timestamp to bs.
func (e *TimestampEncoder) Encode(bs *bitstream.Stream, ts int64) {
	switch e.count {
	case 0:
		bs.WriteBits(uint64(ts), 64)
	case 1:
		delta := ts - e.prevTS
		// Out-of-range deltas lose their high bits here; the decoder
		// sign-extends whatever the field carries.
		bs.WriteBits(uint64(delta), 14)
		e.prevDelta = delta
	default:
		delta := ts - e.prevTS
		dod := delta - e.prevDelta

		switch {
		case dod == 0:
			bs.WriteBit(0)
		case dodFits(dod, 7):
			bs.WriteBits(0b10, 2)
			bs.WriteBits(uint64(dod), 7)
		case dodFits(dod, 9):
			bs.WriteBits(0b110, 3)
			bs.WriteBits(uint64(dod), 9)
		case dodFits(dod, 12):
			bs.WriteBits(0b1110, 4)
			bs.WriteBits(uint64(dod), 12)
		default:
			bs.WriteBits(0b1111, 4)
			bs.WriteBits(uint64(dod), 32)
		}

		e.prevDelta = delta
	}

	e.prevTS = ts
	e.count++
}

// Count returns the number of timestamps encoded.
func (e *TimestampEncoder) Count() int {
	return e.count
}

// Reset clears the encoder for a fresh chunk.
func (e *TimestampEncoder) Reset() {
	e.prevTS = 0
	e.prevDelta = 0
	e.count = 0
}

// dodFits reports whether v is representable in an nbits bucket field.
// The asymmetric bounds admit one more positive value than negative, matching
// the decode rule that maps field values above 2^(nbits-1) to negatives.
func dodFits(v int64, nbits uint) bool {
	return -((1 << (nbits - 1)) - 1) <= v && v <= 1<<(nbits-1)
}

// TimestampDecoder reconstructs timestamps produced by TimestampEncoder.
//
// It mirrors the encoder state machine: sample 0 raw, sample 1 a 14-bit
// delta, later samples a prefix-coded dod added onto the running delta. The
// zero value is ready to use; decoding is strictly sequential.
type TimestampDecoder struct {
	ts    int64
	delta int64
	count int
}

// NewTimestampDecoder creates a delta-of-delta timestamp decoder.
func NewTimestampDecoder() *TimestampDecoder {
	return &TimestampDecoder{}
}

// Decode consumes one timestamp from bs. A stream that ends mid-field
// surfaces errs.ErrEndOfStream from the underlying read.
func (d *TimestampDecoder) Decode(bs *bitstream.Stream) (int64, error) {
	switch d.count {
	case 0:
		v, err := bs.ReadBits(64)
		if err != nil {
			return 0, err
		}
		d.ts = int64(v)
	case 1:
		v, err := bs.ReadBits(14)
		if err != nil {
			return 0, err
		}

		delta := int64(v)
		if delta >= 1<<13 {
			delta -= 1 << 14
		}
		d.delta = delta
		d.ts += delta
	default:
		dod, err := d.readDod(bs)
		if err != nil {
			return 0, err
		}
		d.delta += dod
		d.ts += d.delta
	}

	d.count++

	return d.ts, nil
}

// readDod reads the prefix code (up to four bits, terminated by the first 0)
// and the bucket payload it selects.
func (d *TimestampDecoder) readDod(bs *bitstream.Stream) (int64, error) {
	var control byte
	for i := 0; i < 4; i++ {
		control <<= 1
		bit, err := bs.ReadBit()
		if err != nil {
			return 0, err
		}
		if bit == 0 {
			break
		}
		control |= 1
	}

	var size uint
	switch control {
	case 0b0:
		return 0, nil
	case 0b10:
		size = 7
	case 0b110:
		size = 9
	case 0b1110:
		size = 12
	case 0b1111:
		v, err := bs.ReadBits(32)
		if err != nil {
			return 0, err
		}

		return int64(int32(uint32(v))), nil
	}

	v, err := bs.ReadBits(int(size))
	if err != nil {
		return 0, err
	}

	dod := int64(v)
	if dod > 1<<(size-1) {
		// Field values above 2^(size-1) are the negative half of the bucket.
		dod -= 1 << size
	}

	return dod, nil
}

// Count returns the number of timestamps decoded.
func (d *TimestampDecoder) Count() int {
	return d.count
}
