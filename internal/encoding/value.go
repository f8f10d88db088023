package encoding

import (
	"math"
	mathbits "math/bits"

	"github.com/driftwood-io/tscodec/internal/bitstream"
)

// ValueEncoder compresses float64 values by XORing each value's IEEE 754
// bits with the previous value's bits and emitting only the meaningful span:
//
//	xor == 0                      -> '0'
//	xor fits the previous window  -> '10' + block (previous block size bits)
//	otherwise                     -> '11' + 5-bit leading zero count +
//	                                 6-bit block length + block
//
// A window is the (leading, length) pair last signaled on the '11' path.
// The reuse path fires when the new xor's leading and trailing zero counts
// both cover the window, so the block position still lines up; reuse keeps
// emitting the previous window's width even when the new xor is narrower.
//
// Two field-width quirks are part of the wire format: a leading zero count
// above 31 is clamped to 31 to fit the 5-bit field, and a 64-bit block
// length wraps to 0 in the 6-bit field, which the decoder maps back to 64.
//
// The comparison operates on raw bit patterns, so NaN payloads, infinities,
// and the sign of zero all round-trip exactly.
//
// The encoder does not own a stream: the chunk compressor passes its shared
// stream to each Encode call. The zero value is ready to use.
type ValueEncoder struct {
	prev      uint64
	leading   int
	trailing  int
	blockSize int // width of the signaled window; 0 until a '11' is emitted
	count     int
}

// NewValueEncoder creates an XOR float value encoder.
func NewValueEncoder() *ValueEncoder {
	return &ValueEncoder{}
}

// Encode appends one value to bs.
func (e *ValueEncoder) Encode(bs *bitstream.Stream, val float64) {
	cur := math.Float64bits(val)

	if e.count == 0 {
		bs.WriteBits(cur, 64)
		e.prev = cur
		e.count++

		return
	}

	xor := cur ^ e.prev
	e.prev = cur
	e.count++

	if xor == 0 {
		bs.WriteBit(0)

		return
	}

	leading := mathbits.LeadingZeros64(xor)
	trailing := mathbits.TrailingZeros64(xor)
	if leading > 31 {
		leading = 31
	}

	if e.blockSize > 0 && leading >= e.leading && trailing >= e.trailing {
		// The xor fits inside the signaled window; reuse its position and
		// width without re-sending them.
		bs.WriteBits(0b10, 2)
		bs.WriteBits(xor>>uint(e.trailing), e.blockSize)

		return
	}

	blockSize := 64 - leading - trailing

	bs.WriteBits(0b11, 2)
	bs.WriteBits(uint64(leading), 5)
	// A 64-bit block wraps to 0 in the 6-bit field; the decoder maps it back.
	bs.WriteBits(uint64(blockSize), 6)
	bs.WriteBits(xor>>uint(trailing), blockSize)

	e.leading = leading
	e.trailing = trailing
	e.blockSize = blockSize
}

// Count returns the number of values encoded.
func (e *ValueEncoder) Count() int {
	return e.count
}

// Reset clears the encoder for a fresh chunk.
func (e *ValueEncoder) Reset() {
	e.prev = 0
	e.leading = 0
	e.trailing = 0
	e.blockSize = 0
	e.count = 0
}

// ValueDecoder reconstructs values produced by ValueEncoder.
//
// It tracks the same window state as the encoder: a '11' control replaces
// the window, a '10' control reads a block at the current window, and a '0'
// control repeats the previous value. The zero value is ready to use;
// decoding is strictly sequential.
type ValueDecoder struct {
	value     uint64
	leading   int
	trailing  int
	blockSize int
	count     int
}

// NewValueDecoder creates an XOR float value decoder.
func NewValueDecoder() *ValueDecoder {
	return &ValueDecoder{}
}

// Decode consumes one value from bs. A stream that ends mid-field surfaces
// errs.ErrEndOfStream from the underlying read.
func (d *ValueDecoder) Decode(bs *bitstream.Stream) (float64, error) {
	if d.count == 0 {
		v, err := bs.ReadBits(64)
		if err != nil {
			return 0, err
		}
		d.value = v
		d.count++

		return math.Float64frombits(v), nil
	}

	bit, err := bs.ReadBit()
	if err != nil {
		return 0, err
	}
	if bit == 0 {
		d.count++

		return math.Float64frombits(d.value), nil
	}

	ctrl, err := bs.ReadBit()
	if err != nil {
		return 0, err
	}
	if ctrl == 1 {
		leading, err := bs.ReadBits(5)
		if err != nil {
			return 0, err
		}
		size, err := bs.ReadBits(6)
		if err != nil {
			return 0, err
		}

		d.leading = int(leading)
		d.blockSize = int(size)
		if d.blockSize == 0 {
			// Field value 0 means a full 64-bit block.
			d.blockSize = 64
		}
		d.trailing = 64 - d.leading - d.blockSize
	}

	block, err := bs.ReadBits(d.blockSize)
	if err != nil {
		return 0, err
	}

	d.value ^= block << uint(d.trailing)
	d.count++

	return math.Float64frombits(d.value), nil
}

// Count returns the number of values decoded.
func (d *ValueDecoder) Count() int {
	return d.count
}
