// Package bitstream implements the bit-granular append buffer the chunk
// codecs write into and read from.
//
// Bits are packed MSB-first: the first bit written lands in bit 7 of byte 0,
// and multi-bit writes emit their most significant requested bit first. The
// stream is append-only on the write side and keeps an independent read
// cursor, so a finished stream can be re-read from the start without copying.
// Callers must not interleave writes and reads within the same pass.
package bitstream

import (
	"fmt"

	"github.com/driftwood-io/tscodec/errs"
	"github.com/driftwood-io/tscodec/internal/pool"
)

// Stream is a bit-addressable append buffer with a read cursor.
//
// The zero value is not usable; construct with New or NewReader. Write
// positions are implicit (writes always append), while reads consume from the
// cursor position. The final byte of a stream whose bit length is not a
// multiple of 8 is zero-padded in its low bits.
type Stream struct {
	buf *pool.ByteBuffer
	// free is the number of still-unset low bits in the final byte. A fresh
	// byte is appended once a write begins with free == 0.
	free   uint8
	rpos   int
	pooled bool
}

// New creates an empty write stream backed by a pooled buffer. sizeHint is a
// byte-capacity hint for the expected finished size; zero is fine.
func New(sizeHint int) *Stream {
	buf := pool.GetChunkBuffer()
	if sizeHint > 0 {
		buf.Grow(sizeHint)
	}

	return &Stream{buf: buf, pooled: true}
}

// NewReader creates a read-only stream over data. Every bit of data is
// readable; the caller keeps ownership of the slice and must not mutate it
// while reading.
func NewReader(data []byte) *Stream {
	return &Stream{buf: &pool.ByteBuffer{B: data}}
}

// BitLen returns the number of valid bits in the stream.
func (s *Stream) BitLen() int {
	return len(s.buf.B)*8 - int(s.free)
}

// Len returns the number of bytes the finished stream occupies, including the
// partially filled final byte.
func (s *Stream) Len() int {
	return len(s.buf.B)
}

// Bytes finalizes the stream and hands back the accumulated buffer. The slice
// aliases the stream's internal storage: it remains valid until Finish and
// must be copied by callers that outlive the stream.
func (s *Stream) Bytes() []byte {
	return s.buf.B
}

// Finish releases the stream's backing buffer. Pooled buffers return to the
// pool for reuse; any use of the stream after Finish panics.
func (s *Stream) Finish() {
	if s.pooled {
		pool.PutChunkBuffer(s.buf)
	}
	s.buf = nil
}

// WriteBit appends a single bit: any nonzero value writes 1.
func (s *Stream) WriteBit(bit uint64) {
	if s.free == 0 {
		s.buf.B = append(s.buf.B, 0)
		s.free = 8
	}
	if bit != 0 {
		s.buf.B[len(s.buf.B)-1] |= 1 << (s.free - 1)
	}
	s.free--
}

// writeByte appends 8 bits, splitting across the byte boundary when the
// current byte is partially filled.
func (s *Stream) writeByte(byt byte) {
	if s.free == 0 {
		s.buf.B = append(s.buf.B, byt)
		return
	}

	i := len(s.buf.B) - 1
	s.buf.B[i] |= byt >> (8 - s.free)
	s.buf.B = append(s.buf.B, byt<<s.free)
}

// WriteBits appends the low width bits of v, most significant first.
// width must be in [0, 64]; writing with a width outside that range is an
// implementation defect and panics. A width of 0 writes nothing.
func (s *Stream) WriteBits(v uint64, width int) {
	if width < 0 || width > 64 {
		panic(fmt.Sprintf("bitstream: write width %d out of range [0, 64]", width))
	}

	v <<= 64 - uint(width)
	for width >= 8 {
		s.writeByte(byte(v >> 56))
		v <<= 8
		width -= 8
	}
	for width > 0 {
		s.WriteBit(v >> 63)
		v <<= 1
		width--
	}
}

// ReadBit consumes one bit from the read cursor.
func (s *Stream) ReadBit() (uint64, error) {
	if s.rpos >= s.BitLen() {
		return 0, errs.ErrEndOfStream
	}

	bit := uint64(s.buf.B[s.rpos>>3]>>(7-uint(s.rpos&7))) & 1
	s.rpos++

	return bit, nil
}

// ReadBits consumes width bits from the read cursor and returns them in the
// low bits of the result. The requested span must lie entirely within the
// valid bits: a short stream yields errs.ErrEndOfStream and consumes nothing.
// A width outside [0, 64] yields errs.ErrInvalidBitWidth.
func (s *Stream) ReadBits(width int) (uint64, error) {
	if width < 0 || width > 64 {
		return 0, fmt.Errorf("%w: %d", errs.ErrInvalidBitWidth, width)
	}
	if width == 0 {
		return 0, nil
	}
	if s.BitLen()-s.rpos < width {
		return 0, errs.ErrEndOfStream
	}

	var v uint64
	data := s.buf.B
	remaining := width
	for remaining > 0 {
		avail := 8 - (s.rpos & 7)
		take := avail
		if take > remaining {
			take = remaining
		}

		chunk := uint64(data[s.rpos>>3]>>(avail-take)) & (1<<take - 1)
		v = v<<take | chunk
		s.rpos += take
		remaining -= take
	}

	return v, nil
}

// ResetRead rewinds the read cursor to bit 0 without touching content.
func (s *Stream) ResetRead() {
	s.rpos = 0
}
