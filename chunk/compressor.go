package chunk

import (
	"github.com/driftwood-io/tscodec/internal/bitstream"
	"github.com/driftwood-io/tscodec/internal/encoding"
)

// Compressor accumulates samples into one compressed chunk.
//
// It owns the underlying bit stream; the timestamp and value encoders borrow
// the stream for the duration of each Add call, so every sample lands as one
// contiguous timestamp-then-value bit run.
//
// Lifecycle: Add samples, call Bytes to obtain the payload, then Finish to
// release the pooled buffer. Bytes finalizes the chunk; adding afterwards is
// a contract violation that corrupts nothing but extends a payload the
// caller may already have handed off. Any call after Finish panics.
//
// Not safe for concurrent use.
type Compressor struct {
	bs  *bitstream.Stream
	ts  encoding.TimestampEncoder
	val encoding.ValueEncoder
}

// NewCompressor creates an empty chunk compressor backed by a pooled buffer.
func NewCompressor() *Compressor {
	return &Compressor{bs: bitstream.New(0)}
}

// Add appends one sample: the timestamp bit-group, then the value bit-group.
func (c *Compressor) Add(ts int64, val float64) {
	if c.bs == nil {
		panic("chunk: compressor already finished - cannot add samples after Finish()")
	}

	c.ts.Encode(c.bs, ts)
	c.val.Encode(c.bs, val)
}

// AddSample appends one sample.
func (c *Compressor) AddSample(s Sample) {
	c.Add(s.Ts, s.Val)
}

// AddSlice appends samples in order.
func (c *Compressor) AddSlice(samples []Sample) {
	for _, s := range samples {
		c.Add(s.Ts, s.Val)
	}
}

// Count returns the number of samples added. Chunk payloads do not carry the
// count themselves; callers persist it alongside the payload.
func (c *Compressor) Count() int {
	return c.ts.Count()
}

// Size returns the payload size in bytes so far, including the partially
// filled final byte.
func (c *Compressor) Size() int {
	if c.bs == nil {
		panic("chunk: compressor already finished - cannot read size after Finish()")
	}

	return c.bs.Len()
}

// Bytes finalizes the chunk and returns the accumulated payload. The slice
// aliases the compressor's buffer: it stays valid until Finish, and callers
// that outlive the compressor must copy it.
func (c *Compressor) Bytes() []byte {
	if c.bs == nil {
		panic("chunk: compressor already finished - cannot read bytes after Finish()")
	}

	return c.bs.Bytes()
}

// Finish returns the backing buffer to the pool. The compressor is unusable
// afterwards; payloads obtained from Bytes must be copied before Finish if
// they are still needed.
func (c *Compressor) Finish() {
	if c.bs == nil {
		return
	}

	c.bs.Finish()
	c.bs = nil
}
