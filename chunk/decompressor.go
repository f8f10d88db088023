package chunk

import (
	"fmt"
	"iter"

	"github.com/driftwood-io/tscodec/internal/bitstream"
	"github.com/driftwood-io/tscodec/internal/encoding"
)

// Decompressor replays samples from a chunk payload, strictly forward-only.
//
// The payload does not carry the sample count; the caller knows it out of
// band and drives the decompressor for exactly that many samples. Reading
// past the written samples fails with the end-of-stream error once the
// padding bits run out, but a request that strays into the final byte's
// padding can yield garbage samples first, so the external count is the only
// reliable boundary.
//
// Each Decompressor keeps a private cursor over the shared immutable
// payload, so any number of instances may read the same bytes concurrently.
// A single instance is not safe for concurrent use.
type Decompressor struct {
	bs  *bitstream.Stream
	ts  encoding.TimestampDecoder
	val encoding.ValueDecoder
}

// NewDecompressor creates a decompressor over payload, positioned at the
// first sample. The caller keeps ownership of payload and must not mutate it
// while decoding.
func NewDecompressor(payload []byte) *Decompressor {
	return &Decompressor{bs: bitstream.NewReader(payload)}
}

// Next decodes one sample: the timestamp bit-group, then the value
// bit-group. A truncated payload returns an error wrapping
// errs.ErrEndOfStream; decoding cannot continue past it, so callers abort
// the chunk.
func (d *Decompressor) Next() (Sample, error) {
	ts, err := d.ts.Decode(d.bs)
	if err != nil {
		return Sample{}, fmt.Errorf("decode timestamp of sample %d: %w", d.ts.Count(), err)
	}

	val, err := d.val.Decode(d.bs)
	if err != nil {
		return Sample{}, fmt.Errorf("decode value of sample %d: %w", d.val.Count(), err)
	}

	return Sample{Ts: ts, Val: val}, nil
}

// All returns an iterator over up to count samples. Iteration stops early on
// a decode error; use Next or ReadAll when the error itself matters.
func (d *Decompressor) All(count int) iter.Seq[Sample] {
	return func(yield func(Sample) bool) {
		for i := 0; i < count; i++ {
			s, err := d.Next()
			if err != nil {
				return
			}
			if !yield(s) {
				return
			}
		}
	}
}

// ReadAll decodes exactly count samples into a fresh slice. On error it
// returns the samples decoded so far along with the error.
func (d *Decompressor) ReadAll(count int) ([]Sample, error) {
	samples := make([]Sample, 0, count)
	for i := 0; i < count; i++ {
		s, err := d.Next()
		if err != nil {
			return samples, err
		}
		samples = append(samples, s)
	}

	return samples, nil
}

// Count returns the number of samples decoded so far.
func (d *Decompressor) Count() int {
	return d.ts.Count()
}
