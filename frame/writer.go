package frame

import (
	"fmt"
	"io"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/driftwood-io/tscodec/compress"
	"github.com/driftwood-io/tscodec/errs"
	"github.com/driftwood-io/tscodec/format"
	"github.com/driftwood-io/tscodec/internal/container"
	"github.com/driftwood-io/tscodec/internal/options"
	"github.com/driftwood-io/tscodec/internal/pool"
)

// Writer frames chunk payloads onto an io.Writer. Each WriteChunk call
// produces one self-describing envelope: header, optionally compressed
// payload, xxHash64 checksum.
//
// Writer is not safe for concurrent use.
type Writer struct {
	w       io.Writer
	header  Header
	codec   compress.Codec
	entries container.SmallVec[Entry]
	offset  int64
}

// WriterOption configures a Writer.
type WriterOption = options.Option[*Writer]

// WithCompression selects the payload compression codec.
func WithCompression(compression format.CompressionType) WriterOption {
	return options.New(func(w *Writer) error {
		codec, err := compress.CreateCodec(compression)
		if err != nil {
			return err
		}
		w.header.Compression = compression
		w.codec = codec

		return nil
	})
}

// WithBigEndian stores multi-byte header fields in big-endian byte order.
func WithBigEndian() WriterOption {
	return options.NoError(func(w *Writer) {
		w.header.WithBigEndian()
	})
}

// WithLittleEndian stores multi-byte header fields in little-endian byte
// order. This is the default.
func WithLittleEndian() WriterOption {
	return options.NoError(func(w *Writer) {
		w.header.WithLittleEndian()
	})
}

// NewWriter creates a frame writer targeting w. The default configuration
// is little-endian with no payload compression.
func NewWriter(w io.Writer, opts ...WriterOption) (*Writer, error) {
	fw := &Writer{
		w:      w,
		header: NewHeader(format.CompressionNone),
		codec:  compress.NewNoOpCompressor(),
	}
	if err := options.Apply(fw, opts...); err != nil {
		return nil, err
	}

	return fw, nil
}

// WriteChunk frames payload with its sample count and writes the envelope
// to the underlying writer in a single Write call.
func (w *Writer) WriteChunk(payload []byte, sampleCount int) error {
	if sampleCount < 0 || sampleCount > math.MaxUint32 {
		return fmt.Errorf("%w: sample count %d out of range", errs.ErrInvalidHeader, sampleCount)
	}

	compressed, err := w.codec.Compress(payload)
	if err != nil {
		return fmt.Errorf("compress payload: %w", err)
	}
	if len(compressed) > math.MaxUint32 {
		return fmt.Errorf("%w: compressed payload is %d bytes", errs.ErrPayloadTooLarge, len(compressed))
	}

	hdr := w.header
	hdr.SampleCount = uint32(sampleCount)
	hdr.PayloadLen = uint32(len(compressed))

	buf := pool.GetFrameBuffer()
	defer pool.PutFrameBuffer(buf)

	buf.B = hdr.AppendTo(buf.B)
	buf.B = append(buf.B, compressed...)
	sum := xxhash.Sum64(buf.B)
	buf.B = hdr.Engine().AppendUint64(buf.B, sum)

	if _, err := w.w.Write(buf.B); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}

	w.entries.Append(Entry{
		Offset:      w.offset,
		SampleCount: sampleCount,
		Length:      buf.Len(),
	})
	w.offset += int64(buf.Len())

	return nil
}

// Entries returns one Entry per frame written so far, in write order.
// The slice is valid until the next WriteChunk call.
func (w *Writer) Entries() []Entry {
	return w.entries.Slice()
}

// Count returns the number of frames written.
func (w *Writer) Count() int {
	return w.entries.Len()
}

// Offset returns the total number of bytes written.
func (w *Writer) Offset() int64 {
	return w.offset
}
