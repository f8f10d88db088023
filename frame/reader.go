package frame

import (
	"errors"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"

	"github.com/driftwood-io/tscodec/compress"
	"github.com/driftwood-io/tscodec/errs"
	"github.com/driftwood-io/tscodec/internal/options"
)

// Reader iterates frames from an io.Reader, verifying each envelope before
// handing the payload back.
//
// Reader is not safe for concurrent use.
type Reader struct {
	r          io.Reader
	maxPayload int
	header     [HeaderSize]byte
	digest     xxhash.Digest
}

// ReaderOption configures a Reader.
type ReaderOption = options.Option[*Reader]

// WithMaxPayload overrides the payload size limit. A frame whose header
// declares a larger payload is rejected with ErrPayloadTooLarge before any
// allocation happens.
func WithMaxPayload(n int) ReaderOption {
	return options.New(func(r *Reader) error {
		if n <= 0 {
			return fmt.Errorf("max payload must be positive, got %d", n)
		}
		r.maxPayload = n

		return nil
	})
}

// NewReader creates a frame reader consuming from r.
func NewReader(r io.Reader, opts ...ReaderOption) (*Reader, error) {
	fr := &Reader{
		r:          r,
		maxPayload: DefaultMaxPayload,
	}
	if err := options.Apply(fr, opts...); err != nil {
		return nil, err
	}

	return fr, nil
}

// Next reads and verifies the next frame, returning the decompressed chunk
// payload and its sample count.
//
// It returns io.EOF only when the stream ends exactly on a frame boundary.
// A stream that ends mid-envelope yields an error wrapping
// io.ErrUnexpectedEOF, and a frame that fails validation yields an error
// wrapping the matching errs sentinel.
//
// The returned payload does not alias the reader's state and stays valid
// across subsequent Next calls.
func (r *Reader) Next() ([]byte, int, error) {
	if _, err := io.ReadFull(r.r, r.header[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, 0, io.EOF
		}

		return nil, 0, fmt.Errorf("read frame header: %w", err)
	}

	var hdr Header
	if err := hdr.Parse(r.header[:]); err != nil {
		return nil, 0, err
	}
	if int64(hdr.PayloadLen) > int64(r.maxPayload) {
		return nil, 0, fmt.Errorf("%w: %d bytes, limit %d", errs.ErrPayloadTooLarge, hdr.PayloadLen, r.maxPayload)
	}

	body := make([]byte, int(hdr.PayloadLen)+ChecksumSize)
	if _, err := io.ReadFull(r.r, body); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}

		return nil, 0, fmt.Errorf("read frame body: %w", err)
	}

	payload := body[:hdr.PayloadLen]
	stored := hdr.Engine().Uint64(body[hdr.PayloadLen:])

	r.digest.Reset()
	_, _ = r.digest.Write(r.header[:])
	_, _ = r.digest.Write(payload)
	if sum := r.digest.Sum64(); sum != stored {
		return nil, 0, fmt.Errorf("%w: computed %016x, stored %016x", errs.ErrChecksumMismatch, sum, stored)
	}

	codec, err := compress.GetCodec(hdr.Compression)
	if err != nil {
		return nil, 0, err
	}
	decompressed, err := codec.Decompress(payload)
	if err != nil {
		return nil, 0, fmt.Errorf("decompress frame payload: %w", err)
	}

	return decompressed, int(hdr.SampleCount), nil
}
