// Package errs defines the sentinel errors shared across tscodec packages.
//
// Callers match them with errors.Is; producing code wraps them with
// fmt.Errorf("%w: detail", ...) to attach context without breaking matching.
package errs

import "errors"

// Stream errors.
var (
	// ErrEndOfStream indicates a read past the last valid bit of a stream.
	// It is the only failure mode the chunk decoder defines: a truncated or
	// foreign buffer surfaces as end-of-stream, never as a partial sample.
	ErrEndOfStream = errors.New("end of stream")

	// ErrInvalidBitWidth indicates a read request for a bit width outside [0, 64].
	ErrInvalidBitWidth = errors.New("bit width out of range")
)

// Frame errors.
var (
	// ErrInvalidMagic indicates a frame header whose magic bits do not match.
	ErrInvalidMagic = errors.New("invalid frame magic")

	// ErrInvalidHeader indicates a structurally invalid frame header.
	ErrInvalidHeader = errors.New("invalid frame header")

	// ErrPayloadTooLarge indicates a frame payload length above the reader's limit.
	ErrPayloadTooLarge = errors.New("frame payload too large")

	// ErrChecksumMismatch indicates a frame whose trailing checksum does not
	// match the recomputed digest over header and payload.
	ErrChecksumMismatch = errors.New("frame checksum mismatch")

	// ErrInvalidCompressionType indicates an unknown compression type code.
	ErrInvalidCompressionType = errors.New("invalid compression type")
)
