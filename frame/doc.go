// Package frame wraps finalized chunk payloads in a checksummed envelope for
// on-disk or on-wire storage.
//
// A chunk payload is deliberately bare: no length, no sample count, no
// integrity check. The frame supplies all three, plus optional block
// compression, so that a stream of frames is self-describing and
// corruption-evident.
//
// # Envelope Layout
//
//	offset size field
//	0      2    options     bit 0: endianness, bits 4-15: magic 0xCA5
//	2      1    compression format.CompressionType of the payload
//	3      1    reserved    must be zero
//	4      4    sampleCount samples in the enclosed chunk
//	8      4    payloadLen  stored (possibly compressed) payload length
//	12     n    payload
//	12+n   8    checksum    xxHash64 over header and payload
//
// The options word itself is always little-endian so a reader can bootstrap;
// the remaining multi-byte fields use the byte order its endianness bit
// selects. The checksum is computed over the raw header and stored payload
// bytes, so it also covers the header fields it follows.
//
// # Usage
//
//	w, _ := frame.NewWriter(file, frame.WithCompression(format.CompressionS2))
//	err := w.WriteChunk(payload, count)
//
//	r, _ := frame.NewReader(file)
//	for {
//	    payload, count, err := r.Next()
//	    if errors.Is(err, io.EOF) {
//	        break
//	    }
//	    ...
//	}
//
// Next returns io.EOF only at a clean frame boundary; a file that ends
// mid-envelope surfaces io.ErrUnexpectedEOF, and corrupted envelopes return
// errors wrapping the errs sentinels (ErrInvalidMagic, ErrInvalidHeader,
// ErrPayloadTooLarge, ErrChecksumMismatch, ErrInvalidCompressionType).
package frame
