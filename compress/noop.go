package compress

// NoOpCompressor passes payloads through without compression.
//
// Regular series compress to mostly control bits in the chunk stage, where a
// second general-purpose pass rarely wins back its overhead; None is the
// default frame compression for that reason.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-operation compressor that bypasses data.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns the input slice as-is without copying.
//
// The returned slice shares the input's memory; callers that mutate the
// input afterwards see the change through the returned slice too.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input slice as-is without copying.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
