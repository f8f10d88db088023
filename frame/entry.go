package frame

// Entry records where a frame landed in the output stream. The writer
// collects one per WriteChunk call so callers can build an external index
// without re-reading the stream.
type Entry struct {
	// Offset is the byte offset of the frame header, relative to the start
	// of the writer's output.
	Offset int64

	// SampleCount is the number of samples in the frame's chunk.
	SampleCount int

	// Length is the full envelope length in bytes, header and checksum
	// included.
	Length int
}
