package compress

// ZstdCompressor compresses payloads with Zstandard.
//
// Zstd trades CPU for the best ratio of the built-in codecs, which makes it
// the archival choice: frames written once and read rarely.
//
// Two backends implement the Compress/Decompress methods. The default build
// uses the pure-Go klauspost/compress encoder; building with -tags gozstd
// swaps in the cgo libzstd binding for workloads that want the native
// encoder. Both emit standard Zstd frames, so files written by one backend
// are readable by the other.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
