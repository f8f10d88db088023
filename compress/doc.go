// Package compress provides compression and decompression codecs for framed
// chunk payloads.
//
// A chunk is already bit-packed by the core codec, so this package is a
// second, optional stage: general-purpose compression applied to the packed
// bytes before they are wrapped in a frame. Whether it pays off depends on
// the data; regular series compress to mostly control bits and gain little,
// while series with raw 64-bit fields (irregular values, many window
// restarts) still have exploitable structure.
//
// # Supported Algorithms
//
// The frame header records which algorithm wrote the payload:
//   - None (format.CompressionNone): stored as-is, zero overhead
//   - Zstd (format.CompressionZstd): best ratio, moderate speed
//   - S2 (format.CompressionS2): balanced speed and ratio
//   - LZ4 (format.CompressionLZ4): fastest decompression, moderate ratio
//
// # Architecture
//
// Three small interfaces cover the package:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// CreateCodec builds a fresh codec for a compression type; GetCodec returns
// a shared built-in instance. Frame readers resolve the codec from the
// header's compression byte via GetCodec.
//
// # Zstd Implementations
//
// Two Zstd backends exist behind build tags: the default pure-Go
// klauspost/compress implementation, and a cgo binding to libzstd selected
// with -tags gozstd for workloads that want the native encoder. Both produce
// standard Zstd frames and interoperate freely.
//
// # Thread Safety
//
// All built-in codecs are stateless values. Internal scratch state lives in
// sync.Pools, so every codec is safe for concurrent use.
//
// # Selection Guide
//
// | Workload             | Recommended | Reason                         |
// |----------------------|-------------|--------------------------------|
// | Archival storage     | Zstd        | Best compression ratio         |
// | Real-time ingestion  | S2          | Balanced speed and compression |
// | Query-heavy          | LZ4         | Fastest decompression          |
// | Regular series       | None        | Chunks are already dense       |
package compress
