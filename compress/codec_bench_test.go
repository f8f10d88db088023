package compress

import (
	"fmt"
	"testing"
)

var benchSizes = []int{1024, 16384, 65536} // 1KB, 16KB, 64KB

func BenchmarkAllCodecs_Compress(b *testing.B) {
	for codecName, codec := range getAllCodecs() {
		for _, size := range benchSizes {
			data := chunkLikePayload(size)

			b.Run(fmt.Sprintf("%s_%dKB", codecName, size/1024), func(b *testing.B) {
				b.SetBytes(int64(size))

				for b.Loop() {
					if _, err := codec.Compress(data); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkAllCodecs_Decompress(b *testing.B) {
	for codecName, codec := range getAllCodecs() {
		for _, size := range benchSizes {
			compressed, err := codec.Compress(chunkLikePayload(size))
			if err != nil {
				b.Fatal(err)
			}

			b.Run(fmt.Sprintf("%s_%dKB", codecName, size/1024), func(b *testing.B) {
				b.SetBytes(int64(size))

				for b.Loop() {
					if _, err := codec.Decompress(compressed); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkAllCodecs_RoundTrip(b *testing.B) {
	const size = 16384

	for codecName, codec := range getAllCodecs() {
		data := chunkLikePayload(size)

		b.Run(codecName, func(b *testing.B) {
			b.SetBytes(int64(size))

			for b.Loop() {
				compressed, err := codec.Compress(data)
				if err != nil {
					b.Fatal(err)
				}
				if _, err := codec.Decompress(compressed); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkAllCodecs_Parallel(b *testing.B) {
	const size = 16384

	for codecName, codec := range getAllCodecs() {
		data := chunkLikePayload(size)

		b.Run(codecName, func(b *testing.B) {
			b.SetBytes(int64(size))

			b.RunParallel(func(pb *testing.PB) {
				for pb.Next() {
					compressed, err := codec.Compress(data)
					if err != nil {
						b.Fatal(err)
					}
					if _, err := codec.Decompress(compressed); err != nil {
						b.Fatal(err)
					}
				}
			})
		})
	}
}
