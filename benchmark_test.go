package huffman

import (
	"math/rand"
	"testing"
)

func benchmarkInput(n int) []byte {
	rng := rand.New(rand.NewSource(12345))
	return randomSkewedBytes(rng, n)
}

func BenchmarkEncode(b *testing.B) {
	input := benchmarkInput(64 << 10)
	b.SetBytes(int64(len(input)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Encode(input)
	}
}

func BenchmarkDecode(b *testing.B) {
	input := benchmarkInput(64 << 10)
	p := Encode(input)
	b.SetBytes(int64(len(input)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Decode(p); err != nil {
			b.Fatal(err)
		}
	}
}
