package sunlz

import "testing"

var benchInput = tileData(0x2000, 1)

func BenchmarkCompress(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Compress(benchInput, nil)
	}
}

func BenchmarkDecompress(b *testing.B) {
	enc, err := Compress(benchInput, nil)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Decompress(enc, 0)
	}
}
