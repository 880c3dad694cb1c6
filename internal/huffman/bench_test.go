package huffman

import (
	"bytes"
	"math/rand"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// benchmarkCorpus mirrors original_source/benchmark/bench_huffman.cpp's
// fixed-file setup: a single payload compressed/decompressed repeatedly
// across thread counts, rather than regenerated per iteration.
func benchmarkCorpus(b *testing.B) []byte {
	b.Helper()
	r := rand.New(rand.NewSource(42))
	data := make([]byte, 1<<20)
	for i := range data {
		data[i] = byte(r.Intn(64)) // uniform over a 64-symbol alphabet
	}
	return data
}

func benchmarkThreadCounts() []int {
	n := runtime.GOMAXPROCS(0)
	if n < 2 {
		return []int{1}
	}
	return []int{1, n}
}

func BenchmarkCompress(b *testing.B) {
	data := benchmarkCorpus(b)
	dir := b.TempDir()
	in := filepath.Join(dir, "in")
	if err := os.WriteFile(in, data, 0o644); err != nil {
		b.Fatal(err)
	}
	out := filepath.Join(dir, "out.huff")

	for _, threads := range benchmarkThreadCounts() {
		b.Run(threadLabel(threads), func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			for i := 0; i < b.N; i++ {
				if err := Compress(in, out, threads); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkDecompress(b *testing.B) {
	data := benchmarkCorpus(b)
	dir := b.TempDir()
	in := filepath.Join(dir, "in")
	if err := os.WriteFile(in, data, 0o644); err != nil {
		b.Fatal(err)
	}
	compressed := filepath.Join(dir, "in.huff")
	if err := Compress(in, compressed, runtime.GOMAXPROCS(0)); err != nil {
		b.Fatal(err)
	}
	out := filepath.Join(dir, "out")

	for _, threads := range benchmarkThreadCounts() {
		b.Run(threadLabel(threads), func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			for i := 0; i < b.N; i++ {
				if err := Decompress(compressed, out, threads); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
	b.Cleanup(func() {
		got, err := os.ReadFile(out)
		if err != nil || !bytes.Equal(got, data) {
			b.Fatal("benchmark decompression did not reproduce the input")
		}
	})
}

func threadLabel(n int) string {
	if n == 1 {
		return "threads=1"
	}
	return "threads=N"
}
