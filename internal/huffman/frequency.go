package huffman

import "github.com/kelbwah/parahuff/internal/concurrent"

// countFrequencies builds a byte histogram over data, splitting the work
// across blockSize-byte blocks submitted to pool. The tail block (data
// left over after the last full block) is counted on the calling
// goroutine. Partial histograms are folded in submission order so the
// result is deterministic regardless of worker scheduling.
func countFrequencies(pool *concurrent.Pool, data []byte) [256]uint64 {
	numBlocks := len(data) / blockSize
	futures := make([]*concurrent.Future[[256]uint64], numBlocks)
	for i := 0; i < numBlocks; i++ {
		block := data[i*blockSize : (i+1)*blockSize]
		futures[i] = concurrent.Submit(pool, func() [256]uint64 { return countBlock(block) })
	}

	tail := countBlock(data[numBlocks*blockSize:])

	var hist [256]uint64
	for _, f := range futures {
		part := f.Wait()
		for b := 0; b < 256; b++ {
			hist[b] += part[b]
		}
	}
	for b := 0; b < 256; b++ {
		hist[b] += tail[b]
	}
	return hist
}

func countBlock(block []byte) [256]uint64 {
	var h [256]uint64
	for _, c := range block {
		h[c]++
	}
	return h
}
