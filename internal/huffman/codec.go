// Package huffman implements a parallel, block-based Huffman codec over
// arbitrary byte files: a concurrent frequency reducer, tree/codebook
// construction, a block-parallel bit-packing encoder with a block-offset
// index, and a block-parallel decoder that uses that index to decode
// independent segments in parallel.
package huffman

import (
	"os"

	"github.com/kelbwah/parahuff/internal/concurrent"
)

// Compress reads inPath in full, Huffman-encodes it using numThreads
// worker goroutines, and writes a self-describing container to outPath.
// The destination is only created once the entire in-memory pipeline has
// succeeded: Compress writes to a temporary sibling file and renames it
// into place, so a failure never leaves a partial outPath behind.
func Compress(inPath, outPath string, numThreads int) error {
	if numThreads < 1 {
		return ErrInvalidArgument
	}

	data, err := os.ReadFile(inPath)
	if err != nil {
		return ioError(inPath, err)
	}

	pool := concurrent.NewPool(numThreads)
	defer pool.Close()

	hist := countFrequencies(pool, data)
	root := buildTree(&hist)
	codebook := buildCodebook(root)

	bits, index := encodeParallel(pool, codebook, data)
	padded, pad := padBitstream(bits)
	payload := packBits(pool, padded)

	return commitContainer(outPath, codebook, pad, index, payload)
}

// Decompress reads the container at inPath, decodes it using numThreads
// worker goroutines, and writes the reconstructed bytes to outPath under
// the same all-or-nothing commit discipline as Compress.
func Decompress(inPath, outPath string, numThreads int) error {
	if numThreads < 1 {
		return ErrInvalidArgument
	}

	f, err := os.Open(inPath)
	if err != nil {
		return ioError(inPath, err)
	}
	decodingTable, pad, index, payload, err := readContainer(f)
	closeErr := f.Close()
	if err != nil {
		return err
	}
	if closeErr != nil {
		return ioError(inPath, closeErr)
	}

	pool := concurrent.NewPool(numThreads)
	defer pool.Close()

	bits := unpackBits(pool, payload)
	if int(pad) > len(bits) {
		return corruptf("padding %d exceeds unpacked bit length %d", pad, len(bits))
	}
	bits = bits[:len(bits)-int(pad)]

	segments, final, err := splitBlocks(bits, index)
	if err != nil {
		return err
	}
	decoded, err := decodeParallel(pool, decodingTable, segments, final)
	if err != nil {
		return err
	}

	return commitFile(outPath, decoded)
}

func commitContainer(outPath string, codebook map[byte]string, pad uint8, index []uint32, payload []byte) error {
	tmpPath := outPath + ".tmp"
	f, err := os.Create(tmpPath)
	if err != nil {
		return ioError(outPath, err)
	}
	if err := writeContainer(f, codebook, pad, index, payload); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return ioError(outPath, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return ioError(outPath, err)
	}
	if err := os.Rename(tmpPath, outPath); err != nil {
		os.Remove(tmpPath)
		return ioError(outPath, err)
	}
	return nil
}

func commitFile(outPath string, data []byte) error {
	tmpPath := outPath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		os.Remove(tmpPath)
		return ioError(outPath, err)
	}
	if err := os.Rename(tmpPath, outPath); err != nil {
		os.Remove(tmpPath)
		return ioError(outPath, err)
	}
	return nil
}
