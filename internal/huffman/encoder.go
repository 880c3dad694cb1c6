package huffman

import (
	"github.com/kelbwah/parahuff/internal/bufpool"
	"github.com/kelbwah/parahuff/internal/concurrent"
)

// packBlockBits is the chunk size, in bits, used when parallelising the
// final bit-to-byte packing stage. It must be a multiple of 8; it is
// sized to the same block constant as the rest of the codec.
const packBlockBits = blockSize * 8

// encodeParallel maps each byte of data to its codebook entry in
// blockSize-byte blocks, one task per leading block plus a tail block on
// the caller, and concatenates the results in submission order. It
// returns the concatenated (unpadded) bitstream as ASCII '0'/'1' bytes,
// and the block-offset index: the bit length of each leading block (the
// final, tail block's length is not recorded — it is everything after
// the indexed lengths).
func encodeParallel(pool *concurrent.Pool, codebook map[byte]string, data []byte) (bits []byte, index []uint32) {
	maxLen := maxCodeLen(codebook)
	numBlocks := len(data) / blockSize

	futures := make([]*concurrent.Future[[]byte], numBlocks)
	for i := 0; i < numBlocks; i++ {
		block := data[i*blockSize : (i+1)*blockSize]
		futures[i] = concurrent.Submit(pool, func() []byte {
			return encodeBlock(codebook, block, maxLen)
		})
	}

	tail := encodeBlock(codebook, data[numBlocks*blockSize:], maxLen)

	bits = make([]byte, 0, len(data)*max(maxLen, 1))
	index = make([]uint32, 0, numBlocks)
	for _, f := range futures {
		encoded := f.Wait()
		index = append(index, uint32(len(encoded)))
		bits = append(bits, encoded...)
	}
	bits = append(bits, tail...)
	return bits, index
}

func encodeBlock(codebook map[byte]string, block []byte, maxLen int) []byte {
	buf := bufpool.Get(len(block) * max(maxLen, 1))[:0]
	for _, c := range block {
		buf = append(buf, codebook[c]...)
	}
	out := make([]byte, len(buf))
	copy(out, buf)
	bufpool.Put(buf)
	return out
}

// padBitstream appends zero bits until the bitstream's length is a
// multiple of 8, and returns the number of bits appended. The result is
// always in [1,8]: an already-aligned stream still receives a full 8
// bits of padding, which keeps the subtract-on-decode path uniform.
func padBitstream(bits []byte) ([]byte, uint8) {
	pad := 8 - (len(bits) % 8)
	padded := append(bits, make([]byte, pad)...)
	for i := len(bits); i < len(padded); i++ {
		padded[i] = '0'
	}
	return padded, uint8(pad)
}

// packBits packs an ASCII '0'/'1' bitstream (whose length must be a
// multiple of 8) into bytes, MSB-first: the first bit of the stream
// becomes bit 7 of the first output byte. Packing is parallelised over
// packBlockBits-sized chunks, with the final partial chunk (< one block)
// packed on the calling goroutine.
func packBits(pool *concurrent.Pool, bits []byte) []byte {
	numBlocks := len(bits) / packBlockBits
	futures := make([]*concurrent.Future[[]byte], numBlocks)
	for i := 0; i < numBlocks; i++ {
		chunk := bits[i*packBlockBits : (i+1)*packBlockBits]
		futures[i] = concurrent.Submit(pool, func() []byte { return packChunk(chunk) })
	}

	tail := packChunk(bits[numBlocks*packBlockBits:])

	out := make([]byte, 0, len(bits)/8)
	for _, f := range futures {
		out = append(out, f.Wait()...)
	}
	out = append(out, tail...)
	return out
}

func packChunk(bits []byte) []byte {
	n := len(bits) / 8
	out := bufpool.Get(n)[:0]
	for i := 0; i < n; i++ {
		var v byte
		for j := 0; j < 8; j++ {
			if bits[i*8+j] == '1' {
				v |= 1 << (7 - j)
			}
		}
		out = append(out, v)
	}
	packed := make([]byte, len(out))
	copy(packed, out)
	bufpool.Put(out)
	return packed
}
